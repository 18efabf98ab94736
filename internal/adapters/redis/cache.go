package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"review_pulse/internal/adapters/observability"
	"review_pulse/internal/domain"
)

// Store keeps one JSON-encoded FetchBatch per app id in Redis. Put
// overwrites unconditionally (last write wins).
type Store struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Store {
	return &Store{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

func key(appID int64) string { return fmt.Sprintf("batch:%d", appID) }

func (s *Store) Get(ctx context.Context, appID int64) (domain.FetchBatch, bool, error) {
	v, err := s.c.Get(ctx, key(appID)).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return domain.FetchBatch{}, false, nil
	}
	if err != nil {
		return domain.FetchBatch{}, false, err
	}
	var batch domain.FetchBatch
	if err := json.Unmarshal(v, &batch); err != nil {
		return domain.FetchBatch{}, false, err
	}
	observability.ObserveCache("redis", "hit")
	return batch, true, nil
}

func (s *Store) Put(ctx context.Context, batch domain.FetchBatch) error {
	b, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return s.c.Set(ctx, key(batch.AppID), b, s.ttl).Err()
}

func (s *Store) Del(ctx context.Context, appID int64) error {
	observability.ObserveCache("redis", "del")
	return s.c.Del(ctx, key(appID)).Err()
}

package memstore

import (
	"context"
	"sync"

	"review_pulse/internal/adapters/observability"
	"review_pulse/internal/domain"
)

// Store is the default process-wide batch cache: one batch per app id
// behind a RWMutex, last write wins. Batches do not survive restarts.
type Store struct {
	mu      sync.RWMutex
	batches map[int64]domain.FetchBatch
}

func New() *Store {
	return &Store{batches: make(map[int64]domain.FetchBatch)}
}

func (s *Store) Get(ctx context.Context, appID int64) (domain.FetchBatch, bool, error) {
	s.mu.RLock()
	batch, ok := s.batches[appID]
	s.mu.RUnlock()
	if !ok {
		observability.ObserveCache("mem", "miss")
		return domain.FetchBatch{}, false, nil
	}
	observability.ObserveCache("mem", "hit")
	return copyBatch(batch), true, nil
}

func (s *Store) Put(ctx context.Context, batch domain.FetchBatch) error {
	stored := copyBatch(batch)
	s.mu.Lock()
	s.batches[batch.AppID] = stored
	s.mu.Unlock()
	observability.ObserveCache("mem", "set")
	return nil
}

func (s *Store) Del(ctx context.Context, appID int64) error {
	s.mu.Lock()
	delete(s.batches, appID)
	s.mu.Unlock()
	observability.ObserveCache("mem", "del")
	return nil
}

// copyBatch clones the review slice so callers never alias the stored
// value.
func copyBatch(in domain.FetchBatch) domain.FetchBatch {
	out := in
	if len(in.Reviews) > 0 {
		out.Reviews = make([]domain.Review, len(in.Reviews))
		copy(out.Reviews, in.Reviews)
	}
	return out
}

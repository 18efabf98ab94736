// One-shot ingest: fetch and cache review batches for a fixed list of
// app ids, then exit. Useful for warming the store before analysis.
package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_pulse/internal/adapters/appstore"
	"review_pulse/internal/adapters/memstore"
	"review_pulse/internal/adapters/observability"
	redisad "review_pulse/internal/adapters/redis"
	"review_pulse/internal/app"
	"review_pulse/internal/domain"
	"review_pulse/internal/shared"
)

const fetchWorkers = 4

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	appIDs, err := parseAppIDs(os.Getenv("APP_IDS"))
	if err != nil {
		log.Fatal().Err(err).Msg("APP_IDS must be a comma-separated list of app ids")
	}
	if len(appIDs) == 0 {
		log.Fatal().Msg("APP_IDS is empty; nothing to fetch")
	}

	var store domain.BatchStore
	if cfg.RedisAddr != "" {
		store = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL)
	} else {
		// batches die with the process; only useful for smoke runs
		store = memstore.New()
		log.Warn().Msg("no REDIS_ADDR: batches are stored in-memory and discarded on exit")
	}

	feed := appstore.New(cfg.FeedBase, cfg.FeedCountry, cfg.FeedRPS)
	ingest := app.NewIngestionService(feed, store, cfg.MaxPages)

	log.Info().
		Str("base", cfg.FeedBase).
		Str("country", cfg.FeedCountry).
		Int("pages", cfg.MaxPages).
		Int("apps", len(appIDs)).
		Msg("fetcher starting")

	sem := semaphore.NewWeighted(int64(fetchWorkers))
	var wg sync.WaitGroup

	for _, id := range appIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(appID int64) {
			defer wg.Done()
			defer sem.Release(1)

			batch, err := ingest.FetchReviews(ctx, appID, app.FetchOptions{MinRating: 1, MaxRating: 5, Limit: 500})
			if err != nil {
				log.Warn().Int64("app_id", appID).Err(err).Msg("fetch failed")
				return
			}
			log.Info().Int64("app_id", appID).Int("reviews", len(batch.Reviews)).Msg("fetch ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("fetching completed")
}

func parseAppIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

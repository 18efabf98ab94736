package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_pulse/internal/adapters/observability"
	"review_pulse/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// FetchOptions are the caller-supplied ingestion bounds.
type FetchOptions struct {
	MinRating int
	MaxRating int
	Limit     int
}

// IngestionService fans out page fetches over a fixed page range,
// filters and caps the aggregate, and replaces the stored batch for
// the app id.
type IngestionService struct {
	feed     domain.FeedClient
	store    domain.BatchStore
	maxPages int
}

func NewIngestionService(feed domain.FeedClient, store domain.BatchStore, maxPages int) *IngestionService {
	if maxPages <= 0 || maxPages > 10 {
		maxPages = 10
	}
	return &IngestionService{feed: feed, store: store, maxPages: maxPages}
}

// FetchReviews fetches up to maxPages feed pages concurrently, keeps
// records whose rating falls within [MinRating,MaxRating], caps the
// aggregate at Limit in completion order, numbers the survivors from 1
// and stores the batch (replacing any prior batch for the app id).
//
// Completion order is nondeterministic when the feed returns more than
// Limit qualifying records; downstream analytics are order-insensitive
// so the truncation set may differ between runs.
//
// If every page fails or comes back empty the returned batch has zero
// reviews and no error: the feed's end is an expected outcome. An
// empty batch is never stored, so a prior good batch stays servable.
func (s *IngestionService) FetchReviews(ctx context.Context, appID int64, opts FetchOptions) (domain.FetchBatch, error) {
	if opts.MinRating < 1 || opts.MaxRating > 5 || opts.MinRating > opts.MaxRating {
		return domain.FetchBatch{}, domain.ErrInvalidRange
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sem := semaphore.NewWeighted(int64(s.maxPages))
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		collected []domain.RawReview
	)

	for page := 1; page <= s.maxPages; page++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return domain.FetchBatch{}, err
		}
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			defer sem.Release(1)

			raws, err := s.feed.FetchPage(ctx, appID, page)
			if err != nil {
				// only context cancellation reaches here; the adapter
				// absorbs transport failures as the no-data signal
				log.Warn().Int64("app_id", appID).Int("page", page).Err(err).Msg("page fetch aborted")
				return
			}
			if len(raws) == 0 {
				log.Debug().Int64("app_id", appID).Int("page", page).Msg("page returned no reviews")
				return
			}

			kept := raws[:0:0]
			for _, r := range raws {
				if r.Rating >= opts.MinRating && r.Rating <= opts.MaxRating {
					kept = append(kept, r)
				}
			}
			if len(kept) == 0 {
				return
			}
			mu.Lock()
			collected = append(collected, kept...)
			mu.Unlock()
		}(page)
	}
	wg.Wait()

	if len(collected) > limit {
		collected = collected[:limit]
	}

	reviews := make([]domain.Review, 0, len(collected))
	for i, raw := range collected {
		reviews = append(reviews, domain.Review{
			RecallID:  i + 1,
			Rating:    raw.Rating,
			Title:     raw.Title,
			Text:      raw.Text,
			CreatedAt: parseFeedTime(raw.Date),
		})
	}
	observability.ReviewsIngested.Add(float64(len(reviews)))

	batch := domain.FetchBatch{
		AppID:     appID,
		MinRating: opts.MinRating,
		MaxRating: opts.MaxRating,
		Limit:     limit,
		FetchedAt: time.Now().UTC(),
		Reviews:   reviews,
	}
	// an empty fetch (outage, past feed end) must not clobber a prior
	// good batch; the caller sees the empty result, the store keeps
	// serving the last non-empty one
	if len(reviews) == 0 {
		log.Info().Int64("app_id", appID).Msg("empty fetch; keeping any prior batch")
		return batch, nil
	}
	if err := s.store.Put(ctx, batch); err != nil {
		return domain.FetchBatch{}, fmt.Errorf("store batch for %d: %w", appID, err)
	}
	log.Info().Int64("app_id", appID).Int("reviews", len(reviews)).Msg("batch stored")
	return batch, nil
}

// parseFeedTime accepts the feed's Z-suffixed ISO-8601 form by
// substituting an explicit +00:00 offset. Any parse failure leaves the
// timestamp absent rather than failing the record.
func parseFeedTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	raw = strings.Replace(raw, "Z", "+00:00", 1)
	t, err := time.Parse("2006-01-02T15:04:05-07:00", raw)
	if err != nil {
		return nil
	}
	return &t
}

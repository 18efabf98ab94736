package domain

import (
	"context"
	"errors"
)

var (
	// ErrInvalidRange rejects min_rating > max_rating or bounds outside [1,5]
	// before any network activity.
	ErrInvalidRange = errors.New("reviews: invalid rating range")
	// ErrNoBatch means no batch has been fetched for the app id yet.
	ErrNoBatch = errors.New("reviews: no cached batch for app id")
	// ErrEmptyBatch means a batch exists but holds zero reviews.
	ErrEmptyBatch = errors.New("reviews: cached batch is empty")
)

// RawReview is one feed entry as parsed by the page fetcher, before
// normalization. Rating 0 marks a missing/unparseable rating.
type RawReview struct {
	Rating int
	Title  string
	Text   string
	Date   string // feed's ISO-8601 string, parsed later
}

// FeedClient fetches one page of the public customer-reviews feed.
// A nil slice with nil error is the "no data" signal: end of
// pagination, non-success status, parse failure, or a transport error
// already logged by the adapter. None of these are fatal.
type FeedClient interface {
	FetchPage(ctx context.Context, appID int64, page int) ([]RawReview, error)
}

// BatchStore holds at most one FetchBatch per app id. Put replaces any
// prior batch for the same id (last write wins).
type BatchStore interface {
	Get(ctx context.Context, appID int64) (FetchBatch, bool, error)
	Put(ctx context.Context, batch FetchBatch) error
	Del(ctx context.Context, appID int64) error
}

// InsightsClient turns a review selection into actionable insights.
// Implementations never fail the request: credential or call problems
// come back as a degraded report with a nil error.
type InsightsClient interface {
	ActionableInsights(ctx context.Context, reviews []Review) (InsightReport, error)
}

// internal/adapters/appstore/client.go
package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"review_pulse/internal/adapters/observability"
	"review_pulse/internal/domain"
)

// Client reads the public iTunes customer-reviews feed. One FetchPage
// call is one GET with a fixed timeout; the feed requires no
// credentials but is rate limited, so requests go through a
// client-side limiter.
type Client struct {
	base    string
	country string
	hc      *http.Client
	rl      *rate.Limiter
}

func New(base, country string, rps int) *Client {
	if country == "" {
		country = "us"
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:    base,
		country: country,
		hc:      &http.Client{Timeout: 10 * time.Second},
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// feed JSON shape: {"feed":{"entry":[{"im:rating":{"label":"5"},...}]}}
type feedDocument struct {
	Feed struct {
		Entry []feedEntry `json:"entry"`
	} `json:"feed"`
}

type feedEntry struct {
	Rating  label `json:"im:rating"`
	Title   label `json:"title"`
	Content label `json:"content"`
	Updated label `json:"updated"`
}

type label struct {
	Label string `json:"label"`
}

// FetchPage retrieves one feed page. A nil slice with nil error is the
// "no data" signal: the page is past the feed's end, the body did not
// parse, or the request itself failed. Pagination past the end is
// expected, so none of those bubble up as errors; transport failures
// are logged and counted for observability only.
func (c *Client) FetchPage(ctx context.Context, appID int64, page int) ([]domain.RawReview, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/rss/customerreviews/page=%d/id=%d/sortBy=mostRecent/json",
		c.base, c.country, page, appID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "review-pulse/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		observability.ObserveFeed("error", time.Since(start))
		log.Warn().Int64("app_id", appID).Int("page", page).Err(err).Msg("feed page request failed")
		return nil, nil
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		observability.ObserveFeed("empty", time.Since(start))
		log.Warn().Int64("app_id", appID).Int("page", page).Int("status", resp.StatusCode).Msg("feed page non-200")
		return nil, nil
	}

	var doc feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		observability.ObserveFeed("empty", time.Since(start))
		log.Warn().Int64("app_id", appID).Int("page", page).Err(err).Msg("feed page body did not parse")
		return nil, nil
	}

	if len(doc.Feed.Entry) == 0 {
		// end of pagination
		observability.ObserveFeed("empty", time.Since(start))
		return nil, nil
	}

	observability.ObserveFeed("ok", time.Since(start))
	out := make([]domain.RawReview, 0, len(doc.Feed.Entry))
	for _, e := range doc.Feed.Entry {
		rating, _ := strconv.Atoi(e.Rating.Label) // 0 on parse failure; filtered downstream
		out = append(out, domain.RawReview{
			Rating: rating,
			Title:  e.Title.Label,
			Text:   e.Content.Label,
			Date:   e.Updated.Label,
		})
	}
	return out, nil
}

package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	server "review_pulse/internal/adapters/http_server"
	"review_pulse/internal/adapters/memstore"
	"review_pulse/internal/app"
	"review_pulse/internal/domain"
)

type stubFeed struct {
	pages map[int][]domain.RawReview
}

func (f *stubFeed) FetchPage(ctx context.Context, appID int64, page int) ([]domain.RawReview, error) {
	return f.pages[page], nil
}

type stubInsights struct{}

func (stubInsights) ActionableInsights(ctx context.Context, reviews []domain.Review) (domain.InsightReport, error) {
	return domain.InsightReport{Issues: []domain.Insight{{Problem: "p", Improvement: "i"}}}, nil
}

func newTestServer(feed domain.FeedClient) *httptest.Server {
	store := memstore.New()
	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Ingest:   app.NewIngestionService(feed, store, 3),
		Analysis: app.NewAnalysisService(store, stubInsights{}, nil),
	})
	return httptest.NewServer(srv.Mux())
}

func TestFetchReviews_InvalidRange400(t *testing.T) {
	ts := newTestServer(&stubFeed{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/apps/1/reviews?min_rating=4&max_rating=2", "", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestFetchReviews_EmptyFeed404(t *testing.T) {
	ts := newTestServer(&stubFeed{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/apps/1/reviews", "", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAnalyze_NoBatch404(t *testing.T) {
	ts := newTestServer(&stubFeed{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/apps/1/analysis")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestFetchThenAnalyze_Happy(t *testing.T) {
	feed := &stubFeed{pages: map[int][]domain.RawReview{1: {
		{Rating: 1, Title: "Broken", Text: "keeps crashing daily", Date: "2024-03-01T10:00:00Z"},
		{Rating: 5, Title: "Nice", Text: "love the new tools", Date: "2024-03-02T10:00:00Z"},
	}}}
	ts := newTestServer(feed)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/apps/42/reviews?min_rating=1&max_rating=5&limit=10", "", nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("fetch status = %d, want 200", resp.StatusCode)
	}
	var fetched struct {
		ReturnedReviews int `json:"returned_reviews"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.ReturnedReviews != 2 {
		t.Fatalf("returned_reviews = %d, want 2", fetched.ReturnedReviews)
	}

	resp2, err := http.Get(ts.URL + "/v1/apps/42/analysis?kind=lexicon&insights=true")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("analyze status = %d, want 200", resp2.StatusCode)
	}
	etag := resp2.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	var res domain.AnalysisResult
	if err := json.NewDecoder(resp2.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.ReturnedReviews != 2 || res.AverageRating != 3.0 {
		t.Fatalf("unexpected result: returned=%d avg=%v", res.ReturnedReviews, res.AverageRating)
	}
	if res.Sentiment == nil {
		t.Fatal("lexicon analysis must include sentiment distribution")
	}
	if res.Insights == nil || len(res.Insights.Issues) != 1 {
		t.Fatalf("insights missing: %+v", res.Insights)
	}

	// conditional revalidation
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/apps/42/analysis?kind=lexicon&insights=true", nil)
	req.Header.Set("If-None-Match", etag)
	resp3, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("revalidate: %v", err)
	}
	defer resp3.Body.Close()
	if resp3.StatusCode != http.StatusNotModified {
		t.Fatalf("revalidate status = %d, want 304", resp3.StatusCode)
	}
}

func TestAnalyze_BadKind400(t *testing.T) {
	ts := newTestServer(&stubFeed{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/apps/1/analysis?kind=vibes")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestNegativeSignals_Endpoint(t *testing.T) {
	feed := &stubFeed{pages: map[int][]domain.RawReview{1: {
		{Rating: 1, Text: "keeps crashing randomly keeps crashing randomly keeps crashing randomly"},
	}}}
	ts := newTestServer(feed)
	defer ts.Close()

	if resp, err := http.Post(ts.URL+"/v1/apps/5/reviews", "", nil); err != nil {
		t.Fatalf("fetch: %v", err)
	} else {
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/v1/apps/5/negative-signals?top_k=10")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var sig struct {
		Keywords []domain.PhraseCount `json:"keywords"`
		Bigrams  []domain.PhraseCount `json:"bigrams"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sig); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sig.Keywords) == 0 || len(sig.Bigrams) == 0 {
		t.Fatalf("expected populated signals: %+v", sig)
	}
}

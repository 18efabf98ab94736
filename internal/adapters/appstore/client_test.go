package appstore_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"review_pulse/internal/adapters/appstore"
)

func feedJSON(entries ...string) string {
	out := `{"feed":{"entry":[`
	for i, e := range entries {
		if i > 0 {
			out += ","
		}
		out += e
	}
	return out + `]}}`
}

func entry(rating, title, content, updated string) string {
	return fmt.Sprintf(
		`{"im:rating":{"label":%q},"title":{"label":%q},"content":{"label":%q},"updated":{"label":%q}}`,
		rating, title, content, updated,
	)
}

func TestFetchPage_Success(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedJSON(
			entry("5", "Great", "love it", "2024-03-01T10:00:00Z"),
			entry("1", "Broken", "keeps crashing", "2024-03-02T11:00:00Z"),
		)))
	}))
	defer ts.Close()

	cl := appstore.New(ts.URL, "us", 100)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raws, err := cl.FetchPage(ctx, 1447033725, 3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("got %d raw reviews, want 2", len(raws))
	}
	if raws[0].Rating != 5 || raws[0].Title != "Great" {
		t.Fatalf("first entry wrong: %+v", raws[0])
	}
	if raws[1].Rating != 1 || raws[1].Text != "keeps crashing" || raws[1].Date != "2024-03-02T11:00:00Z" {
		t.Fatalf("second entry wrong: %+v", raws[1])
	}
	want := "/us/rss/customerreviews/page=3/id=1447033725/sortBy=mostRecent/json"
	if gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
}

func TestFetchPage_EmptyFeedIsNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"feed":{}}`))
	}))
	defer ts.Close()

	raws, err := appstore.New(ts.URL, "us", 100).FetchPage(context.Background(), 1, 1)
	if err != nil || raws != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", raws, err)
	}
}

func TestFetchPage_Non200IsNoData(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	raws, err := appstore.New(ts.URL, "us", 100).FetchPage(context.Background(), 1, 11)
	if err != nil || raws != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", raws, err)
	}
}

func TestFetchPage_MalformedBodyIsNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	raws, err := appstore.New(ts.URL, "us", 100).FetchPage(context.Background(), 1, 1)
	if err != nil || raws != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", raws, err)
	}
}

func TestFetchPage_TransportErrorIsNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	raws, err := appstore.New(ts.URL, "us", 100).FetchPage(context.Background(), 1, 1)
	if err != nil || raws != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", raws, err)
	}
}

func TestFetchPage_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := appstore.New(ts.URL, "us", 100).FetchPage(ctx, 1, 1); err == nil {
		t.Fatal("expected context error")
	}
}

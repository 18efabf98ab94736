package textproc_test

import (
	"math"
	"testing"

	"review_pulse/internal/domain"
	"review_pulse/internal/textproc"
)

func TestRatingSummary(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5}, {Rating: 5}, {Rating: 1}, {Rating: 1},
	}
	avg, hist := textproc.RatingSummary(reviews)
	if math.Abs(avg-3.0) > 1e-9 {
		t.Fatalf("avg = %v, want 3.0", avg)
	}
	want := map[int]int{1: 2, 2: 0, 3: 0, 4: 0, 5: 2}
	for k, v := range want {
		if hist[k] != v {
			t.Fatalf("hist[%d] = %d, want %d (full: %v)", k, hist[k], v, hist)
		}
	}
	if len(hist) != 5 {
		t.Fatalf("histogram must keep all five buckets, got %v", hist)
	}
}

func TestRatingSummary_Empty(t *testing.T) {
	avg, hist := textproc.RatingSummary(nil)
	if avg != 0 {
		t.Fatalf("empty input: avg = %v, want 0", avg)
	}
	for k := 1; k <= 5; k++ {
		if hist[k] != 0 {
			t.Fatalf("empty input: hist[%d] = %d, want 0", k, hist[k])
		}
	}
}

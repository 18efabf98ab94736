package textproc_test

import (
	"testing"

	"review_pulse/internal/textproc"
)

func TestReviewKeywords_RanksLongerPhrases(t *testing.T) {
	got := textproc.ReviewKeywords("the sync feature keeps failing and the sync feature loses photos", 5)
	if len(got) == 0 {
		t.Fatal("expected keywords")
	}
	// "sync feature keeps failing" / "sync feature loses photos" carry
	// the high-degree words; the top phrase must contain them
	if got[0] == "" {
		t.Fatalf("empty top phrase: %v", got)
	}
	seen := false
	for _, k := range got {
		if k == "sync feature keeps failing" || k == "sync feature loses photos" {
			seen = true
		}
	}
	if !seen {
		t.Fatalf("expected a multi-word sync phrase among %v", got)
	}
}

func TestReviewKeywords_CapsAtTopK(t *testing.T) {
	// stopword separators split this into six candidate phrases
	text := "alpha bravo the charlie delta the echo foxtrot the golf hotel the india juliet the kilo lima"
	got := textproc.ReviewKeywords(text, 5)
	if len(got) != 5 {
		t.Fatalf("got %d keywords, want exactly 5: %v", len(got), got)
	}
}

func TestReviewKeywords_Empty(t *testing.T) {
	if got := textproc.ReviewKeywords("", 5); got != nil {
		t.Fatalf("expected nil for empty text, got %v", got)
	}
	if got := textproc.ReviewKeywords("the and you for", 5); got != nil {
		t.Fatalf("expected nil for stopword-only text, got %v", got)
	}
}

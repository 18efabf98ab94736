package openaiad

import (
	"context"
	"strings"
	"testing"

	"review_pulse/internal/domain"
)

func TestActionableInsights_MissingKeyDegrades(t *testing.T) {
	c := NewInsights("")
	report, err := c.ActionableInsights(context.Background(), []domain.Review{
		{RecallID: 1, Rating: 1, Title: "bad", Text: "keeps crashing"},
	})
	if err != nil {
		t.Fatalf("missing key must not error: %v", err)
	}
	if !report.Degraded || len(report.Issues) != 1 {
		t.Fatalf("expected single-issue degraded report, got %+v", report)
	}
}

func TestFormatReviews_PrefersLowRated(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5, Title: "Great", Text: "love it"},
		{Rating: 2, Title: "Broken", Text: "keeps\ncrashing"},
		{Rating: 3, Title: "Meh", Text: "slow"},
	}
	block := formatReviews(reviews, 30)

	if !strings.HasPrefix(block, "Reviews:\n") {
		t.Fatalf("missing header: %q", block)
	}
	if strings.Contains(block, "Great") {
		t.Fatalf("high-rated review included despite low-rated ones existing: %q", block)
	}
	if !strings.Contains(block, "keeps crashing") {
		t.Fatalf("newlines not normalized: %q", block)
	}
	if !strings.Contains(block, "Meh") {
		t.Fatalf("rating-3 review should qualify: %q", block)
	}
}

func TestFormatReviews_FallbackAndLimit(t *testing.T) {
	var all []domain.Review
	for i := 0; i < 40; i++ {
		all = append(all, domain.Review{Rating: 5, Title: "t", Text: "fine"})
	}
	block := formatReviews(all, 30)
	if block == "" {
		t.Fatal("no low-rated reviews: must fall back to any")
	}
	if n := strings.Count(block, "\n"); n != 31 { // header + 30 lines
		t.Fatalf("expected 30 numbered lines, got %d newlines", n)
	}

	if got := formatReviews(nil, 30); got != "" {
		t.Fatalf("empty selection must produce empty block, got %q", got)
	}
}

func TestCleanJSONResponse(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"Here you go: {\"a\":1} thanks": `{"a":1}`,
		`{"a":1}`:                       `{"a":1}`,
	}
	for in, want := range cases {
		if got := cleanJSONResponse(in); got != want {
			t.Fatalf("cleanJSONResponse(%q) = %q, want %q", in, got, want)
		}
	}
}

package domain

import "time"

// Sentiment is the lexicon classifier's three-way label.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// AnalysisKind selects how much work the analysis pass does.
type AnalysisKind string

const (
	AnalysisBasic   AnalysisKind = "basic"   // rating metrics + negative keywords
	AnalysisLexicon AnalysisKind = "lexicon" // additionally sentiment + per-review keywords
)

// Review is one app-store customer review after normalization.
// RecallID is assigned per batch, starting at 1; it is not stable
// across fetches. Sentiment and Keywords stay empty until a lexicon
// analysis pass produces an enriched copy.
type Review struct {
	RecallID  int        `json:"recall_id"`
	Rating    int        `json:"rating"` // always within [1,5]
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Sentiment Sentiment  `json:"sentiment,omitempty"`
	Keywords  []string   `json:"keywords,omitempty"`
}

// FetchBatch is one complete ingestion result for one app id. Exactly
// one batch exists per app id; a new fetch replaces the prior one.
type FetchBatch struct {
	AppID     int64     `json:"app_id"`
	MinRating int       `json:"min_rating"`
	MaxRating int       `json:"max_rating"`
	Limit     int       `json:"limit"`
	FetchedAt time.Time `json:"fetched_at"`
	Reviews   []Review  `json:"reviews"`
}

// PhraseCount is a (phrase, frequency) pair from negative-signal
// extraction. Lists of these are ordered by descending count, ties by
// first-encountered order.
type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Insight is one {problem, suggested improvement} pair from the
// insights collaborator.
type Insight struct {
	Problem     string `json:"problem_description"`
	Improvement string `json:"improvement_option"`
}

// InsightReport carries the collaborator's output. Degraded reports
// (missing credential, call failure) still assemble successfully so
// callers can distinguish "no insights" from "insights disabled".
type InsightReport struct {
	Issues   []Insight `json:"top_issues"`
	Degraded bool      `json:"degraded,omitempty"`
	Reason   string    `json:"degraded_reason,omitempty"`
}

// SentimentDistribution counts reviews per sentiment bucket.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// AnalysisResult is the assembled output of one analysis request.
type AnalysisResult struct {
	AppID              int64                  `json:"app_id"`
	MinRating          int                    `json:"min_rating"`
	MaxRating          int                    `json:"max_rating"`
	RequestedLimit     int                    `json:"requested_limit"`
	ReturnedReviews    int                    `json:"returned_reviews"`
	AnalysisKind       AnalysisKind           `json:"analysis_kind"`
	AverageRating      float64                `json:"average_rating"`
	RatingDistribution map[int]int            `json:"rating_distribution"`
	NegativeKeywords   []PhraseCount          `json:"negative_keywords"`
	Sentiment          *SentimentDistribution `json:"sentiment_distribution,omitempty"`
	Insights           *InsightReport         `json:"ai_actionable_insights,omitempty"`
	Reviews            []Review               `json:"reviews"`
}

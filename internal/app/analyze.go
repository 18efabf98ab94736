package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"review_pulse/internal/domain"
	"review_pulse/internal/textproc"
)

const defaultTopKeywords = 10

// AnalysisService derives descriptive analytics from a previously
// ingested batch. Stages degrade independently: a collaborator failure
// becomes a degraded insight report, never a request error.
type AnalysisService struct {
	store    domain.BatchStore
	insights domain.InsightsClient
	analyzer *textproc.Analyzer
	topK     int
}

func NewAnalysisService(store domain.BatchStore, insights domain.InsightsClient, analyzer *textproc.Analyzer) *AnalysisService {
	if analyzer == nil {
		analyzer = textproc.NewAnalyzer()
	}
	return &AnalysisService{store: store, insights: insights, analyzer: analyzer, topK: defaultTopKeywords}
}

// Analyze assembles the analytics result for appID's cached batch.
// Missing batch -> ErrNoBatch; present but empty -> ErrEmptyBatch. Both
// are not-found-class outcomes, distinct from server faults.
func (s *AnalysisService) Analyze(ctx context.Context, appID int64, kind domain.AnalysisKind, withInsights bool) (domain.AnalysisResult, error) {
	batch, ok, err := s.store.Get(ctx, appID)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	if !ok {
		return domain.AnalysisResult{}, domain.ErrNoBatch
	}
	if len(batch.Reviews) == 0 {
		return domain.AnalysisResult{}, domain.ErrEmptyBatch
	}

	avg, hist := textproc.RatingSummary(batch.Reviews)
	res := domain.AnalysisResult{
		AppID:              batch.AppID,
		MinRating:          batch.MinRating,
		MaxRating:          batch.MaxRating,
		RequestedLimit:     batch.Limit,
		ReturnedReviews:    len(batch.Reviews),
		AnalysisKind:       kind,
		AverageRating:      avg,
		RatingDistribution: hist,
		NegativeKeywords:   textproc.NegativeKeywords(batch.Reviews, s.topK),
		Reviews:            batch.Reviews,
	}

	if kind == domain.AnalysisLexicon {
		enriched, dist := s.analyzer.Enrich(batch.Reviews)
		res.Reviews = enriched
		res.Sentiment = &dist
	}

	if withInsights && s.insights != nil {
		report, ierr := s.insights.ActionableInsights(ctx, res.Reviews)
		if ierr != nil {
			// the port contract converts failures to degraded reports,
			// but keep the request alive if an implementation slips
			log.Error().Int64("app_id", appID).Err(ierr).Msg("insights collaborator errored")
			report = domain.InsightReport{
				Degraded: true,
				Reason:   ierr.Error(),
				Issues: []domain.Insight{{
					Problem:     "AI insights unavailable",
					Improvement: ierr.Error(),
				}},
			}
		}
		res.Insights = &report
	}

	return res, nil
}

// NegativeSignals exposes the four extraction variants for one cached
// batch, used by downstream chart tooling.
type NegativeSignals struct {
	Keywords []domain.PhraseCount `json:"keywords"`
	Bigrams  []domain.PhraseCount `json:"bigrams"`
	Trigrams []domain.PhraseCount `json:"trigrams"`
	Ngrams23 []domain.PhraseCount `json:"ngrams_2_3"`
}

func (s *AnalysisService) ExtractNegativeSignals(ctx context.Context, appID int64, topK int) (NegativeSignals, error) {
	batch, ok, err := s.store.Get(ctx, appID)
	if err != nil {
		return NegativeSignals{}, err
	}
	if !ok {
		return NegativeSignals{}, domain.ErrNoBatch
	}
	if len(batch.Reviews) == 0 {
		return NegativeSignals{}, domain.ErrEmptyBatch
	}
	if topK <= 0 {
		topK = defaultTopKeywords
	}
	return NegativeSignals{
		Keywords: textproc.NegativeKeywords(batch.Reviews, topK),
		Bigrams:  textproc.NegativeBigrams(batch.Reviews, topK),
		Trigrams: textproc.NegativeTrigrams(batch.Reviews, topK),
		Ngrams23: textproc.NegativeNgrams23(batch.Reviews, topK),
	}, nil
}

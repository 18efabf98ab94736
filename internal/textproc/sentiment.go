package textproc

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"review_pulse/internal/domain"
)

// Analyzer scores review text against a word-valence lexicon and
// produces a compound polarity in [-1,1]. One instance is shared per
// process; it is read-only after construction.
type Analyzer struct {
	valences map[string]float64
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{valences: defaultValences}
}

// NewAnalyzerFromFile loads a YAML word->valence map to use instead of
// the built-in lexicon. Valences follow the usual [-4,4] scale.
func NewAnalyzerFromFile(path string) (*Analyzer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	valences := make(map[string]float64)
	if err := yaml.Unmarshal(raw, &valences); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if len(valences) == 0 {
		return nil, fmt.Errorf("lexicon %s is empty", path)
	}
	lower := make(map[string]float64, len(valences))
	for w, v := range valences {
		lower[strings.ToLower(w)] = v
	}
	return &Analyzer{valences: lower}, nil
}

// negators flip the valence of the word that follows them.
var negators = stopSet(
	"not", "no", "never", "nothing", "neither", "nor",
	"dont", "cant", "cannot", "doesnt", "didnt", "wont", "isnt",
	"wasnt", "couldnt", "shouldnt", "wouldnt",
)

// Compound sums matched valences over the normalized token stream,
// flipping (and damping) a hit when the preceding token is a negator,
// then squashes the sum with the standard x/sqrt(x^2+15) normalization.
func (a *Analyzer) Compound(text string) float64 {
	tokens := strings.Fields(Normalize(text))
	var sum float64
	for i, t := range tokens {
		v, ok := a.valences[t]
		if !ok {
			continue
		}
		if i > 0 {
			if _, neg := negators[tokens[i-1]]; neg {
				v = -v * 0.74
			}
		}
		sum += v
	}
	if sum == 0 {
		return 0
	}
	c := sum / math.Sqrt(sum*sum+15)
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// Label buckets a compound score. Both 0.3 boundaries are inclusive:
// exactly 0.3 is positive, exactly -0.3 is negative.
func Label(compound float64) domain.Sentiment {
	switch {
	case compound >= 0.3:
		return domain.SentimentPositive
	case compound <= -0.3:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// Classify scores and buckets one review body.
func (a *Analyzer) Classify(text string) domain.Sentiment {
	return Label(a.Compound(text))
}

// Enrich returns copies of the reviews with Sentiment and up to five
// per-review keywords attached, plus the three-bucket distribution.
// The input slice is never mutated; enrichment is a separate
// construction step so cached batches are not aliased.
func (a *Analyzer) Enrich(reviews []domain.Review) ([]domain.Review, domain.SentimentDistribution) {
	out := make([]domain.Review, len(reviews))
	var dist domain.SentimentDistribution
	for i, r := range reviews {
		r.Sentiment = a.Classify(r.Text)
		r.Keywords = ReviewKeywords(r.Text, 5)
		switch r.Sentiment {
		case domain.SentimentPositive:
			dist.Positive++
		case domain.SentimentNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
		out[i] = r
	}
	return out, dist
}

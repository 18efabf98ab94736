package textproc

import (
	"sort"
	"strings"

	"review_pulse/internal/domain"
)

// negativeRatingMax bounds which reviews feed the negative-signal
// extractions.
const negativeRatingMax = 2

// phraseCounter counts phrases while remembering first-seen order, so
// equal counts sort stably by insertion.
type phraseCounter struct {
	counts map[string]int
	order  []string
}

func newPhraseCounter() *phraseCounter {
	return &phraseCounter{counts: make(map[string]int)}
}

func (c *phraseCounter) add(phrase string) {
	if _, seen := c.counts[phrase]; !seen {
		c.order = append(c.order, phrase)
	}
	c.counts[phrase]++
}

// top drops phrases below minCount, sorts the rest by descending count
// (stable over insertion order), and truncates to topK.
func (c *phraseCounter) top(minCount, topK int) []domain.PhraseCount {
	out := make([]domain.PhraseCount, 0, len(c.order))
	for _, p := range c.order {
		if n := c.counts[p]; n >= minCount {
			out = append(out, domain.PhraseCount{Phrase: p, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out
}

// negativeTokens accumulates tokens across all low-rated reviews into
// one stream. Windows formed from it may straddle review boundaries;
// the frequency thresholds keep such accidental phrases out of the
// published counts in practice. Changing this would change the counts
// downstream dashboards already consume.
func negativeTokens(reviews []domain.Review, stop map[string]struct{}) []string {
	var tokens []string
	for _, r := range reviews {
		if r.Rating <= negativeRatingMax {
			tokens = append(tokens, Tokens(r.Text, stop)...)
		}
	}
	return tokens
}

func addWindows(c *phraseCounter, tokens []string, n int) {
	for i := 0; i+n <= len(tokens); i++ {
		c.add(strings.Join(tokens[i:i+n], " "))
	}
}

// NegativeKeywords returns the topK unigram complaints across low-rated
// reviews, keeping words seen at least 3 times.
func NegativeKeywords(reviews []domain.Review, topK int) []domain.PhraseCount {
	c := newPhraseCounter()
	for _, t := range negativeTokens(reviews, keywordStopwords) {
		c.add(t)
	}
	return c.top(3, topK)
}

// NegativeBigrams returns the topK adjacent word pairs across low-rated
// reviews, keeping pairs seen at least 3 times.
func NegativeBigrams(reviews []domain.Review, topK int) []domain.PhraseCount {
	c := newPhraseCounter()
	addWindows(c, negativeTokens(reviews, bigramStopwords), 2)
	return c.top(3, topK)
}

// NegativeTrigrams returns the topK adjacent word triples across
// low-rated reviews, keeping triples seen at least twice.
func NegativeTrigrams(reviews []domain.Review, topK int) []domain.PhraseCount {
	c := newPhraseCounter()
	addWindows(c, negativeTokens(reviews, trigramStopwords), 3)
	return c.top(2, topK)
}

// NegativeNgrams23 counts 2- and 3-token windows into one shared
// frequency table, keeping phrases seen at least twice.
func NegativeNgrams23(reviews []domain.Review, topK int) []domain.PhraseCount {
	c := newPhraseCounter()
	tokens := negativeTokens(reviews, combinedStopwords)
	addWindows(c, tokens, 2)
	addWindows(c, tokens, 3)
	return c.top(2, topK)
}

package textproc

import (
	"sort"
	"strings"
)

// ReviewKeywords extracts up to topK representative phrases from one
// review body. Candidates are the maximal token runs between stopwords
// and short tokens; each word is scored degree/frequency and a phrase
// scores the sum of its word scores. This is per-review and
// unsupervised, independent of the corpus-level negative-signal
// extraction.
func ReviewKeywords(text string, topK int) []string {
	tokens := strings.Fields(Normalize(text))

	var phrases [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, current)
			current = nil
		}
	}
	for _, t := range tokens {
		if len(t) <= 2 {
			flush()
			continue
		}
		if _, stop := keywordStopwords[t]; stop {
			flush()
			continue
		}
		current = append(current, t)
	}
	flush()

	if len(phrases) == 0 {
		return nil
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, p := range phrases {
		for _, w := range p {
			freq[w]++
			degree[w] += len(p) - 1
		}
	}
	score := func(p []string) float64 {
		var s float64
		for _, w := range p {
			s += float64(degree[w]+freq[w]) / float64(freq[w])
		}
		return s
	}

	type candidate struct {
		phrase string
		score  float64
	}
	seen := make(map[string]struct{}, len(phrases))
	candidates := make([]candidate, 0, len(phrases))
	for _, p := range phrases {
		joined := strings.Join(p, " ")
		if _, dup := seen[joined]; dup {
			continue
		}
		seen[joined] = struct{}{}
		candidates = append(candidates, candidate{phrase: joined, score: score(p)})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.phrase
	}
	return out
}

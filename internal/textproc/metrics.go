package textproc

import "review_pulse/internal/domain"

// RatingSummary computes the mean rating and a histogram over ratings
// 1..5; zero-count buckets are present with value 0. The mean is
// undefined for an empty batch, so callers guard emptiness first; an
// empty slice yields mean 0 here rather than NaN.
func RatingSummary(reviews []domain.Review) (float64, map[int]int) {
	hist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	if len(reviews) == 0 {
		return 0, hist
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		hist[r.Rating]++
	}
	return float64(sum) / float64(len(reviews)), hist
}

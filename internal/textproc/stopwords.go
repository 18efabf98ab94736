package textproc

// Each extraction keeps its own stopword set. Unigram extraction uses
// a larger list tuned for single-word frequency (including app-name
// aliases); the phrase extractions use progressively smaller lists
// since phrase frequency is naturally lower.
// TODO: unify the four (stopword set, threshold) pairs once downstream
// dashboards stop depending on the current outputs.
var (
	keywordStopwords = stopSet(
		"i", "and", "to", "the", "it", "my", "for", "a", "in", "of",
		"t", "is", "was", "me", "on", "that", "this", "so", "but",
		"with", "at", "have", "had", "you", "your", "they", "are",
		"be", "as", "if", "just", "not", "from", "im", "do", "all",
		"or", "no", "m", "s", "very", "really",
		"instagram", "insta", "ig", "app",
		"dont", "cant", "doesnt",
	)

	bigramStopwords = stopSet(
		"the", "and", "you", "for", "but", "with", "this", "that", "are",
		"was", "very", "just", "not", "have", "has", "can", "get", "all",
		"its", "too",
	)

	trigramStopwords = stopSet(
		"the", "and", "you", "for", "but", "with", "this", "that", "are",
	)

	combinedStopwords = stopSet(
		"the", "and", "you", "for", "but", "with", "this", "that",
	)
)

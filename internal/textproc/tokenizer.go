package textproc

import (
	"regexp"
	"strings"
)

var (
	urlRE    = regexp.MustCompile(`http\S+`)
	nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRE  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, blanks URL-like substrings and any
// character outside [a-z0-9 whitespace], and collapses whitespace
// runs. Pure and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = urlRE.ReplaceAllString(text, " ")
	text = nonAlnum.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRE.ReplaceAllString(text, " "))
}

// Tokens normalizes text and splits it on whitespace, dropping tokens
// of length <= 2 and members of the caller's stopword set.
func Tokens(text string, stop map[string]struct{}) []string {
	fields := strings.Fields(Normalize(text))
	out := make([]string, 0, len(fields))
	for _, t := range fields {
		if len(t) <= 2 {
			continue
		}
		if _, ok := stop[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

func stopSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

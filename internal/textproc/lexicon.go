package textproc

// defaultValences is a compact word-valence lexicon on the usual
// [-4,4] scale, trimmed to vocabulary that actually shows up in app
// store reviews. Override with NewAnalyzerFromFile for other domains.
var defaultValences = map[string]float64{
	// positive
	"good":        1.9,
	"great":       3.1,
	"greatest":    3.2,
	"best":        3.2,
	"better":      1.9,
	"awesome":     3.1,
	"amazing":     2.8,
	"excellent":   2.7,
	"fantastic":   2.6,
	"wonderful":   2.7,
	"perfect":     2.7,
	"love":        3.2,
	"loved":       2.9,
	"loves":       2.7,
	"like":        1.5,
	"liked":       1.6,
	"likes":       1.5,
	"enjoy":       2.2,
	"enjoyed":     2.3,
	"fun":         2.3,
	"nice":        1.8,
	"cool":        1.3,
	"happy":       2.7,
	"helpful":     1.9,
	"useful":      1.9,
	"easy":        1.9,
	"smooth":      1.5,
	"fast":        1.5,
	"beautiful":   2.9,
	"brilliant":   2.8,
	"intuitive":   1.7,
	"reliable":    2.0,
	"recommend":   1.8,
	"recommended": 1.9,
	"worth":       0.9,
	"free":        1.2,
	"improved":    1.6,
	"fixed":       1.4,
	"works":       1.2,
	"working":     1.1,
	"stable":      1.2,
	"accurate":    1.6,
	"satisfied":   2.0,
	"impressive":  2.2,
	"solid":       1.3,
	"clean":       1.4,
	"thanks":      1.9,
	"thank":       1.9,

	// negative
	"bad":           -2.5,
	"worse":         -2.1,
	"worst":         -3.1,
	"terrible":      -2.1,
	"horrible":      -2.5,
	"awful":         -2.0,
	"hate":          -2.7,
	"hated":         -2.6,
	"sucks":         -2.3,
	"suck":          -2.2,
	"useless":       -1.8,
	"broken":        -1.8,
	"breaks":        -1.6,
	"crash":         -2.0,
	"crashes":       -2.0,
	"crashing":      -2.1,
	"crashed":       -2.0,
	"freeze":        -1.7,
	"freezes":       -1.7,
	"freezing":      -1.7,
	"frozen":        -1.6,
	"lag":           -1.5,
	"laggy":         -1.6,
	"lags":          -1.5,
	"slow":          -1.4,
	"bug":           -1.6,
	"bugs":          -1.7,
	"buggy":         -1.9,
	"glitch":        -1.6,
	"glitches":      -1.6,
	"glitchy":       -1.7,
	"annoying":      -1.9,
	"annoyed":       -1.8,
	"frustrating":   -2.1,
	"frustrated":    -2.0,
	"disappointing": -2.1,
	"disappointed":  -2.2,
	"scam":          -2.6,
	"spam":          -1.9,
	"ads":           -1.0,
	"expensive":     -1.1,
	"overpriced":    -1.8,
	"waste":         -1.8,
	"wasted":        -1.8,
	"confusing":     -1.5,
	"difficult":     -1.4,
	"impossible":    -1.6,
	"error":         -1.5,
	"errors":        -1.6,
	"fail":          -2.0,
	"fails":         -1.9,
	"failed":        -2.0,
	"failure":       -2.1,
	"problem":       -1.4,
	"problems":      -1.5,
	"issue":         -1.2,
	"issues":        -1.3,
	"stuck":         -1.3,
	"unusable":      -2.2,
	"uninstall":     -1.7,
	"uninstalled":   -1.7,
	"refund":        -1.5,
	"misleading":    -1.9,
	"wrong":         -1.6,
	"poor":          -1.9,
	"lost":          -1.3,
	"losing":        -1.3,
	"steal":         -2.2,
	"stealing":      -2.2,
}

package sentiment

// lexiconOverrides patches the stock VADER lexicon for how people
// actually talk in video comments. Two groups: modern slang the base
// lexicon misses entirely, and tech-tutorial vocabulary whose stock
// valence reads far too negative ("fixed a bug" is not a complaint).
// Applied once when the engine is constructed.
var lexiconOverrides = map[string]float64{
	// Modern slang, mostly positive.
	"crushed it": 3.0,
	"killed it":  3.0,
	"nailed it":  3.0,
	"lit":        2.0,
	"fire":       2.0,
	"goat":       3.0,
	"goated":     3.0,
	"based":      2.0,
	"w":          2.0,
	"l":          -2.0,
	"mid":        -1.0,
	"peak":       2.5,
	"trash":      -3.0,

	// Phrases where a negative word flips meaning.
	"wasted no time":        2.0,
	"no nonsense":           2.0,
	"straight to the point": 2.0,
	"underrated":            2.0,
	"game changer":          2.5,
	"chef kiss":             2.5,
	"chefs kiss":            2.5,
	"miss this":             1.5,
	"miss the old":          1.0,

	// Tech and tutorial vocabulary, dampened.
	"error":       -0.1,
	"errors":      -0.1,
	"bug":         -0.2,
	"bugs":        -0.2,
	"issue":       -0.2,
	"issues":      -0.2,
	"problem":     -0.3,
	"hard":        -0.2,
	"difficult":   -0.2,
	"stuck":       -0.2,
	"fail":        -0.5,
	"failed":      -0.5,
	"fear":        -0.5,
	"scared":      -0.5,
	"nervous":     -0.2,
	"complicated": -0.2,
	"complex":     0.0,
	"cryptic":     -0.3,
	"weird":       -0.1,
	"hell":        -1.0,
	"insane":      1.5,
	"crazy":       1.0,
	"monster":     1.0,
	"beast":       2.0,
	"nostalgia":   1.5,
	"sick":        2.0,
}

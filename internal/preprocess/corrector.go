package preprocess

import (
	"strings"
	"unicode"

	"github.com/jonesrussell/comment-pulse/internal/logger"
)

const (
	// Inputs shorter than this are assumed to be slang or reactions,
	// not prose, and are never corrected.
	minCorrectableLength = 3
	// Tokens at or below this length bypass correction.
	maxBypassTokenLength = 2
)

// tokenPunctuation is stripped before checking a token against the
// preserve set.
const tokenPunctuation = ".,!?;:"

// Corrector is the external spelling-correction capability. Implementations
// must be safe for concurrent use after construction.
type Corrector interface {
	Correct(word string) (string, error)
}

// preserveWords is internet slang and abbreviations that a general-purpose
// speller would mangle; matching tokens are kept verbatim.
var preserveWords = map[string]struct{}{
	"lol": {}, "lmao": {}, "omg": {}, "btw": {}, "idk": {}, "imo": {},
	"imho": {}, "tbh": {}, "ngl": {}, "fr": {}, "gg": {}, "ez": {},
	"pog": {}, "poggers": {}, "bruh": {}, "bro": {}, "dude": {}, "lit": {},
	"goat": {}, "goated": {}, "sus": {}, "cap": {}, "nocap": {},
	"vibes": {}, "vibe": {}, "fire": {}, "based": {}, "cringe": {},
	"yeet": {}, "fam": {},
}

// SelectiveCorrector applies light-touch spelling correction: it decides
// which tokens are sent to the external corrector and keeps the rest
// verbatim. Corrector failures are non-fatal and silent to the caller.
type SelectiveCorrector struct {
	engine Corrector
	logger logger.Logger
}

// NewSelectiveCorrector creates a selective corrector over the given engine.
func NewSelectiveCorrector(engine Corrector, log logger.Logger) *SelectiveCorrector {
	return &SelectiveCorrector{
		engine: engine,
		logger: log,
	}
}

// Apply corrects the obviously misspelled words in text. Tokens in the
// preserve set, tokens of length <= 2, and tokens containing digits bypass
// correction. On any engine error the original text is returned unchanged
// and the failure is logged only. Inter-token spacing is not preserved;
// tokens are rejoined with single spaces.
func (sc *SelectiveCorrector) Apply(text string) string {
	if text == "" || len(text) < minCorrectableLength {
		return text
	}

	words := strings.Fields(text)
	corrected := make([]string, 0, len(words))

	for _, word := range words {
		if bypassCorrection(word) {
			corrected = append(corrected, word)
			continue
		}

		fixed, err := sc.engine.Correct(word)
		if err != nil {
			sc.logger.Warn("autocorrect failed, keeping original text",
				logger.Error(err))
			return text
		}
		corrected = append(corrected, fixed)
	}

	return strings.Join(corrected, " ")
}

// bypassCorrection reports whether a token is kept verbatim: preserved
// slang, very short tokens, and tokens containing digits.
func bypassCorrection(word string) bool {
	if len(word) <= maxBypassTokenLength {
		return true
	}

	stripped := strings.ToLower(strings.Trim(word, tokenPunctuation))
	if _, ok := preserveWords[stripped]; ok {
		return true
	}

	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

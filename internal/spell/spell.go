// Package spell provides a conservative spelling corrector for English
// comment text. It is the production implementation of the pipeline's
// Corrector capability.
//
// The frequency dictionary is embedded via go:embed and parsed once in
// init(), making the API read-only after initialization and safe for
// concurrent use by multiple goroutines.
//
// Correction is deliberately light touch: only unknown words with a
// dictionary neighbour at edit distance 1 are rewritten; everything else
// is returned unchanged. Ties are broken by corpus frequency.
package spell

import (
	"bytes"
	_ "embed"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

const (
	// maxEditDistance is the furthest neighbour considered a correction.
	maxEditDistance = 1
	// minCorrectableRunes is the shortest word worth correcting.
	minCorrectableRunes = 3
	// maxWordBytes guards against pathological input.
	maxWordBytes = 64
)

//go:embed freq.txt
var freqRaw []byte

type entry struct {
	word string
	freq int64
}

// Dictionary index (populated in init, read-only after).
var (
	words    map[string]int64
	byLength map[int][]entry
)

func init() {
	lines := bytes.Split(freqRaw, []byte("\n"))
	words = make(map[string]int64, len(lines))
	byLength = make(map[int][]entry, 24)

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}

		sp := bytes.LastIndexByte(line, ' ')
		if sp <= 0 {
			continue
		}

		word := string(line[:sp])
		freq, err := strconv.ParseInt(string(line[sp+1:]), 10, 64)
		if err != nil || freq < 0 {
			continue
		}

		words[word] = freq
		n := len([]rune(word))
		byLength[n] = append(byLength[n], entry{word: word, freq: freq})
	}
}

// Checker corrects individual words against the embedded dictionary.
// The zero value is not usable; call New.
type Checker struct{}

// New returns a Checker backed by the embedded frequency dictionary.
func New() *Checker {
	return &Checker{}
}

// Correct returns the corrected form of word, or word unchanged when it is
// already known, too short, too long, or has no dictionary neighbour within
// edit distance 1. Surrounding punctuation and a leading capital are
// preserved. Correct never fails; the error return satisfies the pipeline's
// Corrector capability contract.
func (c *Checker) Correct(word string) (string, error) {
	if word == "" || len(word) > maxWordBytes {
		return word, nil
	}

	prefix, core, suffix := splitPunctuation(word)
	if core == "" {
		return word, nil
	}

	lower := strings.ToLower(core)
	runeLen := len([]rune(lower))
	if runeLen < minCorrectableRunes {
		return word, nil
	}

	if _, known := words[lower]; known {
		return word, nil
	}

	best, found := nearest(lower, runeLen)
	if !found {
		return word, nil
	}

	return prefix + matchCase(core, best) + suffix, nil
}

// nearest finds the most frequent dictionary word within maxEditDistance
// of the lowercased input, searching only length-compatible buckets.
func nearest(lower string, runeLen int) (string, bool) {
	var (
		best     string
		bestFreq int64 = -1
	)

	for n := runeLen - maxEditDistance; n <= runeLen+maxEditDistance; n++ {
		for _, e := range byLength[n] {
			if levenshtein.ComputeDistance(lower, e.word) > maxEditDistance {
				continue
			}
			if e.freq > bestFreq {
				best = e.word
				bestFreq = e.freq
			}
		}
	}

	return best, bestFreq >= 0
}

// splitPunctuation separates leading and trailing non-letter runes from
// the word core so "channel!!!" corrects the core and keeps the marks.
func splitPunctuation(word string) (prefix, core, suffix string) {
	runes := []rune(word)

	start := 0
	for start < len(runes) && !unicode.IsLetter(runes[start]) {
		start++
	}

	end := len(runes)
	for end > start && !unicode.IsLetter(runes[end-1]) {
		end--
	}

	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

// matchCase applies the original word's leading-capital pattern to the
// corrected word.
func matchCase(original, corrected string) string {
	origRunes := []rune(original)
	if len(origRunes) == 0 || !unicode.IsUpper(origRunes[0]) {
		return corrected
	}

	corrRunes := []rune(corrected)
	if len(corrRunes) == 0 {
		return corrected
	}
	corrRunes[0] = unicode.ToUpper(corrRunes[0])
	return string(corrRunes)
}

// Size returns the number of dictionary words. Exposed for health checks.
func Size() int {
	return len(words)
}

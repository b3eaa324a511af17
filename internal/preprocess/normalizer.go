// Package preprocess provides comment text normalization and selective
// spelling correction. Normalization is a fixed sequence of deterministic
// transformation stages; each stage operates on the previous stage's output.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"golang.org/x/text/unicode/norm"
)

const (
	// Runs of this many identical characters or more collapse to two.
	repeatCollapseThreshold = 4
	repeatCollapseKeep      = 2
	asciiMax                = 127
)

// Normalization regexes, compiled once. Repeated-character collapsing is
// done with an explicit scan since RE2 has no backreferences.
var (
	urlRe        = regexp.MustCompile(`http[s]?://\S+`)
	wwwRe        = regexp.MustCompile(`www\.\S+`)
	timestampRe  = regexp.MustCompile(`\d{1,2}:\d{2}(:\d{2})?`)
	mentionRe    = regexp.MustCompile(`@\w+`)
	hashtagRe    = regexp.MustCompile(`#(\w+)`)
	bangRunRe    = regexp.MustCompile(`!{2,}`)
	questionRunRe = regexp.MustCompile(`\?{2,}`)
	ellipsisRunRe = regexp.MustCompile(`\.{3,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw comment text. It is a pure function, total over all
// string inputs, and may return the empty string; callers must re-validate.
//
// Stages, in order:
//
//  1. NFC-normalize the input so composed rune sequences behave
//     deterministically through later stages.
//  2. Replace emoji glyphs with their textual slug, wrapped in spaces
//     (keeps the emotional signal as words).
//  3. Strip URLs (http(s):// and bare www. forms).
//  4. Strip inline H:MM / H:MM:SS timestamps.
//  5. Strip @mention tokens.
//  6. Strip '#' from hashtags, keeping the word.
//  7. Collapse runs of 4+ identical characters to 2 ("soooooo" -> "soo").
//     Must run before punctuation collapsing.
//  8. Collapse runs of punctuation (!!, ??, ....) to canonical forms.
//  9. Replace non-ASCII characters with a single space.
//  10. Collapse whitespace runs and trim.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	text = demojize(text)
	text = urlRe.ReplaceAllString(text, "")
	text = wwwRe.ReplaceAllString(text, "")
	text = timestampRe.ReplaceAllString(text, "")
	text = mentionRe.ReplaceAllString(text, "")
	text = hashtagRe.ReplaceAllString(text, "$1")
	text = collapseRepeats(text)
	text = bangRunRe.ReplaceAllString(text, "!")
	text = questionRunRe.ReplaceAllString(text, "?")
	text = ellipsisRunRe.ReplaceAllString(text, "...")
	text = dropNonASCII(text)
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// demojize replaces each emoji rune with its slug wrapped in single spaces.
// ZWJ sequences degrade to one slug per component rune, which is acceptable
// for downstream word-level analysis.
func demojize(text string) string {
	if !gomoji.ContainsEmoji(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if info, err := gomoji.GetInfo(string(r)); err == nil {
			b.WriteByte(' ')
			b.WriteString(info.Slug)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// collapseRepeats reduces runs of repeatCollapseThreshold or more identical
// characters to repeatCollapseKeep. Shorter runs are left untouched, which
// makes the stage idempotent.
func collapseRepeats(text string) string {
	runes := []rune(text)
	if len(runes) < repeatCollapseThreshold {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		run := j - i
		if run >= repeatCollapseThreshold {
			run = repeatCollapseKeep
		}
		for k := 0; k < run; k++ {
			b.WriteRune(runes[i])
		}
		i = j
	}

	return b.String()
}

// dropNonASCII replaces every non-ASCII character with a single space.
// This is an explicit, acknowledged loss of non-English content.
func dropNonASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r > asciiMax {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

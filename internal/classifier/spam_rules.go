package classifier

import (
	"regexp"
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"github.com/forPelevin/gomoji"

	"github.com/jonesrussell/comment-pulse/internal/domain"
)

// Spam heuristic thresholds.
const (
	shoutingMinLength  = 10  // shouting check only applies past this length
	shoutingCapsRatio  = 0.7 // fraction of uppercase characters
	emojiDensityLimit  = 2.0 // emojis per word
	repeatedRunMinimum = 5   // identical characters in a row
)

// promoPatterns match self-promotional phrasing regardless of the
// keyword list. Compiled once; inputs are lowercased before matching.
var promoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`sub(scribe)?\s*(to)?\s*(my|me)`),
	regexp.MustCompile(`check\s*(out)?\s*(my|me)`),
	regexp.MustCompile(`follow\s*(me|my)`),
	regexp.MustCompile(`\d+\s*subscribers?`),
	regexp.MustCompile(`gift\s*card`),
	regexp.MustCompile(`free\s*(money|cash|gift)`),
}

// keywordMatcher wraps an Aho-Corasick automaton over the configured
// spam phrases, giving a single-pass substring scan regardless of how
// many keywords are configured.
type keywordMatcher struct {
	matcher *ahocorasick.Matcher
}

func newKeywordMatcher(keywords []string) *keywordMatcher {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	if len(normalized) == 0 {
		return &keywordMatcher{}
	}
	return &keywordMatcher{matcher: ahocorasick.NewStringMatcher(normalized)}
}

func (m *keywordMatcher) contains(lower string) bool {
	if m.matcher == nil {
		return false
	}
	return len(m.matcher.Match([]byte(lower))) > 0
}

// newSpamRules returns the spam rule set in evaluation order.
func newSpamRules(keywords []string) []rule {
	km := newKeywordMatcher(keywords)

	return []rule{
		{
			name:  "spam_keyword",
			label: domain.CommentTypeSpam,
			match: func(in input) bool { return km.contains(in.lower) },
		},
		{
			name:  "spam_shouting",
			label: domain.CommentTypeSpam,
			match: func(in input) bool { return isShouting(in.text) },
		},
		{
			name:  "spam_emoji_density",
			label: domain.CommentTypeSpam,
			match: func(in input) bool { return hasExcessiveEmoji(in.text) },
		},
		{
			name:  "spam_repeated_chars",
			label: domain.CommentTypeSpam,
			match: func(in input) bool { return hasRepeatedRun(in.text, repeatedRunMinimum) },
		},
		{
			name:  "spam_promo_pattern",
			label: domain.CommentTypeSpam,
			match: func(in input) bool { return matchesPromoPattern(in.lower) },
		},
	}
}

// isShouting reports whether text longer than shoutingMinLength is
// mostly uppercase. The ratio is over all characters, not just letters,
// matching how caps-heavy comments read in practice.
func isShouting(text string) bool {
	runes := []rune(text)
	if len(runes) <= shoutingMinLength {
		return false
	}
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper)/float64(len(runes)) > shoutingCapsRatio
}

// hasExcessiveEmoji reports whether the emoji-per-word ratio exceeds
// the density limit. Texts with no words never match.
func hasExcessiveEmoji(text string) bool {
	words := len(strings.Fields(text))
	if words == 0 {
		return false
	}
	count := 0
	for _, r := range text {
		if gomoji.ContainsEmoji(string(r)) {
			count++
		}
	}
	return float64(count)/float64(words) > emojiDensityLimit
}

// hasRepeatedRun reports whether any rune repeats at least n times in
// a row. Done with a linear scan since RE2 has no backreferences.
func hasRepeatedRun(text string, n int) bool {
	if n <= 1 {
		return len(text) > 0
	}
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func matchesPromoPattern(lower string) bool {
	for _, re := range promoPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

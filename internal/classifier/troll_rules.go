package classifier

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/comment-pulse/internal/domain"
)

// lowEffortMaxLength bounds the whole-text low-effort token check so
// "w" fires while "w is the 23rd letter" does not.
const lowEffortMaxLength = 5

var (
	firstCommentRe = regexp.MustCompile(`^(first|1st|i'?m first)!*$`)
	ratioRe        = regexp.MustCompile(`^ratio!*$`)
	nobodyMemeRe   = regexp.MustCompile(`^(nobody|no\s*one|literally\s*nobody):`)
)

// lowEffortTokens are whole-comment provocations with no substance.
var lowEffortTokens = map[string]struct{}{
	"mid":   {},
	"bad":   {},
	"trash": {},
	"fake":  {},
	"cap":   {},
	"l":     {},
	"w":     {},
}

// newTrollRules returns the troll rule set in evaluation order. These
// only run after every spam rule has declined the comment.
func newTrollRules(indicators []string) []rule {
	normalized := make([]string, 0, len(indicators))
	for _, ind := range indicators {
		ind = strings.ToLower(strings.TrimSpace(ind))
		if ind != "" {
			normalized = append(normalized, ind)
		}
	}

	return []rule{
		{
			name:  "troll_indicator",
			label: domain.CommentTypeTroll,
			match: func(in input) bool { return matchesIndicator(in.trimmedLower, normalized) },
		},
		{
			name:  "troll_first_comment",
			label: domain.CommentTypeTroll,
			match: func(in input) bool { return firstCommentRe.MatchString(in.trimmedLower) },
		},
		{
			name:  "troll_ratio",
			label: domain.CommentTypeTroll,
			match: func(in input) bool {
				return ratioRe.MatchString(in.trimmedLower) || strings.Contains(in.trimmedLower, "l + ratio")
			},
		},
		{
			name:  "troll_nobody_meme",
			label: domain.CommentTypeTroll,
			match: func(in input) bool { return nobodyMemeRe.MatchString(in.trimmedLower) },
		},
		{
			name:  "troll_low_effort",
			label: domain.CommentTypeTroll,
			match: func(in input) bool { return isLowEffort(in.trimmedLower) },
		},
	}
}

// matchesIndicator checks exact or prefix match against the configured
// indicator phrases on the trimmed, lowercased text.
func matchesIndicator(trimmedLower string, indicators []string) bool {
	for _, ind := range indicators {
		if trimmedLower == ind || strings.HasPrefix(trimmedLower, ind) {
			return true
		}
	}
	return false
}

func isLowEffort(trimmedLower string) bool {
	if len(trimmedLower) > lowEffortMaxLength {
		return false
	}
	_, ok := lowEffortTokens[trimmedLower]
	return ok
}

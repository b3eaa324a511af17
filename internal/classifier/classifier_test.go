//nolint:testpackage // Testing internal rule helpers requires same package access
package classifier

import (
	"testing"

	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
)

func newTestClassifier() *Classifier {
	return New(config.Default().Analysis, logger.NewNop())
}

func TestClassify(t *testing.T) {
	clf := newTestClassifier()

	tests := []struct {
		name   string
		text   string
		author string
		want   domain.CommentType
	}{
		{"normal comment", "This tutorial was really helpful, thanks!", "viewer1", domain.CommentTypeNormal},
		{"spam keyword", "hey everyone check out my new video", "spammer", domain.CommentTypeSpam},
		{"self promo with shouting punctuation", "I subscribed to check out my channel!!!", "spammer", domain.CommentTypeSpam},
		{"shouting", "THIS IS THE BEST VIDEO EVER MADE", "loud", domain.CommentTypeSpam},
		{"repeated characters", "aaaaahhhh this is nice", "keyboard", domain.CommentTypeSpam},
		{"emoji flood", "\U0001F525\U0001F525\U0001F525\U0001F525\U0001F525 wow", "emoji", domain.CommentTypeSpam},
		{"subscriber count callout", "road to 1000 subscribers", "grinder", domain.CommentTypeSpam},
		{"gift card phishing", "claim your free gift now", "phisher", domain.CommentTypeSpam},
		{"first comment", "first", "racer", domain.CommentTypeTroll},
		{"first with exclamations", "First!!!", "racer", domain.CommentTypeTroll},
		{"im first variant", "i'm first", "racer", domain.CommentTypeTroll},
		{"ratio", "ratio!!", "troll", domain.CommentTypeTroll},
		{"l plus ratio anywhere", "you fell off, L + ratio", "troll", domain.CommentTypeTroll},
		{"nobody meme", "nobody: me watching this at 3am", "memer", domain.CommentTypeTroll},
		{"literally nobody meme", "Literally nobody: this guy:", "memer", domain.CommentTypeTroll},
		{"low effort mid", "mid", "hater", domain.CommentTypeTroll},
		{"low effort single letter", "w", "fan", domain.CommentTypeTroll},
		{"low effort token inside longer text", "midway through I was hooked", "fan", domain.CommentTypeNormal},
		{"empty text", "", "", domain.CommentTypeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clf.Classify(tt.text, tt.author)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// A comment carrying both spam and troll signals must come back as
// spam: every spam rule is evaluated before any troll rule.
func TestClassify_SpamPrecedesTroll(t *testing.T) {
	clf := newTestClassifier()

	got := clf.Classify("first!!!!! subscribe to my channel", "racer")
	if got != domain.CommentTypeSpam {
		t.Errorf("Classify() = %q, want %q when spam and troll signals overlap", got, domain.CommentTypeSpam)
	}
}

func TestIsShouting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"all caps long", "AMAZING VIDEO WOW", true},
		{"short all caps exempt", "WOW", false},
		{"exactly ten chars exempt", "ABCDEFGHIJ", false},
		{"mostly lowercase", "this is a Normal Sentence", false},
		{"caps with punctuation", "STOP DOING THIS NOW!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isShouting(tt.text); got != tt.want {
				t.Errorf("isShouting(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"run of five", "cooooool", true},
		{"run of four only", "coool video", false},
		{"no runs", "great video", false},
		{"empty", "", false},
		{"run of five exclamations", "no way!!!!!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasRepeatedRun(tt.text, repeatedRunMinimum); got != tt.want {
				t.Errorf("hasRepeatedRun(%q, %d) = %v, want %v", tt.text, repeatedRunMinimum, got, tt.want)
			}
		})
	}
}

func TestHasExcessiveEmoji(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"no words never matches", "", false},
		{"plain text", "just a regular comment", false},
		{"dense emoji", "\U0001F602\U0001F602\U0001F602\U0001F602\U0001F602 lol", true},
		{"two per word is not over the limit", "\U0001F44D\U0001F44D ok", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasExcessiveEmoji(tt.text); got != tt.want {
				t.Errorf("hasExcessiveEmoji(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordMatcher_EmptyList(t *testing.T) {
	km := newKeywordMatcher(nil)
	if km.contains("subscribe to my channel") {
		t.Error("empty keyword matcher must never match")
	}
}

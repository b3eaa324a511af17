package analytics

import (
	"math"
	"testing"

	"github.com/jonesrussell/comment-pulse/internal/domain"
)

func pc(id string, sentiment domain.Sentiment, score float64) domain.ProcessedComment {
	return domain.ProcessedComment{
		RawComment:     domain.RawComment{ID: id},
		CommentType:    domain.CommentTypeNormal,
		Sentiment:      sentiment,
		SentimentScore: score,
	}
}

func filteredPC(id string, commentType domain.CommentType) domain.ProcessedComment {
	return domain.ProcessedComment{
		RawComment:  domain.RawComment{ID: id},
		CommentType: commentType,
		IsFiltered:  true,
		Sentiment:   domain.SentimentNeutral,
	}
}

func TestDistribution(t *testing.T) {
	comments := []domain.ProcessedComment{
		pc("1", domain.SentimentPositive, 0.8),
		pc("2", domain.SentimentPositive, 0.6),
		pc("3", domain.SentimentNegative, -0.5),
		pc("4", domain.SentimentNeutral, 0.0),
		filteredPC("5", domain.CommentTypeSpam), // excluded
	}

	dist := Distribution(comments)

	if dist.Positive != 2 || dist.Negative != 1 || dist.Neutral != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", dist.Positive, dist.Negative, dist.Neutral)
	}
	if dist.PositivePercentage != 50.0 {
		t.Errorf("PositivePercentage = %v, want 50.0", dist.PositivePercentage)
	}
	if dist.AverageSentiment != 0.225 {
		t.Errorf("AverageSentiment = %v, want 0.225", dist.AverageSentiment)
	}
}

func TestDistribution_PercentagesSumToHundred(t *testing.T) {
	// 3 comments give percentages of 33.3 each; the sum may be off by
	// at most the rounding granularity.
	comments := []domain.ProcessedComment{
		pc("1", domain.SentimentPositive, 0.5),
		pc("2", domain.SentimentNegative, -0.5),
		pc("3", domain.SentimentNeutral, 0.0),
	}

	dist := Distribution(comments)
	sum := dist.PositivePercentage + dist.NegativePercentage + dist.NeutralPercentage
	if math.Abs(sum-100.0) > 0.2 {
		t.Errorf("percentages sum to %v, want 100.0 within rounding", sum)
	}
}

func TestDistribution_EmptyBatch(t *testing.T) {
	for name, comments := range map[string][]domain.ProcessedComment{
		"no comments":   {},
		"only filtered": {filteredPC("1", domain.CommentTypeSpam), filteredPC("2", domain.CommentTypeTroll)},
	} {
		dist := Distribution(comments)
		if dist != (domain.SentimentDistribution{}) {
			t.Errorf("%s: Distribution() = %+v, want zero value", name, dist)
		}
	}
}

func TestFiltered(t *testing.T) {
	comments := []domain.ProcessedComment{
		pc("1", domain.SentimentPositive, 0.5),
		filteredPC("2", domain.CommentTypeSpam),
		filteredPC("3", domain.CommentTypeSpam),
		filteredPC("4", domain.CommentTypeTroll),
	}

	stats := Filtered(comments)

	if stats.TotalFiltered != 3 || stats.SpamCount != 2 || stats.TrollCount != 1 {
		t.Errorf("counts = %d total, %d spam, %d troll; want 3/2/1", stats.TotalFiltered, stats.SpamCount, stats.TrollCount)
	}
	// Percentages are over the whole batch of 4.
	if stats.SpamPercentage != 50.0 {
		t.Errorf("SpamPercentage = %v, want 50.0", stats.SpamPercentage)
	}
	if stats.TrollPercentage != 25.0 {
		t.Errorf("TrollPercentage = %v, want 25.0", stats.TrollPercentage)
	}
}

func TestFiltered_EmptyBatch(t *testing.T) {
	if stats := Filtered(nil); stats != (domain.FilteredStats{}) {
		t.Errorf("Filtered(nil) = %+v, want zero value", stats)
	}
}

func TestExtremeComments_Positive(t *testing.T) {
	comments := []domain.ProcessedComment{
		pc("low", domain.SentimentPositive, 0.2),
		pc("high", domain.SentimentPositive, 0.9),
		pc("mid", domain.SentimentPositive, 0.5),
		pc("neg", domain.SentimentNegative, -0.8),
		filteredPC("spam", domain.CommentTypeSpam),
	}

	got := ExtremeComments(comments, domain.SentimentPositive, 2)
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2", len(got))
	}
	if got[0].ID != "high" || got[1].ID != "mid" {
		t.Errorf("order = %q, %q; want high, mid", got[0].ID, got[1].ID)
	}
}

func TestExtremeComments_Negative(t *testing.T) {
	comments := []domain.ProcessedComment{
		pc("mild", domain.SentimentNegative, -0.35),
		pc("harsh", domain.SentimentNegative, -0.95),
		pc("pos", domain.SentimentPositive, 0.9),
	}

	got := ExtremeComments(comments, domain.SentimentNegative, 5)
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2", len(got))
	}
	if got[0].ID != "harsh" || got[1].ID != "mild" {
		t.Errorf("order = %q, %q; want harsh, mild", got[0].ID, got[1].ID)
	}
}

func TestExtremeComments_TiesKeepInputOrder(t *testing.T) {
	comments := []domain.ProcessedComment{
		pc("a", domain.SentimentPositive, 0.5),
		pc("b", domain.SentimentPositive, 0.5),
		pc("c", domain.SentimentPositive, 0.5),
	}

	got := ExtremeComments(comments, domain.SentimentPositive, 3)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("tie order = %q, %q, %q; want a, b, c", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestExtremeComments_NeverIncludesFiltered(t *testing.T) {
	comments := []domain.ProcessedComment{
		filteredPC("spam", domain.CommentTypeSpam),
		filteredPC("troll", domain.CommentTypeTroll),
	}

	for _, s := range []domain.Sentiment{domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral} {
		if got := ExtremeComments(comments, s, 5); len(got) != 0 {
			t.Errorf("ExtremeComments(%q) returned %d filtered comments", s, len(got))
		}
	}
}

func TestExtremeComments_EmptyBatch(t *testing.T) {
	got := ExtremeComments(nil, domain.SentimentPositive, 5)
	if len(got) != 0 {
		t.Errorf("got %d comments from empty batch, want 0", len(got))
	}
}

func TestTopByEngagement(t *testing.T) {
	mk := func(id string, likes, replies int) domain.ProcessedComment {
		c := pc(id, domain.SentimentNeutral, 0.0)
		c.Likes = likes
		c.ReplyCount = replies
		return c
	}

	comments := []domain.ProcessedComment{
		mk("quiet", 1, 0),
		mk("hot", 90, 12),
		mk("warm", 40, 5),
		filteredPC("spam", domain.CommentTypeSpam),
	}

	got := TopByEngagement(comments, 2)
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2", len(got))
	}
	if got[0].ID != "hot" || got[1].ID != "warm" {
		t.Errorf("order = %q, %q; want hot, warm", got[0].ID, got[1].ID)
	}
}

func TestOverallVibe(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{0.5, VibeVeryPositive},
		{0.2, VibeVeryPositive},
		{0.1, VibePositive},
		{0.05, VibePositive},
		{0.0, VibeMixed},
		{-0.04, VibeMixed},
		{-0.05, VibeNegative},
		{-0.1, VibeNegative},
		{-0.2, VibeVeryNegative},
		{-0.7, VibeVeryNegative},
	}

	for _, tt := range tests {
		dist := domain.SentimentDistribution{AverageSentiment: tt.avg}
		if got := OverallVibe(dist); got != tt.want {
			t.Errorf("OverallVibe(avg=%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

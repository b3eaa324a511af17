// Package analytics computes batch-level summaries over processed
// comments: sentiment distribution, filter statistics, extreme-comment
// rankings, and an overall vibe label. Aggregation only reads comments;
// it never rewrites them.
package analytics

import (
	"math"
	"sort"

	"github.com/jonesrussell/comment-pulse/internal/domain"
)

// Overall vibe labels derived from the average compound score.
const (
	VibeVeryPositive = "Very Positive"
	VibePositive     = "Positive"
	VibeNegative     = "Negative"
	VibeVeryNegative = "Very Negative"
	VibeMixed        = "Mixed/Neutral"
)

// Vibe thresholds on the average sentiment.
const (
	veryPositiveVibe = 0.2
	positiveVibe     = 0.05
	negativeVibe     = -0.05
	veryNegativeVibe = -0.2
)

// Distribution computes sentiment counts, percentages, and the average
// compound score over the non-filtered comments. An empty eligible set
// yields an all-zero result.
func Distribution(comments []domain.ProcessedComment) domain.SentimentDistribution {
	var dist domain.SentimentDistribution
	total := 0
	sum := 0.0

	for i := range comments {
		if comments[i].IsFiltered {
			continue
		}
		total++
		sum += comments[i].SentimentScore

		switch comments[i].Sentiment {
		case domain.SentimentPositive:
			dist.Positive++
		case domain.SentimentNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}

	if total == 0 {
		return dist
	}

	dist.PositivePercentage = percentage(dist.Positive, total)
	dist.NegativePercentage = percentage(dist.Negative, total)
	dist.NeutralPercentage = percentage(dist.Neutral, total)
	dist.AverageSentiment = round3(sum / float64(total))
	return dist
}

// Filtered computes spam/troll counts with percentages over the whole
// batch, filtered and non-filtered alike.
func Filtered(comments []domain.ProcessedComment) domain.FilteredStats {
	var stats domain.FilteredStats

	for i := range comments {
		switch comments[i].CommentType {
		case domain.CommentTypeSpam:
			stats.SpamCount++
		case domain.CommentTypeTroll:
			stats.TrollCount++
		case domain.CommentTypeNormal:
		}
	}

	stats.TotalFiltered = stats.SpamCount + stats.TrollCount
	if total := len(comments); total > 0 {
		stats.SpamPercentage = percentage(stats.SpamCount, total)
		stats.TrollPercentage = percentage(stats.TrollCount, total)
	}
	return stats
}

// ExtremeComments returns the n most extreme non-filtered comments of
// the given sentiment: most positive first for Positive, most negative
// first for Negative, closest to zero first for Neutral. Ties keep
// their input order.
func ExtremeComments(comments []domain.ProcessedComment, sentiment domain.Sentiment, n int) []domain.ProcessedComment {
	if n <= 0 {
		return []domain.ProcessedComment{}
	}

	matching := make([]domain.ProcessedComment, 0, len(comments))
	for i := range comments {
		if comments[i].IsFiltered || comments[i].Sentiment != sentiment {
			continue
		}
		matching = append(matching, comments[i])
	}

	switch sentiment {
	case domain.SentimentPositive:
		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].SentimentScore > matching[j].SentimentScore
		})
	case domain.SentimentNegative:
		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].SentimentScore < matching[j].SentimentScore
		})
	case domain.SentimentNeutral:
		sort.SliceStable(matching, func(i, j int) bool {
			return math.Abs(matching[i].SentimentScore) < math.Abs(matching[j].SentimentScore)
		})
	}

	if len(matching) > n {
		matching = matching[:n]
	}
	return matching
}

// TopByEngagement returns the n comments with the highest engagement,
// measured as likes plus replies, filtered comments excluded. Ties keep
// their input order.
func TopByEngagement(comments []domain.ProcessedComment, n int) []domain.ProcessedComment {
	if n <= 0 {
		return []domain.ProcessedComment{}
	}

	eligible := make([]domain.ProcessedComment, 0, len(comments))
	for i := range comments {
		if comments[i].IsFiltered {
			continue
		}
		eligible = append(eligible, comments[i])
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return engagement(&eligible[i]) > engagement(&eligible[j])
	})

	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}

// OverallVibe maps the average sentiment of a distribution to a
// human-readable label.
func OverallVibe(dist domain.SentimentDistribution) string {
	switch {
	case dist.AverageSentiment >= veryPositiveVibe:
		return VibeVeryPositive
	case dist.AverageSentiment >= positiveVibe:
		return VibePositive
	case dist.AverageSentiment <= veryNegativeVibe:
		return VibeVeryNegative
	case dist.AverageSentiment <= negativeVibe:
		return VibeNegative
	default:
		return VibeMixed
	}
}

func engagement(c *domain.ProcessedComment) int {
	return c.Likes + c.ReplyCount
}

// percentage returns count/total as a percentage rounded to one decimal.
func percentage(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

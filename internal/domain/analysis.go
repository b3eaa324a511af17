package domain

// SentimentDistribution holds sentiment counts and percentages over the
// non-filtered comments of a batch. All fields are zero when no comment
// is eligible; the aggregator never produces NaN.
type SentimentDistribution struct {
	Positive           int     `json:"positive"`
	Negative           int     `json:"negative"`
	Neutral            int     `json:"neutral"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	AverageSentiment   float64 `json:"average_sentiment"`
}

// FilteredStats holds spam/troll filter counts. Percentages are relative
// to the total batch, not just the non-filtered subset.
type FilteredStats struct {
	TotalFiltered   int     `json:"total_filtered"`
	SpamCount       int     `json:"spam_count"`
	TrollCount      int     `json:"troll_count"`
	SpamPercentage  float64 `json:"spam_percentage"`
	TrollPercentage float64 `json:"troll_percentage"`
}

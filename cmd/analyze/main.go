// Command analyze fetches comments for a single video and prints the
// analysis as JSON. Useful for spot checks without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jonesrussell/comment-pulse/internal/analytics"
	"github.com/jonesrussell/comment-pulse/internal/classifier"
	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/pipeline"
	"github.com/jonesrussell/comment-pulse/internal/preprocess"
	"github.com/jonesrussell/comment-pulse/internal/sentiment"
	"github.com/jonesrussell/comment-pulse/internal/spell"
	"github.com/jonesrussell/comment-pulse/internal/youtube"
)

type report struct {
	VideoID               string                       `json:"video_id"`
	TotalComments         int                          `json:"total_comments"`
	AnalyzedComments      int                          `json:"analyzed_comments"`
	SentimentDistribution domain.SentimentDistribution `json:"sentiment_distribution"`
	FilteredStats         domain.FilteredStats         `json:"filtered_stats"`
	OverallVibe           string                       `json:"overall_vibe"`
	TopPositive           []domain.ProcessedComment    `json:"top_positive"`
	TopNegative           []domain.ProcessedComment    `json:"top_negative"`
}

func main() {
	video := flag.String("video", "", "video URL or ID (required)")
	maxComments := flag.Int("max", 0, "maximum comments to fetch (0 uses the configured default)")
	replies := flag.Bool("replies", false, "include reply comments")
	sortBy := flag.String("sort", "popular", "comment order: popular or newest")
	flag.Parse()

	if *video == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*video, *maxComments, *replies, *sortBy); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func run(video string, maxComments int, replies bool, sortBy string) error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if maxComments <= 0 {
		maxComments = cfg.YouTube.DefaultComments
	}

	// Keep stdout clean for the JSON report.
	log := logger.NewNop()

	fetcher := youtube.NewClient(cfg.YouTube, nil, log)
	result, err := fetcher.FetchComments(context.Background(), video, youtube.FetchOptions{
		MaxComments:    maxComments,
		SortBy:         sortBy,
		IncludeReplies: replies,
	})
	if err != nil {
		return err
	}

	p := pipeline.New(
		preprocess.NewSelectiveCorrector(spell.New(), log),
		classifier.New(cfg.Analysis, log),
		sentiment.NewScorer(sentiment.DefaultEngine(), cfg.Analysis, log),
		cfg.Analysis,
		nil,
		log,
	)

	processed := p.Process(context.Background(), result.Comments)
	dist := analytics.Distribution(processed)
	n := cfg.Analysis.ExtremeCommentCount

	out := report{
		VideoID:               result.VideoID,
		TotalComments:         result.TotalFetched,
		AnalyzedComments:      len(processed),
		SentimentDistribution: dist,
		FilteredStats:         analytics.Filtered(processed),
		OverallVibe:           analytics.OverallVibe(dist),
		TopPositive:           analytics.ExtremeComments(processed, domain.SentimentPositive, n),
		TopNegative:           analytics.ExtremeComments(processed, domain.SentimentNegative, n),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

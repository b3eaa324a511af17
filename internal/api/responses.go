package api

import (
	"time"

	"github.com/jonesrussell/comment-pulse/internal/domain"
)

// CommentData is the wire form of a processed comment.
type CommentData struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	TextClean      string  `json:"text_clean"`
	Author         string  `json:"author"`
	Likes          int     `json:"likes"`
	ReplyCount     int     `json:"reply_count"`
	Timestamp      string  `json:"timestamp,omitempty"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	CommentType    string  `json:"comment_type"`
	IsFiltered     bool    `json:"is_filtered"`
}

// AnalysisResponse is the full analysis result for one video.
type AnalysisResponse struct {
	VideoID               string                       `json:"video_id"`
	TotalComments         int                          `json:"total_comments"`
	AnalyzedComments      int                          `json:"analyzed_comments"`
	SentimentDistribution domain.SentimentDistribution `json:"sentiment_distribution"`
	FilteredStats         domain.FilteredStats         `json:"filtered_stats"`
	OverallVibe           string                       `json:"overall_vibe"`
	TopPositiveComments   []CommentData                `json:"top_positive_comments"`
	TopNegativeComments   []CommentData                `json:"top_negative_comments"`
	TopEngagedComments    []CommentData                `json:"top_engaged_comments"`
	ProcessingTimeMs      float64                      `json:"processing_time_ms"`
}

// QuickAnalysisResponse is the distribution-only result, skipping the
// comment payloads.
type QuickAnalysisResponse struct {
	VideoID               string                       `json:"video_id"`
	TotalComments         int                          `json:"total_comments"`
	AnalyzedComments      int                          `json:"analyzed_comments"`
	SentimentDistribution domain.SentimentDistribution `json:"sentiment_distribution"`
	FilteredStats         domain.FilteredStats         `json:"filtered_stats"`
	OverallVibe           string                       `json:"overall_vibe"`
	ProcessingTimeMs      float64                      `json:"processing_time_ms"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toCommentData(pc *domain.ProcessedComment) CommentData {
	return CommentData{
		ID:             pc.ID,
		Text:           pc.Text,
		TextClean:      pc.TextClean,
		Author:         pc.Author,
		Likes:          pc.Likes,
		ReplyCount:     pc.ReplyCount,
		Timestamp:      pc.Timestamp,
		Sentiment:      string(pc.Sentiment),
		SentimentScore: pc.SentimentScore,
		CommentType:    string(pc.CommentType),
		IsFiltered:     pc.IsFiltered,
	}
}

func toCommentDataList(comments []domain.ProcessedComment) []CommentData {
	out := make([]CommentData, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentData(&comments[i]))
	}
	return out
}

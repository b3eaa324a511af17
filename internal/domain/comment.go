// Package domain defines the core entities of the comment processing pipeline.
package domain

// CommentType classifies the content quality of a comment.
type CommentType string

// Comment type constants.
const (
	CommentTypeNormal CommentType = "normal"
	CommentTypeSpam   CommentType = "spam"
	CommentTypeTroll  CommentType = "troll"
)

// Sentiment is the polarity label assigned to a comment.
type Sentiment string

// Sentiment constants.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// unknownAuthor is the safe default for records missing an author.
const unknownAuthor = "Unknown"

// RawComment is a comment as delivered by the acquisition layer.
// It is immutable once fetched; the pipeline never rewrites it.
type RawComment struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Likes      int    `json:"likes"`
	ReplyCount int    `json:"reply_count"`
	Timestamp  string `json:"timestamp,omitempty"`
	IsReply    bool   `json:"is_reply"`
}

// ApplyDefaults fills missing or malformed fields with safe values so a
// single bad record never fails the batch.
func (r *RawComment) ApplyDefaults() {
	if r.Author == "" {
		r.Author = unknownAuthor
	}
	if r.Likes < 0 {
		r.Likes = 0
	}
	if r.ReplyCount < 0 {
		r.ReplyCount = 0
	}
}

// ProcessedComment is the pipeline's working entity: the raw comment plus
// cleaned text, classification, and sentiment.
type ProcessedComment struct {
	RawComment

	// TextClean is the normalized and selectively-corrected text,
	// truncated with a trailing marker when it exceeds the configured
	// maximum length. The raw Text is retained alongside it.
	TextClean string `json:"text_clean"`

	// CommentType is set exactly once by the classifier.
	CommentType CommentType `json:"comment_type"`

	// IsFiltered is derived: true iff CommentType != Normal.
	// It is never set independently.
	IsFiltered bool `json:"is_filtered"`

	// Sentiment and SentimentScore are set only for non-filtered
	// comments; filtered comments carry Neutral/0.0.
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
}

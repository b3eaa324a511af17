// Package pipeline orchestrates the comment processing stages in their
// fixed order: validity gate, normalization, second validity gate,
// spelling correction, truncation, classification, sentiment scoring.
// Processing is sequential and allocation-light; a single pass over a
// batch of a few hundred comments is the expected workload.
package pipeline

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jonesrussell/comment-pulse/internal/classifier"
	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/preprocess"
	"github.com/jonesrussell/comment-pulse/internal/sentiment"
	"github.com/jonesrussell/comment-pulse/internal/telemetry"
)

const truncationMarker = "..."

// Pipeline runs raw comments through every processing stage. Engines
// are injected once at construction and shared across batches.
type Pipeline struct {
	corrector  *preprocess.SelectiveCorrector
	classifier *classifier.Classifier
	scorer     *sentiment.Scorer
	cfg        config.AnalysisConfig
	telemetry  *telemetry.Provider
	logger     logger.Logger
}

// New builds a Pipeline. The telemetry provider may be nil.
func New(
	corrector *preprocess.SelectiveCorrector,
	clf *classifier.Classifier,
	scorer *sentiment.Scorer,
	cfg config.AnalysisConfig,
	tp *telemetry.Provider,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		corrector:  corrector,
		classifier: clf,
		scorer:     scorer,
		cfg:        cfg,
		telemetry:  tp,
		logger:     log,
	}
}

// Process runs the batch through the pipeline and returns the surviving
// comments in input order. Invalid comments are dropped silently; a
// panic while processing one comment drops only that comment.
func (p *Pipeline) Process(ctx context.Context, comments []domain.RawComment) []domain.ProcessedComment {
	_, span := p.telemetry.StartSpan(ctx, "pipeline.process",
		attribute.Int("batch_size", len(comments)))
	defer span.End()

	start := time.Now()
	processed := make([]domain.ProcessedComment, 0, len(comments))

	for i := range comments {
		pc, ok := p.processOne(&comments[i])
		if !ok {
			continue
		}
		processed = append(processed, pc)
	}

	dropped := len(comments) - len(processed)
	p.telemetry.RecordBatch(time.Since(start), len(comments), len(processed), dropped)

	p.logger.Info("batch processed",
		logger.Int("total", len(comments)),
		logger.Int("kept", len(processed)),
		logger.Int("dropped", dropped),
		logger.Duration("elapsed", time.Since(start)))

	return processed
}

// processOne runs a single comment through every stage. The recover
// keeps one malformed comment from failing the whole batch.
func (p *Pipeline) processOne(raw *domain.RawComment) (pc domain.ProcessedComment, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("comment processing panicked, dropping comment",
				logger.String("comment_id", raw.ID),
				logger.Any("panic", r))
			ok = false
		}
	}()

	raw.ApplyDefaults()

	if !p.isValid(raw.Text) {
		return domain.ProcessedComment{}, false
	}

	clean := preprocess.Normalize(raw.Text)
	if !p.isValid(clean) {
		return domain.ProcessedComment{}, false
	}

	clean = p.corrector.Apply(clean)
	clean = truncate(clean, p.cfg.MaxCommentLength)

	commentType := p.classifier.Classify(clean, raw.Author)
	p.telemetry.RecordClassification(commentType)

	pc = domain.ProcessedComment{
		RawComment:  *raw,
		TextClean:   clean,
		CommentType: commentType,
		IsFiltered:  commentType != domain.CommentTypeNormal,
	}

	// Filtered comments keep a neutral placeholder score so they can
	// never skew the distribution.
	if pc.IsFiltered {
		pc.Sentiment = domain.SentimentNeutral
		pc.SentimentScore = 0.0
		return pc, true
	}

	pc.Sentiment, pc.SentimentScore = p.scorer.Score(clean)
	p.telemetry.RecordSentiment(pc.Sentiment)

	return pc, true
}

// isValid is the filtering predicate applied both before and after
// normalization: trimmed non-empty, at least MinCommentLength runes,
// and at least one ASCII letter.
func (p *Pipeline) isValid(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if utf8.RuneCountInString(trimmed) < p.cfg.MinCommentLength {
		return false
	}
	return hasASCIILetter(text)
}

func hasASCIILetter(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// truncate caps text at max runes, appending a marker when it cut
// anything off.
func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + truncationMarker
}

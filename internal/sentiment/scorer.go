// Package sentiment turns comment text into a polarity label and a
// compound score. The linguistic model is VADER; this package owns only
// the policy around it: lexicon overrides, classification thresholds,
// and fallback behavior when the engine cannot score a text.
package sentiment

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
)

// Engine is the narrow capability a Scorer needs: one text in, one
// compound polarity in [-1, 1] out.
type Engine interface {
	PolarityScore(text string) (float64, error)
}

// VaderEngine wraps a govader analyzer whose lexicon has been patched
// with the comment-domain overrides.
type VaderEngine struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVaderEngine builds an analyzer and merges the override table into
// its lexicon. The merge happens exactly once, here; scoring never
// mutates the lexicon again.
func NewVaderEngine() *VaderEngine {
	sia := govader.NewSentimentIntensityAnalyzer()
	for word, valence := range lexiconOverrides {
		sia.Lexicon[strings.ToLower(word)] = valence
	}
	return &VaderEngine{sia: sia}
}

// PolarityScore returns the compound score for text.
func (e *VaderEngine) PolarityScore(text string) (float64, error) {
	return e.sia.PolarityScores(text).Compound, nil
}

var (
	defaultEngine     *VaderEngine
	defaultEngineOnce sync.Once
)

// DefaultEngine returns the process-wide engine, building it on first
// use. The analyzer allocation is the expensive part; callers share one.
func DefaultEngine() *VaderEngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewVaderEngine()
	})
	return defaultEngine
}

// Scorer applies classification thresholds to engine output.
type Scorer struct {
	engine   Engine
	positive float64
	negative float64
	logger   logger.Logger
}

// NewScorer wires an engine to the configured thresholds.
func NewScorer(engine Engine, cfg config.AnalysisConfig, log logger.Logger) *Scorer {
	return &Scorer{
		engine:   engine,
		positive: cfg.PositiveThreshold,
		negative: cfg.NegativeThreshold,
		logger:   log,
	}
}

// Score labels text by compound polarity. Empty or blank text is
// Neutral with score 0.0 and never reaches the engine. An engine
// failure degrades to the same neutral result; it never fails a batch.
func (s *Scorer) Score(text string) (domain.Sentiment, float64) {
	if strings.TrimSpace(text) == "" {
		return domain.SentimentNeutral, 0.0
	}

	compound, err := s.engine.PolarityScore(text)
	if err != nil {
		s.logger.Warn("sentiment engine failed, falling back to neutral",
			logger.Error(err))
		return domain.SentimentNeutral, 0.0
	}

	switch {
	case compound >= s.positive:
		return domain.SentimentPositive, compound
	case compound <= s.negative:
		return domain.SentimentNegative, compound
	default:
		return domain.SentimentNeutral, compound
	}
}

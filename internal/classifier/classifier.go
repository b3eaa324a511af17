// Package classifier labels comments as normal, spam, or troll content.
// Rules are evaluated in a fixed priority order with first-match-wins
// semantics: every spam rule outranks every troll rule, so a comment
// matching both signal sets is always labeled spam.
package classifier

import (
	"strings"

	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
)

// input carries the precomputed views of a comment that rules match
// against, so each rule does not re-lower or re-trim the text.
type input struct {
	text         string
	lower        string
	trimmedLower string
	author       string
}

// rule pairs a predicate with the label it assigns when it fires.
type rule struct {
	name  string
	label domain.CommentType
	match func(in input) bool
}

// Classifier evaluates an ordered rule list against comment text.
type Classifier struct {
	rules  []rule
	logger logger.Logger
}

// New builds a Classifier from the configured keyword and indicator
// lists. Rule order is fixed at construction and never changes.
func New(cfg config.AnalysisConfig, log logger.Logger) *Classifier {
	spam := newSpamRules(cfg.SpamKeywords)
	troll := newTrollRules(cfg.TrollIndicators)

	rules := make([]rule, 0, len(spam)+len(troll))
	rules = append(rules, spam...)
	rules = append(rules, troll...)

	log.Debug("classifier initialized",
		logger.Int("spam_rules", len(spam)),
		logger.Int("troll_rules", len(troll)),
		logger.Int("spam_keywords", len(cfg.SpamKeywords)),
		logger.Int("troll_indicators", len(cfg.TrollIndicators)))

	return &Classifier{rules: rules, logger: log}
}

// Classify returns the label of the first matching rule, or Normal
// when nothing fires. Deterministic for a given text and author.
func (c *Classifier) Classify(text, author string) domain.CommentType {
	in := input{
		text:         text,
		lower:        strings.ToLower(text),
		trimmedLower: strings.TrimSpace(strings.ToLower(text)),
		author:       author,
	}

	for _, r := range c.rules {
		if r.match(in) {
			c.logger.Debug("rule matched",
				logger.String("rule", r.name),
				logger.String("label", string(r.label)))
			return r.label
		}
	}

	return domain.CommentTypeNormal
}

// Package config provides configuration for the comment-pulse service.
// It uses YAML files with environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName           = "comment-pulse"
	defaultServiceVersion        = "1.0.0"
	defaultServicePort           = 8080
	defaultLogLevel              = "info"
	defaultLogFormat             = "json"
	defaultMaxComments           = 100
	defaultFetchComments         = 50
	defaultPositiveThreshold     = 0.05
	defaultNegativeThreshold     = -0.3
	defaultMinCommentLength      = 3
	defaultMaxCommentLength      = 500
	defaultExtremeCommentCount   = 5
	defaultYouTubeRequestsPerSec = 5
	defaultYouTubeTimeoutSec     = 15
)

// defaultSpamKeywords are substring phrases that mark a comment as spam.
var defaultSpamKeywords = []string{
	"subscribe to my channel",
	"check out my",
	"visit my profile",
	"free v-bucks",
	"free robux",
	"click here",
	"link in bio",
	"giveaway",
	"dm me",
	"follow me",
}

// defaultTrollIndicators are exact/prefix phrases that mark a comment as a troll.
var defaultTrollIndicators = []string{
	"first",
	"ratio",
	"nobody:",
	"no one:",
	"L + ratio",
}

// Config holds all configuration for the comment-pulse service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	YouTube  YouTubeConfig  `yaml:"youtube"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"  env:"COMMENT_PULSE_PORT"`
	Debug   bool   `yaml:"debug" env:"APP_DEBUG"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// YouTubeConfig holds YouTube Data API configuration.
type YouTubeConfig struct {
	APIKey          string        `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	MaxComments     int           `yaml:"max_comments"`
	DefaultComments int           `yaml:"default_comments"`
	RequestsPerSec  int           `yaml:"requests_per_sec"`
	Timeout         time.Duration `yaml:"timeout"`
}

// AnalysisConfig holds the comment processing pipeline settings.
// All thresholds and lists are externally tunable without code changes.
type AnalysisConfig struct {
	SpamKeywords        []string `yaml:"spam_keywords"`
	TrollIndicators     []string `yaml:"troll_indicators"`
	PositiveThreshold   float64  `yaml:"positive_threshold" env:"SENTIMENT_POSITIVE_THRESHOLD"`
	NegativeThreshold   float64  `yaml:"negative_threshold" env:"SENTIMENT_NEGATIVE_THRESHOLD"`
	MinCommentLength    int      `yaml:"min_comment_length"`
	MaxCommentLength    int      `yaml:"max_comment_length"`
	ExtremeCommentCount int      `yaml:"extreme_comment_count"`
}

// Default returns a config populated entirely from built-in defaults,
// with no file or environment input.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setYouTubeDefaults(&cfg.YouTube)
	setAnalysisDefaults(&cfg.Analysis)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setYouTubeDefaults(y *YouTubeConfig) {
	if y.MaxComments == 0 {
		y.MaxComments = defaultMaxComments
	}
	if y.DefaultComments == 0 {
		y.DefaultComments = defaultFetchComments
	}
	if y.RequestsPerSec == 0 {
		y.RequestsPerSec = defaultYouTubeRequestsPerSec
	}
	if y.Timeout == 0 {
		y.Timeout = defaultYouTubeTimeoutSec * time.Second
	}
}

func setAnalysisDefaults(a *AnalysisConfig) {
	if len(a.SpamKeywords) == 0 {
		a.SpamKeywords = defaultSpamKeywords
	}
	if len(a.TrollIndicators) == 0 {
		a.TrollIndicators = defaultTrollIndicators
	}
	if a.PositiveThreshold == 0 {
		a.PositiveThreshold = defaultPositiveThreshold
	}
	if a.NegativeThreshold == 0 {
		a.NegativeThreshold = defaultNegativeThreshold
	}
	if a.MinCommentLength == 0 {
		a.MinCommentLength = defaultMinCommentLength
	}
	if a.MaxCommentLength == 0 {
		a.MaxCommentLength = defaultMaxCommentLength
	}
	if a.ExtremeCommentCount == 0 {
		a.ExtremeCommentCount = defaultExtremeCommentCount
	}
}

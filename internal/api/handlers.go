package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/comment-pulse/internal/analytics"
	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/pipeline"
	"github.com/jonesrussell/comment-pulse/internal/youtube"
)

// Request bounds on max_comments.
const (
	minRequestComments = 10
	maxRequestComments = 100
)

// Fetcher is the acquisition capability the handler depends on.
type Fetcher interface {
	FetchComments(ctx context.Context, videoURL string, opts youtube.FetchOptions) (*youtube.FetchResult, error)
}

// Handler handles HTTP requests for the comment analysis API.
type Handler struct {
	fetcher  Fetcher
	pipeline *pipeline.Pipeline
	cfg      *config.Config
	logger   logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(fetcher Fetcher, p *pipeline.Pipeline, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		fetcher:  fetcher,
		pipeline: p,
		cfg:      cfg,
		logger:   log,
	}
}

// AnalyzeRequest is the body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	VideoURL       string `json:"video_url" binding:"required"`
	MaxComments    int    `json:"max_comments"`
	IncludeReplies bool   `json:"include_replies"`
}

// Analyze handles POST /api/v1/analyze: fetch, process, aggregate.
func (h *Handler) Analyze(c *gin.Context) {
	start := time.Now()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, ok := h.fetch(c, req.VideoURL, youtube.FetchOptions{
		MaxComments:    clampMaxComments(req.MaxComments, h.cfg.YouTube.DefaultComments),
		IncludeReplies: req.IncludeReplies,
	})
	if !ok {
		return
	}

	processed := h.pipeline.Process(c.Request.Context(), result.Comments)
	dist := analytics.Distribution(processed)
	n := h.cfg.Analysis.ExtremeCommentCount

	c.JSON(http.StatusOK, AnalysisResponse{
		VideoID:               result.VideoID,
		TotalComments:         result.TotalFetched,
		AnalyzedComments:      len(processed),
		SentimentDistribution: dist,
		FilteredStats:         analytics.Filtered(processed),
		OverallVibe:           analytics.OverallVibe(dist),
		TopPositiveComments:   toCommentDataList(analytics.ExtremeComments(processed, domain.SentimentPositive, n)),
		TopNegativeComments:   toCommentDataList(analytics.ExtremeComments(processed, domain.SentimentNegative, n)),
		TopEngagedComments:    toCommentDataList(analytics.TopByEngagement(processed, n)),
		ProcessingTimeMs:      elapsedMs(start),
	})
}

// QuickAnalyze handles GET /api/v1/quick-analyze: distribution and
// filter stats only, no comment payloads.
func (h *Handler) QuickAnalyze(c *gin.Context) {
	start := time.Now()

	videoURL := c.Query("video_url")
	if videoURL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "video_url query parameter is required"})
		return
	}

	maxComments := h.cfg.YouTube.DefaultComments
	if raw := c.Query("max_comments"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "max_comments must be an integer"})
			return
		}
		maxComments = parsed
	}

	result, ok := h.fetch(c, videoURL, youtube.FetchOptions{
		MaxComments: clampMaxComments(maxComments, h.cfg.YouTube.DefaultComments),
		SortBy:      "newest",
	})
	if !ok {
		return
	}

	processed := h.pipeline.Process(c.Request.Context(), result.Comments)
	dist := analytics.Distribution(processed)

	c.JSON(http.StatusOK, QuickAnalysisResponse{
		VideoID:               result.VideoID,
		TotalComments:         result.TotalFetched,
		AnalyzedComments:      len(processed),
		SentimentDistribution: dist,
		FilteredStats:         analytics.Filtered(processed),
		OverallVibe:           analytics.OverallVibe(dist),
		ProcessingTimeMs:      elapsedMs(start),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.cfg.Service.Version,
		Timestamp: time.Now().UTC(),
	})
}

// fetch runs the acquisition call and writes the error response itself
// when it fails, so the handlers share one error mapping.
func (h *Handler) fetch(c *gin.Context, videoURL string, opts youtube.FetchOptions) (*youtube.FetchResult, bool) {
	result, err := h.fetcher.FetchComments(c.Request.Context(), videoURL, opts)
	if err != nil {
		status := fetchErrorStatus(err)
		h.logger.Warn("comment fetch failed",
			logger.String("video_url", videoURL),
			logger.Int("status", status),
			logger.Error(err))
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	if len(result.Comments) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "no comments found: the video may have comments disabled or no comments yet",
		})
		return nil, false
	}

	return result, true
}

func fetchErrorStatus(err error) int {
	switch {
	case errors.Is(err, youtube.ErrInvalidVideoURL):
		return http.StatusBadRequest
	case errors.Is(err, youtube.ErrCommentsDisabled), errors.Is(err, youtube.ErrVideoNotFound):
		return http.StatusNotFound
	case errors.Is(err, youtube.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// clampMaxComments bounds a requested comment count to the API limits,
// falling back to the configured default when unset.
func clampMaxComments(requested, fallback int) int {
	if requested == 0 {
		return fallback
	}
	if requested < minRequestComments {
		return minRequestComments
	}
	if requested > maxRequestComments {
		return maxRequestComments
	}
	return requested
}

func elapsedMs(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Microseconds())/1000*100) / 100
}

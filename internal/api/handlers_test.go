package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/comment-pulse/internal/classifier"
	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/pipeline"
	"github.com/jonesrussell/comment-pulse/internal/preprocess"
	"github.com/jonesrussell/comment-pulse/internal/sentiment"
	"github.com/jonesrussell/comment-pulse/internal/youtube"
)

// mockFetcher returns a canned result or error and records the options
// of the last call.
type mockFetcher struct {
	result   *youtube.FetchResult
	err      error
	lastOpts youtube.FetchOptions
}

func (m *mockFetcher) FetchComments(_ context.Context, _ string, opts youtube.FetchOptions) (*youtube.FetchResult, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// identityEngine keeps spelling untouched in handler tests.
type identityEngine struct{}

func (identityEngine) Correct(word string) (string, error) { return word, nil }

func newTestRouter(t *testing.T, fetcher Fetcher) (*gin.Engine, *mockFetcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	log := logger.NewNop()
	p := pipeline.New(
		preprocess.NewSelectiveCorrector(identityEngine{}, log),
		classifier.New(cfg.Analysis, log),
		sentiment.NewScorer(sentiment.NewVaderEngine(), cfg.Analysis, log),
		cfg.Analysis,
		nil,
		log,
	)

	mf, _ := fetcher.(*mockFetcher)
	handler := NewHandler(fetcher, p, cfg, log)
	router := gin.New()
	SetupRoutes(router, handler, nil, log)
	return router, mf
}

func fetchResult(comments ...domain.RawComment) *youtube.FetchResult {
	return &youtube.FetchResult{
		VideoID:      "dQw4w9WgXcQ",
		TotalFetched: len(comments),
		Comments:     comments,
	}
}

func postAnalyze(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyze_Success(t *testing.T) {
	router, _ := newTestRouter(t, &mockFetcher{result: fetchResult(
		domain.RawComment{ID: "1", Text: "Absolutely loved this tutorial, great pacing", Author: "a", Likes: 12},
		domain.RawComment{ID: "2", Text: "This was terrible and a waste of my time", Author: "b"},
		domain.RawComment{ID: "3", Text: "subscribe to my channel for free stuff", Author: "c"},
		domain.RawComment{ID: "4", Text: "ok"},
	)})

	w := postAnalyze(t, router, AnalyzeRequest{VideoURL: "https://youtu.be/dQw4w9WgXcQ"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AnalysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", resp.VideoID)
	}
	if resp.TotalComments != 4 {
		t.Errorf("TotalComments = %d, want 4", resp.TotalComments)
	}
	// "ok" fails the validity gate; the other three survive.
	if resp.AnalyzedComments != 3 {
		t.Errorf("AnalyzedComments = %d, want 3", resp.AnalyzedComments)
	}
	if resp.FilteredStats.SpamCount != 1 {
		t.Errorf("SpamCount = %d, want 1", resp.FilteredStats.SpamCount)
	}
	for _, c := range resp.TopPositiveComments {
		if c.IsFiltered {
			t.Errorf("filtered comment %s in top positive list", c.ID)
		}
	}
	if resp.ProcessingTimeMs < 0 {
		t.Errorf("ProcessingTimeMs = %v", resp.ProcessingTimeMs)
	}
}

func TestAnalyze_MissingVideoURL(t *testing.T) {
	router, _ := newTestRouter(t, &mockFetcher{})

	w := postAnalyze(t, router, map[string]any{"max_comments": 50})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyze_ClampsMaxComments(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"zero uses default", 0, 50},
		{"below minimum clamped up", 3, 10},
		{"above maximum clamped down", 500, 100},
		{"in range passes through", 75, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mf := &mockFetcher{result: fetchResult(
				domain.RawComment{ID: "1", Text: "a perfectly normal comment"},
			)}
			router, _ := newTestRouter(t, mf)

			w := postAnalyze(t, router, AnalyzeRequest{VideoURL: "dQw4w9WgXcQ", MaxComments: tt.requested})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if mf.lastOpts.MaxComments != tt.want {
				t.Errorf("MaxComments = %d, want %d", mf.lastOpts.MaxComments, tt.want)
			}
		})
	}
}

func TestAnalyze_FetchErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid URL", youtube.ErrInvalidVideoURL, http.StatusBadRequest},
		{"comments disabled", youtube.ErrCommentsDisabled, http.StatusNotFound},
		{"video not found", youtube.ErrVideoNotFound, http.StatusNotFound},
		{"missing API key", youtube.ErrMissingAPIKey, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, &mockFetcher{err: tt.err})

			w := postAnalyze(t, router, AnalyzeRequest{VideoURL: "dQw4w9WgXcQ"})
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAnalyze_EmptyResultIs404(t *testing.T) {
	router, _ := newTestRouter(t, &mockFetcher{result: fetchResult()})

	w := postAnalyze(t, router, AnalyzeRequest{VideoURL: "dQw4w9WgXcQ"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestQuickAnalyze_Success(t *testing.T) {
	router, mf := newTestRouter(t, &mockFetcher{result: fetchResult(
		domain.RawComment{ID: "1", Text: "what a wonderful explanation, loved it"},
		domain.RawComment{ID: "2", Text: "could not follow this at all, very confusing"},
	)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quick-analyze?video_url=dQw4w9WgXcQ&max_comments=20", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if mf.lastOpts.MaxComments != 20 {
		t.Errorf("MaxComments = %d, want 20", mf.lastOpts.MaxComments)
	}
	if mf.lastOpts.SortBy != "newest" {
		t.Errorf("SortBy = %q, want newest", mf.lastOpts.SortBy)
	}

	var resp QuickAnalysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AnalyzedComments != 2 {
		t.Errorf("AnalyzedComments = %d, want 2", resp.AnalyzedComments)
	}
}

func TestQuickAnalyze_MissingVideoURL(t *testing.T) {
	router, _ := newTestRouter(t, &mockFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quick-analyze", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, &mockFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", resp.Status)
	}
}

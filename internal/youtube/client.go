// Package youtube fetches video comments through the YouTube Data API
// v3. It is the acquisition collaborator for the processing pipeline:
// everything downstream consumes the ordered []domain.RawComment this
// package returns and never talks to the network itself.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/domain"
	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/telemetry"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxPageSize is the API's hard cap on maxResults per page.
	maxPageSize = 100

	// maxRepliesPerThread bounds reply fetching so one busy thread
	// cannot eat the whole quota.
	maxRepliesPerThread = 5
)

// Sentinel errors the API layer can map to user-facing responses.
var (
	ErrMissingAPIKey    = errors.New("youtube: API key is not configured")
	ErrInvalidVideoURL  = errors.New("youtube: could not extract a video ID")
	ErrCommentsDisabled = errors.New("youtube: comments are disabled for this video")
	ErrVideoNotFound    = errors.New("youtube: video not found")
)

// videoIDRe matches the 11-character video ID in watch, short-link,
// embed, and /v/ URL forms. plainIDRe accepts a bare ID.
var (
	videoIDRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`)
	plainIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the video ID out of a URL or accepts one as-is.
func ExtractVideoID(urlOrID string) (string, error) {
	if m := videoIDRe.FindStringSubmatch(urlOrID); m != nil {
		return m[1], nil
	}
	if plainIDRe.MatchString(urlOrID) {
		return urlOrID, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, urlOrID)
}

// FetchOptions controls one acquisition run.
type FetchOptions struct {
	// MaxComments caps the number of top-level comments returned.
	MaxComments int

	// SortBy is "popular" (API order relevance, the default) or
	// "newest" (API order time).
	SortBy string

	// IncludeReplies also fetches up to maxRepliesPerThread replies
	// per thread, interleaved after their parent.
	IncludeReplies bool
}

// FetchResult is one acquisition run's output.
type FetchResult struct {
	VideoID      string
	TotalFetched int
	TotalReplies int
	Comments     []domain.RawComment
}

// Client talks to the YouTube Data API. All calls go through a shared
// rate limiter so bursts of analyze requests stay inside quota.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
	maxAllowed int
	telemetry  *telemetry.Provider
	logger     logger.Logger
}

// Option overrides a Client field, mainly for tests.
type Option func(*Client)

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Client from configuration. The telemetry provider
// may be nil.
func NewClient(cfg config.YouTubeConfig, tp *telemetry.Provider, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.RequestsPerSec),
		maxAllowed: cfg.MaxComments,
		telemetry:  tp,
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchComments retrieves up to opts.MaxComments top-level comments for
// the video identified by videoURL, paging through commentThreads.list
// until the cap or the last page is reached.
func (c *Client) FetchComments(ctx context.Context, videoURL string, opts FetchOptions) (*FetchResult, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		c.telemetry.RecordFetchError("invalid_url")
		return nil, err
	}

	maxComments := opts.MaxComments
	if maxComments <= 0 || maxComments > c.maxAllowed {
		maxComments = c.maxAllowed
	}

	order := "relevance"
	if opts.SortBy == "newest" {
		order = "time"
	}

	c.logger.Info("fetching comments",
		logger.String("video_id", videoID),
		logger.Int("max_comments", maxComments),
		logger.String("order", order))

	start := time.Now()
	result := &FetchResult{
		VideoID:  videoID,
		Comments: make([]domain.RawComment, 0, maxComments),
	}

	pageToken := ""
	topLevel := 0
	for topLevel < maxComments {
		pageSize := maxComments - topLevel
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		page, err := c.listThreads(ctx, videoID, order, pageSize, pageToken)
		if err != nil {
			c.telemetry.RecordFetchError(fetchErrorReason(err))
			return nil, err
		}
		if len(page.Items) == 0 {
			break
		}

		for i := range page.Items {
			if topLevel >= maxComments {
				break
			}
			item := &page.Items[i]
			result.TotalReplies += item.Snippet.TotalReplyCount
			result.Comments = append(result.Comments, item.toRawComment())
			topLevel++

			if opts.IncludeReplies && item.Snippet.TotalReplyCount > 0 {
				result.Comments = append(result.Comments, c.fetchReplies(ctx, item.ID)...)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	result.TotalFetched = len(result.Comments)
	c.telemetry.RecordFetch(result.TotalFetched, time.Since(start))

	if result.TotalFetched == 0 {
		c.logger.Warn("no comments found", logger.String("video_id", videoID))
	} else {
		c.logger.Info("comments fetched",
			logger.String("video_id", videoID),
			logger.Int("count", result.TotalFetched),
			logger.Duration("elapsed", time.Since(start)))
	}

	return result, nil
}

// listThreads calls commentThreads.list for one page.
func (c *Client) listThreads(ctx context.Context, videoID, order string, pageSize int, pageToken string) (*commentThreadsResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", strconv.Itoa(pageSize))
	params.Set("order", order)
	params.Set("textFormat", "plainText")
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var resp commentThreadsResponse
	if err := c.get(ctx, "/commentThreads", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// fetchReplies pulls up to maxRepliesPerThread replies for one thread.
// Reply failures are logged and swallowed; they never fail the fetch.
func (c *Client) fetchReplies(ctx context.Context, parentID string) []domain.RawComment {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("parentId", parentID)
	params.Set("maxResults", strconv.Itoa(maxRepliesPerThread))
	params.Set("textFormat", "plainText")

	var resp commentsResponse
	if err := c.get(ctx, "/comments", params, &resp); err != nil {
		c.logger.Warn("failed to fetch replies",
			logger.String("parent_id", parentID),
			logger.Error(err))
		return nil
	}

	replies := make([]domain.RawComment, 0, len(resp.Items))
	for i := range resp.Items {
		replies = append(replies, resp.Items[i].toRawComment(true))
	}
	return replies
}

// get performs one rate-limited API call and decodes the JSON response
// into out. Non-2xx responses are decoded as API errors and mapped to
// sentinel errors where a known reason is present.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("youtube: rate limiter: %w", err)
	}

	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("youtube: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return mapAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("youtube: decode response: %w", err)
	}
	return nil
}

// mapAPIError turns a non-200 API response into a sentinel error when
// the reason is recognized.
func mapAPIError(status int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		for _, e := range apiErr.Error.Errors {
			switch e.Reason {
			case "commentsDisabled":
				return ErrCommentsDisabled
			case "videoNotFound":
				return ErrVideoNotFound
			}
		}
		if apiErr.Error.Message != "" {
			return fmt.Errorf("youtube: API error (status %d): %s", status, apiErr.Error.Message)
		}
	}
	return fmt.Errorf("youtube: API error (status %d)", status)
}

func fetchErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrCommentsDisabled):
		return "comments_disabled"
	case errors.Is(err, ErrVideoNotFound):
		return "video_not_found"
	default:
		return "request_failed"
	}
}

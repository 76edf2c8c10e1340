// Package platformapi is the read-only HTTP client for the Strata platform
// REST API. Every dashboard load goes through Client.GetJSON.
package platformapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Endpoints read by the dashboard. Paths are relative to the API base URL.
const (
	PathMemberStats      = "/users/stats/"
	PathArtworkStats     = "/artwork/stats/"
	PathUpcomingEvents   = "/events/upcoming_count/"
	PathActiveProjects   = "/projects/active_count/"
	PathPendingArtworks  = "/artwork/pending_count/"
	PathPendingMembers   = "/users/pending_count/"
	PathReportedContent  = "/reports/count/"
	PathRecentActivity   = "/activity/recent/"
	requestIDHeader      = "X-Request-ID"
	maxErrorBodyExcerpt  = 512
	defaultClientTimeout = 30 * time.Second

	// DefaultMaxBodyBytes caps how much of one response is read.
	DefaultMaxBodyBytes = 4 << 20
)

// ErrBodyTooLarge is returned when a response exceeds Client.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// Getter is the part of Client the loaders depend on.
type Getter interface {
	GetJSON(ctx context.Context, path string, out any) error
}

// Client talks to the platform API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger

	// MaxBodyBytes is the largest response body accepted; bigger bodies fail
	// the request.
	MaxBodyBytes int64
}

// New creates a Client. A nil httpClient gets a plain client with a 30s timeout.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		HTTPClient:   httpClient,
		Log:          logger.With(zap.String("adapter", "platformapi")),
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// APIError is a non-2xx response from the platform API.
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform API %s: status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("platform API %s: status %d", e.Path, e.StatusCode)
}

// GetJSON issues a GET for path and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("platform API %s: create request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := LoadID(ctx); id != "" {
		req.Header.Set(requestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform API %s: request failed: %w", path, err)
	}
	defer resp.Body.Close()

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return fmt.Errorf("platform API %s: read body: %w", path, err)
	}
	if int64(len(body)) > limit {
		return fmt.Errorf("platform API %s: %w (limit %d bytes)", path, ErrBodyTooLarge, limit)
	}

	c.Log.Debug("platform API response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("load_id", LoadID(ctx)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Path:       path,
			Message:    errorMessage(resp.StatusCode, body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("platform API %s: decode json: %w", path, err)
	}
	return nil
}

// errorMessage pulls "detail" or "error" out of a JSON error body, falling
// back to a short excerpt of the body or the status text.
func errorMessage(status int, body []byte) string {
	var structured struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if json.Unmarshal(body, &structured) == nil {
		if structured.Detail != "" {
			return structured.Detail
		}
		if structured.Error != "" {
			return structured.Error
		}
	}
	text := strings.TrimSpace(string(body))
	if text == "" || strings.HasPrefix(text, "<") {
		return http.StatusText(status)
	}
	if len(text) > maxErrorBodyExcerpt {
		text = text[:maxErrorBodyExcerpt]
	}
	return text
}

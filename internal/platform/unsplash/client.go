package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/presently/presently-api/internal/config"
	"github.com/presently/presently-api/internal/generation"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/presently/presently-api/internal/redact"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	defaultTimeout = 10 * time.Second

	// maxErrorBody bounds how much of an error response is read for logging.
	maxErrorBody = 4 << 10
)

// Client searches Unsplash for one landscape photo per query.
type Client struct {
	baseURL   string
	accessKey string
	http      *http.Client
	logger    *slog.Logger
}

var _ generation.ImageFinder = (*Client)(nil)

// NewClient creates a Client from cfg. A nil httpClient gets one with the
// configured timeout.
func NewClient(cfg config.ImagesConfig, httpClient *http.Client, log *slog.Logger) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:   baseURL,
		accessKey: strings.TrimSpace(cfg.UnsplashAccessKey),
		http:      httpClient,
		logger:    log.With(slog.String("component", "unsplash_client")),
	}
}

// searchResponse is the part of GET /search/photos the client reads.
type searchResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

// FindImage implements generation.ImageFinder.
func (c *Client) FindImage(ctx context.Context, query string) string {
	log := logger.FromContextOrDefault(ctx, c.logger).With(slog.String("query", query))

	imageURL, err := c.search(ctx, query)
	if err != nil {
		log.WarnContext(ctx, "image search failed", slog.String("error", redact.Error(err)))
		return ""
	}
	if imageURL == "" {
		log.DebugContext(ctx, "image search returned no results")
	}
	return imageURL
}

func (c *Client) search(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	params.Set("orientation", "landscape")
	endpoint := c.baseURL + "/search/photos?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("status=%d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return "", nil
	}
	return parsed.Results[0].URLs.Small, nil
}

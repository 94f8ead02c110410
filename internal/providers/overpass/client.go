package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// Sample request: https://overpass-api.de/api/interpreter?data=[out:json];node["amenity"="recycling"](around:1000,19.076,72.8777);out;
const (
	baseURL          = "https://overpass-api.de/api/interpreter"
	defaultUserAgent = "recycleit-api/1.0"
	defaultTimeout   = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURL points the client at another interpreter endpoint
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout bounds each HTTP round trip
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
		logger:     logger.With("component", "overpass-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interpret runs an Overpass QL query and decodes the JSON result
func (c *Client) Interpret(ctx context.Context, query string) (*InterpreterAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("data", query)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Overpass data", "url", c.baseURL, "query_bytes", len(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch Overpass data", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Overpass API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Remark != "" {
		c.logger.Warn("Overpass returned a remark", "remark", apiResp.Remark)
	}

	c.logger.Debug("successfully fetched Overpass data", "element_count", len(apiResp.Elements))

	return &apiResp, nil
}

package anilist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBaseURL  = "https://graphql.anilist.co"
	defaultPerPage  = 50
	defaultMaxPages = 4
)

// airingScheduleQuery selects airings with airingAt strictly between $start and $end.
const airingScheduleQuery = `
query ($start: Int, $end: Int, $page: Int, $perPage: Int) {
  Page(page: $page, perPage: $perPage) {
    pageInfo {
      currentPage
      hasNextPage
    }
    airingSchedules(airingAt_greater: $start, airingAt_lesser: $end, sort: TIME) {
      airingAt
      episode
      media {
        title {
          romaji
          english
        }
      }
    }
  }
}`

// Request is a GraphQL request body.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Client is a thin wrapper around the AniList GraphQL endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	perPage    int
	maxPages   int
	logger     *zap.Logger
}

// NewClient constructs a client with sane defaults.
func NewClient(opts ...func(*Client)) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		perPage:  defaultPerPage,
		maxPages: defaultMaxPages,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient overrides the internal HTTP client.
func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default endpoint (useful for tests).
func WithBaseURL(url string) func(*Client) {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) func(*Client) {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithPaging sets the page size and the maximum number of pages fetched per lookup.
func WithPaging(perPage, maxPages int) func(*Client) {
	return func(c *Client) {
		if perPage > 0 {
			c.perPage = perPage
		}
		if maxPages > 0 {
			c.maxPages = maxPages
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) func(*Client) {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// AiringSchedules returns the airings in [start, end), following pagination
// up to the configured page limit.
func (c *Client) AiringSchedules(ctx context.Context, start, end int64) ([]AiringSchedule, error) {
	var out []AiringSchedule
	for page := 1; page <= c.maxPages; page++ {
		req := Request{
			Query: airingScheduleQuery,
			Variables: map[string]any{
				"start":   start - 1,
				"end":     end,
				"page":    page,
				"perPage": c.perPage,
			},
		}

		body, err := c.Do(ctx, req)
		if err != nil {
			return nil, err
		}

		result, err := ParseAiringPage(body)
		if err != nil {
			return nil, err
		}
		out = append(out, result.AiringSchedules...)

		if !result.PageInfo.HasNextPage {
			return out, nil
		}
	}

	c.logger.Warn("airing schedule truncated", zap.Int("max_pages", c.maxPages), zap.Int("fetched", len(out)))
	return out, nil
}

// Do posts a GraphQL request and returns the raw response body.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("anilist: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anilist: create request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anilist: request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("anilist request",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("anilist: api error %d: %s", resp.StatusCode, string(data))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("anilist: read response: %w", err)
	}
	return data, nil
}

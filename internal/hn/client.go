// Package hn is a client for the Hacker News search API hosted by Algolia.
package hn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"hnsearch/internal/domain"
)

const (
	DefaultBaseURL     = "https://hn.algolia.com/api/v1"
	DefaultHitsPerPage = 50

	searchPath = "/search"

	paramSearch = "query"
	paramPage   = "page"
	paramHPP    = "hitsPerPage"

	maxBodySize = 8 << 20
)

// ErrSearchFailed covers transport failures, non-2xx statuses and undecodable bodies
var ErrSearchFailed = errors.New("search request failed")

// Client performs search requests
type Client struct {
	baseURL     string
	hitsPerPage int
	httpClient  *http.Client
	logger      *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHitsPerPage sets the page size sent with every request
func WithHitsPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.hitsPerPage = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		hitsPerPage: DefaultHitsPerPage,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("hn")
	return c
}

// SearchURL returns the request URL for one page of term
func (c *Client) SearchURL(term string, page int) string {
	q := url.Values{}
	q.Set(paramSearch, term)
	q.Set(paramPage, strconv.Itoa(page))
	q.Set(paramHPP, strconv.Itoa(c.hitsPerPage))
	return c.baseURL + searchPath + "?" + q.Encode()
}

// Search fetches one page of hits for term. Every failure wraps ErrSearchFailed.
func (c *Client) Search(ctx context.Context, term string, page int) (domain.SearchResultPage, error) {
	reqURL := c.SearchURL(term, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.SearchResultPage{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("url", reqURL), zap.Error(err))
		return domain.SearchResultPage{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("unexpected status", zap.String("url", reqURL), zap.Int("status", resp.StatusCode))
		return domain.SearchResultPage{}, fmt.Errorf("%w: unexpected status %d", ErrSearchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domain.SearchResultPage{}, fmt.Errorf("%w: read body: %w", ErrSearchFailed, err)
	}

	var parsed searchResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("undecodable response", zap.String("url", reqURL), zap.Error(err))
		return domain.SearchResultPage{}, fmt.Errorf("%w: decode response: %w", ErrSearchFailed, err)
	}

	c.logger.Debug("page fetched",
		zap.String("term", term),
		zap.Int("page", parsed.Page),
		zap.Int("hits", len(parsed.Hits)),
		zap.Duration("took", time.Since(start)),
	)

	return parsed.toDomain(), nil
}

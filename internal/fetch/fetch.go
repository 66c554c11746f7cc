// Package fetch retrieves page bytes over HTTP with an explicit LRU+TTL
// response cache. The cache is constructed and injected, never a module
// global.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultUserAgent = "SowiloAudit/1.0"

// Result is one fetched page.
type Result struct {
	URL         string `json:"url"`
	FinalURL    string `json:"finalUrl"`
	StatusCode  int    `json:"statusCode"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"-"`
}

// Fetcher retrieves URLs and caches raw responses.
type Fetcher struct {
	client    *http.Client
	cache     *expirable.LRU[string, *Result]
	userAgent string
	maxBody   int64
}

// Options configures a Fetcher. Zero values get defaults.
type Options struct {
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
	UserAgent string
	MaxBody   int64
}

// New creates a Fetcher with a pooled transport and a TTL-bounded LRU cache.
func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxBody <= 0 {
		opts.MaxBody = 10 << 20
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Fetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		cache:     expirable.NewLRU[string, *Result](opts.CacheSize, nil, opts.CacheTTL),
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBody,
	}
}

// Fetch returns the page at url, from cache when fresh. Non-2xx statuses are
// returned as results, not errors; the caller decides how to score them.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	if cached, ok := f.cache.Get(url); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}

	res := &Result{
		URL:         url,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	f.cache.Add(url, res)
	return res, nil
}

// CacheLen reports how many responses are currently cached.
func (f *Fetcher) CacheLen() int {
	return f.cache.Len()
}

// Purge drops every cached response.
func (f *Fetcher) Purge() {
	f.cache.Purge()
}

package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"text-summarizer/config"
	"text-summarizer/domain"
)

// httpFetcher retrieves documents over HTTP(S).
type httpFetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
	logger    *slog.Logger
}

// NewHTTPFetcher creates a fetcher with the configured timeout and
// User-Agent. Redirects follow the transport's default policy.
func NewHTTPFetcher(cfg config.FetchConfig, logger *slog.Logger) Fetcher {
	return &httpFetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBodyBytes,
		logger:    logger,
	}
}

// Fetch performs a single GET and returns the response body. Network
// failure, timeout, and non-success status all wrap ErrFetchFailed.
func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to fetch document", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		f.logger.WarnContext(ctx, "unexpected response status", "url", rawURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to read response body", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	f.logger.InfoContext(ctx, "document fetched", "url", rawURL, "content_length", len(body))

	return body, nil
}

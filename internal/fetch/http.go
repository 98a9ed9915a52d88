// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apex/log"

	"github.com/staranto/sgdatago/internal/version"
)

// StatusError captures an unexpected HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status fetching %s: %s", e.URL, e.Status)
}

// HTTPFetcher performs one GET per Fetch. Redirects follow the client's
// default policy. There is no client timeout; bound the call with ctx.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPFetcher returns an HTTPFetcher with a plain client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:    &http.Client{},
		UserAgent: "sgdata/" + version.Version,
	}
}

// Fetch implements Fetcher. dest is only created once a 2xx response has
// arrived.
func (h *HTTPFetcher) Fetch(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	log.Debugf("GET %s: %s", rawURL, resp.Status)

	return writeFile(dest, resp.Body, resp.ContentLength, onProgress)
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedScheme is returned when no fetcher handles a URL's scheme.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// ProgressFunc receives the bytes written so far and the expected total. total
// is -1 when the source does not report a size.
type ProgressFunc func(written, total int64)

// Fetcher retrieves the resource at rawURL into the file dest and returns the
// number of bytes written. A single attempt is made; failures are returned
// as-is and whatever was already written to dest stays there.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error) {
	return f(ctx, rawURL, dest, onProgress)
}

// Registry maps URL schemes to fetchers.
type Registry struct {
	mu       sync.RWMutex
	fetchers map[string]Fetcher
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fetchers: map[string]Fetcher{}}
}

// DefaultRegistry handles http, https, s3 and file URLs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	h := NewHTTPFetcher()
	r.Register("http", h)
	r.Register("https", h)
	r.Register("s3", NewS3Fetcher())
	r.Register("file", &FileFetcher{})
	return r
}

// Register installs f for scheme, replacing any previous fetcher.
func (r *Registry) Register(scheme string, f Fetcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchers[strings.ToLower(scheme)] = f
}

// Schemes returns the registered schemes, sorted.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schemes := make([]string, 0, len(r.fetchers))
	for s := range r.fetchers {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// For returns the fetcher registered for rawURL's scheme.
func (r *Registry) For(rawURL string) (Fetcher, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fetchers[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w %q in %s", ErrUnsupportedScheme, u.Scheme, rawURL)
	}
	return f, nil
}

// Fetch dispatches to the fetcher for rawURL's scheme.
func (r *Registry) Fetch(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error) {
	f, err := r.For(rawURL)
	if err != nil {
		return 0, err
	}
	return f.Fetch(ctx, rawURL, dest, onProgress)
}

// ProgressWriter wraps a writer to track download progress.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer
	// Total is the expected total bytes, or -1 when unknown.
	Total int64
	// Written is the current number of bytes written.
	Written int64
	// OnUpdate is called after each Write with current progress.
	OnUpdate ProgressFunc
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// writeFile streams r into a newly created (or truncated) dest.
func writeFile(dest string, r io.Reader, total int64, onProgress ProgressFunc) (int64, error) {
	file, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dest, err)
	}

	var w io.Writer = file
	if onProgress != nil {
		w = &ProgressWriter{Writer: file, Total: total, OnUpdate: onProgress}
	}

	n, err := io.Copy(w, r)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return n, nil
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileFetcher copies file:// URLs, which lets galleries point at datasets
// already on local disk or a mounted share.
type FileFetcher struct{}

// Fetch implements Fetcher.
func (FileFetcher) Fetch(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}
	if u.Host != "" && u.Host != "localhost" {
		return 0, fmt.Errorf("file URL with remote host %q is not supported", u.Host)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	src, err := os.Open(filepath.FromSlash(u.Path))
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", u.Path, err)
	}
	defer src.Close()

	total := int64(-1)
	if info, err := src.Stat(); err == nil {
		total = info.Size()
	}
	return writeFile(dest, src, total, onProgress)
}

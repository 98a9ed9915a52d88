// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/staranto/sgdatago/internal/cache"
	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/fetch"
	"github.com/staranto/sgdatago/internal/paths"
)

// ErrInvalidFileName is returned for an empty file name or one that is not a
// plain name inside the data directory.
var ErrInvalidFileName = errors.New("invalid data file name")

// Options overrides the default locations. Empty fields use the defaults.
type Options struct {
	DataDir   string
	ConfigDir string
}

// Downloader fetches datasets into the cache.
type Downloader struct {
	Resolver *paths.Resolver
	Fetchers *fetch.Registry
	// OnProgress, when set, is handed to the fetcher.
	OnProgress fetch.ProgressFunc
}

// New returns a Downloader using r for locations and fetchers for retrieval.
func New(r *paths.Resolver, fetchers *fetch.Registry) *Downloader {
	return &Downloader{Resolver: r, Fetchers: fetchers}
}

// Download makes sure fileName is present in the data directory, fetching it
// from rawURL only when it is missing, then records the data directory under
// data_path in the config file. The config is written on every call, cache
// hit or not. It returns the full path of the data file.
//
// An existing file is never re-fetched, even if it is truncated or corrupt.
func (d *Downloader) Download(ctx context.Context, rawURL, fileName string, opts Options) (string, error) {
	if err := validateFileName(fileName); err != nil {
		return "", err
	}

	dataDir, err := d.Resolver.DataDir(opts.DataDir)
	if err != nil {
		return "", err
	}

	entry, ok, err := cache.Lookup(dataDir, fileName)
	if err != nil {
		return "", err
	}

	if ok {
		log.Debugf("cache hit: %s", entry.Path)
	} else {
		log.WithField("url", rawURL).Debugf("cache miss: %s", entry.Path)
		n, err := d.Fetchers.Fetch(ctx, rawURL, entry.Path, d.OnProgress)
		if err != nil {
			return "", fmt.Errorf("failed to download %s: %w", rawURL, err)
		}
		log.Debugf("fetched %s into %s", humanize.Bytes(uint64(n)), entry.Path)
	}

	configDir, err := d.Resolver.ConfigDir(opts.ConfigDir)
	if err != nil {
		return "", err
	}
	if err := config.NewStore(configDir).Set(config.DataPathKey, dataDir); err != nil {
		return "", fmt.Errorf("failed to record data path: %w", err)
	}

	return entry.Path, nil
}

// DownloadData downloads with the default home directory and fetchers.
func DownloadData(ctx context.Context, rawURL, fileName string, opts Options) (string, error) {
	r, err := paths.NewResolver()
	if err != nil {
		return "", err
	}
	return New(r, fetch.DefaultRegistry()).Download(ctx, rawURL, fileName, opts)
}

func validateFileName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name must not be empty", ErrInvalidFileName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	case filepath.Base(name) != name || filepath.IsAbs(name):
		return fmt.Errorf("%w: %q must not contain a directory", ErrInvalidFileName, name)
	}
	return nil
}

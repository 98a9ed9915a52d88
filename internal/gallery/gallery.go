// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package gallery

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"

	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/dataset"
	"github.com/staranto/sgdatago/internal/download"
)

const (
	// IrisURL is where the iris dataset is fetched from.
	IrisURL = "http://archive.ics.uci.edu/ml/machine-learning-databases/iris/iris.data"
	// IrisFile is the cached file name of the iris dataset.
	IrisFile = "iris.csv"
)

// Example names a dataset the gallery knows how to fetch.
type Example struct {
	Name string
	URL  string
	File string
}

// Examples are the datasets the gallery command accepts, keyed by name.
var Examples = map[string]Example{
	"iris": {Name: "iris", URL: IrisURL, File: IrisFile},
}

// DownloadExample fetches the iris dataset into the cache, when it is not
// already there, and returns its first rows.
func DownloadExample(ctx context.Context, d *download.Downloader, opts download.Options) (*dataset.Frame, error) {
	return Download(ctx, d, Examples["iris"], opts)
}

// ReuseExample reads the iris dataset from the directory recorded under
// data_path. Nothing is downloaded.
func ReuseExample(store *config.Store) (*dataset.Frame, error) {
	return Reuse(store, Examples["iris"])
}

// Download fetches ex into the cache and returns its head.
func Download(ctx context.Context, d *download.Downloader, ex Example, opts download.Options) (*dataset.Frame, error) {
	path, err := d.Download(ctx, ex.URL, ex.File, opts)
	if err != nil {
		return nil, err
	}
	log.Debugf("%s dataset at %s", ex.Name, path)

	frame, err := dataset.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return frame.Head(dataset.DefaultHead), nil
}

// Reuse reads ex from the data directory recorded in store and returns its
// head.
func Reuse(store *config.Store, ex Example) (*dataset.Frame, error) {
	dataPath, err := store.Get(config.DataPathKey)
	if err != nil {
		return nil, fmt.Errorf("failed to find cached %s dataset: %w", ex.Name, err)
	}

	frame, err := dataset.ReadCSV(filepath.Join(dataPath, ex.File))
	if err != nil {
		return nil, err
	}
	return frame.Head(dataset.DefaultHead), nil
}

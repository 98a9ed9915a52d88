// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// Entry represents a cached dataset on disk.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Lookup reports whether name is cached in dir. The entry's path is filled in
// even when it is absent so callers know where to write. Only a missing file
// counts as absent; other stat failures are returned.
func Lookup(dir, name string) (Entry, bool, error) {
	p := filepath.Join(dir, name)
	entry := Entry{Name: name, Path: p}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, fmt.Errorf("failed to stat cache entry: %w", err)
	}

	entry.Size = info.Size()
	entry.ModTime = info.ModTime()
	return entry, true, nil
}

// List returns the regular files directly inside dir, sorted by name. A
// missing dir has no entries.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	var entries []Entry
	for _, de := range des {
		if !de.Type().IsRegular() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			log.WithError(err).Warnf("skipping %s", de.Name())
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Purge removes entries in dir last modified more than maxAge before now and
// returns what it removed. maxAge <= 0 disables purging. Failures to remove a
// single file are logged and skipped.
func Purge(dir string, maxAge time.Duration, now time.Time) ([]Entry, error) {
	if maxAge <= 0 {
		log.Debug("cache purging disabled")
		return nil, nil
	}

	entries, err := List(dir)
	if err != nil {
		return nil, err
	}

	var removed []Entry
	for _, e := range entries {
		if now.Sub(e.ModTime) <= maxAge {
			continue
		}
		if err := os.Remove(e.Path); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", e.Path)
			continue
		}
		log.Debugf("removed cache file %s (%s, %s)", e.Path,
			humanize.Bytes(uint64(e.Size)), humanize.RelTime(e.ModTime, now, "old", "ahead"))
		removed = append(removed, e)
	}
	return removed, nil
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, dir, name, body string, mod time.Time) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	require.NoError(t, os.Chtimes(p, mod, mod))
}

func TestLookup(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	writeEntry(t, dir, "iris.csv", "1,2,3\n", mod)

	e, ok, err := Lookup(dir, "iris.csv")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "iris.csv"), e.Path)
	assert.Equal(t, int64(6), e.Size)
	assert.True(t, mod.Equal(e.ModTime))

	e, ok, err = Lookup(dir, "missing.csv")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "missing.csv"), e.Path)
}

func TestLookup_TruncatedIsStillAHit(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "iris.csv", "", time.Now())

	_, ok, err := Lookup(dir, "iris.csv")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLookup_StatError(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "file", "x", time.Now())

	// A path through a regular file fails with ENOTDIR, not ENOENT.
	_, ok, err := Lookup(filepath.Join(dir, "file"), "iris.csv")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeEntry(t, dir, "b.csv", "bb", now)
	writeEntry(t, dir, "a.csv", "a", now)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	entries, err := List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.csv", entries[0].Name)
	assert.Equal(t, "b.csv", entries[1].Name)
	assert.Equal(t, int64(2), entries[1].Size)
}

func TestList_MissingDir(t *testing.T) {
	entries, err := List(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		maxAge      time.Duration
		wantRemoved []string
		wantKept    []string
	}{
		{
			name:        "removes only old files",
			maxAge:      24 * time.Hour,
			wantRemoved: []string{"old.csv"},
			wantKept:    []string{"fresh.csv"},
		},
		{
			name:     "zero disables purging",
			maxAge:   0,
			wantKept: []string{"fresh.csv", "old.csv"},
		},
		{
			name:        "small age removes both",
			maxAge:      time.Minute,
			wantRemoved: []string{"fresh.csv", "old.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeEntry(t, dir, "old.csv", "o", now.Add(-72*time.Hour))
			writeEntry(t, dir, "fresh.csv", "f", now.Add(-time.Hour))

			removed, err := Purge(dir, tt.maxAge, now)
			require.NoError(t, err)

			var names []string
			for _, e := range removed {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.wantRemoved, names)

			for _, k := range tt.wantKept {
				assert.FileExists(t, filepath.Join(dir, k))
			}
			for _, r := range tt.wantRemoved {
				assert.NoFileExists(t, filepath.Join(dir, r))
			}
		})
	}
}

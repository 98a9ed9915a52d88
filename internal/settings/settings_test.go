// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestSettings points SGDATA_CFG at a testdata file.
func setupTestSettings(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test settings")
	t.Setenv("SGDATA_CFG", absPath)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, s Type) {
				assert.NotEmpty(t, s.Source)
				assert.Equal(t, "/srv/datasets", s.Data["data_dir"])
				assert.Equal(t, "json", s.Data["output"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, s Type) {
				head, ok := s.Data["head"].(map[string]interface{})
				assert.True(t, ok, "head should be a map")
				assert.Equal(t, 10, head["rows"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, s Type) {
				assert.NotEmpty(t, s.Source, "should have a source path")
				assert.Empty(t, s.Data)
			},
		},
		{
			name:     "broken yaml",
			testFile: "broken.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestSettings(t, tt.testFile)

			s, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, s)
			}
		})
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	setupTestSettings(t, "simple.yaml")

	s, err := Load(filepath.Join("testdata", "nested.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "text", s.Data["output"])
}

func TestLoad_NoSettingsFile(t *testing.T) {
	t.Setenv("SGDATA_CFG", "/nonexistent/path/sgdata.yaml")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_NoneInStandardLocations(t *testing.T) {
	t.Setenv("SGDATA_CFG", "")
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_SGDATA_CFG_IsDirectory(t *testing.T) {
	t.Setenv("SGDATA_CFG", "testdata")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_StandardLocations(t *testing.T) {
	t.Setenv("SGDATA_CFG", "")
	t.Setenv("APPDATA", "")

	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("output: raw\n"), 0o600))
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, FileName), s.Source)

	// XDG_CONFIG_HOME is searched first.
	require.NoError(t, os.WriteFile(filepath.Join(xdg, FileName), []byte("output: yaml\n"), 0o600))
	s, err = Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, FileName), s.Source)
	assert.Equal(t, "yaml", s.Data["output"])
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "output",
			want:     "json",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "head.output",
			want:     "yaml",
		},
		{
			name:      "namespace wins",
			testFile:  "nested.yaml",
			namespace: "ls",
			key:       "output",
			want:      "raw",
		},
		{
			name:      "namespace falls back to bare key",
			testFile:  "nested.yaml",
			namespace: "download",
			key:       "output",
			want:      "text",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "rows",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestSettings(t, tt.testFile)
			s, err := Load()
			require.NoError(t, err)
			s.Namespace = tt.namespace

			got, err := s.GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "mixed-types.yaml",
			key:      "rows",
			want:     7,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "timeout",
			want:     30,
		},
		{
			name:      "namespaced int",
			testFile:  "nested.yaml",
			namespace: "purge",
			key:       "older_than",
			want:      48,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "output",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestSettings(t, tt.testFile)
			s, err := Load()
			require.NoError(t, err)
			s.Namespace = tt.namespace

			got, err := s.GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_DataDir(t *testing.T) {
	home := t.TempDir()
	r := &Resolver{Home: home}

	tests := []struct {
		name     string
		override string
		want     string
	}{
		{
			name: "default under home",
			want: filepath.Join(home, "sg_template_data"),
		},
		{
			name:     "explicit override",
			override: filepath.Join(home, "elsewhere", "nested"),
			want:     filepath.Join(home, "elsewhere", "nested"),
		},
		{
			name:     "tilde override",
			override: "~/tilde/data",
			want:     filepath.Join(home, "tilde", "data"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.DataDir(tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			info, err := os.Stat(got)
			require.NoError(t, err, "data dir should be created")
			assert.True(t, info.IsDir())
		})
	}
}

func TestResolver_DataDir_Existing(t *testing.T) {
	home := t.TempDir()
	r := &Resolver{Home: home}

	first, err := r.DataDir("")
	require.NoError(t, err)
	second, err := r.DataDir("")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolver_DataDir_Relative(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	r := &Resolver{Home: t.TempDir()}
	got, err := r.DataDir("rel")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.DirExists(t, filepath.Join(dir, "rel"))
}

func TestResolver_DataDir_Unwritable(t *testing.T) {
	home := t.TempDir()
	blocker := filepath.Join(home, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	r := &Resolver{Home: home}
	_, err := r.DataDir(filepath.Join(blocker, "data"))
	assert.Error(t, err)
}

func TestResolver_ConfigDir(t *testing.T) {
	home := t.TempDir()
	r := &Resolver{Home: home}

	got, err := r.ConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sg_template"), got)
	assert.NoDirExists(t, got, "config dir must not be created")

	other := t.TempDir()
	got, err = r.ConfigDir(other)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(other, ".sg_template"), got)
	assert.NoDirExists(t, got)
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t,
		filepath.Join("a", "b", "sg_template_config.json"),
		ConfigFile(filepath.Join("a", "b")))
}

func TestNewResolver(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	r, err := NewResolver()
	require.NoError(t, err)
	assert.Equal(t, home, r.Home)
}

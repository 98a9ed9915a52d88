// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/sgdatago/internal/version"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	t.Setenv("SGDATA_CFG", "")
}

func TestRealMain_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		home bool
		want int
	}{
		{name: "version", args: []string{"sgdata", "--version"}, home: true, want: 0},
		{name: "short version", args: []string{"sgdata", "get", "-v"}, home: true, want: 0},
		{name: "no command shows help", args: []string{"sgdata"}, home: true, want: 0},
		{name: "ok", args: []string{"sgdata", "set", "k", "v"}, home: true, want: 0},
		{name: "command failure", args: []string{"sgdata", "get", "missing"}, home: true, want: 2},
		{name: "init failure", args: []string{"sgdata", "paths"}, home: false, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if !tt.home {
				t.Setenv("HOME", "")
			}

			var out, errOut bytes.Buffer
			got := realMain(tt.args, &out, &errOut)
			assert.Equal(t, tt.want, got, errOut.String())
		})
	}
}

func TestRealMain_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, realMain([]string{"sgdata", "-v"}, &out, &errOut))
	assert.Equal(t, version.Version+"\n", out.String())
}

func TestRealMain_PrintsErrors(t *testing.T) {
	isolate(t)

	var out, errOut bytes.Buffer
	assert.Equal(t, 2, realMain([]string{"sgdata", "get", "data_path"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "config file not found")
	assert.Empty(t, out.String())
}

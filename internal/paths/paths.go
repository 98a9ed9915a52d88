// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

const (
	// DataDirName is the default cache directory, relative to the home dir.
	DataDirName = "sg_template_data"
	// ConfigDirName is the config directory name, both as the default under
	// the home dir and as the child of an overridden config dir.
	ConfigDirName = ".sg_template"
	// ConfigFileName is the JSON config file inside the config directory.
	ConfigFileName = "sg_template_config.json"
)

// Resolver computes data and config locations. Home is the base for the
// default locations and for "~" expansion in overrides.
type Resolver struct {
	Home string
}

// NewResolver returns a Resolver rooted at the current user's home directory.
func NewResolver() (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return &Resolver{Home: home}, nil
}

// DataDir resolves the data cache directory and creates it, along with any
// missing parents, if it does not exist yet.
//
// Precedence:
//  1. override, if non-empty
//  2. <Home>/sg_template_data
func (r *Resolver) DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		dir = filepath.Join(r.Home, DataDirName)
	}

	dir, err := r.absolute(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	log.Debugf("data dir: %s", dir)

	return dir, nil
}

// ConfigDir resolves the directory holding the config file. An override names
// the parent, so the result is always a .sg_template directory. Nothing is
// created here; the store creates the directory when it first writes.
func (r *Resolver) ConfigDir(override string) (string, error) {
	dir := filepath.Join(r.Home, ConfigDirName)
	if override != "" {
		dir = filepath.Join(override, ConfigDirName)
	}
	return r.absolute(dir)
}

// ConfigFile returns the config file path inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// absolute expands a leading ~ against Home and makes p absolute.
func (r *Resolver) absolute(p string) (string, error) {
	if p == "~" {
		p = r.Home
	} else if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		p = filepath.Join(r.Home, p[2:])
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return abs, nil
}

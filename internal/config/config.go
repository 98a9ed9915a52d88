// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/sgdatago/internal/paths"
)

// DataPathKey is the key under which the downloader records the cache dir.
const DataPathKey = "data_path"

var (
	// ErrInvalidKey is returned for keys that are not valid UTF-8.
	ErrInvalidKey = errors.New("invalid config key")
	// ErrInvalidValue is returned for values that are not valid UTF-8.
	ErrInvalidValue = errors.New("invalid config value")
	// ErrCorrupt is returned when the config file is not a JSON object of
	// strings.
	ErrCorrupt = errors.New("config file is not a valid JSON file and might be corrupted")
	// ErrConfigNotFound is returned by Get when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrKeyNotFound is returned by Get when the key is not set.
	ErrKeyNotFound = errors.New("config key not found")
)

// Type is a loaded config file.
type Type struct {
	Source string
	Data   map[string]string
}

// Load reads and parses the config file at path. A file that is not a JSON
// object whose members are all strings is reported as corrupt; it is never
// replaced with an empty configuration.
func Load(path string) (Type, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	// gjson does not check encoding; bad bytes would be rewritten as U+FFFD.
	if !utf8.Valid(raw) {
		return Type{}, fmt.Errorf("%w: %s: not valid UTF-8", ErrCorrupt, path)
	}
	if !gjson.ValidBytes(raw) {
		return Type{}, fmt.Errorf("%w: %s", ErrCorrupt, path)
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return Type{}, fmt.Errorf("%w: %s: top level is not an object", ErrCorrupt, path)
	}

	data := map[string]string{}
	var bad string
	ok := true
	doc.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			bad, ok = k.String(), false
			return false
		}
		data[k.String()] = v.String()
		return true
	})
	if !ok {
		return Type{}, fmt.Errorf("%w: %s: value of %q is not a string", ErrCorrupt, path, bad)
	}

	log.Debugf("loaded config file: %s", path)
	return Type{Source: path, Data: data}, nil
}

// Store reads and writes the config file inside a resolved config directory.
// There is no locking: concurrent writers race and the last one wins.
type Store struct {
	Dir string
}

// NewStore returns a Store for the config directory dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return paths.ConfigFile(s.Dir)
}

// Load reads the config file. A missing file is reported with
// ErrConfigNotFound.
func (s *Store) Load() (Type, error) {
	cfg, err := Load(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return Type{}, fmt.Errorf("%w: %s", ErrConfigNotFound, s.Path())
	}
	return cfg, err
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	cfg, err := s.Load()
	if err != nil {
		return "", err
	}

	v, ok := cfg.Data[key]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrKeyNotFound, key, cfg.Source)
	}
	return v, nil
}

// Set upserts key with value and rewrites the whole file.
func (s *Store) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: value for %q is not valid UTF-8", ErrInvalidValue, key)
	}
	return s.update(key, &value)
}

// Unset removes key and rewrites the whole file. Removing a key that is not
// set still writes the file.
func (s *Store) Unset(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.update(key, nil)
}

// update does the read-modify-write. A nil value deletes key.
func (s *Store) update(key string, value *string) error {
	path := s.Path()

	data := map[string]string{}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		cfg, err := Load(path)
		if err != nil {
			return err
		}
		data = cfg.Data
	}

	if value == nil {
		delete(data, key)
		log.Debugf("unset %s in %s", key, path)
	} else {
		data[key] = *value
		log.Debugf("set %s=%s in %s", key, *value, path)
	}

	// encoding/json writes map keys sorted, which keeps diffs reproducible.
	out, err := json.MarshalIndent(data, "", "")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfig reads key from the config file in the config dir resolved from
// configDir (empty for the default).
func GetConfig(r *paths.Resolver, key, configDir string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	dir, err := r.ConfigDir(configDir)
	if err != nil {
		return "", err
	}
	return NewStore(dir).Get(key)
}

// SetConfig sets key in the config file in the config dir resolved from
// configDir.
func SetConfig(r *paths.Resolver, key, value, configDir string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	dir, err := r.ConfigDir(configDir)
	if err != nil {
		return err
	}
	return NewStore(dir).Set(key, value)
}

// validateKey accepts any UTF-8 string, the empty string included.
func validateKey(key string) error {
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: key is not valid UTF-8", ErrInvalidKey)
	}
	return nil
}

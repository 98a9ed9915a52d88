// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the CLI defaults file searched for in the standard locations.
const FileName = "sgdata.yaml"

// ErrNotFound is returned when no settings file exists in the standard
// locations. Running without one is normal.
var ErrNotFound = errors.New("no settings file found")

// Type holds the parsed sgdata.yaml. Namespace, when set, is tried as a
// prefix before the bare key, so "head.rows" wins over "rows" for the head
// command.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Load reads the defaults file. An explicit path wins, then SGDATA_CFG, then
// the first sgdata.yaml found in XDG_CONFIG_HOME, APPDATA and HOME.
func Load(cfgFilePath ...string) (Type, error) {
	var path string
	var err error
	if len(cfgFilePath) > 0 && cfgFilePath[0] != "" {
		path = cfgFilePath[0]
	} else if path, err = getSettingsPath(); err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Type{
		Source: path,
		Data:   data,
	}, nil
}

// get traverses the map using a dotted key path.
func (s Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if s.Namespace != "" {
		candidateKeys = []string{s.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = s.Data

		success := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[part]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// GetString returns the string at key, or defaultValue when the key is absent.
func (s Type) GetString(key string, defaultValue ...string) (string, error) {
	val, err := s.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	str, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return str, nil
}

// GetInt returns the int at key, or defaultValue when the key is absent.
func (s Type) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := s.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

func getSettingsPath() (string, error) {
	if p, ok := os.LookupEnv("SGDATA_CFG"); ok && p != "" {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		if info.IsDir() {
			return "", fmt.Errorf("SGDATA_CFG points to a directory: %s", p)
		}
		return p, nil
	}

	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
			log.Debugf("using settings file: %s", file)
			return file, nil
		}
	}
	return "", fmt.Errorf("%w in standard locations", ErrNotFound)
}

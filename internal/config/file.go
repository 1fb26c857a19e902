// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseFile reads a JSON or YAML configuration file. Besides the parsed
// configuration it returns the absolute directory containing the file, which
// becomes the root directory unless some source sets one explicitly.
func parseFile(path string) (*StructuredConfig, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("error resolving config file path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, "", fmt.Errorf("error reading a config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".json":
		// JSON goes through the YAML decoder as well, so durations accept
		// the same "720h" form in both formats.
		data, err = jsonToYAML(data)
		if err != nil {
			return nil, "", fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	cfg := new(StructuredConfig)
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("error decoding configs from %s: %w", path, err)
	}

	return cfg, filepath.Dir(absPath), nil
}

func jsonToYAML(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return yaml.Marshal(v)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// fileRoot is the directory of the last loaded config file. It becomes
	// App.Root unless some source sets the root explicitly.
	fileRoot string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.App.Root == "" {
		config.App.Root = b.fileRoot
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	if err := config.Resolve(); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withConfigFile loads the file named by the last source that set
// ConfigFile, if any.
func (b *configBuilder) withConfigFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFile != "" {
			path = cfg.ConfigFile
		}
	}

	if path == "" {
		return b
	}

	return b.withFile(path)
}

func (b *configBuilder) withFile(path string) *configBuilder {
	fileCfg, root, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.fileRoot = root
	b.configs = append(b.configs, fileCfg)
	return b
}

// withConfigs appends override objects in argument order; nil entries are
// skipped.
func (b *configBuilder) withConfigs(configs ...*StructuredConfig) *configBuilder {
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		b.configs = append(b.configs, cfg)
	}
	return b
}

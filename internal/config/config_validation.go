// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfig, cfg.Server.Port)
	}

	for _, dir := range cfg.Paths.Static {
		if dir == "" {
			return fmt.Errorf("%w: empty static directory", ErrInvalidPathsConfig)
		}
	}

	for _, dir := range cfg.Paths.Routes {
		if dir == "" {
			return fmt.Errorf("%w: empty route directory", ErrInvalidPathsConfig)
		}
	}

	switch cfg.Upload.Storage {
	case StorageDisk:
	case StorageMinio:
		m := cfg.Upload.Minio
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("%w: minio configuration incomplete", ErrInvalidUploadConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidUploadConfig, cfg.Upload.Storage)
	}

	if cfg.Upload.Field == "" || cfg.Upload.MaxSize < 0 {
		return fmt.Errorf("%w: field %q, max size %d", ErrInvalidUploadConfig, cfg.Upload.Field, cfg.Upload.MaxSize)
	}

	return nil
}

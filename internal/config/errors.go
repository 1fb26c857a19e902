// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. All of them are fatal at
// startup.
var (
	// ErrInvalidServerConfig indicates an unusable listener setting, for
	// example a port outside 0..65535.
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrInvalidPathsConfig indicates an empty entry in the static or route
	// directory lists.
	ErrInvalidPathsConfig = errors.New("invalid paths configuration")
	// ErrInvalidUploadConfig indicates an unknown storage backend or missing
	// object storage settings.
	ErrInvalidUploadConfig = errors.New("invalid upload configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension is
	// neither .json, .yaml nor .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)

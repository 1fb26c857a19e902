// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// Environment names recognised by [StructuredConfig.IsDevelopment].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage backends accepted by Upload.Storage.
const (
	StorageDisk  = "disk"
	StorageMinio = "minio"
)

// UploadTempDir is the directory below the root that holds upload
// directories.
const UploadTempDir = "temp"

// Defaults returns the configuration used to fill every field left empty by
// all other sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: "go-web-scaffold",
			Env:  EnvDevelopment,
		},
		Server: Server{
			Port:              3000,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Paths: Paths{
			Logs:          "logs",
			ViewEngine:    "html",
			ViewExtension: ".html",
		},
		Token: Token{
			ExpireIn: 30 * 24 * time.Hour,
		},
		Upload: Upload{
			Dir:     "upload",
			Field:   "file",
			MaxSize: 50 << 20,
			Storage: StorageDisk,
		},
		Session: Session{
			Name: "flash",
		},
	}
}

// applyDefaults fills zero fields from [Defaults]. The root directory
// falls back to the working directory.
func (cfg *StructuredConfig) applyDefaults() error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("error applying default configs: %w", err)
	}

	if cfg.App.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("error getting working directory: %w", err)
		}
		cfg.App.Root = wd
	}

	return nil
}

// Resolve makes the root directory absolute and resolves every relative
// path against it. Resolve is idempotent.
func (cfg *StructuredConfig) Resolve() error {
	root, err := filepath.Abs(cfg.App.Root)
	if err != nil {
		return fmt.Errorf("error resolving root directory: %w", err)
	}
	cfg.App.Root = root

	cfg.Paths.Logs = cfg.Path(cfg.Paths.Logs)
	cfg.Paths.Views = cfg.Path(cfg.Paths.Views)
	cfg.Paths.Favicon = cfg.Path(cfg.Paths.Favicon)

	static := make([]string, len(cfg.Paths.Static))
	for i, dir := range cfg.Paths.Static {
		static[i] = cfg.Path(dir)
	}
	cfg.Paths.Static = static

	routes := make([]string, len(cfg.Paths.Routes))
	for i, dir := range cfg.Paths.Routes {
		routes[i] = cfg.Path(dir)
	}
	cfg.Paths.Routes = routes

	return nil
}

// Path resolves p against the root directory. Empty and absolute paths are
// returned unchanged.
func (cfg *StructuredConfig) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.App.Root, p)
}

// UploadRoot is the directory receiving uploaded files:
// <root>/temp/<upload dir>.
func (cfg *StructuredConfig) UploadRoot() string {
	return filepath.Join(cfg.App.Root, UploadTempDir, cfg.Upload.Dir)
}

// Address is the listener address in host:port form.
func (cfg *StructuredConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
}

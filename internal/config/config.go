// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of a scaffolded
// web service. It is assembled once at startup from defaults, a config file,
// environment variables, flags and override objects, and is treated as
// read-only afterwards.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json/yaml — field names used in configuration files.
type StructuredConfig struct {
	// App holds service identity, environment and root directory.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Server holds the listening address and transport timeouts.
	Server Server `envPrefix:"SERVER_" json:"server" yaml:"server"`

	// Paths holds the directory conventions: logs, views, static
	// directories, route directories and the favicon.
	Paths Paths `envPrefix:"PATHS_" json:"paths" yaml:"paths"`

	// Token holds the default secret and lifetime used by the token helper.
	Token Token `envPrefix:"TOKEN_" json:"token" yaml:"token"`

	// Upload holds the upload helper settings.
	Upload Upload `envPrefix:"UPLOAD_" json:"upload" yaml:"upload"`

	// Session holds the cookie settings backing flash messages.
	Session Session `envPrefix:"SESSION_" json:"session" yaml:"session"`

	// ConfigFile is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFile string `env:"CONFIG" json:"-" yaml:"-"`
}

// App holds service-level settings.
type App struct {
	// Name is printed in the startup line and attached to every log entry.
	// Env: APP_NAME
	Name string `env:"NAME" json:"name" yaml:"name"`

	// Env selects log verbosity and error detail ("development",
	// "production", ...).
	// Env: APP_ENV
	Env string `env:"ENV" json:"env" yaml:"env"`

	// Root is the directory every relative path is resolved against. When
	// the configuration is loaded from a file it defaults to the directory
	// containing that file.
	// Env: APP_ROOT
	Root string `env:"ROOT" json:"root" yaml:"root"`

	// Users maps logins to bcrypt password hashes for the bundled account
	// module.
	// Env: APP_USERS (login:hash,login:hash)
	Users map[string]string `env:"USERS" json:"users" yaml:"users"`
}

// Server holds network settings for the HTTP listener.
type Server struct {
	// Host is the interface to bind, empty for all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST" json:"host" yaml:"host"`

	// Port is the TCP port to bind.
	// Env: SERVER_PORT
	Port int `env:"PORT" json:"port" yaml:"port"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" json:"read_header_timeout" yaml:"read_header_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Paths holds the directory conventions of the service. Relative entries are
// resolved against [App.Root] by [StructuredConfig.Resolve].
type Paths struct {
	// Logs is the directory receiving access.log and error.log.
	// Env: PATHS_LOGS
	Logs string `env:"LOGS" json:"logs" yaml:"logs"`

	// Views is the template directory. Views are disabled when empty.
	// Env: PATHS_VIEWS
	Views string `env:"VIEWS" json:"views" yaml:"views"`

	// ViewEngine names the registered view engine used to render Views.
	// Env: PATHS_VIEW_ENGINE
	ViewEngine string `env:"VIEW_ENGINE" json:"view_engine" yaml:"view_engine"`

	// ViewExtension is the template file extension.
	// Env: PATHS_VIEW_EXTENSION
	ViewExtension string `env:"VIEW_EXTENSION" json:"view_extension" yaml:"view_extension"`

	// Static lists directories served as static files, in lookup order.
	// Env: PATHS_STATIC (comma separated)
	Static []string `env:"STATIC" json:"static" yaml:"static"`

	// Routes lists directories scanned for route declaration files, in
	// registration order.
	// Env: PATHS_ROUTES (comma separated)
	Routes []string `env:"ROUTES" json:"routes" yaml:"routes"`

	// Favicon is the icon served at /favicon.ico. Disabled when empty.
	// Env: PATHS_FAVICON
	Favicon string `env:"FAVICON" json:"favicon" yaml:"favicon"`
}

// Token holds token helper defaults.
type Token struct {
	// Secret signs and verifies tokens.
	// Env: TOKEN_SECRET
	Secret string `env:"SECRET" json:"secret" yaml:"secret"`

	// ExpireIn is how long after issuance a token stays valid.
	// Env: TOKEN_EXPIRE_IN
	ExpireIn time.Duration `env:"EXPIRE_IN" json:"expire_in" yaml:"expire_in"`
}

// Upload holds upload helper settings.
type Upload struct {
	// Dir is the upload directory name below <root>/temp.
	// Env: UPLOAD_DIR
	Dir string `env:"DIR" json:"dir" yaml:"dir"`

	// Field is the multipart field carrying the file.
	// Env: UPLOAD_FIELD
	Field string `env:"FIELD" json:"field" yaml:"field"`

	// MaxSize caps the request body of an upload, in bytes.
	// Env: UPLOAD_MAX_SIZE
	MaxSize int64 `env:"MAX_SIZE" json:"max_size" yaml:"max_size"`

	// Storage selects the backend: "disk" or "minio".
	// Env: UPLOAD_STORAGE
	Storage string `env:"STORAGE" json:"storage" yaml:"storage"`

	// Minio holds object storage settings, used when Storage is "minio".
	Minio Minio `envPrefix:"MINIO_" json:"minio" yaml:"minio"`
}

// Minio holds MinIO/S3 connection settings.
type Minio struct {
	// Endpoint is "host:port" or a URL with http/https scheme.
	// Env: UPLOAD_MINIO_ENDPOINT
	Endpoint string `env:"ENDPOINT" json:"endpoint" yaml:"endpoint"`
	// Env: UPLOAD_MINIO_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY" json:"access_key" yaml:"access_key"`
	// Env: UPLOAD_MINIO_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	// Env: UPLOAD_MINIO_BUCKET
	Bucket string `env:"BUCKET" json:"bucket" yaml:"bucket"`
}

// Session holds the cookie store settings used for flash messages.
type Session struct {
	// Secret authenticates the session cookie. A random key is generated at
	// startup when empty, so flashes do not survive restarts.
	// Env: SESSION_SECRET
	Secret string `env:"SECRET" json:"secret" yaml:"secret"`

	// Name is the cookie name.
	// Env: SESSION_NAME
	Name string `env:"NAME" json:"name" yaml:"name"`
}

// IsDevelopment reports whether the service runs in the development
// environment.
func (cfg *StructuredConfig) IsDevelopment() bool {
	return cfg.App.Env == EnvDevelopment
}

const redacted = "[redacted]"

// Redacted returns a copy of cfg safe to log: secrets, keys and password
// hashes are replaced by a placeholder.
func (cfg *StructuredConfig) Redacted() StructuredConfig {
	out := *cfg

	mask := func(s *string) {
		if *s != "" {
			*s = redacted
		}
	}
	mask(&out.Token.Secret)
	mask(&out.Session.Secret)
	mask(&out.Upload.Minio.SecretKey)

	if cfg.App.Users != nil {
		out.App.Users = make(map[string]string, len(cfg.App.Users))
		for login := range cfg.App.Users {
			out.App.Users[login] = redacted
		}
	}
	return out
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still empty and relative paths are resolved
// against the root directory.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withConfigFile().
		build()
}

// FromFile loads the configuration file at path, derives the root directory
// from the file's location and merges overrides on top of it in argument
// order.
func FromFile(path string, overrides ...*StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFile(path).
		withConfigs(overrides...).
		build()
}

// FromStruct uses cfg as the base configuration and merges overrides on top
// of it in argument order.
func FromStruct(cfg *StructuredConfig, overrides ...*StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withConfigs(cfg).
		withConfigs(overrides...).
		build()
}

// Package config provides configuration loading, merging, and validation
// facilities for a scaffolded web service.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Override objects passed by the caller
//
// Defaults are applied last to whatever is still empty, and relative paths
// are resolved against the root directory. The main entry points are
// [GetStructuredConfig] for the server binary, and [FromFile] / [FromStruct]
// for programmatic startup.
package config

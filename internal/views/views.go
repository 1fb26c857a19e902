// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package views maps view engine names to template renderers. The "html"
// engine, backed by unrolled/render, is always registered.
package views

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/unrolled/render"
)

// DefaultEngine is the engine name used when none is configured.
const DefaultEngine = "html"

var (
	// ErrUnknownEngine is returned for engine names without a factory.
	ErrUnknownEngine = errors.New("unknown view engine")
	// ErrViewsDirectory is returned when the views directory is unusable.
	ErrViewsDirectory = errors.New("invalid views directory")
)

// Options configures an engine instance.
type Options struct {
	// Dir is the templates directory.
	Dir string
	// Extension is the template file extension, including the dot.
	Extension string
	// Development recompiles templates on every render.
	Development bool
}

// Factory builds an engine for the given options.
type Factory func(opts Options) (web.ViewEngine, error)

// Registry maps engine names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in "html" engine and the
// given extra factories. Extra factories replace built-ins of the same name.
func NewRegistry(extra map[string]Factory) *Registry {
	reg := &Registry{factories: map[string]Factory{DefaultEngine: NewHTML}}
	for name, f := range extra {
		reg.factories[name] = f
	}
	return reg
}

// Engine builds the engine registered as name. An empty name selects
// [DefaultEngine].
func (reg *Registry) Engine(name string, opts Options) (web.ViewEngine, error) {
	if name == "" {
		name = DefaultEngine
	}

	factory, ok := reg.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrViewsDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrViewsDirectory, opts.Dir)
	}

	return factory(opts)
}

type htmlEngine struct {
	r *render.Render
}

// NewHTML builds the html/template engine.
func NewHTML(opts Options) (web.ViewEngine, error) {
	ext := opts.Extension
	if ext == "" {
		ext = ".html"
	}

	return &htmlEngine{r: render.New(render.Options{
		Directory:     opts.Dir,
		Extensions:    []string{ext},
		IsDevelopment: opts.Development,
	})}, nil
}

func (e *htmlEngine) Render(w http.ResponseWriter, status int, name string, data any) error {
	if err := e.r.HTML(w, status, name, data); err != nil {
		return fmt.Errorf("error rendering view %q: %w", name, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/routes"
	"github.com/MKhiriev/go-web-scaffold/internal/views"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/go-chi/chi/v5"
)

// Options carries the code-level hooks of a server. All fields are
// optional.
type Options struct {
	// Init runs first and receives the root router. It may add middleware
	// with Use; routes belong to modules.
	Init func(r chi.Router)

	// Before runs right before routing, in order.
	Before []web.Middleware

	// After handles forwarded errors after they were logged, in order. A
	// hook returning nil ends the chain.
	After []web.ErrorHook

	// Modules resolves route declarations. An empty registry is used when
	// nil.
	Modules *routes.Registry

	// Engines registers view engines next to the built-in "html" engine.
	Engines map[string]views.Factory

	// Logger is the stdout logger. Derived from the configuration when nil.
	Logger *logger.Logger
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"context"
	"net/http"
)

// ViewEngine renders the named template of the views directory.
type ViewEngine interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

type viewEngineKey struct{}

// WithViewEngine attaches engine to ctx.
func WithViewEngine(ctx context.Context, engine ViewEngine) context.Context {
	return context.WithValue(ctx, viewEngineKey{}, engine)
}

// Render renders the view name with data using the engine of the views
// stage.
func Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) error {
	engine, ok := r.Context().Value(viewEngineKey{}).(ViewEngine)
	if !ok {
		return ErrNoViewEngine
	}
	return engine.Render(w, status, name, data)
}

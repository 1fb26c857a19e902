// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import "net/http"

// HandlerFunc is a request handler that reports failures by returning an
// error. The error is forwarded to the request's [ErrorChain].
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ServeHTTP calls fn and forwards a returned error to [Fail].
func (fn HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := fn(w, r); err != nil {
		Fail(w, r, err)
	}
}

// Middleware wraps the next handler of a pipeline. A middleware either
// calls next, produces the response itself, or short-circuits with an error
// through [Fail].
type Middleware = func(next http.Handler) http.Handler

// Chain composes middlewares so that the first one is the outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

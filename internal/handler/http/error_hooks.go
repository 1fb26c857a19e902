// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// LogError is the first hook of the error chain. Not-found errors go to the
// access log with the remote address and path; every other error goes to
// the error log with the request detail. The error is always forwarded.
func (h *Handler) LogError(err error, w http.ResponseWriter, r *http.Request) error {
	status := web.StatusOf(err)

	if status == http.StatusNotFound {
		h.files.Access.Info().
			Str("remote", r.RemoteAddr).
			Str("path", r.URL.Path).
			Msg("not found")
		return err
	}

	entry := h.files.Error.Error().
		Err(err).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Any("params", web.Params(r)).
		Int("status", status).
		Str("trace_id", w.Header().Get(traceIDHeader))

	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		entry = entry.Bytes("stack", panicErr.Stack)
	}

	entry.Msg("request failed")
	return err
}

// Respond is the terminal hook of the error chain. It writes the
// {code, msg} body with the status carried by the error. The message of
// unexpected errors is only exposed in development.
func (h *Handler) Respond(err error, w http.ResponseWriter, r *http.Request) error {
	if rw, ok := w.(interface{ Written() bool }); ok && rw.Written() {
		logger.FromRequest(r).Warn().Err(err).Str("path", r.URL.Path).Msg("response already started, error not sent")
		return nil
	}

	web.WriteError(w, err, h.cfg.IsDevelopment())
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
)

var (
	// ErrNotFound is wrapped by the error produced for unmatched requests.
	ErrNotFound = errors.New("not found")
	// ErrNoViewEngine is returned by [Render] when views are not configured.
	ErrNoViewEngine = errors.New("no view engine configured")
	// ErrNoFlashStore is returned by the flash helpers when the flash stage
	// is not part of the pipeline.
	ErrNoFlashStore = errors.New("flash messages are not enabled")
)

// Error is a failure carrying the HTTP status the client should receive.
type Error struct {
	// Code is the HTTP status code.
	Code int
	// Msg is safe to show to clients.
	Msg string
	// Err is the underlying cause, logged but never sent to clients.
	Err error
}

// NewError returns an *Error with the given status. An empty msg falls back
// to the status text.
func NewError(code int, msg string, err error) *Error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	return &Error{Code: code, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound returns the 404 error synthesized for a request no route
// matched.
func NotFound(r *http.Request) error {
	return NewError(http.StatusNotFound, app.MsgNotFound,
		fmt.Errorf("%w: %s %s", ErrNotFound, r.Method, r.URL.Path))
}

// StatusOf returns the status carried by err, or 500 when err is not an
// [*Error].
func StatusOf(err error) int {
	var webErr *Error
	if errors.As(err, &webErr) && webErr.Code != 0 {
		return webErr.Code
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message of err. The message of errors
// that are not an [*Error] is exposed only when expose is set.
func MessageOf(err error, expose bool) string {
	var webErr *Error
	if errors.As(err, &webErr) {
		return webErr.Msg
	}
	if expose {
		return err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/utils"
	"github.com/MKhiriev/go-web-scaffold/models"
)

// ErrorHook handles an error forwarded by a handler or middleware. It
// returns nil once the response has been produced, or an error (the same
// one or a replacement) to pass it on to the next hook.
type ErrorHook func(err error, w http.ResponseWriter, r *http.Request) error

// ErrorChain runs hooks in order until one of them returns nil.
type ErrorChain []ErrorHook

// Handle delivers err to the hooks and returns whatever the last hook
// forwarded, or nil when a hook produced the response.
func (c ErrorChain) Handle(err error, w http.ResponseWriter, r *http.Request) error {
	for _, hook := range c {
		if err = hook(err, w, r); err == nil {
			return nil
		}
	}
	return err
}

type errorChainKey struct{}

// WithErrorChain attaches chain to ctx.
func WithErrorChain(ctx context.Context, chain ErrorChain) context.Context {
	return context.WithValue(ctx, errorChainKey{}, chain)
}

// Fail forwards err to the error chain of r. When no chain is installed or
// every hook passed the error on, a {code, msg} response is written so the
// request is never left unanswered.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	chain, _ := r.Context().Value(errorChainKey{}).(ErrorChain)
	if err = chain.Handle(err, w, r); err == nil {
		return
	}

	logger.FromRequest(r).Err(err).Msg("error reached the end of the error chain")
	WriteError(w, err, false)
}

// WriteError writes err as a {code, msg} JSON body with the status carried
// by err.
func WriteError(w http.ResponseWriter, err error, expose bool) {
	status := StatusOf(err)
	_ = utils.WriteJSON(w, status, models.ErrorResponse{
		Code: status,
		Msg:  MessageOf(err, expose),
	})
}

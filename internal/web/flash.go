// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

type flashStore struct {
	store sessions.Store
	name  string
}

type flashKey struct{}

// WithFlashStore attaches the session store backing flash messages to ctx.
func WithFlashStore(ctx context.Context, store sessions.Store, name string) context.Context {
	return context.WithValue(ctx, flashKey{}, flashStore{store: store, name: name})
}

// AddFlash queues value for the next request. It must be called before the
// response header is written.
func AddFlash(w http.ResponseWriter, r *http.Request, value any, vars ...string) error {
	session, err := flashSession(r)
	if err != nil {
		return err
	}

	session.AddFlash(value, vars...)
	if err = session.Save(r, w); err != nil {
		return fmt.Errorf("error saving flash session: %w", err)
	}
	return nil
}

// Flashes returns and clears the flash messages queued by a previous
// request.
func Flashes(w http.ResponseWriter, r *http.Request, vars ...string) ([]any, error) {
	session, err := flashSession(r)
	if err != nil {
		return nil, err
	}

	flashes := session.Flashes(vars...)
	if len(flashes) == 0 {
		return nil, nil
	}
	if err = session.Save(r, w); err != nil {
		return nil, fmt.Errorf("error saving flash session: %w", err)
	}
	return flashes, nil
}

func flashSession(r *http.Request) (*sessions.Session, error) {
	fs, ok := r.Context().Value(flashKey{}).(flashStore)
	if !ok {
		return nil, ErrNoFlashStore
	}

	// A cookie signed with another key yields a fresh session and an error.
	session, err := fs.store.Get(r, fs.name)
	if session == nil {
		return nil, fmt.Errorf("error loading flash session: %w", err)
	}
	return session, nil
}

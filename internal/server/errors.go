// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on a running server.
	ErrAlreadyStarted = errors.New("server already started")
	// ErrNotStarted is returned by Addr before Start.
	ErrNotStarted = errors.New("server not started")
	// ErrSessionKey is returned when no random session key can be generated.
	ErrSessionKey = errors.New("error generating session key")
)

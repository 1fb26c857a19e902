// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the token extraction middleware when reading the
// "Authorization" HTTP header. They are logged at debug level only, because
// extraction never rejects a request.
var (
	// ErrInvalidAuthorizationHeader is returned when the header does not
	// consist of a scheme and a credential separated by a space.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthorizationScheme is returned when the scheme is not
	// "Bearer".
	ErrUnsupportedAuthorizationScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the "Bearer" scheme carries no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoUser is wrapped by the 401 error of [RequireUser].
	ErrNoUser = errors.New("no authenticated user")
)

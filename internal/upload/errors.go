// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import "errors"

var (
	// ErrNoFile is wrapped by the 400 error of an upload route that
	// received no file and has no completion handler.
	ErrNoFile = errors.New("no file uploaded")
	// ErrUnexpectedField is returned for a file sent under another field.
	ErrUnexpectedField = errors.New("unexpected file field")
	// ErrTooManyFiles is returned for a second file under the upload field.
	ErrTooManyFiles = errors.New("too many files")
	// ErrInvalidEndpoint is returned for object storage endpoints that are
	// neither host:port nor an http(s) URL without a path.
	ErrInvalidEndpoint = errors.New("invalid object storage endpoint")
)

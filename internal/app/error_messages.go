// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants used across the scaffold's
// middleware, helpers and example handlers.
//
// All Msg* constants are human-readable strings written into the msg field
// of {code, msg} error responses. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any configured user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgNotFound is returned for requests no route matched.
	MsgNotFound = "not found"

	// MsgUnauthorized is returned by routes requiring a user when the
	// request carries no valid token.
	MsgUnauthorized = "authentication required"

	// MsgPayloadTooLarge is returned when a body exceeds the size cap of its
	// parser or of the upload route.
	MsgPayloadTooLarge = "request entity too large"

	// MsgMalformedBody is returned when a JSON, XML or URL-encoded body
	// cannot be parsed.
	MsgMalformedBody = "malformed request body"

	// MsgNoFileUploaded is the generic error of an upload route that
	// received no file and has no completion handler.
	MsgNoFileUploaded = "no file uploaded"

	// MsgUnexpectedFileField is returned when a file arrives under a field
	// other than the configured upload field.
	MsgUnexpectedFileField = "unexpected file field"

	// MsgTooManyFiles is returned when more than one file is sent under the
	// upload field.
	MsgTooManyFiles = "only one file may be uploaded"
)

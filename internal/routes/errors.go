// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import "errors"

// Configuration errors reported by [Registry.Register] and
// [Injector.Inject]. All of them are fatal at startup.
var (
	// ErrDuplicateModule is returned when two modules share a name.
	ErrDuplicateModule = errors.New("duplicate route module")
	// ErrModuleNotFound is returned for a declaration file whose base name
	// matches no registered module.
	ErrModuleNotFound = errors.New("route module not found")
	// ErrHandlerNotFound is returned when a declared name is not exported
	// by the module.
	ErrHandlerNotFound = errors.New("handler not found in route module")
	// ErrUnknownVerb is returned for verbs other than get, post, put,
	// patch, delete, head, options and all.
	ErrUnknownVerb = errors.New("unknown http verb")
	// ErrMalformedDeclaration is returned for declaration files or in-code
	// routes that do not have the expected shape.
	ErrMalformedDeclaration = errors.New("malformed route declaration")
	// ErrDuplicateRoute is returned when a path and verb pair is declared
	// twice. The "all" verb overlaps every other verb of the same path.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrRouteDirectory is returned when a route directory cannot be read.
	ErrRouteDirectory = errors.New("invalid route directory")
)

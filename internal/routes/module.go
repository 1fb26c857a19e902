// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import (
	"fmt"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// Route is a single path and verb binding declared in code.
//
// Either Handler is set, optionally preceded by Middleware, or Names lists
// exports of the owning module: middleware names followed by one handler
// name.
type Route struct {
	Path string
	Verb string

	Handler    web.HandlerFunc
	Middleware []web.Middleware

	Names []string
}

// Module is a named set of handlers and middleware that route declaration
// files refer to by name. A declaration file <dir>/<Name>.yaml binds paths
// to the module's exports.
type Module struct {
	// Name matches the base name of the module's declaration file.
	Name string

	// Handlers are the exports usable in the last position of a
	// declaration.
	Handlers map[string]web.HandlerFunc

	// Middleware are the exports usable before the handler.
	Middleware map[string]web.Middleware

	// Routes are registered after every declaration directory.
	Routes []Route
}

// Registry holds modules in registration order.
type Registry struct {
	modules []*Module
	byName  map[string]*Module
}

// NewRegistry returns a registry holding modules. It fails like
// [Registry.Register] does.
func NewRegistry(modules ...*Module) (*Registry, error) {
	reg := &Registry{byName: make(map[string]*Module)}
	for _, m := range modules {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register adds m. Names must be unique and non-empty.
func (reg *Registry) Register(m *Module) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("%w: module without a name", ErrMalformedDeclaration)
	}
	if _, ok := reg.byName[m.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, m.Name)
	}

	reg.modules = append(reg.modules, m)
	reg.byName[m.Name] = m
	return nil
}

// Lookup returns the module registered as name.
func (reg *Registry) Lookup(name string) (*Module, bool) {
	m, ok := reg.byName[name]
	return m, ok
}

// Modules returns the modules in registration order.
func (reg *Registry) Modules() []*Module {
	return append([]*Module(nil), reg.modules...)
}

// resolve turns names into a handler preceded by its middleware.
func (m *Module) resolve(names []string) (web.HandlerFunc, []web.Middleware, error) {
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%w: empty handler list", ErrMalformedDeclaration)
	}

	last := len(names) - 1
	handler, ok := m.Handlers[names[last]]
	if !ok || handler == nil {
		return nil, nil, fmt.Errorf("%w: %s.%s", ErrHandlerNotFound, m.Name, names[last])
	}

	middleware := make([]web.Middleware, 0, last)
	for _, name := range names[:last] {
		mw, ok := m.Middleware[name]
		if !ok || mw == nil {
			return nil, nil, fmt.Errorf("%w: %s.%s (middleware)", ErrHandlerNotFound, m.Name, name)
		}
		middleware = append(middleware, mw)
	}

	return handler, middleware, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routes registers route modules on a chi router.
//
// Route declarations live in YAML or JSON files named after a registered
// [Module]. Each file maps a path to verbs, and each verb to the name of a
// module handler or to a list of names where every entry but the last is
// a middleware export. Names are resolved against the module at startup,
// so a typo fails the service before it accepts requests.
//
// Registration order is: directories in the order given, files inside a
// directory in lexical order, paths in file order, and finally the
// in-code routes of every module in registration order. Declaring the same
// path and verb twice is rejected with [ErrDuplicateRoute].
package routes

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/go-chi/chi/v5"
)

// VerbAll binds a handler to every method of a path.
const VerbAll = "all"

var verbs = map[string]string{
	"get":     http.MethodGet,
	"post":    http.MethodPost,
	"put":     http.MethodPut,
	"patch":   http.MethodPatch,
	"delete":  http.MethodDelete,
	"head":    http.MethodHead,
	"options": http.MethodOptions,
	VerbAll:   "",
}

// Binding describes a registered route.
type Binding struct {
	// Method is the HTTP method, or "*" for the "all" verb.
	Method string
	// Pattern is the chi pattern the path was translated to.
	Pattern string
	// Source is the declaration file, or "<module> (code)".
	Source string
}

// Injector registers modules of a [Registry] on a router.
type Injector struct {
	registry *Registry
	logger   *logger.Logger

	bindings []Binding
	// seen maps pattern to the methods bound on it.
	seen map[string]map[string]string
}

// NewInjector returns an Injector resolving names against registry.
func NewInjector(registry *Registry, log *logger.Logger) *Injector {
	return &Injector{
		registry: registry,
		logger:   log,
		seen:     make(map[string]map[string]string),
	}
}

// Inject registers the declaration files found in dirs and then the
// in-code routes of every module.
func (inj *Injector) Inject(router chi.Router, dirs ...string) error {
	for _, dir := range dirs {
		if err := inj.injectDir(router, dir); err != nil {
			return err
		}
	}

	for _, m := range inj.registry.Modules() {
		source := m.Name + " (code)"
		for _, route := range m.Routes {
			handler, middleware := route.Handler, route.Middleware
			if handler == nil {
				var err error
				if handler, middleware, err = m.resolve(route.Names); err != nil {
					return fmt.Errorf("%s %s: %w", route.Verb, route.Path, err)
				}
			}

			if err := inj.bind(router, route.Verb, route.Path, web.Chain(handler, middleware...), source); err != nil {
				return err
			}
		}
	}

	return nil
}

// Routes returns the registered bindings in registration order.
func (inj *Injector) Routes() []Binding {
	return append([]Binding(nil), inj.bindings...)
}

func (inj *Injector) injectDir(router chi.Router, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRouteDirectory, err)
	}

	// os.ReadDir returns entries sorted by file name.
	for _, entry := range entries {
		if entry.IsDir() || !isDeclarationFile(entry.Name()) {
			continue
		}

		file := filepath.Join(dir, entry.Name())
		if err = inj.injectFile(router, file); err != nil {
			return err
		}
	}

	return nil
}

func (inj *Injector) injectFile(router chi.Router, file string) error {
	name := moduleName(file)
	m, ok := inj.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q declared by %s", ErrModuleNotFound, name, file)
	}

	declared, err := readDeclaration(file)
	if err != nil {
		return err
	}

	for _, d := range declared {
		handler, middleware, err := m.resolve(d.names)
		if err != nil {
			return fmt.Errorf("%s: %s %s: %w", file, d.verb, d.path, err)
		}

		if err = inj.bind(router, d.verb, d.path, web.Chain(handler, middleware...), file); err != nil {
			return err
		}
	}

	return nil
}

func (inj *Injector) bind(router chi.Router, verb, path string, handler http.Handler, source string) (err error) {
	verb = strings.ToLower(strings.TrimSpace(verb))
	method, ok := verbs[verb]
	if !ok {
		return fmt.Errorf("%w: %q for %s in %s", ErrUnknownVerb, verb, path, source)
	}

	pattern, err := Pattern(path)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	key := method
	if verb == VerbAll {
		key = "*"
	}
	if err = inj.claim(pattern, key, source); err != nil {
		return err
	}

	// chi panics on patterns it cannot parse, for example duplicate
	// parameter names or invalid regular expressions.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s in %s: %v", ErrMalformedDeclaration, path, source, rec)
		}
	}()

	if verb == VerbAll {
		router.Handle(pattern, handler)
	} else {
		router.Method(method, pattern, handler)
	}

	inj.bindings = append(inj.bindings, Binding{Method: key, Pattern: pattern, Source: source})
	inj.logger.Debug().
		Str("method", key).
		Str("pattern", pattern).
		Str("source", source).
		Msg("route registered")

	return nil
}

// claim records method on pattern, rejecting overlaps with earlier
// bindings. Patterns differing only in parameter names overlap.
func (inj *Injector) claim(pattern, method, source string) error {
	shape := routeShape(pattern)
	methods, ok := inj.seen[shape]
	if !ok {
		methods = make(map[string]string)
		inj.seen[shape] = methods
	}

	for bound, previous := range methods {
		if bound == method || bound == "*" || method == "*" {
			return fmt.Errorf("%w: %s %s in %s, already bound by %s %s",
				ErrDuplicateRoute, method, pattern, source, bound, previous)
		}
	}

	methods[method] = source
	return nil
}

// routeShape drops parameter names from a chi pattern:
// "/u/{id}" becomes "/u/{}" and "/u/{id:\d+}" becomes "/u/{:\d+}".
func routeShape(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	depth := 0
	inName := false
	for _, c := range pattern {
		switch {
		case c == '{' && depth == 0:
			depth++
			inName = true
			b.WriteRune(c)
			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				inName = false
			}
		case c == ':' && depth == 1 && inName:
			inName = false
		}

		if !inName {
			b.WriteRune(c)
		}
	}

	return b.String()
}

var paramSegment = regexp.MustCompile(`^:([A-Za-z_][A-Za-z0-9_]*)(?:\((.+)\))?$`)

// Pattern translates an Express-style path into a chi pattern:
// ":id" becomes "{id}" and ":id(\d+)" becomes "{id:\d+}". Paths already
// written in chi syntax are returned unchanged.
func Pattern(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: path %q must start with /", ErrMalformedDeclaration, path)
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}

		match := paramSegment.FindStringSubmatch(segment)
		if match == nil {
			return "", fmt.Errorf("%w: invalid parameter %q in %s", ErrMalformedDeclaration, segment, path)
		}

		if match[2] != "" {
			segments[i] = "{" + match[1] + ":" + match[2] + "}"
		} else {
			segments[i] = "{" + match[1] + "}"
		}
	}

	return strings.Join(segments, "/"), nil
}

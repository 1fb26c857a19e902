// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	myHTTP "github.com/MKhiriev/go-web-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-web-scaffold/internal/routes"
	"github.com/MKhiriev/go-web-scaffold/internal/views"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// Stage names reported by [Server.Stages].
const (
	StageInit      = "init"
	StageCompress  = "compress"
	StageCORS      = "cors"
	StageViews     = "views"
	StageFavicon   = "favicon"
	StageAccessLog = "access-log"
	StageStatic    = "static"
	StageSecurity  = "security"
	StageFlash     = "flash"
	StageBody      = "body"
	StageAugment   = "augment"
	StageBefore    = "before"
	StageRoutes    = "routes"
	StageNotFound  = "not-found"
	StageErrorLog  = "error-log"
	StageAfter     = "after"
)

// pipeline collects the stages of the root router in order.
type pipeline struct {
	router chi.Router
	stages []string
}

func (p *pipeline) use(name string, mws ...web.Middleware) {
	p.router.Use(mws...)
	p.stages = append(p.stages, name)
}

func (p *pipeline) mark(name string) {
	p.stages = append(p.stages, name)
}

// buildPipeline wires every stage on a fresh root router and returns the
// request handler wrapped by the infrastructure middleware.
func (s *Server) buildPipeline(h *myHTTP.Handler, opts Options) (http.Handler, error) {
	cfg := s.cfg
	p := &pipeline{router: chi.NewRouter()}

	if opts.Init != nil {
		opts.Init(p.router)
	}
	p.mark(StageInit)

	p.use(StageCompress, h.Compress())
	p.use(StageCORS, h.CORS())

	if cfg.Paths.Views != "" {
		engine, err := views.NewRegistry(opts.Engines).Engine(cfg.Paths.ViewEngine, views.Options{
			Dir:         cfg.Paths.Views,
			Extension:   cfg.Paths.ViewExtension,
			Development: cfg.IsDevelopment(),
		})
		if err != nil {
			return nil, err
		}
		p.use(StageViews, h.Views(engine))
	}

	if cfg.Paths.Favicon != "" {
		favicon, err := h.Favicon(cfg.Paths.Favicon)
		if err != nil {
			return nil, err
		}
		p.use(StageFavicon, favicon)
	}

	p.use(StageAccessLog, h.AccessLog)
	// Later panics are answered through the access log writer.
	p.router.Use(h.Recover)

	for _, dir := range cfg.Paths.Static {
		p.use(StageStatic+":"+dir, h.Static(dir))
	}

	p.use(StageSecurity, h.Security())

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	p.use(StageFlash, h.Flash(store))

	p.use(StageBody, h.ParseBody)
	p.use(StageAugment, h.Augment)
	p.use(StageBefore, opts.Before...)

	modules := opts.Modules
	if modules == nil {
		if modules, err = routes.NewRegistry(); err != nil {
			return nil, err
		}
	}

	mux := chi.NewRouter()
	notFound := web.HandlerFunc(h.NotFound).ServeHTTP
	mux.NotFound(notFound)
	mux.MethodNotAllowed(notFound)

	s.injector = routes.NewInjector(modules, s.logger)
	if err = s.injector.Inject(mux, cfg.Paths.Routes...); err != nil {
		return nil, fmt.Errorf("error injecting routes: %w", err)
	}
	p.router.Mount("/", mux)
	p.mark(StageRoutes)
	p.mark(StageNotFound)

	chain := web.ErrorChain{h.LogError}
	p.mark(StageErrorLog)
	chain = append(chain, opts.After...)
	chain = append(chain, h.Respond)
	p.mark(StageAfter)

	s.stages = p.stages

	return web.Chain(p.router, h.WithTraceID, h.WithErrorChain(chain), h.Recover), nil
}

// newSessionStore returns the cookie store behind flash messages. Without
// a configured secret a random key is used.
func newSessionStore(cfg *config.StructuredConfig) (*sessions.CookieStore, error) {
	key := []byte(cfg.Session.Secret)
	if len(key) == 0 {
		if key = securecookie.GenerateRandomKey(32); key == nil {
			return nil, ErrSessionKey
		}
	}

	store := sessions.NewCookieStore(key)
	store.Options.HttpOnly = true
	store.Options.Secure = !cfg.IsDevelopment()
	store.Options.SameSite = http.SameSiteLaxMode
	return store, nil
}

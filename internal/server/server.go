// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	myHTTP "github.com/MKhiriev/go-web-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/routes"
)

// Server is a configured HTTP service.
type Server struct {
	cfg    *config.StructuredConfig
	logger *logger.Logger
	files  *logger.Files

	handler  http.Handler
	injector *routes.Injector
	stages   []string

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	serveErr chan error
}

// New builds the pipeline for cfg. Every configuration error (unknown view
// engine, unreadable favicon, bad route declaration) is returned here, so
// a returned Server is ready to accept requests.
func New(cfg *config.StructuredConfig, opts Options) (*Server, error) {
	log := opts.Logger
	if log == nil {
		if cfg.IsDevelopment() {
			log = logger.NewDevelopmentLogger(cfg.App.Name)
		} else {
			log = logger.NewLogger(cfg.App.Name)
		}
	}

	log.Info().Msg("creating new server...")

	files, err := logger.NewFiles(cfg.Paths.Logs, cfg.App.Name, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		logger: log,
		files:  files,
	}

	s.handler, err = s.buildPipeline(myHTTP.NewHandler(cfg, log, files), opts)
	if err != nil {
		return nil, errors.Join(err, files.Close())
	}

	return s, nil
}

// Handler returns the complete request pipeline.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Stages returns the names of the pipeline stages in execution order.
// Static stages are reported as "static:<dir>".
func (s *Server) Stages() []string {
	return append([]string(nil), s.stages...)
}

// Routes returns the registered routes in registration order.
func (s *Server) Routes() []routes.Binding {
	return s.injector.Routes()
}

// Start binds the configured address and serves in the background. ctx
// bounds only the bind.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.cfg.Address(), err)
	}

	s.listener = listener
	s.serveErr = make(chan error, 1)
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}
	s.server = srv

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Err(err).Msg("HTTP server Serve")
			s.serveErr <- err
		}
		close(s.serveErr)
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	s.logger.Info().Msgf("%s listening on port %d", s.cfg.App.Name, port)

	return nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil, ErrNotStarted
	}
	return s.listener.Addr(), nil
}

// Shutdown stops accepting requests, waits for active ones until ctx is
// done and closes the log files.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()

	var err error
	if srv != nil {
		if shutdownErr := srv.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("error shutting down HTTP server: %w", shutdownErr)
		}
	}

	return errors.Join(err, s.files.Close())
}

// RunServer starts the server and blocks until SIGINT, SIGTERM or SIGQUIT
// arrive or serving fails, then shuts down within the configured timeout.
func (s *Server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Start(ctx); err != nil {
		return err
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-s.serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(serveErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return serveErr
}

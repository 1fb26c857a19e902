// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package account is a route module showing the scaffold conventions: a
// rendered index page, token login for configured users, a profile route
// behind authentication and a file upload route.
//
// Its declaration file is <routes dir>/account.yaml.
package account

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
	"github.com/MKhiriev/go-web-scaffold/internal/config"
	myHTTP "github.com/MKhiriev/go-web-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/routes"
	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
	"github.com/MKhiriev/go-web-scaffold/internal/upload"
	"github.com/MKhiriev/go-web-scaffold/internal/utils"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/MKhiriev/go-web-scaffold/models"
)

// ModuleName is the name declaration files refer to.
const ModuleName = "account"

// Handler implements the account module.
type Handler struct {
	cfg      *config.StructuredConfig
	services *service.Services
	uploader *upload.Uploader
}

// NewHandler returns the account module handlers.
func NewHandler(cfg *config.StructuredConfig, services *service.Services, uploader *upload.Uploader) *Handler {
	return &Handler{
		cfg:      cfg,
		services: services,
		uploader: uploader,
	}
}

// Module exports the handlers and middleware under the names used in
// account.yaml.
func (h *Handler) Module() *routes.Module {
	receiveFile, uploaded := h.uploader.Route(nil)

	return &routes.Module{
		Name: ModuleName,
		Handlers: map[string]web.HandlerFunc{
			"index":    h.index,
			"login":    h.login,
			"profile":  h.profile,
			"uploaded": uploaded,
		},
		Middleware: map[string]web.Middleware{
			"requireUser": myHTTP.RequireUser,
			"receiveFile": receiveFile,
		},
	}
}

type indexPage struct {
	Name    string
	Flashes []any
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) error {
	flashes, err := web.Flashes(w, r)
	if err != nil && !errors.Is(err, web.ErrNoFlashStore) {
		logger.FromRequest(r).Err(err).Msg("flash messages unavailable")
	}

	return web.Render(w, r, http.StatusOK, "index", indexPage{
		Name:    h.cfg.App.Name,
		Flashes: flashes,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := web.DecodeBody(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			return web.NewError(http.StatusBadRequest, app.MsgInvalidDataProvided, err)
		case errors.Is(err, service.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			return web.NewError(http.StatusUnauthorized, app.MsgInvalidLoginPassword, err)
		default:
			return fmt.Errorf("unexpected error occurred during user login: %w", err)
		}
	}

	signed, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return err
	}

	if err = web.AddFlash(w, r, "signed in as "+user.Login); err != nil && !errors.Is(err, web.ErrNoFlashStore) {
		log.Err(err).Msg("error adding flash message")
	}

	log.Debug().Str("login", user.Login).Msg("user successfully logged in")
	return utils.WriteJSON(w, http.StatusOK, models.TokenResponse{Token: signed})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) error {
	claims, ok := token.FromContext(r.Context())
	if !ok {
		return web.NewError(http.StatusUnauthorized, app.MsgUnauthorized, myHTTP.ErrNoUser)
	}

	var user models.User
	if err := claims.Decode(&user); err != nil {
		return web.NewError(http.StatusUnauthorized, app.MsgUnauthorized, err)
	}

	return utils.WriteJSON(w, http.StatusOK, user)
}

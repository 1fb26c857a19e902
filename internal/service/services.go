package service

import (
	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
)

type Services struct {
	AuthService AuthService
}

func NewServices(cfg *config.StructuredConfig, tokens *token.Manager, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg.App.Users, tokens, logger),
	}
}

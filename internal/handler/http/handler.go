package http

import (
	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

// Handler holds the dependencies shared by the pipeline stages.
type Handler struct {
	cfg *config.StructuredConfig

	logger *logger.Logger
	files  *logger.Files
}

// NewHandler returns a Handler writing request diagnostics to log and the
// access and error log files.
func NewHandler(cfg *config.StructuredConfig, log *logger.Logger, files *logger.Files) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		cfg:    cfg,
		logger: log,
		files:  files,
	}
}

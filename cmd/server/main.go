package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/handler/account"
	myHTTP "github.com/MKhiriev/go-web-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/routes"
	"github.com/MKhiriev/go-web-scaffold/internal/server"
	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
	"github.com/MKhiriev/go-web-scaffold/internal/upload"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-web-scaffold").Fatal().Err(err).Msg("error getting configs")
	}

	var log *logger.Logger
	if cfg.IsDevelopment() {
		log = logger.NewDevelopmentLogger(cfg.App.Name)
	} else {
		log = logger.NewLogger(cfg.App.Name)
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storage, err := upload.NewStorage(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upload storage")
	}

	tokens := token.NewManager(cfg.Token)
	services := service.NewServices(cfg, tokens, log)
	accounts := account.NewHandler(cfg, services, upload.NewUploader(cfg, storage))

	modules, err := routes.NewRegistry(accounts.Module())
	if err != nil {
		log.Fatal().Err(err).Msg("error registering route modules")
	}

	srv, err := server.New(cfg, server.Options{
		Before:  []web.Middleware{myHTTP.Authenticate(tokens)},
		Modules: modules,
		Logger:  log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

package main

import (
	"context"
	"fmt"

	"github.com/JahangirOsman/hdp-webapp/internal/config"
	"github.com/JahangirOsman/hdp-webapp/internal/dataset"
	handlerhttp "github.com/JahangirOsman/hdp-webapp/internal/handler/http"
	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/internal/ml"
	"github.com/JahangirOsman/hdp-webapp/internal/server"
	"github.com/JahangirOsman/hdp-webapp/internal/service"
	"github.com/JahangirOsman/hdp-webapp/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hdp-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	classifier, err := ml.Load(cfg.App.ModelPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.ModelPath).Msg("error loading classifier artifact")
	}

	data, err := dataset.Load(cfg.App.DatasetPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.DatasetPath).Msg("error loading dataset")
	}

	userRepository := store.NewUserRepository(db, log)
	services := service.NewServices(userRepository, classifier, data, log)

	handler, err := handlerhttp.NewHandler(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(2)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewClientLogger("note-sync-client", cfg.LogFile)
	log.Debug().Any("config", cfg).Stringer("build", buildInfo).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := app.Run(ctx, cfg.Command, cfg.CommandArgs)
	if err = app.Close(); err != nil {
		log.Error().Err(err).Msg("error closing client")
	}

	if runErr != nil {
		log.Error().Err(runErr).Str("command", cfg.Command).Msg("client command failed")
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

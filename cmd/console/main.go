package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-braintacle/internal/adapter"
	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/console"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger(os.Stderr, os.Getenv("BRAINTACLE_VERBOSE") != "")

	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	rootCmd := console.NewRootCommand(console.New(serverAdapter, os.Stdout, log), info)

	if err = rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

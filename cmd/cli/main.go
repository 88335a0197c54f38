package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/navbug/compintel-cli/internal/buildinfo"
	"github.com/navbug/compintel-cli/internal/client/cli"
	"github.com/navbug/compintel-cli/internal/client/config"
	"github.com/navbug/compintel-cli/internal/logging"
)

func main() {
	buildinfo.Print(os.Stdout)

	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	})
	logger := logging.NewSlogLogger(slog.New(handler))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-swgen/cmd/swgen/commands"
	"github.com/goliatone/go-swgen/pkg/logging"
)

// Version information (set via ldflags during build)
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Early logging until flags are parsed.
	if err := logging.Setup(logging.Config{Level: logging.LevelFromEnv("info")}); err != nil {
		_ = logging.Setup(logging.Config{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version, Commit); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

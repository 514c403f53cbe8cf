// Package main is the entry point for quantumlab, a console tool that plots textbook
// quantum-mechanics phenomena: double-slit interference, a particle in a box and a qubit
// on the Bloch sphere.
//
// Running the binary without arguments shows the simulation menu. The render subcommand
// writes figures to disk without prompting.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aristath/quantumlab/internal/config"
	"github.com/aristath/quantumlab/pkg/logger"
)

var version = "0.1.0-dev"

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	// SIGINT/SIGTERM unblock whichever display is showing a figure
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(cfg, log)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("quantumlab failed")
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgball2608/freecycle-offer-bot/internal/app"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{})

	watcher := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := watcher.Start(context.Background()); err != nil {
		log.Error("Failed to start freecycle offer watcher", "error", err)
		os.Exit(1)
	}
	log.Info("Freecycle offer watcher started")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Shutting down", "signal", sig.String())

	// Gracefully shutdown the application
	if err := watcher.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}

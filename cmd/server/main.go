package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beaconlabs/beacon/internal/config"
	platform "github.com/beaconlabs/beacon/internal/platform/config"
	"github.com/beaconlabs/beacon/internal/platform/logging"
	"github.com/beaconlabs/beacon/internal/server"
)

// setupConfig runs the one-shot validation pass. It happens before logging is
// initialized, so failures go straight to stderr as the operator report and
// the process exits without starting anything else.
func setupConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		variant, _ := platform.CurrentVariant(platform.OS())
		var verrs platform.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprint(os.Stderr, verrs.Report(variant))
		} else {
			fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		}
		os.Exit(1)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, stopping server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Configuration loaded",
		"variant", cfg.Variant,
		"app", cfg.Static.DisplayName,
		"config", cfg.Redacted(),
	)

	srv := server.New(cfg)
	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

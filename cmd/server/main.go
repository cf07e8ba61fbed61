package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"medication-dashboard/internal/config"
	"medication-dashboard/internal/dataset"
	"medication-dashboard/internal/errors"
	"medication-dashboard/internal/server"
	"medication-dashboard/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics()

	start := time.Now()
	ds, err := dataset.Load(ctx, cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		// The user-facing message goes to stderr before the detailed log line.
		fmt.Fprintln(os.Stderr, datasetErrorMessage(err, cfg.Dataset.Path))
		return err
	}
	metrics.RecordProcessingTime("dataset_load", time.Since(start))
	metrics.RecordGauge("dataset_rows", float64(ds.Len()), nil)

	claimRepo, closeStore, err := server.OpenStore(ctx, cfg.Dataset, ds, cfg.IsDevelopment() && cfg.Logging.Level == "debug")
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Warn("failed to close dataset store", "error", err)
		}
	}()

	srv := server.NewServer(cfg, claimRepo, metrics)
	e, err := srv.SetupRoutes(ctx)
	if err != nil {
		return err
	}
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"backend", cfg.Dataset.Backend,
			"rows", ds.Len(),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() || cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// datasetErrorMessage picks the Indonesian message shown when startup fails
func datasetErrorMessage(err error, path string) string {
	var schema *dataset.SchemaMismatchError
	switch {
	case stderrors.Is(err, dataset.ErrFileNotFound):
		return fmt.Sprintf("File '%s' tidak ditemukan. Pastikan file ada di direktori yang benar.", path)
	case stderrors.As(err, &schema):
		return fmt.Sprintf("%s Pastikan kolom berikut ada: %s (tidak ditemukan: %s)",
			errors.GetErrorMessage(errors.DatasetSchemaMismatch),
			strings.Join(schema.Required, ", "),
			strings.Join(schema.Missing, ", "))
	default:
		return errors.GetErrorMessage(errors.DatasetUnreadable)
	}
}

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

	"seroter.com/ordersheet/config"
	"seroter.com/ordersheet/cursor"
	"seroter.com/ordersheet/pipeline"
	"seroter.com/ordersheet/scheduler"
	"seroter.com/ordersheet/sheet"
	"seroter.com/ordersheet/shopify"
	"seroter.com/ordersheet/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("order export failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := cursor.Open(ctx, cfg.Cursor)
	if err != nil {
		return fmt.Errorf("open cursor store: %w", err)
	}
	defer store.Close()

	fetcher := shopify.NewClient(cfg.Shopify)
	writer := sheet.NewWriter(cfg.Sheet, store)
	runner := pipeline.NewRunner(store, fetcher, writer)

	sched, err := scheduler.New(cfg.Schedule, runner)
	if err != nil {
		return err
	}

	if cfg.AppPort != "" {
		e := web.NewServer(ctx, runner)
		go func() {
			slog.Info("starting status server", "port", cfg.AppPort)
			if err := e.Start(":" + cfg.AppPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("status server failed", "error", err)
			}
		}()
		defer func() {
			ctxShut, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(ctxShut); err != nil {
				slog.Error("status server shutdown failed", "error", err)
			}
		}()
	}

	slog.Info("order export started", "store", cfg.Shopify.Store, "spreadsheet", cfg.Sheet.SpreadsheetId, "cursor_backend", cfg.Cursor.Backend)
	return sched.Start(ctx)
}

func setupLogger(format string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

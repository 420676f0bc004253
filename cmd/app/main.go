package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdesk/cmd"
	httpadapter "salesdesk/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := cmd.NewLogger(cfg, os.Stdout)

	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app := cmd.NewCompositionRoot(cfg, db, logger)

	routerCfg, err := app.CreateRouterConfig(app.CreateHTTPServer())
	if err != nil {
		log.Fatalf("Error loading API description: %v", err)
	}
	e, err := httpadapter.NewRouter(routerCfg)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if relay := app.Relay(); relay != nil {
		go func() {
			if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("notification relay stopped", "error", err)
			}
		}()
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr())
		if err := e.Start(cfg.HTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Open event streams only end once their listeners are dropped.
	app.Hub().Close()
	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

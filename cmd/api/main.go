package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/suraksha-net/suraksha/internal/api/handlers"
	"github.com/suraksha-net/suraksha/internal/api/router"
	"github.com/suraksha-net/suraksha/internal/config"
	"github.com/suraksha-net/suraksha/internal/engine"
	"github.com/suraksha-net/suraksha/internal/lookup"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/validator"
	"github.com/suraksha-net/suraksha/internal/repository/store"
	"github.com/suraksha-net/suraksha/internal/services"
	"github.com/suraksha-net/suraksha/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := store.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Lookup registries backing the engine's external checks
	reputation, err := lookup.LoadReputationRegistry(cfg.Registry.ReputationPath)
	if err != nil {
		log.Fatalf("Failed to load reputation registry: %v", err)
	}
	zones, err := lookup.LoadZoneRegistry(cfg.Registry.DisasterZonePath)
	if err != nil {
		log.Fatalf("Failed to load disaster zone registry: %v", err)
	}
	feeds, err := lookup.LoadFeedRegistry(cfg.Registry.OfficialFeedPath)
	if err != nil {
		log.Fatalf("Failed to load official feed registry: %v", err)
	}

	eng := engine.New(reputation, zones, feeds, engine.Config{
		VerifiedThreshold: cfg.Engine.VerifiedThreshold,
		BatchConcurrency:  cfg.Engine.BatchConcurrency,
		LookupTimeout:     cfg.Engine.LookupTimeout,
	}, log)

	// Repositories
	alertRepo := store.NewAlertRepository(db)
	verificationRepo := store.NewVerificationRepository(db)
	reportRepo := store.NewReportRepository(db)

	// Services
	alertService := services.NewAlertService(alertRepo, log)
	verificationService := services.NewVerificationService(eng, alertRepo, verificationRepo, log)
	reportService := services.NewReportService(reportRepo, log)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:       handlers.NewHealthHandler(db, log),
		Alert:        handlers.NewAlertHandler(alertService, log, val),
		Verification: handlers.NewVerificationHandler(verificationService, log, val),
		Report:       handlers.NewReportHandler(reportService, log, val),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background sweeper for unverified alerts
	if cfg.Worker.Enabled {
		sweeper := worker.NewVerifierSweeper(alertRepo, verificationService, cfg.Worker, log)
		if err := sweeper.Start(ctx); err != nil {
			log.Fatalf("Failed to start verification sweeper: %v", err)
		}
		defer sweeper.Stop()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("API server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Graceful shutdown failed")
	}
}

// Package main is the entry point for the LifeTrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lifetrack/backend/config"
	"github.com/lifetrack/backend/internal/infra/db"
	"github.com/lifetrack/backend/internal/infra/dependency"
	"github.com/lifetrack/backend/internal/infra/server/router"
	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting LifeTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)

	var r *router.Router
	backgroundCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)

		// Health endpoint only; data routes are not registered
		healthController := controller.NewHealthController(func() bool { return false })
		r = router.NewRouter(healthController, nil, nil, nil, nil, nil, nil)
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.TaskModel{},
			&model.HabitModel{},
			&model.GoalModel{},
			&model.FinancesModel{},
			&model.ExpenseCategoryModel{},
			&model.FinancialGoalModel{},
			&model.AccountModel{},
			&model.InvestmentModel{},
			&model.RecurringBillModel{},
			&model.EmailQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		injector, err := dependency.NewInjector(cfg, database.DB())
		if err != nil {
			slog.Error("Failed to wire dependencies", "error", err)
			os.Exit(1)
		}
		r = injector.Router

		// Start the email worker
		if cfg.Email.WorkerEnabled {
			go injector.EmailWorker.Start(backgroundCtx)
		} else {
			slog.Info("Email worker disabled")
		}

		// Start the bill reminder scanner
		if cfg.Reminder.Enabled {
			go runBillScanner(backgroundCtx, injector, cfg.Reminder.ScanInterval)
		} else {
			slog.Info("Bill reminder scanner disabled")
		}
	}

	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runBillScanner periodically scans recurring bills and queues reminder
// emails for those entering their reminder window.
func runBillScanner(ctx context.Context, injector *dependency.Injector, interval time.Duration) {
	slog.Info("Bill reminder scanner started", "scan_interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Scan immediately on start, then on ticker
	scan := func() {
		queued, err := injector.BillScanner.Execute(ctx)
		if err != nil {
			slog.Error("Bill reminder scan failed", "error", err)
			return
		}
		if queued > 0 {
			slog.Info("Bill reminders queued", "count", queued)
		}
	}
	scan()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Bill reminder scanner shutting down")
			return
		case <-ticker.C:
			scan()
		}
	}
}

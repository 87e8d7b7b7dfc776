package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Dan9191/loan-dataset/internal/config"
	"github.com/Dan9191/loan-dataset/internal/handler"
	"github.com/Dan9191/loan-dataset/internal/repository"
	"github.com/Dan9191/loan-dataset/internal/service"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration (.env included) before the logger so LOG_LEVEL applies
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.LogLevel)

	// Database is optional: without DB_CONN snapshots go to files only
	var store service.Store
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		repo, err := repository.Prepare(context.Background(), db)
		if err != nil {
			logger.Fatalf("Failed to prepare database: %v", err)
		}
		store = repo
	}

	svc := service.NewService(cfg, store, logger)
	h := handler.NewHandler(svc, cfg, logger)

	// Rolling snapshots: each tick publishes the next seed
	if cfg.SnapshotSchedule != "" {
		var tick atomic.Int64
		c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
		_, err := c.AddFunc(cfg.SnapshotSchedule, func() {
			seed := cfg.Seed + tick.Add(1) - 1
			if _, err := svc.Run(context.Background(), cfg.Samples, seed); err != nil {
				logger.Errorf("Snapshot for seed %d failed: %v", seed, err)
			}
		})
		if err != nil {
			logger.Fatalf("Invalid SNAPSHOT_SCHEDULE %q: %v", cfg.SnapshotSchedule, err)
		}
		c.Start()
		defer c.Stop()
		logger.Infof("Snapshot schedule %q starting at seed %d", cfg.SnapshotSchedule, cfg.Seed)
	}

	// Setup router
	r := mux.NewRouter()
	h.Routes(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

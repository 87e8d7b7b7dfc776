package main

import (
	"context"
	"database/sql"
	"flag"

	"github.com/Dan9191/loan-dataset/internal/config"
	"github.com/Dan9191/loan-dataset/internal/repository"
	"github.com/Dan9191/loan-dataset/internal/service"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Flags default to the environment configuration (see internal/config):
//
//	-n         number of loans to generate (SAMPLES, 300)
//	-seed      random seed (SEED, 42)
//	-raw       raw table path (RAW_PATH)
//	-golden    golden table path (GOLDEN_PATH)
//	-chart     optional default-rate chart, format from extension (CHART_PATH)
//	-rederive  rebuild the golden table from an existing raw table instead of generating
//
// Example:
//
//	go run ./cmd/loangen -n 1000 -seed 7 -chart data/default_rate.png
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	flag.IntVar(&cfg.Samples, "n", cfg.Samples, "Number of loan records to generate")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	flag.StringVar(&cfg.RawPath, "raw", cfg.RawPath, "Path of the raw dataset CSV")
	flag.StringVar(&cfg.GoldenPath, "golden", cfg.GoldenPath, "Path of the golden dataset CSV")
	flag.StringVar(&cfg.ChartPath, "chart", cfg.ChartPath, "Optional path of a default-rate chart")
	rederive := flag.Bool("rederive", false, "Rebuild the golden dataset from the existing raw dataset")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	if *rederive {
		if err := service.NewService(cfg, nil, logger).Rederive(); err != nil {
			logger.Fatalf("Rederive failed: %v", err)
		}
		return
	}

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
	if _, err := svc.Run(context.Background(), cfg.Samples, cfg.Seed); err != nil {
		logger.Fatalf("Generation failed: %v", err)
	}
}

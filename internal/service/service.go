package service

import (
	"context"
	"fmt"
	"io"

	"github.com/Dan9191/loan-dataset/internal/config"
	"github.com/Dan9191/loan-dataset/internal/dataset"
	"github.com/Dan9191/loan-dataset/internal/derive"
	"github.com/Dan9191/loan-dataset/internal/generator"
	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/Dan9191/loan-dataset/internal/report"
	"github.com/sirupsen/logrus"
)

// Store persists a generated snapshot
type Store interface {
	SaveSnapshot(ctx context.Context, seed int64, raw []models.LoanRecord, golden []models.DerivedRecord) error
}

// Snapshot is one generated pair of raw and golden tables
type Snapshot struct {
	Seed    int64
	Raw     []models.LoanRecord
	Golden  []models.DerivedRecord
	Summary report.Summary
}

// Service handles dataset generation and publishing
type Service struct {
	store  Store
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service. store may be nil when no database is configured.
func NewService(cfg *config.Config, store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log, config: cfg}
}

// Build generates n raw records from seed and derives the golden table
func (s *Service) Build(n int, seed int64) (*Snapshot, error) {
	gen, err := generator.New(seed, s.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	raw, err := gen.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate loans: %w", err)
	}
	golden, err := derive.Build(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to derive golden table: %w", err)
	}

	return &Snapshot{
		Seed:    seed,
		Raw:     raw,
		Golden:  golden,
		Summary: report.Summarize(golden),
	}, nil
}

// Run builds a snapshot and publishes it to the configured files, database and chart
func (s *Service) Run(ctx context.Context, n int, seed int64) (*Snapshot, error) {
	snap, err := s.Build(n, seed)
	if err != nil {
		return nil, err
	}

	if err := dataset.SaveFile(s.config.RawPath, func(w io.Writer) error {
		return dataset.WriteRaw(w, snap.Raw)
	}); err != nil {
		return nil, fmt.Errorf("failed to write raw dataset: %w", err)
	}
	if err := dataset.SaveFile(s.config.GoldenPath, func(w io.Writer) error {
		return dataset.WriteGolden(w, snap.Golden)
	}); err != nil {
		return nil, fmt.Errorf("failed to write golden dataset: %w", err)
	}

	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, seed, snap.Raw, snap.Golden); err != nil {
			return nil, fmt.Errorf("failed to store snapshot: %w", err)
		}
	}

	if s.config.ChartPath != "" {
		if err := report.SaveChart(snap.Summary, s.config.ChartPath); err != nil {
			return nil, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"seed":         seed,
		"rows":         snap.Summary.Rows,
		"default_rate": snap.Summary.DefaultRate,
		"raw_path":     s.config.RawPath,
		"golden_path":  s.config.GoldenPath,
		"stored":       s.store != nil,
	}).Info("Generated raw and golden datasets")
	return snap, nil
}

// Rederive rebuilds the golden table at GoldenPath from the raw table at RawPath
func (s *Service) Rederive() error {
	raw, err := dataset.LoadRaw(s.config.RawPath)
	if err != nil {
		return fmt.Errorf("failed to load raw dataset: %w", err)
	}
	golden, err := derive.Build(raw)
	if err != nil {
		return fmt.Errorf("failed to derive golden table: %w", err)
	}
	if err := dataset.SaveFile(s.config.GoldenPath, func(w io.Writer) error {
		return dataset.WriteGolden(w, golden)
	}); err != nil {
		return fmt.Errorf("failed to write golden dataset: %w", err)
	}

	s.log.Infof("Rebuilt golden dataset %s from %d raw rows", s.config.GoldenPath, len(raw))
	return nil
}

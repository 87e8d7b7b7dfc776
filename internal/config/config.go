package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Samples          int
	Seed             int64
	RawPath          string
	GoldenPath       string
	ChartPath        string
	DBConn           string
	Port             string
	LogLevel         string
	SnapshotSchedule string
}

// NewConfig loads configuration from a .env file (if any) and environment variables
func NewConfig() (*Config, error) {
	// a missing .env is fine, the environment still applies
	_ = godotenv.Load()

	samples, err := strconv.Atoi(getEnv("SAMPLES", "300"))
	if err != nil {
		return nil, fmt.Errorf("SAMPLES must be an integer: %w", err)
	}
	seed, err := strconv.ParseInt(getEnv("SEED", "42"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SEED must be an integer: %w", err)
	}

	cfg := &Config{
		Samples:          samples,
		Seed:             seed,
		RawPath:          getEnv("RAW_PATH", "data/lending_club_raw_data.csv"),
		GoldenPath:       getEnv("GOLDEN_PATH", "data/lending_club_golden_data.csv"),
		ChartPath:        getEnv("CHART_PATH", ""),
		DBConn:           getEnv("DB_CONN", ""),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that may also be overridden after loading (e.g. by flags)
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("SAMPLES must be positive, got %d", c.Samples)
	}
	if c.RawPath == "" {
		return fmt.Errorf("RAW_PATH is required")
	}
	if c.GoldenPath == "" {
		return fmt.Errorf("GOLDEN_PATH is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

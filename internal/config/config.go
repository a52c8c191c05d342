package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"frauddash/domain/dataset"
	"frauddash/internal"
	"frauddash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Analysis AnalysisConfig
	Log      LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig locates the source table
type DataConfig struct {
	File       string
	Sheet      string
	FlagColumn string
}

// AnalysisConfig holds summarizer settings
type AnalysisConfig struct {
	NullPolicy    dataset.NullPolicy
	DensityPoints int
	HeadRows      int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level internal.LogLevel
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			File:       getEnvOrDefault("DATA_FILE", "Cleaned.csv"),
			Sheet:      getEnvOrDefault("DATA_SHEET", ""),
			FlagColumn: getEnvOrDefault("FLAG_COLUMN", "flag"),
		},
		Analysis: AnalysisConfig{
			NullPolicy:    dataset.NullPolicy(strings.ToLower(getEnvOrDefault("NULL_POLICY", string(dataset.NullsExclude)))),
			DensityPoints: getEnvIntOrDefault("DENSITY_POINTS", 500),
			HeadRows:      getEnvIntOrDefault("HEAD_ROWS", 5),
		},
	}

	level, err := internal.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}
	config.Log.Level = level

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings again after a caller has adjusted them
func (c *Config) Validate() error {
	if err := validateConfig(c); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	return nil
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Data.File) == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	switch strings.ToLower(filepath.Ext(config.Data.File)) {
	case ".csv", ".xlsx":
	default:
		return errors.ConfigInvalid("DATA_FILE must be a .csv or .xlsx file")
	}
	if strings.TrimSpace(config.Data.FlagColumn) == "" {
		return errors.ConfigInvalid("FLAG_COLUMN is required")
	}
	if !config.Analysis.NullPolicy.Valid() {
		return errors.ConfigInvalid("NULL_POLICY must be exclude or keep")
	}
	if config.Analysis.DensityPoints < 2 {
		return errors.ConfigInvalid("DENSITY_POINTS must be at least 2")
	}
	if config.Analysis.HeadRows < 0 {
		return errors.ConfigInvalid("HEAD_ROWS cannot be negative")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

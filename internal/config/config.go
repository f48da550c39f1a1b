package config

import (
	"os"
	"strconv"

	"polygen/domain/polymer"
	"polygen/internal/errors"
)

// Config represents the complete batch configuration
type Config struct {
	Batch  BatchConfig
	Output OutputConfig
}

// BatchConfig holds generation and trial settings
type BatchConfig struct {
	Trials       int     // Number of independent polymers per batch
	Length       int     // Requested polymer length in monomers
	GProbability float64 // Probability (or fixed fraction) of G
	FixedCount   bool    // Exact G count vs Bernoulli per unit
	DimerMode    bool    // Units emit two identical symbols
	Seed         int64   // Base seed for the batch RNG stream
}

// OutputConfig holds file system paths
type OutputConfig struct {
	Dir string // Directory for the per-length sequence file
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Batch: BatchConfig{
			Trials:       getEnvIntOrDefault("POLYGEN_TRIALS", 10000),
			Length:       getEnvIntOrDefault("POLYGEN_LENGTH", 100),
			GProbability: getEnvFloatOrDefault("POLYGEN_G_PROB", 0.25),
			FixedCount:   getEnvBoolOrDefault("POLYGEN_FIXED", true),
			DimerMode:    getEnvBoolOrDefault("POLYGEN_DIMERS", false),
			Seed:         getEnvInt64OrDefault("POLYGEN_SEED", 42),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("POLYGEN_OUT_DIR", "data"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate rejects invalid configuration before any generation begins
func (c *Config) Validate() error {
	if c.Batch.Trials <= 0 {
		return errors.ConfigInvalid("trial count must be positive")
	}
	if err := c.GenerationConfig().Validate(); err != nil {
		return errors.Wrap(err, "invalid generation settings")
	}
	if c.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	return nil
}

// GenerationConfig projects the batch settings onto one generation call
func (c *Config) GenerationConfig() polymer.GenerationConfig {
	return polymer.GenerationConfig{
		Length:       c.Batch.Length,
		GProbability: c.Batch.GProbability,
		FixedCount:   c.Batch.FixedCount,
		DimerMode:    c.Batch.DimerMode,
	}
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

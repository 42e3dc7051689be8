// Package config handles environment configuration loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gobank-labs/minibank/internal/domain"
)

// Config holds all configuration values for the application.
type Config struct {
	Environment string
	LogLevel    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Environment: getEnv("ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Seed describes the accounts a ledger walkthrough starts with.
type Seed struct {
	Accounts []SeedAccount `yaml:"accounts"`
}

// SeedAccount is one entry of a seed file. An omitted or zero id requests
// auto-assignment.
type SeedAccount struct {
	ID      uint64  `yaml:"id"`
	Name    string  `yaml:"name"`
	Balance float64 `yaml:"balance"`
}

// Account converts a seed entry into a domain record.
func (s SeedAccount) Account() domain.Account {
	return domain.NewAccount(s.ID, s.Name, s.Balance)
}

// LoadSeed parses a YAML seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &seed, nil
}

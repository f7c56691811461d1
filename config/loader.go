package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the Ville de Montréal deployment.
const (
	DefaultJurisdiction = "ville.montreal.qc.ca"
	DefaultTimezone     = "America/Montreal"
	DefaultLanguage     = "fr"
	DefaultSourceSRID   = 32188
	DefaultPostgresDSN  = "dbname=open511 user=postgres"
)

// Default returns the built-in configuration, before any file or
// environment overrides.
func Default() AppConfig {
	return AppConfig{
		Jurisdiction: DefaultJurisdiction,
		Timezone:     DefaultTimezone,
		Language:     DefaultLanguage,
		Feed:         FeedConfig{SourceSRID: DefaultSourceSRID},
		Postgres:     PostgresConfig{DSN: DefaultPostgresDSN},
	}
}

// LoadAppConfig loads and validates the application configuration.
// A missing file is not an error when path is empty: the defaults are
// complete enough to run against the Montreal feed. POSTGRES_DSN in the
// environment overrides the configured DSN either way.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()

	paths := []string{"config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil && path != "" {
		return AppConfig{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
	}

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Location = loc
	return cfg, nil
}

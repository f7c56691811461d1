// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Built-in defaults match the Ville de Montréal deployment, so the binary
// runs without a config file; POSTGRES_DSN overrides the database DSN.
package config

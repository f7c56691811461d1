package config

import "time"

// FeedConfig contains Geo-Trafic source feed configuration
type FeedConfig struct {
	URL string `yaml:"url" validate:"omitempty,url"`
	// SourceSRID is the spatial reference of link geometries in the feed.
	// Montreal publishes MTM zone 8 (EPSG:32188).
	SourceSRID int `yaml:"source_srid" validate:"gt=0"`
}

// PostgresConfig contains the connection settings for the PostGIS
// instance used to reproject link geometries.
type PostgresConfig struct {
	DSN string `yaml:"dsn" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Jurisdiction string         `yaml:"jurisdiction" validate:"required"`
	Timezone     string         `yaml:"timezone" validate:"required"`
	Language     string         `yaml:"language" validate:"required"`
	Feed         FeedConfig     `yaml:"feed"`
	Postgres     PostgresConfig `yaml:"postgres"`

	// Location is resolved from Timezone during load.
	Location *time.Location `yaml:"-"`
}

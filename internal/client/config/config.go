// Package config assembles runtime settings for the tjslctl console.
//
// Sources are applied in order, later ones winning:
// defaults -> JSON file (-c/-config) -> environment (.env supported) -> flags.
package config

import "time"

// Config holds runtime settings for the admin console.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - DatabasePath: SQLite file holding the local credential store.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with the local-development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "tjslctl.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "github.com/kelseyhightower/envconfig"

// Config is loaded from NEXUS_-prefixed environment variables with sensible
// defaults, 12-factor style.
type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	DBPath   string `envconfig:"DB_PATH" default:"nexus.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("nexus", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		DBPath:   "nexus.db",
		LogLevel: "info",
	}
}

// LoadOrDefault loads from the environment, falling back to defaults if the
// environment is unusable.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

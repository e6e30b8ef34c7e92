// Package config provides configuration management for the rule mapping
// services.
package config

// Config holds configuration for the rule mapping CLI and services.
type Config struct {
	DatabaseURL string
	LogLevel    string
	LogFormat   string
	Locale      string
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DatabaseURL: "sqlite://trackrules.db",
		LogLevel:    "info",
		LogFormat:   "json",
		Locale:      "en",
	}
}

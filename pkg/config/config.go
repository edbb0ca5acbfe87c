// Package config loads converter defaults from a YAML file
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds user defaults for the CLI and API server
type Config struct {
	Name     string `yaml:"name"`
	Tempo    int    `yaml:"tempo"`
	Device   string `yaml:"device"`
	LogLevel string `yaml:"log_level"`
	Server   Server `yaml:"server"`
}

// Server holds API server settings
type Server struct {
	Port int `yaml:"port"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Name:     "test",
		Tempo:    210,
		Device:   "bluejay",
		LogLevel: "info",
		Server:   Server{Port: 8080},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %d", c.Tempo)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	return nil
}

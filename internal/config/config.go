package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Database DatabaseConfig `yaml:"database"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Server   ServerConfig   `yaml:"server"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig enables report snapshots when URL is set.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// HermesConfig enables report events when URL is set.
type HermesConfig struct {
	URL string `yaml:"url"`
}

// ServerConfig enables the read-only API when Port > 0. Metrics are served on
// MetricsPort, or on the API port when MetricsPort is 0.
type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

// Enabled reports whether the process should keep serving after printing.
func (s ServerConfig) Enabled() bool {
	return s.Port > 0
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	if c.Server.Port < 0 || c.Server.MetricsPort < 0 {
		return fmt.Errorf("ports must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ALIGNMENT_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("ALIGNMENT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ALIGNMENT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ALIGNMENT_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ALIGNMENT_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("ALIGNMENT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ALIGNMENT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
}

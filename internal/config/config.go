package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/claude/fitlog/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	User    UserConfig    `yaml:"user"`
	Logging LoggingConfig `yaml:"logging"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

// UserConfig is an optional default profile so the single-user case can
// skip the name/weight prompts.
type UserConfig struct {
	Name         string  `yaml:"name"`
	WeightKg     float64 `yaml:"weight_kg"`
	FitnessLevel string  `yaml:"fitness_level"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name to a slog.Level. Empty or
// unknown values default to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix FITLOG_ and underscore-separated
// paths:
//
//	FITLOG_CATALOG_PATH,
//	FITLOG_USER_NAME, FITLOG_USER_WEIGHT_KG, FITLOG_USER_FITNESS_LEVEL,
//	FITLOG_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITLOG_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("FITLOG_USER_NAME"); v != "" {
		cfg.User.Name = v
	}
	if v := os.Getenv("FITLOG_USER_WEIGHT_KG"); v != "" {
		if kg, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.User.WeightKg = kg
		}
	}
	if v := os.Getenv("FITLOG_USER_FITNESS_LEVEL"); v != "" {
		cfg.User.FitnessLevel = v
	}
	if v := os.Getenv("FITLOG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func (c *Config) validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	// The default user profile is optional, but when given it must be
	// usable as-is.
	if c.User.Name != "" && c.User.WeightKg <= 0 {
		return fmt.Errorf("user.weight_kg is required when user.name is set")
	}
	if c.User.FitnessLevel != "" {
		if _, err := models.ParseFitnessLevel(c.User.FitnessLevel); err != nil {
			return fmt.Errorf("user.fitness_level: %w", err)
		}
	}
	return nil
}

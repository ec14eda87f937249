// Package config handles loading and validation of arrival configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied before any file or environment override.
const (
	DefaultFolder    = "ArrivalLog"
	DefaultLogLevel  = "warn"
	DefaultFirstYear = 2025
	DefaultLastYear  = 2030
)

// Config holds runtime settings. Classification thresholds are not part of it.
type Config struct {
	Folder string       `yaml:"folder"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`

	// Source is the config file that was read, if any.
	Source string `yaml:"-"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ReportConfig bounds the years scanned by report mode.
type ReportConfig struct {
	FirstYear int `yaml:"firstYear"`
	LastYear  int `yaml:"lastYear"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Folder: DefaultFolder,
		Log:    LogConfig{Level: DefaultLogLevel},
		Report: ReportConfig{
			FirstYear: DefaultFirstYear,
			LastYear:  DefaultLastYear,
		},
	}
}

// Load builds a Config from defaults, an optional YAML file named by
// ARRIVAL_CONFIG_PATH, and ARRIVAL_* environment overrides.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path := getenv("ARRIVAL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.Source = path
	}

	if folder := getenv("ARRIVAL_FOLDER"); folder != "" {
		cfg.Folder = folder
	}
	if level := getenv("ARRIVAL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if v := getenv("ARRIVAL_REPORT_FIRST_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ARRIVAL_REPORT_FIRST_YEAR: %w", err)
		}
		cfg.Report.FirstYear = year
	}
	if v := getenv("ARRIVAL_REPORT_LAST_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ARRIVAL_REPORT_LAST_YEAR: %w", err)
		}
		cfg.Report.LastYear = year
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Folder == "" {
		return fmt.Errorf("folder is required")
	}
	if strings.ContainsAny(cfg.Folder, `/\`) {
		return fmt.Errorf("folder %q must be a single path element", cfg.Folder)
	}
	if cfg.Report.FirstYear > cfg.Report.LastYear {
		return fmt.Errorf("report.firstYear %d is after report.lastYear %d",
			cfg.Report.FirstYear, cfg.Report.LastYear)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	return nil
}

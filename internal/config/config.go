// Package config provides configuration management for the corpus pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoCategories           = errors.New("at least one category is required")
	ErrCategoryMissingName    = errors.New("category name is required")
	ErrCategoryNoSources      = errors.New("category needs at least one source")
	ErrSourceMissingName      = errors.New("source name is required")
	ErrSourceMissingPath      = errors.New("source path is required")
	ErrInvalidMinTokens       = errors.New("pipeline.min_tokens must be non-negative")
	ErrInvalidYearRange       = errors.New("pipeline.years.min cannot exceed pipeline.years.max")
	ErrMissingBalancePair     = errors.New("both balance categories are required")
	ErrBalanceCategoryUnknown = errors.New("balance category not present in categories")
	ErrMissingFlatPath        = errors.New("output.flat_path is required")
	ErrMissingFullPath        = errors.New("output.full_path is required")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig contains the assembly settings.
type PipelineConfig struct {
	// Categories are loaded in declaration order; within a category its
	// sources load in declaration order and files within a source in
	// sorted name order. Deduplication keeps the first-loaded record, so
	// this order decides which category wins a cross-listed URL.
	Categories []CategoryConfig `yaml:"categories"`
	Balance    BalanceConfig    `yaml:"balance"`
	Years      YearRange        `yaml:"years"`
	MinTokens  int              `yaml:"min_tokens"`
	Seed       int64            `yaml:"seed"`
}

// CategoryConfig groups the outlets sharing one source_category label.
type CategoryConfig struct {
	Name    string         `yaml:"name"`
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig points at one outlet's extract directory.
type SourceConfig struct {
	// Name labels records from this directory unless a row already
	// carries its own source column.
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// BalanceConfig names the two categories the sampler equalizes.
type BalanceConfig struct {
	CategoryA string `yaml:"category_a"`
	CategoryB string `yaml:"category_b"`
}

// YearRange bounds the years that participate in balancing, inclusive.
type YearRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// OutputConfig defines the two artifact destinations and the run report.
type OutputConfig struct {
	FlatPath   string `yaml:"flat_path"`
	FullPath   string `yaml:"full_path"`
	ReportPath string `yaml:"report_path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default pipeline parameters, applied by LoadConfig when omitted.
const (
	DefaultMinTokens = 20
	DefaultSeed      = 42
	DefaultYearMin   = 2017
	DefaultYearMax   = 2024
)

// LoadConfig loads configuration from a YAML file, applies defaults and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Pipeline.MinTokens == 0 {
		c.Pipeline.MinTokens = DefaultMinTokens
	}

	if c.Pipeline.Seed == 0 {
		c.Pipeline.Seed = DefaultSeed
	}

	if c.Pipeline.Years.Min == 0 {
		c.Pipeline.Years.Min = DefaultYearMin
	}

	if c.Pipeline.Years.Max == 0 {
		c.Pipeline.Years.Max = DefaultYearMax
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Pipeline.Categories) == 0 {
		return ErrNoCategories
	}

	for i, cat := range c.Pipeline.Categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: categories[%d]", ErrCategoryMissingName, i)
		}

		if len(cat.Sources) == 0 {
			return fmt.Errorf("%w: %s", ErrCategoryNoSources, cat.Name)
		}

		for j, src := range cat.Sources {
			if src.Name == "" {
				return fmt.Errorf("%w: %s sources[%d]", ErrSourceMissingName, cat.Name, j)
			}

			if src.Path == "" {
				return fmt.Errorf("%w: %s/%s", ErrSourceMissingPath, cat.Name, src.Name)
			}
		}
	}

	if c.Pipeline.MinTokens < 0 {
		return ErrInvalidMinTokens
	}

	if c.Pipeline.Years.Min > c.Pipeline.Years.Max {
		return ErrInvalidYearRange
	}

	if c.Pipeline.Balance.CategoryA == "" || c.Pipeline.Balance.CategoryB == "" {
		return ErrMissingBalancePair
	}

	for _, name := range []string{c.Pipeline.Balance.CategoryA, c.Pipeline.Balance.CategoryB} {
		if !c.hasCategory(name) {
			return fmt.Errorf("%w: %s", ErrBalanceCategoryUnknown, name)
		}
	}

	if c.Output.FlatPath == "" {
		return ErrMissingFlatPath
	}

	if c.Output.FullPath == "" {
		return ErrMissingFullPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

func (c *Config) hasCategory(name string) bool {
	for _, cat := range c.Pipeline.Categories {
		if cat.Name == name {
			return true
		}
	}

	return false
}

// GetCategory returns the configuration for a named category.
func (c *Config) GetCategory(name string) (CategoryConfig, bool) {
	for _, cat := range c.Pipeline.Categories {
		if cat.Name == name {
			return cat, true
		}
	}

	return CategoryConfig{}, false
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Categories: %d, MinTokens: %d, Seed: %d, Years: %d-%d}",
		len(c.Pipeline.Categories),
		c.Pipeline.MinTokens,
		c.Pipeline.Seed,
		c.Pipeline.Years.Min,
		c.Pipeline.Years.Max,
	)
}

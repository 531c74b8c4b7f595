// =============================================================================
// datatool - Configuration Module
// =============================================================================
//
// Optional YAML configuration for the presentation knobs that would
// otherwise be hard-coded: how many records a summary samples, how many
// validation errors are printed, and where validation reports go. The tool
// works with no configuration file at all; defaults cover everything.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "datatool.yaml"

// Config holds the tool configuration.
type Config struct {
	// SummaryRows is the maximum number of records the summary command
	// reads from a file.
	// Default: 20
	SummaryRows int `yaml:"summary_rows"`

	// SummaryShow is the maximum number of sample records printed.
	// Default: 5
	SummaryShow int `yaml:"summary_show"`

	// MaxErrorsShown caps the validation error lines printed to stdout.
	// The full list still decides the exit status and the report file.
	// Default: 200
	MaxErrorsShown int `yaml:"max_errors_shown"`

	// ReportDir, when set, makes the validate command write a report file
	// with every finding. Empty disables report writing.
	ReportDir string `yaml:"report_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SummaryRows:    20,
		SummaryShow:    5,
		MaxErrorsShown: 200,
	}
}

// Load reads a configuration file and fills unset or nonsensical values
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults replaces non-positive values with the built-in defaults.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.SummaryRows <= 0 {
		cfg.SummaryRows = def.SummaryRows
	}
	if cfg.SummaryShow <= 0 {
		cfg.SummaryShow = def.SummaryShow
	}
	if cfg.MaxErrorsShown <= 0 {
		cfg.MaxErrorsShown = def.MaxErrorsShown
	}
}

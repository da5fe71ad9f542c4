// Package config handles configuration loading for BrickVal.
// It supports YAML config files with environment variable overrides,
// plus per-deal assumption files fed to the analytics packages.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/brickfolio/brickval/internal/analytics/returns"
	"github.com/brickfolio/brickval/internal/analytics/valuation"
)

// Config represents the complete application configuration.
type Config struct {
	Engine     EngineConfig     `mapstructure:"engine"     yaml:"engine"`
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Output     OutputConfig     `mapstructure:"output"     yaml:"output"`
}

// EngineConfig holds the deterministic calculator defaults.
type EngineConfig struct {
	TerminalGrowth   float64 `mapstructure:"terminal_growth"    yaml:"terminal_growth"`
	IRRGuess         float64 `mapstructure:"irr_guess"          yaml:"irr_guess"`
	IRRMaxIterations int     `mapstructure:"irr_max_iterations" yaml:"irr_max_iterations"`
	IRRTolerance     float64 `mapstructure:"irr_tolerance"      yaml:"irr_tolerance"`
}

// SimulationConfig holds Monte Carlo settings.
type SimulationConfig struct {
	Trials      int       `mapstructure:"trials"      yaml:"trials"`
	Percentiles []float64 `mapstructure:"percentiles" yaml:"percentiles"`
	Workers     int       `mapstructure:"workers"     yaml:"workers"` // 0 = one worker per core
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Currency string `mapstructure:"currency" yaml:"currency"` // symbol prefixed to money columns
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.brickval/config.yaml (home directory)
//  3. /etc/brickval/config.yaml (system)
//
// Environment variables override config file values.
// Format: BRICKVAL_<SECTION>_<KEY>, e.g., BRICKVAL_ENGINE_TERMINAL_GROWTH
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".brickval"))
	v.AddConfigPath("/etc/brickval")

	// Environment variable settings
	v.SetEnvPrefix("BRICKVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found: fall back to defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("BRICKVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values. Engine defaults
// mirror the analytics packages' exported constants so there is exactly one
// source of truth for each number.
func setDefaults(v *viper.Viper) {
	// Engine defaults
	v.SetDefault("engine.terminal_growth", valuation.DefaultTerminalGrowth)
	v.SetDefault("engine.irr_guess", returns.DefaultGuess)
	v.SetDefault("engine.irr_max_iterations", returns.DefaultMaxIterations)
	v.SetDefault("engine.irr_tolerance", returns.DefaultTolerance)

	// Simulation defaults
	v.SetDefault("simulation.trials", valuation.DefaultTrials)
	v.SetDefault("simulation.percentiles", valuation.DefaultPercentiles())
	v.SetDefault("simulation.workers", 0)

	// Output defaults
	v.SetDefault("output.currency", "$")
}

// Validate rejects settings the analytics packages cannot honor.
func (c *Config) Validate() error {
	if c.Engine.TerminalGrowth <= -1 {
		return fmt.Errorf("config: engine.terminal_growth must be greater than -1, got %v", c.Engine.TerminalGrowth)
	}
	if c.Engine.IRRGuess <= -1 {
		return fmt.Errorf("config: engine.irr_guess must be greater than -1, got %v", c.Engine.IRRGuess)
	}
	if c.Engine.IRRMaxIterations <= 0 {
		return fmt.Errorf("config: engine.irr_max_iterations must be positive, got %d", c.Engine.IRRMaxIterations)
	}
	if c.Engine.IRRTolerance <= 0 {
		return fmt.Errorf("config: engine.irr_tolerance must be positive, got %v", c.Engine.IRRTolerance)
	}
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("config: simulation.trials must be positive, got %d", c.Simulation.Trials)
	}
	for _, p := range c.Simulation.Percentiles {
		if p < 0 || p > 100 {
			return fmt.Errorf("config: simulation.percentiles must lie in [0, 100], got %v", p)
		}
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("config: simulation.workers must be non-negative, got %d", c.Simulation.Workers)
	}
	if c.Output.Currency == "" {
		return fmt.Errorf("config: output.currency must not be empty")
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

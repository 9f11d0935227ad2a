package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"portfolio-sim/internal/util"
)

// ConfigFileEnv names the config file to load
const ConfigFileEnv = "PORTFOLIO_CONFIG_FILE"

// color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config provides configuration for the portfolio simulator
type Config struct {
	loaded        bool
	Matches       int      `yaml:"matches" envconfig:"matches"`
	Seed          int64    `yaml:"seed" envconfig:"seed"`
	WatchdogLimit int      `yaml:"watchdogLimit" envconfig:"watchdog_limit"`
	HandSize      int      `yaml:"handSize" envconfig:"hand_size"`
	RefillSize    int      `yaml:"refillSize" envconfig:"refill_size"`
	PlayerNames   []string `yaml:"playerNames" envconfig:"player_names"`
	Log           struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Output struct {
		// Color is auto, always or never
		Color string `yaml:"color"`
	} `yaml:"output"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		Matches:       100,
		WatchdogLimit: 1000,
		HandSize:      7,
		RefillSize:    3,
		PlayerNames:   []string{},
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Output.Color = ColorAuto
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with PORTFOLIO_ override it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv(ConfigFileEnv, "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("portfolio", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that can't be checked by the game itself
func (c Config) Validate() error {
	if c.Matches <= 0 {
		return fmt.Errorf("matches must be greater than 0, got %d", c.Matches)
	}

	if n := len(c.PlayerNames); n != 0 && n != 2 {
		return fmt.Errorf("playerNames must have 0 or 2 names, got %d", n)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}

	return nil
}

// UseColor returns true if output should be colored
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

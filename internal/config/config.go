// SPDX-License-Identifier: MIT

// Package config loads filmcalc settings from defaults, an optional config
// file and FILMCALC_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/filmcalc/export"
	"github.com/katalvlaran/filmcalc/internal/logging"
	"github.com/katalvlaran/filmcalc/spectrum"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. FILMCALC_LOG_LEVEL.
const EnvPrefix = "FILMCALC"

// Config is the complete filmcalc configuration.
type Config struct {
	Range         spectrum.Range `mapstructure:"range"`
	Workers       int            `mapstructure:"workers"`
	MaterialsFile string         `mapstructure:"materials_file"`
	Log           LogConfig      `mapstructure:"log"`
	Store         StoreConfig    `mapstructure:"store"`
	Chart         ChartConfig    `mapstructure:"chart"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StoreConfig locates the design library database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ChartConfig sizes rendered PNG charts.
type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Range:   spectrum.DefaultRange(),
		Workers: spectrum.DefaultWorkers,
		Log:     LogConfig{Level: "warn", Format: logging.FormatText},
		Store:   StoreConfig{Path: defaultStorePath()},
		Chart:   ChartConfig{Width: export.DefaultChartWidth, Height: export.DefaultChartHeight},
	}
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "filmcalc.db"
	}

	return filepath.Join(dir, "filmcalc", "designs.db")
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("range.startNm", d.Range.StartNm)
	v.SetDefault("range.endNm", d.Range.EndNm)
	v.SetDefault("range.stepNm", d.Range.StepNm)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("materials_file", d.MaterialsFile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("chart.width", d.Chart.Width)
	v.SetDefault("chart.height", d.Chart.Height)
}

// Load reads configuration. With an explicit path that file must exist;
// otherwise filmcalc.{yaml,yml,toml,json} is searched in the working
// directory and then $HOME/.config/filmcalc, and a missing file means
// defaults. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("filmcalc")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "filmcalc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every setting and reports the first problem.
func (c *Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return fmt.Errorf("%w: range: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be ≥ 1", ErrInvalidConfig, c.Workers)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("%w: empty store path", ErrInvalidConfig)
	}
	if c.Chart.Width < 100 || c.Chart.Height < 100 {
		return fmt.Errorf("%w: chart size %dx%d below 100 px", ErrInvalidConfig, c.Chart.Width, c.Chart.Height)
	}

	return nil
}

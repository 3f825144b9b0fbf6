// Package config provides configuration for the chess-rules command.
//
// Values come from, in increasing priority: built-in defaults, an optional
// YAML file, CHESSRULES_* environment variables and finally command-line
// flags applied through ConfigBuilder.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// FileName is the base name of the configuration file searched for when no
// explicit path is given.
const FileName = "chess-rules"

// EnvPrefix prefixes environment overrides, e.g. CHESSRULES_LOG_LEVEL.
const EnvPrefix = "CHESSRULES"

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position new games start from; empty means the
	// standard starting position.
	StartFEN string `mapstructure:"start_fen"`

	Display DisplayConfig `mapstructure:"display"`
	Output  OutputConfig  `mapstructure:"output"`
	Perft   PerftConfig   `mapstructure:"perft"`
	Log     LogConfig     `mapstructure:"log"`
}

// DisplayConfig controls how boards are drawn.
type DisplayConfig struct {
	Color   bool `mapstructure:"color"`
	Unicode bool `mapstructure:"unicode"`
	// Flip draws the board from Black's side.
	Flip bool `mapstructure:"flip"`
}

// PerftConfig controls the perft subcommand.
type PerftConfig struct {
	Workers  int `mapstructure:"workers"`
	MaxDepth int `mapstructure:"max_depth"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:   true,
			Unicode: false,
		},
		Output: *NewOutputConfig(),
		Perft: PerftConfig{
			Workers:  4,
			MaxDepth: 7,
		},
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// setDefaults mirrors NewConfig into v so that environment variables for
// keys absent from the file are still picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault("start_fen", d.StartFEN)
	v.SetDefault("display.color", d.Display.Color)
	v.SetDefault("display.unicode", d.Display.Unicode)
	v.SetDefault("display.flip", d.Display.Flip)
	v.SetDefault("output.max_line_length", d.Output.MaxLineLength)
	v.SetDefault("output.event", d.Output.Event)
	v.SetDefault("output.site", d.Output.Site)
	v.SetDefault("output.white", d.Output.White)
	v.SetDefault("output.black", d.Output.Black)
	v.SetDefault("perft.workers", d.Perft.Workers)
	v.SetDefault("perft.max_depth", d.Perft.MaxDepth)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)
}

// Load reads configuration. With an empty path it looks for
// chess-rules.yaml in the working directory and in $HOME/.config/chess-rules,
// and a missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/chess-rules")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.StartFEN != "" {
		if _, err := game.ParsePosition(c.StartFEN); err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "start_fen: %v", err)
		}
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Perft.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.workers must be at least 1, got %d", c.Perft.Workers)
	}
	if c.Perft.MaxDepth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.max_depth must be at least 1, got %d", c.Perft.MaxDepth)
	}
	if _, err := c.LogLevel(); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log.level: %v", err)
	}
	return nil
}

// LogLevel returns the configured zerolog level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(c.Log.Level))
}

// StartBoard returns the position new games start from.
func (c *Config) StartBoard() (chess.Board, error) {
	if c.StartFEN == "" {
		return chess.NewInitialBoard(), nil
	}
	return game.ParsePosition(c.StartFEN)
}

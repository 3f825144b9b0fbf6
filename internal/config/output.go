package config

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// minLineLength is the narrowest PGN line that still fits any single token.
const minLineLength = 20

// OutputConfig holds settings related to PGN export.
type OutputConfig struct {
	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength int `mapstructure:"max_line_length"`

	// Tag values written for games played in the CLI. An empty Event is
	// replaced with a generated session name.
	Event string `mapstructure:"event"`
	Site  string `mapstructure:"site"`
	White string `mapstructure:"white"`
	Black string `mapstructure:"black"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: notation.DefaultLineLength,
		Site:          "chess-rules",
		White:         "White",
		Black:         "Black",
	}
}

// Validate checks output settings.
func (c *OutputConfig) Validate() error {
	if c.MaxLineLength < minLineLength {
		return errors.Wrapf(errors.ErrInvalidConfig, "output.max_line_length must be at least %d, got %d", minLineLength, c.MaxLineLength)
	}
	return nil
}

// Tags returns the PGN tags the output settings describe. Empty values are
// left out so the PGN writer fills in its defaults.
func (c *OutputConfig) Tags() notation.Tags {
	tags := notation.Tags{}
	for name, value := range map[string]string{
		notation.EventTag: c.Event,
		notation.SiteTag:  c.Site,
		notation.WhiteTag: c.White,
		notation.BlackTag: c.Black,
	} {
		if value != "" {
			tags[name] = value
		}
	}
	return tags
}

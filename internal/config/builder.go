package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts a builder from an existing configuration, typically one
// returned by Load. The configuration is copied.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithColor enables coloured board output.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Display.Color = enabled
	return b
}

// WithUnicode enables Unicode piece glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithMaxLineLength sets the maximum PGN line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithPlayers sets the White and Black tag values.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Output.White = white
	b.cfg.Output.Black = black
	return b
}

// WithEvent sets the Event tag value.
func (b *ConfigBuilder) WithEvent(event string) *ConfigBuilder {
	b.cfg.Output.Event = event
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithPrettyLog switches between console and JSON log output.
func (b *ConfigBuilder) WithPrettyLog(enabled bool) *ConfigBuilder {
	b.cfg.Log.Pretty = enabled
	return b
}

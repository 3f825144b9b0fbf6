package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// saveRestoreString is a helper to save and defer-restore a string flag.
// Usage: defer saveRestoreString(startFEN, "...")()
func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// testConfig is the default configuration with colour off, so output is
// plain text.
func testConfig() *config.Config {
	return config.NewConfigBuilder().WithColor(false).Build()
}

func TestApplyFlags_OnlySetFlagsOverride(t *testing.T) {
	defer saveRestoreInt(workers, 9)()
	defer saveRestoreBool(unicodeOutput, true)()
	defer saveRestoreString(whiteName, "Alice")()

	base := config.NewConfigBuilder().WithWorkers(3).WithPlayers("W", "B").Build()

	cfg := applyFlags(base, map[string]bool{})
	assert.Equal(t, 3, cfg.Perft.Workers)
	assert.False(t, cfg.Display.Unicode)
	assert.Equal(t, "W", cfg.Output.White)

	cfg = applyFlags(base, map[string]bool{"workers": true, "unicode": true, "white": true})
	assert.Equal(t, 9, cfg.Perft.Workers)
	assert.True(t, cfg.Display.Unicode)
	assert.Equal(t, "Alice", cfg.Output.White)
	assert.Equal(t, "B", cfg.Output.Black)
	assert.Equal(t, 3, base.Perft.Workers, "base config untouched")
}

func TestApplyFlags_Logging(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreBool(logJSON, true)()

	cfg := applyFlags(config.NewConfig(), map[string]bool{"log-level": true, "log-json": true})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess-rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("perft:\n  workers: 2\noutput:\n  event: Club\n"), 0o600))

	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	cfg, err := loadConfig(path, map[string]bool{"fen": true})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Perft.Workers)
	assert.Equal(t, "Club", cfg.Output.Event)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", cfg.StartFEN)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	defer saveRestoreString(startFEN, "not a position")()
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), map[string]bool{})
	require.Error(t, err, "explicit missing file")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	_, err = loadConfig(path, map[string]bool{"fen": true})
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.InfoLevel, false)
	logger.Debug().Msg("hidden")
	logger.Info().Str("fen", "startpos").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "startpos", entry["fen"])
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.WarnLevel, true)
	logger.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.NotContains(t, buf.String(), "{")
}

func TestConfigLogger(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Level = "info"
	cfg.Log.Pretty = false

	var buf bytes.Buffer
	logger, err := configLogger(&buf, cfg)
	require.NoError(t, err)
	logger.Info().Msg("ready")
	assert.Contains(t, buf.String(), `"message":"ready"`)

	cfg.Log.Level = "loud"
	_, err = configLogger(&buf, cfg)
	assert.ErrorContains(t, err, `log level "loud"`)
}

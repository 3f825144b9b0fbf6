package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPerft(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPerft(context.Background(), &out, testConfig(), 3))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "a2a3: 380", lines[0])
	assert.Contains(t, out.String(), "g1f3: 440")
	assert.Equal(t, "moves=20 nodes=8,902", lines[len(lines)-1])
}

func TestRunPerft_FromFEN(t *testing.T) {
	cfg := testConfig()
	cfg.StartFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	var out bytes.Buffer
	require.NoError(t, runPerft(context.Background(), &out, cfg, 2))
	assert.Contains(t, out.String(), "moves=48 nodes=2,039")
	assert.Contains(t, out.String(), "e1g1: ")
}

func TestRunPerft_DepthLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Perft.MaxDepth = 2

	err := runPerft(context.Background(), &bytes.Buffer{}, cfg, 3)
	assert.ErrorContains(t, err, "exceeds")
}

func TestRunPerft_LogsTableStats(t *testing.T) {
	var logs bytes.Buffer
	saved := log.Logger
	log.Logger = newLogger(&logs, zerolog.InfoLevel, false)
	defer func() { log.Logger = saved }()

	require.NoError(t, runPerft(context.Background(), &bytes.Buffer{}, testConfig(), 4))
	assert.Contains(t, logs.String(), `"nodes":197281`)
	assert.Contains(t, logs.String(), `"cache_hits":`)
	assert.NotContains(t, logs.String(), `"cache_hits":0,`)
}

func TestRunPerft_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runPerft(ctx, &out, testConfig(), 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// perftTableCapacity bounds the transposition table shared by the workers.
const perftTableCapacity = 1 << 18

// runPerft prints a perft divide of the configured start position: one line
// per root move, then the total and the rate.
func runPerft(ctx context.Context, out io.Writer, cfg *config.Config, depth int) error {
	if depth > cfg.Perft.MaxDepth {
		return fmt.Errorf("perft depth %d exceeds the configured maximum %d", depth, cfg.Perft.MaxDepth)
	}
	board, err := cfg.StartBoard()
	if err != nil {
		return err
	}

	log.Info().Int("depth", depth).Int("workers", cfg.Perft.Workers).Str("fen", board.FEN()).Msg("perft started")
	table := hashing.NewThreadSafeTable(perftTableCapacity)
	start := time.Now()
	results, err := engine.PerftDivide(ctx, board, depth, cfg.Perft.Workers, table)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	p := message.NewPrinter(language.English)
	for _, r := range results {
		fmt.Fprintf(out, "%s: %d\n", r.Move.UCI(), r.Nodes)
	}
	total := engine.TotalNodes(results)
	p.Fprintf(out, "\nmoves=%d nodes=%d\n", len(results), total)

	rate := 0
	if elapsed > 0 {
		rate = int(float64(total) / elapsed.Seconds())
	}
	log.Info().
		Uint64("nodes", total).
		Dur("elapsed", elapsed).
		Int("cache_entries", table.Len()).
		Int("cache_hits", table.Hits()).
		Str("rate", p.Sprintf("%dn/s", rate)).
		Msg("perft finished")
	return nil
}

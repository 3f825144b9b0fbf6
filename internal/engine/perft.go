package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// PerftCache memoises subtree counts by position and remaining depth.
type PerftCache interface {
	Lookup(b chess.Board, depth int) (uint64, bool)
	Store(b chess.Board, depth int, nodes uint64)
}

// PerftResult is the leaf count below one root move.
type PerftResult struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(board.Apply(m), depth-1)
	}
	return nodes
}

// PerftCached is Perft with subtree counts memoised in cache. Positions
// reached by transposition are counted once per depth.
func PerftCached(board chess.Board, depth int, cache PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	if nodes, ok := cache.Lookup(board, depth); ok {
		return nodes
	}
	moves := LegalMoves(board)
	nodes := uint64(len(moves))
	if depth > 1 {
		nodes = 0
		for _, m := range moves {
			nodes += PerftCached(board.Apply(m), depth-1, cache)
		}
	}
	cache.Store(board, depth, nodes)
	return nodes
}

// PerftDivide counts leaf nodes per root move, spreading the root moves
// over a pool of workers. A non-nil cache is shared by all workers and must
// be safe for concurrent use. Results are sorted by the move's coordinate
// form.
//
// When ctx ends the pool stops taking up root moves and ctx.Err() is
// returned.
func PerftDivide(ctx context.Context, board chess.Board, depth, workers int, cache PerftCache) ([]PerftResult, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: must be at least 1", depth)
	}

	moves := LegalMoves(board)
	pool := worker.NewPool(workers, len(moves)+1, perftWorkItem(cache))
	pool.Start()

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Board: board.Apply(m), Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	results := make([]PerftResult, 0, len(moves))
	for r := range pool.Results() {
		results = append(results, PerftResult{Move: r.Move, Nodes: r.Nodes})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.UCI() < results[j].Move.UCI()
	})
	return results, nil
}

// perftWorkItem returns the worker body for PerftDivide.
func perftWorkItem(cache PerftCache) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		nodes := Perft(item.Board, item.Depth)
		if cache != nil {
			nodes = PerftCached(item.Board, item.Depth, cache)
		}
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes}
	}
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(results []PerftResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

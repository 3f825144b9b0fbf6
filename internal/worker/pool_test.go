package worker

import (
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// noopProcessFunc returns a process function that echoes the item back.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Move: item.Move}
	}
}

// countingProcessFunc returns a process function that increments a counter
// and reports the remaining depth as the node count.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Move: item.Move, Nodes: uint64(item.Depth)}
	}
}

// collectResults drains the result channel.
func collectResults(pool *Pool) []ProcessResult {
	var out []ProcessResult
	for r := range pool.Results() {
		out = append(out, r)
	}
	return out
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start()

	board := chess.NewInitialBoard()
	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: board, Depth: i, Index: i})
	}

	go pool.Close()

	results := collectResults(pool)
	if len(results) != numItems {
		t.Fatalf("results = %d; want %d", len(results), numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	for i, r := range results {
		if r.Nodes != uint64(i) {
			t.Errorf("results[%d].Nodes = %d; want %d", i, r.Nodes, i)
		}
	}
}

func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 5, noopProcessFunc())
	pool.Start()

	move := chess.Move{From: chess.MustSquare("e2"), To: chess.MustSquare("e4"), Piece: chess.W(chess.Pawn)}
	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Move: move, Index: i})
	}

	go pool.Close()

	results := collectResults(pool)
	if len(results) != numItems {
		t.Fatalf("results = %d; want %d", len(results), numItems)
	}
	for _, r := range results {
		if r.Move != move {
			t.Errorf("result move = %v; want %v", r.Move, move)
		}
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(2, 100, slowProcessFunc)
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessFunc())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
	}{
		{"defaults", nil, 1},
		{"four workers", []PoolOption{WithWorkers(4)}, 4},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1},
		{"buffer only", []PoolOption{WithBufferSize(50)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(noopProcessFunc(), tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorkers)
			}
		})
	}

	t.Run("NewPool clamps", func(t *testing.T) {
		pool := NewPool(0, 0, noopProcessFunc())
		if pool.numWorkers != 1 || pool.bufferSize != 10 {
			t.Errorf("numWorkers, bufferSize = %d, %d; want 1, 10", pool.numWorkers, pool.bufferSize)
		}
	})
}

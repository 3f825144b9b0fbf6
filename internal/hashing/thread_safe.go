package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ThreadSafeTable wraps TranspositionTable with mutex protection for
// concurrent access.
type ThreadSafeTable struct {
	table *TranspositionTable
	mu    sync.Mutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTranspositionTable(maxCapacity),
	}
}

// Lookup returns the stored count for the position at depth.
func (t *ThreadSafeTable) Lookup(b chess.Board, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(b, depth)
}

// Store records a count.
func (t *ThreadSafeTable) Store(b chess.Board, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(b, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

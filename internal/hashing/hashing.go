// Package hashing provides Zobrist position hashing and a transposition
// table for memoising per-position results such as perft subtree counts.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TranspositionTable maps (position, depth) to a node count.
type TranspositionTable struct {
	// table buckets entries by Zobrist hash
	table map[uint64][]Entry
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int
	size        int
	hits        int
}

// Entry is one stored result. The full position key is kept so that hash
// collisions never return a count for a different position.
type Entry struct {
	Key   chess.PositionKey
	Depth int
	Nodes uint64
}

// NewTranspositionTable creates an empty table.
// maxCapacity of 0 means unlimited capacity.
func NewTranspositionTable(maxCapacity int) *TranspositionTable {
	return &TranspositionTable{
		table:       make(map[uint64][]Entry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position at depth.
func (t *TranspositionTable) Lookup(b chess.Board, depth int) (uint64, bool) {
	bucket, ok := t.table[GenerateZobristHash(b)]
	if !ok {
		return 0, false
	}
	key := b.Key()
	for _, e := range bucket {
		if e.Depth == depth && e.Key == key {
			t.hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store records a count. It is a no-op when the table is full or the entry
// is already present.
func (t *TranspositionTable) Store(b chess.Board, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	hash := GenerateZobristHash(b)
	key := b.Key()
	for _, e := range t.table[hash] {
		if e.Depth == depth && e.Key == key {
			return
		}
	}
	t.table[hash] = append(t.table[hash], Entry{Key: key, Depth: depth, Nodes: nodes})
	t.size++
}

// Len returns the number of stored entries.
func (t *TranspositionTable) Len() int {
	return t.size
}

// Hits returns the number of successful lookups.
func (t *TranspositionTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
func (t *TranspositionTable) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}


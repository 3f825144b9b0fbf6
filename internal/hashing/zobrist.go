package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Zobrist key tables. They are filled once from a fixed seed so that hashes
// are stable across runs.
var (
	pieceKeys    [2][7][chess.BoardSize][chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for f := range pieceKeys[c][k] {
				for r := range pieceKeys[c][k][f] {
					pieceKeys[c][k][f][r] = next()
				}
			}
		}
	}
	blackToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = next()
	}
}

// GenerateZobristHash hashes the parts of a position that make up its
// chess.PositionKey: placement, side to move, castling rights and a
// capturable en passant file. Positions with equal keys hash equally.
func GenerateZobristHash(b chess.Board) uint64 {
	var h uint64
	for _, p := range b.Occupied() {
		h ^= pieceKeys[p.Piece.Colour][p.Piece.Kind][p.Square.File][p.Square.Rank]
	}
	if b.ToMove == chess.Black {
		h ^= blackToMove
	}

	key := b.Key()
	rights := []bool{
		key.Castling.Kingside(chess.White),
		key.Castling.Queenside(chess.White),
		key.Castling.Kingside(chess.Black),
		key.Castling.Queenside(chess.Black),
	}
	for i, held := range rights {
		if held {
			h ^= castlingKeys[i]
		}
	}
	if key.HasEnPassant {
		h ^= epFileKeys[key.EPSquare.File]
	}
	return h
}

package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Pattern is the decoded shape of a move token, before it is matched
// against a position. Unknown origin coordinates are -1.
type Pattern struct {
	Class     chess.MoveClass
	Piece     chess.PieceKind
	FromFile  int
	FromRank  int
	To        chess.Square
	Capture   bool
	Promotion chess.PieceKind
	Check     bool
	Mate      bool
}

// IsCastle reports whether the pattern names a castle.
func (p Pattern) IsCastle() bool {
	return p.Class == chess.KingsideCastle || p.Class == chess.QueensideCastle
}

// Matches reports whether m fits the pattern. Capture and check markers
// are not compared; a legal move list never holds two moves differing
// only in those.
func (p Pattern) Matches(m chess.Move) bool {
	if p.IsCastle() {
		return m.Class == p.Class
	}
	if m.IsCastle() || m.Piece.Kind != p.Piece || m.To != p.To {
		return false
	}
	if p.FromFile >= 0 && m.From.File != p.FromFile {
		return false
	}
	if p.FromRank >= 0 && m.From.Rank != p.FromRank {
		return false
	}
	if p.Class == chess.EnPassantPawnMove && !m.IsEnPassant() {
		return false
	}
	return m.Promotion == p.Promotion
}

// isFile returns true if c is a file character.
func isFile(c byte) bool {
	return c >= chess.FileBase && c < chess.FileBase+chess.BoardSize
}

// isRank returns true if c is a rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// pieceLetter returns the kind named by an uppercase SAN piece letter.
// Pawns have no letter in SAN.
func pieceLetter(c byte) chess.PieceKind {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// promotionLetter returns the kind named by a promotion letter in either case.
func promotionLetter(c byte) chess.PieceKind {
	switch c {
	case 'Q', 'R', 'B', 'N', 'q', 'r', 'b', 'n':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// malformed builds the decoding error for text.
func malformed(text, reason string) error {
	return fmt.Errorf("%q: %s: %w", text, reason, errors.ErrMalformedNotation)
}

// Decode parses the shape of a move token: SAN such as "Nbxd7+", "exd6",
// "e8=Q#", "O-O-O", and the common relaxed forms "0-0", "e8Q", "Ng1f3",
// "e2-e4" and "exd6 e.p.". It does not look at any position, so a decoded
// pattern may still be illegal.
func Decode(text string) (Pattern, error) {
	p := Pattern{FromFile: -1, FromRank: -1}
	t := strings.TrimSpace(text)

	// Trailing check and mate markers.
	for len(t) > 0 && (t[len(t)-1] == '+' || t[len(t)-1] == '#') {
		if t[len(t)-1] == '#' {
			p.Mate = true
		} else {
			p.Check = true
		}
		t = t[:len(t)-1]
	}
	if t == "" {
		return Pattern{}, malformed(text, "empty move")
	}

	if class, ok := decodeCastle(t); ok {
		p.Class = class
		p.Piece = chess.King
		return p, nil
	}

	enPassant := false
	for _, suffix := range []string{"e.p.", "ep"} {
		if !strings.HasSuffix(t, suffix) {
			continue
		}
		if rest := strings.TrimSpace(strings.TrimSuffix(t, suffix)); rest != "" && isRank(rest[len(rest)-1]) {
			t = rest
			enPassant = true
			break
		}
	}

	body := t
	if kind := pieceLetter(t[0]); kind != chess.NoKind {
		p.Piece = kind
		p.Class = chess.PieceMove
		body = t[1:]
	} else if isFile(t[0]) {
		p.Piece = chess.Pawn
		p.Class = chess.PawnMove
		body = decodePromotion(&p, t)
	} else {
		return Pattern{}, malformed(text, "no piece or file")
	}

	// Strip capture and long-form separators, keeping only coordinates.
	coords := make([]byte, 0, 4)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case isCapture(c):
			p.Capture = true
		case c == '-':
		case isFile(c) || isRank(c):
			coords = append(coords, c)
		default:
			return Pattern{}, malformed(text, fmt.Sprintf("unexpected %q", c))
		}
	}

	n := len(coords)
	if n < 2 || n > 4 || !isFile(coords[n-2]) || !isRank(coords[n-1]) {
		return Pattern{}, malformed(text, "no destination square")
	}
	p.To = chess.Sq(int(coords[n-2]-chess.FileBase), int(coords[n-1]-chess.RankBase))

	switch prefix := coords[:n-2]; len(prefix) {
	case 0:
	case 1:
		if isFile(prefix[0]) {
			p.FromFile = int(prefix[0] - chess.FileBase)
		} else {
			p.FromRank = int(prefix[0] - chess.RankBase)
		}
	case 2:
		if !isFile(prefix[0]) || !isRank(prefix[1]) {
			return Pattern{}, malformed(text, "bad origin square")
		}
		p.FromFile = int(prefix[0] - chess.FileBase)
		p.FromRank = int(prefix[1] - chess.RankBase)
	}

	if p.Piece == chess.Pawn {
		if err := checkPawnShape(text, &p); err != nil {
			return Pattern{}, err
		}
		if enPassant {
			p.Class = chess.EnPassantPawnMove
			p.Capture = true
		}
	} else if enPassant {
		return Pattern{}, malformed(text, "en passant marker on a piece move")
	}

	return p, nil
}

// decodeCastle recognises O-O and O-O-O written with letter O, digit zero
// or lowercase o, with or without dashes.
func decodeCastle(t string) (chess.MoveClass, bool) {
	norm := strings.Map(func(r rune) rune {
		switch r {
		case '0', 'o':
			return 'O'
		case '-':
			return -1
		}
		return r
	}, t)
	switch norm {
	case "OO":
		return chess.KingsideCastle, true
	case "OOO":
		return chess.QueensideCastle, true
	}
	return 0, false
}

// decodePromotion strips a trailing promotion ("=Q", "Q", "=q") from a
// pawn move and records it in p. It returns the remaining text.
func decodePromotion(p *Pattern, t string) string {
	n := len(t)
	if n >= 2 && t[n-2] == '=' {
		if kind := promotionLetter(t[n-1]); kind != chess.NoKind {
			p.Promotion = kind
			p.Class = chess.PawnMoveWithPromotion
			return t[:n-2]
		}
		return t
	}
	if n >= 3 && isRank(t[n-2]) {
		if kind := promotionLetter(t[n-1]); kind != chess.NoKind {
			p.Promotion = kind
			p.Class = chess.PawnMoveWithPromotion
			return t[:n-1]
		}
	}
	return t
}

// checkPawnShape applies the pawn-only constraints: a capture names the
// origin file and it is adjacent to the destination; a promotion lands on
// a back rank.
func checkPawnShape(text string, p *Pattern) error {
	if p.Capture && p.FromFile < 0 {
		return malformed(text, "pawn capture without origin file")
	}
	if p.FromFile >= 0 && p.FromRank < 0 {
		if df := p.FromFile - p.To.File; df != 1 && df != -1 {
			return malformed(text, "pawn capture from a non-adjacent file")
		}
		p.Capture = true
	}
	if p.Promotion != chess.NoKind && p.To.Rank != 0 && p.To.Rank != chess.BoardSize-1 {
		return malformed(text, "promotion off the back rank")
	}
	return nil
}

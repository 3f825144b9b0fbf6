package notation

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Record is one game as read from PGN text: its tags, the main-line move
// tokens and the result token ("" when the game text has none).
type Record struct {
	Tags   Tags
	Moves  []string
	Result string
}

// scanner walks PGN text tracking line and column for error reports.
type scanner struct {
	src  []rune
	pos  int
	line int
	col  int
}

func newScanner(text string) *scanner {
	return &scanner{src: []rune(text), line: 1, col: 1}
}

// peek returns the current rune, or 0 at end of input.
func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// next consumes the current rune.
func (s *scanner) next() rune {
	r := s.peek()
	if s.eof() {
		return r
	}
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// errorf builds a ParseError at the current location.
func (s *scanner) errorf(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     s.line,
		Column:   s.col,
		Expected: expected,
		Got:      got,
	}
}

// describe names the current rune for error messages.
func (s *scanner) describe() string {
	if s.eof() {
		return "EOF"
	}
	return "'" + string(s.peek()) + "'"
}

// isDelimiter reports runes that end a symbol.
func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("{}()[];$\"", r)
}

// ParseMovetext reads the first game of PGN text. It collects tag pairs and
// the main-line move tokens, skipping comments, NAGs, variations, move
// numbers and annotation glyphs ("!", "?"). Reading stops after the result
// token. The tokens are not checked against any position.
func ParseMovetext(text string) (Record, error) {
	rec := Record{Tags: Tags{}}
	s := newScanner(text)

	for {
		r := s.peek()
		switch {
		case s.eof():
			return rec, nil
		case unicode.IsSpace(r):
			s.next()
		case r == '%' && s.col == 1:
			skipLine(s)
		case r == '[':
			if len(rec.Moves) > 0 {
				return rec, s.errorf("move", "tag")
			}
			name, value, err := readTag(s)
			if err != nil {
				return rec, err
			}
			rec.Tags[name] = value
		case r == '{':
			if err := skipComment(s); err != nil {
				return rec, err
			}
		case r == ';':
			skipLine(s)
		case r == '(':
			if err := skipVariation(s); err != nil {
				return rec, err
			}
		case r == '$':
			s.next()
			for unicode.IsDigit(s.peek()) {
				s.next()
			}
		case r == ')' || r == '}' || r == ']' || r == '"':
			return rec, s.errorf("move", s.describe())
		default:
			tok := readSymbol(s)
			if IsResult(tok) {
				rec.Result = tok
				return rec, nil
			}
			if san := moveFromSymbol(tok); san != "" {
				rec.Moves = append(rec.Moves, san)
			}
		}
	}
}

// readSymbol reads up to the next delimiter.
func readSymbol(s *scanner) string {
	var sb strings.Builder
	for !s.eof() && !isDelimiter(s.peek()) {
		sb.WriteRune(s.next())
	}
	return sb.String()
}

// moveFromSymbol strips a leading move number ("12.", "12...") and trailing
// annotation glyphs. It returns "" when nothing of the move remains.
func moveFromSymbol(tok string) string {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i > 0 && i < len(tok) && tok[i] == '.' {
		tok = strings.TrimLeft(tok[i:], ".")
	} else if i == len(tok) {
		// A bare move number without its dot.
		return ""
	}
	return strings.TrimRight(tok, "!?")
}

// readTag reads `[Name "Value"]`.
func readTag(s *scanner) (string, string, error) {
	s.next() // [
	skipSpace(s)

	var name strings.Builder
	for r := s.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = s.peek() {
		name.WriteRune(s.next())
	}
	if name.Len() == 0 {
		return "", "", s.errorf("tag name", s.describe())
	}

	skipSpace(s)
	if s.peek() != '"' {
		return "", "", s.errorf("tag value", s.describe())
	}
	s.next()

	var value strings.Builder
	for {
		if s.eof() || s.peek() == '\n' {
			return "", "", s.errorf("closing quote", s.describe())
		}
		r := s.next()
		if r == '"' {
			break
		}
		if r == '\\' && (s.peek() == '"' || s.peek() == '\\') {
			r = s.next()
		}
		value.WriteRune(r)
	}

	skipSpace(s)
	if s.peek() != ']' {
		return "", "", s.errorf("']'", s.describe())
	}
	s.next()
	return name.String(), value.String(), nil
}

// skipComment skips a brace comment. Braces do not nest in PGN.
func skipComment(s *scanner) error {
	s.next() // {
	for !s.eof() {
		if s.next() == '}' {
			return nil
		}
	}
	return s.errorf("'}'", "EOF")
}

// skipVariation skips a parenthesised variation, including nested
// variations and comments inside it.
func skipVariation(s *scanner) error {
	depth := 0
	for !s.eof() {
		switch s.peek() {
		case '(':
			depth++
			s.next()
		case ')':
			depth--
			s.next()
			if depth == 0 {
				return nil
			}
		case '{':
			if err := skipComment(s); err != nil {
				return err
			}
		case ';':
			skipLine(s)
		default:
			s.next()
		}
	}
	return s.errorf("')'", "EOF")
}

func skipLine(s *scanner) {
	for !s.eof() && s.peek() != '\n' {
		s.next()
	}
}

func skipSpace(s *scanner) {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
}

package notation

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseMovetext(t *testing.T) {
	text := `[Event "Test"]
[White "Doe, \"J\""]

% escaped line 1. d4
1. e4 {best by test} e5 2. Nf3!? (2. f4 exf4 (2... d5 {sharp})) Nc6 $1 ; note
3. Bb5 a6?! 1-0 4. Ba4
`
	rec, err := ParseMovetext(text)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Tags, Tags{EventTag: "Test", WhiteTag: `Doe, "J"`})
	testutil.AssertEqual(t, rec.Moves, []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"})
	testutil.AssertEqual(t, rec.Result, WhiteWins)
}

func TestParseMovetext_Forms(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		moves  []string
		result string
	}{
		{"no result", "1. e4 e5", []string{"e4", "e5"}, ""},
		{"bare move number", "1 e4 2 d4", []string{"e4", "d4"}, ""},
		{"number glued to move", "1.e4 1...c5 2.Nf3", []string{"e4", "c5", "Nf3"}, ""},
		{"black to move first", "12... Nf6 13. O-O *", []string{"Nf6", "O-O"}, Unfinished},
		{"draw", "1. d4 d5 1/2-1/2", []string{"d4", "d5"}, Draw},
		{"empty", "", nil, ""},
		{"result only", "0-1", nil, BlackWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseMovetext(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(rec.Moves), len(tt.moves))
			for i := range tt.moves {
				testutil.AssertEqual(t, rec.Moves[i], tt.moves[i])
			}
			testutil.AssertEqual(t, rec.Result, tt.result)
		})
	}
}

func TestParseMovetext_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
		col  int
	}{
		{"unterminated comment", "1. e4 {oops", 1, 12},
		{"unterminated variation", "1. e4 (1. d4", 1, 13},
		{"stray close paren", "1. e4\n2. )", 2, 4},
		{"tag after moves", "1. e4 [Event \"x\"]", 1, 7},
		{"unterminated tag value", "[Event \"x\n1. e4", 1, 10},
		{"tag without value", "[Event]", 1, 7},
		{"tag without name", "[\"x\"]", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMovetext(tt.text)
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)

			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, perr.Line, tt.line, "line")
			testutil.AssertEqual(t, perr.Column, tt.col, "column")
		})
	}
}

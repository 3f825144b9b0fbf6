package notation

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Result tokens.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// DefaultLineLength is the PGN export line limit.
const DefaultLineLength = 80

// IsResult reports whether tok is one of the four PGN result tokens.
func IsResult(tok string) bool {
	switch tok {
	case WhiteWins, BlackWins, Draw, Unfinished:
		return true
	}
	return false
}

// movetextTokens lays out moves with move numbers: "1." before each White
// move and "N..." before a leading Black move, followed by the result.
func movetextTokens(sans []string, startMoveNumber int, blackFirst bool, result string) []string {
	if startMoveNumber < 1 {
		startMoveNumber = 1
	}
	if result == "" {
		result = Unfinished
	}

	tokens := make([]string, 0, len(sans)*3/2+2)
	moveNum := startMoveNumber
	isWhite := !blackFirst
	for i, san := range sans {
		if isWhite {
			tokens = append(tokens, strconv.Itoa(moveNum)+".")
		} else if i == 0 {
			tokens = append(tokens, strconv.Itoa(moveNum)+"...")
		}
		tokens = append(tokens, san)
		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return append(tokens, result)
}

// Movetext renders moves as single-line PGN movetext, for example
// "1. e4 e5 2. Nf3 *". An empty move list renders as the result alone.
func Movetext(sans []string, startMoveNumber int, blackFirst bool, result string) string {
	return strings.Join(movetextTokens(sans, startMoveNumber, blackFirst, result), " ")
}

// Writer handles formatted PGN output with line length control.
type Writer struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewWriter creates a new PGN writer. A non-positive maxLineLength means
// DefaultLineLength.
func NewWriter(w io.Writer, maxLineLength int) *Writer {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &Writer{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// print writes s unless an earlier write failed.
func (o *Writer) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Token writes a movetext token, adding a space separator or a line break
// as needed.
func (o *Writer) Token(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *Writer) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Tags writes one "[Name "Value"]" line per tag in export order.
func (o *Writer) Tags(tags Tags) {
	for _, pair := range tags.Ordered() {
		o.print(fmt.Sprintf("[%s \"%s\"]\n", pair.Name, EscapeTagValue(pair.Value)))
	}
}

// Movetext writes wrapped movetext followed by a newline.
func (o *Writer) Movetext(sans []string, startMoveNumber int, blackFirst bool, result string) {
	for _, tok := range movetextTokens(sans, startMoveNumber, blackFirst, result) {
		o.Token(tok)
	}
	o.NewLine()
}

// Game writes a complete game: tags, a blank line, then movetext.
func (o *Writer) Game(tags Tags, sans []string, startMoveNumber int, blackFirst bool, result string) error {
	o.Tags(tags)
	o.NewLine()
	o.Movetext(sans, startMoveNumber, blackFirst, result)
	return o.err
}

// Err returns the first write error, if any.
func (o *Writer) Err() error {
	return o.err
}

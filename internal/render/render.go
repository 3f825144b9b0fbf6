// Package render draws boards and status lines for a terminal.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Options selects the drawing style.
type Options struct {
	// Color paints squares with ANSI backgrounds; otherwise an ASCII grid
	// is drawn.
	Color bool
	// Unicode uses chess glyphs instead of FEN letters.
	Unicode bool
	// Flip draws the board from Black's side.
	Flip bool
}

var (
	lightSquare = newColor(color.FgBlack, color.BgHiWhite)
	darkSquare  = newColor(color.FgBlack, color.BgGreen)
	coordinate  = newColor(color.Bold)
	alert       = newColor(color.FgHiRed, color.Bold)
	notice      = newColor(color.FgHiYellow)
)

// newColor builds a colour that ignores terminal detection; callers decide
// through Options whether colour is wanted at all.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// order returns the files and ranks in drawing order, rank 8 first unless
// flipped.
func order(flip bool) (files, ranks []int) {
	for i := 0; i < chess.BoardSize; i++ {
		files = append(files, i)
		ranks = append(ranks, chess.BoardSize-1-i)
	}
	if flip {
		for i, j := 0, chess.BoardSize-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
			ranks[i], ranks[j] = ranks[j], ranks[i]
		}
	}
	return files, ranks
}

func symbol(p chess.Piece, unicode bool) string {
	switch {
	case p.IsEmpty():
		return " "
	case unicode:
		return p.Glyph()
	}
	return string(p.FENLetter())
}

// Board draws the position, rank 8 at the top unless opts.Flip is set.
func Board(b chess.Board, opts Options) string {
	if opts.Color {
		return colourBoard(b, opts)
	}
	return gridBoard(b, opts)
}

func gridBoard(b chess.Board, opts Options) string {
	files, ranks := order(opts.Flip)
	var sb strings.Builder
	const rule = "   +---+---+---+---+---+---+---+---+\n"
	for _, rank := range ranks {
		sb.WriteString(rule)
		sb.WriteString(" ")
		sb.WriteByte(byte(chess.RankBase + rank))
		sb.WriteString(" |")
		for _, file := range files {
			sb.WriteString(" " + symbol(b.At(chess.Sq(file, rank)), opts.Unicode) + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rule)
	sb.WriteString("   ")
	for _, file := range files {
		sb.WriteString("  ")
		sb.WriteByte(byte(chess.FileBase + file))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")
	return sb.String()
}

func colourBoard(b chess.Board, opts Options) string {
	files, ranks := order(opts.Flip)
	var sb strings.Builder
	for _, rank := range ranks {
		sb.WriteString(coordinate.Sprint(" " + string(rune(chess.RankBase+rank)) + " "))
		for _, file := range files {
			sq := chess.Sq(file, rank)
			cell := darkSquare
			if sq.IsLight() {
				cell = lightSquare
			}
			sb.WriteString(cell.Sprint(" " + symbol(b.At(sq), opts.Unicode) + " "))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   ")
	for _, file := range files {
		sb.WriteString(coordinate.Sprint(" " + string(rune(chess.FileBase+file)) + " "))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Status formats a status line. Finished games are shown in red and
// checks in yellow when colour is on.
func Status(text string, over bool, opts Options) string {
	if !opts.Color || text == "" {
		return text
	}
	if over {
		return alert.Sprint(text)
	}
	return notice.Sprint(text)
}

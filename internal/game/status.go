package game

// StatusText is the one-line status shown to players: the outcome when the
// game has one, "Check!" when the side to move is in check, else "".
func StatusText(g *Game) string {
	t := g.Termination()
	switch t.Kind {
	case Checkmate:
		return "Checkmate! " + t.Winner.String() + " won!"
	case Stalemate:
		return "Stalemate"
	case DrawThreefoldRepetition:
		return "Draw: Threefold repetition rule"
	case DrawInsufficientMaterial:
		return "Draw: Insufficient material"
	case DrawFiftyMove:
		return "Draw: 50-move rule"
	}
	if g.IsInCheck() {
		return "Check!"
	}
	return ""
}

// TurnText names the side to move, as in "Turn: White".
func TurnText(g *Game) string {
	return "Turn: " + g.Turn().String()
}

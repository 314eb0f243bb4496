// path: internal/game/status.go
package game

import "fmt"

// hasLegalMove scans the color's pieces until one legal move is found.
func (b *Board) hasLegalMove(color Color) bool {
	for _, pc := range b.pieceAt {
		if pc == nil || pc.Color != color {
			continue
		}
		for _, mv := range b.movesFor(pc) {
			if !b.wouldLeaveKingInCheck(pc, mv) {
				return true
			}
		}
	}
	return false
}

// updateStatus re-derives the game status for the side to move: active if
// any legal move exists, otherwise checkmate when in check, else stalemate.
func (b *Board) updateStatus() {
	current := b.turn
	inCheck := b.kingInCheck(current)
	hasMove := b.hasLegalMove(current)

	b.InCheck = inCheck
	b.GameOver = false
	b.HasWinner = false
	b.Winner = 0
	b.Status = StatusActive

	if !hasMove {
		b.GameOver = true
		if inCheck {
			b.Status = StatusCheckmate
			b.HasWinner = true
			b.Winner = current.Opposite()
		} else {
			b.Status = StatusStalemate
		}
	}
}

// noteOutcome records a human-readable summary of the committed move.
func (b *Board) noteOutcome(out MoveOutcome) {
	b.lastNote = ""
	switch {
	case out.Combat && out.Lethal:
		appendNote(&b.lastNote, fmt.Sprintf("%s %s slays %s %s at %s (%d damage)",
			out.Color, out.Attacker.Name(), out.Color.Opposite(), out.Defender.Name(), out.DefenderSquare, out.Damage))
	case out.Combat:
		appendNote(&b.lastNote, fmt.Sprintf("%s %s hits %s %s at %s for %d (%d hp left)",
			out.Color, out.Attacker.Name(), out.Color.Opposite(), out.Defender.Name(), out.DefenderSquare, out.Damage, out.DefenderHP))
	default:
		appendNote(&b.lastNote, fmt.Sprintf("%s %s %s-%s", out.Color, out.Attacker.Name(), out.From, out.To))
	}
	if out.Castled {
		appendNote(&b.lastNote, "castled")
	}
	if out.EnPassant && out.Lethal {
		appendNote(&b.lastNote, "en passant")
	}
	if out.Promoted {
		appendNote(&b.lastNote, "pawn promoted to Q")
	}

	switch {
	case b.GameOver && b.Status == StatusCheckmate && b.HasWinner:
		appendNote(&b.lastNote, fmt.Sprintf("checkmate - %s wins", b.Winner))
	case b.GameOver && b.Status == StatusStalemate:
		appendNote(&b.lastNote, "stalemate")
	case b.InCheck:
		appendNote(&b.lastNote, fmt.Sprintf("%s to move (in check)", b.turn))
	default:
		appendNote(&b.lastNote, fmt.Sprintf("%s's turn", b.turn))
	}
}

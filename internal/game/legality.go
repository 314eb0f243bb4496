// path: internal/game/legality.go
package game

func (b *Board) kingSquare(color Color) (Square, bool) {
	for idx, pc := range b.pieceAt {
		if pc != nil && pc.Color == color && pc.Type == King {
			return Square(idx), true
		}
	}
	return 0, false
}

// kingInCheck reports whether the color's king square is in the opponent's
// attack map. A position with no king of that color reports false.
func (b *Board) kingInCheck(color Color) bool {
	kingSq, ok := b.kingSquare(color)
	if !ok {
		return false
	}
	return b.attackSquares(color.Opposite()).Has(kingSq)
}

// wouldLeaveKingInCheck simulates the move on a clone with the full combat
// resolution applied, so that non-lethal attacks (attacker stays put) are
// judged by the board they actually produce.
func (b *Board) wouldLeaveKingInCheck(pc *Piece, mv Move) bool {
	sim := b.clone()
	sim.resolveMove(pc.Square, mv)
	return sim.kingInCheck(pc.Color)
}

// legalMoves filters pc's pseudo-moves down to the ones that do not leave
// its own king attacked.
func (b *Board) legalMoves(pc *Piece) []Move {
	pseudo := b.movesFor(pc)
	if len(pseudo) == 0 {
		return nil
	}
	legal := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if !b.wouldLeaveKingInCheck(pc, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

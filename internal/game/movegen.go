// path: internal/game/movegen.go
package game

// Pseudo-move generation. movesFor yields the squares a piece may move to
// by its movement rules alone; attacks yields the squares it threatens.
// The two sets differ for pawns (advances are moves, diagonals are attacks)
// and for the king (castling is a move, never a threat).

func (b *Board) movesFor(pc *Piece) []Move {
	if pc == nil {
		return nil
	}
	switch pc.Type {
	case Pawn:
		return b.pawnMoves(pc)
	case Knight:
		return b.offsetMoves(pc, knightOffsets[:])
	case Bishop:
		return b.slidingMoves(pc, bishopDirections[:])
	case Rook:
		return b.slidingMoves(pc, rookDirections[:])
	case Queen:
		moves := b.slidingMoves(pc, rookDirections[:])
		return append(moves, b.slidingMoves(pc, bishopDirections[:])...)
	case King:
		return b.kingMoves(pc)
	default:
		return nil
	}
}

func (b *Board) pawnMoves(pc *Piece) []Move {
	var moves []Move

	rank := pc.Square.Rank()
	file := pc.Square.File()
	dir := pawnDir(pc.Color)

	if target, ok := SquareFromCoords(rank+dir, file); ok && b.pieceAt[target] == nil {
		moves = append(moves, Move{To: target})
		if rank == pawnStartRank(pc.Color) {
			if double, ok := SquareFromCoords(rank+2*dir, file); ok && b.pieceAt[double] == nil {
				moves = append(moves, Move{To: double})
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target, ok := SquareFromCoords(rank+dir, file+df)
		if !ok {
			continue
		}
		if victim := b.pieceAt[target]; victim != nil && victim.Color != pc.Color {
			moves = append(moves, Move{To: target})
		}
	}

	if target, ok := b.enPassantTarget(pc); ok {
		moves = append(moves, Move{To: target, Kind: MoveEnPassant})
	}

	return moves
}

// enPassantTarget reports the square the pawn would land on when capturing
// en passant. Eligible only when the immediately preceding move was an
// opposing pawn's double step landing beside the pawn.
func (b *Board) enPassantTarget(pc *Piece) (Square, bool) {
	lm := b.lastMove
	if lm == nil || !lm.WasDoublePawnStep || lm.Color == pc.Color {
		return 0, false
	}
	if lm.To.Rank() != pc.Square.Rank() {
		return 0, false
	}
	df := lm.To.File() - pc.Square.File()
	if df != 1 && df != -1 {
		return 0, false
	}
	return SquareFromCoords(pc.Square.Rank()+pawnDir(pc.Color), lm.To.File())
}

func (b *Board) offsetMoves(pc *Piece, offsets []moveDelta) []Move {
	var moves []Move
	rank := pc.Square.Rank()
	file := pc.Square.File()

	for _, delta := range offsets {
		if target, ok := SquareFromCoords(rank+delta.dr, file+delta.df); ok {
			occupant := b.pieceAt[target]
			if occupant == nil || occupant.Color != pc.Color {
				moves = append(moves, Move{To: target})
			}
		}
	}
	return moves
}

func (b *Board) slidingMoves(pc *Piece, directions []moveDelta) []Move {
	var moves []Move
	startRank := pc.Square.Rank()
	startFile := pc.Square.File()

	for _, delta := range directions {
		rank := startRank + delta.dr
		file := startFile + delta.df
		for {
			target, ok := SquareFromCoords(rank, file)
			if !ok {
				break
			}
			occupant := b.pieceAt[target]
			if occupant == nil {
				moves = append(moves, Move{To: target})
				rank += delta.dr
				file += delta.df
				continue
			}
			if occupant.Color != pc.Color {
				moves = append(moves, Move{To: target})
			}
			break
		}
	}
	return moves
}

func (b *Board) kingMoves(pc *Piece) []Move {
	moves := b.offsetMoves(pc, kingOffsets[:])
	if mv, ok := b.castleMove(pc, 1); ok {
		moves = append(moves, mv)
	}
	if mv, ok := b.castleMove(pc, -1); ok {
		moves = append(moves, mv)
	}
	return moves
}

// castleMove offers castling towards fileDir (+1 kingside, -1 queenside)
// when the king and the corresponding rook are both unmoved, every square
// strictly between them is empty, and neither the king's square nor any
// square on its path (destination included) is attacked.
func (b *Board) castleMove(pc *Piece, fileDir int) (Move, bool) {
	if pc.Type != King || pc.HasMoved {
		return Move{}, false
	}
	rank := pc.Square.Rank()
	file := pc.Square.File()
	enemy := pc.Color.Opposite()

	rookFile := 7
	if fileDir < 0 {
		rookFile = 0
	}
	rookSq, ok := SquareFromCoords(rank, rookFile)
	if !ok {
		return Move{}, false
	}
	rook := b.pieceAt[rookSq]
	if rook == nil || rook.Color != pc.Color || rook.Type != Rook || rook.HasMoved {
		return Move{}, false
	}

	for f := file + fileDir; f != rookFile; f += fileDir {
		sq, ok := SquareFromCoords(rank, f)
		if !ok || b.pieceAt[sq] != nil {
			return Move{}, false
		}
	}

	enemyAttacks := b.attackSquares(enemy)
	if enemyAttacks.Has(pc.Square) {
		return Move{}, false
	}
	destFile := file + 2*fileDir
	for _, f := range []int{file + fileDir, destFile} {
		sq, ok := SquareFromCoords(rank, f)
		if !ok || enemyAttacks.Has(sq) {
			return Move{}, false
		}
	}

	dest, ok := SquareFromCoords(rank, destFile)
	if !ok {
		return Move{}, false
	}
	rookTo, ok := SquareFromCoords(rank, file+fileDir)
	if !ok {
		return Move{}, false
	}
	return Move{To: dest, Kind: MoveCastle, RookFrom: rookSq, RookTo: rookTo}, true
}

// attacks yields the set of squares pc threatens. Pawn diagonals are
// reported regardless of occupancy; pawn advances and castling are not
// attacks. Ray-walks stop at the first blocker and include its square only
// when it holds an enemy piece.
func (b *Board) attacks(pc *Piece) Bitboard {
	if pc == nil {
		return 0
	}
	switch pc.Type {
	case Pawn:
		return b.pawnAttacks(pc)
	case Knight:
		return b.offsetAttacks(pc, knightOffsets[:])
	case Bishop:
		return b.slidingAttacks(pc, bishopDirections[:])
	case Rook:
		return b.slidingAttacks(pc, rookDirections[:])
	case Queen:
		return b.slidingAttacks(pc, rookDirections[:]) | b.slidingAttacks(pc, bishopDirections[:])
	case King:
		return b.offsetAttacks(pc, kingOffsets[:])
	default:
		return 0
	}
}

func (b *Board) pawnAttacks(pc *Piece) Bitboard {
	var attacks Bitboard
	rank := pc.Square.Rank()
	file := pc.Square.File()
	dir := pawnDir(pc.Color)

	for _, df := range []int{-1, 1} {
		if target, ok := SquareFromCoords(rank+dir, file+df); ok {
			attacks = attacks.Add(target)
		}
	}
	return attacks
}

func (b *Board) offsetAttacks(pc *Piece, offsets []moveDelta) Bitboard {
	var attacks Bitboard
	rank := pc.Square.Rank()
	file := pc.Square.File()

	for _, delta := range offsets {
		if target, ok := SquareFromCoords(rank+delta.dr, file+delta.df); ok {
			occupant := b.pieceAt[target]
			if occupant == nil || occupant.Color != pc.Color {
				attacks = attacks.Add(target)
			}
		}
	}
	return attacks
}

func (b *Board) slidingAttacks(pc *Piece, directions []moveDelta) Bitboard {
	var attacks Bitboard
	startRank := pc.Square.Rank()
	startFile := pc.Square.File()

	for _, delta := range directions {
		rank := startRank + delta.dr
		file := startFile + delta.df
		for {
			target, ok := SquareFromCoords(rank, file)
			if !ok {
				break
			}
			occupant := b.pieceAt[target]
			if occupant == nil {
				attacks = attacks.Add(target)
				rank += delta.dr
				file += delta.df
				continue
			}
			if occupant.Color != pc.Color {
				attacks = attacks.Add(target)
			}
			break
		}
	}
	return attacks
}

// attackSquares is the union of every attack map of the given color.
func (b *Board) attackSquares(color Color) Bitboard {
	var attacks Bitboard
	for _, pc := range b.pieceAt {
		if pc != nil && pc.Color == color {
			attacks |= b.attacks(pc)
		}
	}
	return attacks
}

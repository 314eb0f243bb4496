// path: internal/game/combat.go
package game

// Combat resolution. A move onto an enemy-held defender square is resolved
// as a damage exchange: the defender loses HP equal to the attacker kind's
// damage and is removed only when its HP reaches zero. A non-lethal attack
// leaves the attacker on its origin square with its moved flag untouched.

// CombatPreview is the read-only answer to "what would this move do",
// used to drive presentation before the commit.
type CombatPreview struct {
	IsCombat       bool   `json:"isCombat"`
	Damage         int    `json:"damage"`
	Lethal         bool   `json:"lethal"`
	DefenderSquare Square `json:"defenderSquare"`
	DefenderHP     int    `json:"defenderHp"`
	RemainingHP    int    `json:"remainingHp"`
}

// MoveOutcome describes what a committed move did to the board.
type MoveOutcome struct {
	From     Square
	To       Square
	ActualTo Square
	Color    Color
	Attacker PieceType

	Combat         bool
	Damage         int
	Lethal         bool
	Defender       PieceType
	DefenderSquare Square
	DefenderHP     int

	Moved             bool
	WasDoublePawnStep bool
	Promoted          bool
	Castled           bool
	EnPassant         bool
}

// defenderSquare locates the piece a move would fight: for en passant the
// square behind the destination, otherwise the destination itself.
func (b *Board) defenderSquare(pc *Piece, mv Move) Square {
	if mv.Kind == MoveEnPassant {
		if sq, ok := SquareFromCoords(mv.To.Rank()-pawnDir(pc.Color), mv.To.File()); ok {
			return sq
		}
	}
	return mv.To
}

func (b *Board) previewCombat(from Square, mv Move) CombatPreview {
	pc := b.pieceAt[from]
	if pc == nil {
		return CombatPreview{DefenderSquare: mv.To}
	}
	defSq := b.defenderSquare(pc, mv)
	defender := b.pieceAt[defSq]
	if defender == nil || defender.Color == pc.Color {
		return CombatPreview{DefenderSquare: defSq}
	}

	damage := pc.Type.Damage()
	remaining := defender.HP - damage
	if remaining < 0 {
		remaining = 0
	}
	return CombatPreview{
		IsCombat:       true,
		Damage:         damage,
		Lethal:         remaining <= 0,
		DefenderSquare: defSq,
		DefenderHP:     defender.HP,
		RemainingHP:    remaining,
	}
}

// resolveMove applies a move to this board (the commit path passes the
// authoritative board, the legality filter a clone) and records it as the
// board's last move.
func (b *Board) resolveMove(from Square, mv Move) MoveOutcome {
	pc := b.pieceAt[from]
	if pc == nil {
		return MoveOutcome{From: from, To: mv.To, ActualTo: from}
	}

	out := MoveOutcome{
		From:     from,
		To:       mv.To,
		ActualTo: from,
		Color:    pc.Color,
		Attacker: pc.Type,
	}

	defSq := b.defenderSquare(pc, mv)
	defender := b.pieceAt[defSq]
	if defender != nil && defender.Color != pc.Color {
		out.Combat = true
		out.Defender = defender.Type
		out.DefenderSquare = defSq
		out.EnPassant = mv.Kind == MoveEnPassant
		out.Damage = pc.Type.Damage()

		hp := defender.HP - out.Damage
		if hp < 0 {
			hp = 0
		}
		if hp <= 0 {
			out.Lethal = true
			out.DefenderHP = 0
			b.pieceAt[defSq] = nil
			b.relocate(pc, from, mv, &out)
		} else {
			// Failed attack: the defender stays with reduced HP and the
			// attacker does not move, keep its moved flag unset.
			out.DefenderHP = hp
			defender.HP = hp
		}
	} else {
		b.relocate(pc, from, mv, &out)
	}

	b.lastMove = &LastMove{
		From:              from,
		To:                mv.To,
		Color:             out.Color,
		Type:              out.Attacker,
		WasDoublePawnStep: out.WasDoublePawnStep,
	}
	return out
}

// relocate completes a move as an occupancy change: destination, castle
// rook, promotion and moved flags.
func (b *Board) relocate(pc *Piece, from Square, mv Move, out *MoveOutcome) {
	b.pieceAt[from] = nil
	pc.Square = mv.To
	b.pieceAt[mv.To] = pc

	out.Moved = true
	out.ActualTo = mv.To
	out.WasDoublePawnStep = pc.Type == Pawn && absInt(mv.To.Rank()-from.Rank()) == 2
	pc.HasMoved = true

	if mv.Kind == MoveCastle {
		if rook := b.pieceAt[mv.RookFrom]; rook != nil && rook.Type == Rook && rook.Color == pc.Color {
			b.pieceAt[mv.RookFrom] = nil
			rook.Square = mv.RookTo
			b.pieceAt[mv.RookTo] = rook
			rook.HasMoved = true
			out.Castled = true
		}
	}

	b.resolvePromotion(pc, out)
}

// resolvePromotion turns a pawn on its farthest rank into a queen. The new
// HP ceiling applies, current HP is capped, never raised.
func (b *Board) resolvePromotion(pc *Piece, out *MoveOutcome) {
	if pc.Type != Pawn || pc.Square.Rank() != promotionRank(pc.Color) {
		return
	}
	pc.Type = Queen
	pc.MaxHP = Queen.MaxHP()
	if pc.HP > pc.MaxHP {
		pc.HP = pc.MaxHP
	}
	out.Promoted = true
	out.Attacker = Queen
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

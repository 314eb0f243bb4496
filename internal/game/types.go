// path: internal/game/types.go
package game

import "fmt"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return 0, false
	}
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("piece(%d)", p)
	}
}

func (p PieceType) Name() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Hit points and damage per kind. A piece enters play with HP equal to its
// kind's maximum and deals its kind's damage on every attack.
var (
	maxHPByType  = [6]int{2, 3, 3, 4, 5, 7}
	damageByType = [6]int{1, 2, 2, 3, 3, 2}
)

func (p PieceType) MaxHP() int {
	if int(p) >= len(maxHPByType) {
		return 0
	}
	return maxHPByType[p]
}

func (p PieceType) Damage() int {
	if int(p) >= len(damageByType) {
		return 0
	}
	return damageByType[p]
}

type Square uint8

func (s Square) Rank() int { return int(s) >> 3 }
func (s Square) File() int { return int(s) & 7 }

func (s Square) Valid() bool { return s < 64 }

func (s Square) String() string {
	file := byte('a' + s.File())
	rank := byte('1' + s.Rank())
	return string([]byte{file, rank})
}

func CoordToSquare(coord string) (Square, bool) {
	if len(coord) != 2 {
		return 0, false
	}
	file := coord[0]
	rank := coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	r := int(rank - '1')
	c := int(file - 'a')
	return Square(r*8 + c), true
}

func SquareFromCoords(rank, file int) (Square, bool) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return 0, false
	}
	return Square(rank*8 + file), true
}

// MoveKind tags the bookkeeping a move needs beyond the occupancy change.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCastle
	MoveEnPassant
)

func (k MoveKind) String() string {
	switch k {
	case MoveNormal:
		return "normal"
	case MoveCastle:
		return "castle"
	case MoveEnPassant:
		return "en-passant"
	default:
		return "?"
	}
}

// Move is a destination produced relative to an implicit origin square.
// RookFrom/RookTo are meaningful only for MoveCastle.
type Move struct {
	To       Square
	Kind     MoveKind
	RookFrom Square
	RookTo   Square
}

// LastMove is the only historical state the board retains. It exists to
// validate en passant on the immediately following move and is overwritten
// by every committed move.
type LastMove struct {
	From              Square
	To                Square
	Color             Color
	Type              PieceType
	WasDoublePawnStep bool
}

type moveDelta struct {
	dr int
	df int
}

var (
	rookDirections = [...]moveDelta{
		{dr: 1, df: 0},
		{dr: -1, df: 0},
		{dr: 0, df: 1},
		{dr: 0, df: -1},
	}
	bishopDirections = [...]moveDelta{
		{dr: 1, df: 1},
		{dr: 1, df: -1},
		{dr: -1, df: 1},
		{dr: -1, df: -1},
	}
	knightOffsets = [...]moveDelta{
		{dr: 2, df: 1},
		{dr: 1, df: 2},
		{dr: -1, df: 2},
		{dr: -2, df: 1},
		{dr: -2, df: -1},
		{dr: -1, df: -2},
		{dr: 1, df: -2},
		{dr: 2, df: -1},
	}
	kingOffsets = [...]moveDelta{
		{dr: 1, df: 0}, {dr: 1, df: 1}, {dr: 0, df: 1}, {dr: -1, df: 1},
		{dr: -1, df: 0}, {dr: -1, df: -1}, {dr: 0, df: -1}, {dr: 1, df: -1},
	}
)

// pawnDir is the rank delta a pawn of the given color advances by.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

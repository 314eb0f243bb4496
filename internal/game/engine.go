// path: internal/game/engine.go
// Package game implements the hit-point combat chess rules engine.
package game

import "fmt"

// Engine owns the authoritative board and the single-commit gate. All
// exploratory work (legality filtering, status evaluation, combat preview)
// runs on throwaway clones; only the commit path mutates e.board.
type Engine struct {
	board       Board
	nextPieceID int
	pending     *MovePlan
}

// Board represents the state of the chessboard.
type Board struct {
	pieceAt  [64]*Piece
	turn     Color
	lastMove *LastMove
	lastNote string

	InCheck   bool
	GameOver  bool
	HasWinner bool
	Winner    Color
	Status    string
}

// Piece represents a single piece on the board. Invariant: 0 < HP <= MaxHP
// while the piece is on the board; a piece whose HP reaches zero is removed.
type Piece struct {
	ID       int
	Color    Color
	Type     PieceType
	Square   Square
	HP       int
	MaxHP    int
	HasMoved bool
}

// Game status values, derived from board+turn after every committed move.
const (
	StatusActive    = "active"
	StatusCheckmate = "checkmate"
	StatusStalemate = "stalemate"
)

// MovePlan is a validated move waiting for its presentation step. While a
// plan is pending the engine rejects new Begin/Move attempts.
type MovePlan struct {
	From    Square
	Move    Move
	Preview CombatPreview
}

// NewEngine creates and initializes a new game engine.
func NewEngine() *Engine {
	eng := &Engine{}
	eng.Reset()
	return eng
}

// Reset clears the engine state and sets up a standard new game.
func (e *Engine) Reset() {
	e.board = Board{}
	e.nextPieceID = 1
	e.pending = nil

	setup := func(color Color, backRank, pawnRank int) {
		order := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for file, pt := range order {
			sq := Square(backRank*8 + file)
			e.placePiece(color, pt, sq)
		}
		for file := 0; file < 8; file++ {
			sq := Square(pawnRank*8 + file)
			e.placePiece(color, Pawn, sq)
		}
	}

	setup(Black, 7, 6)
	setup(White, 0, 1)
	e.board.turn = White
	e.board.lastNote = "New game"
	e.board.updateStatus()
}

func (e *Engine) placePiece(color Color, pt PieceType, sq Square) *Piece {
	id := e.nextPieceID
	e.nextPieceID++
	pc := &Piece{
		ID:     id,
		Color:  color,
		Type:   pt,
		Square: sq,
		HP:     pt.MaxHP(),
		MaxHP:  pt.MaxHP(),
	}
	e.board.pieceAt[sq] = pc
	return pc
}

// Turn reports the side to move.
func (e *Engine) Turn() Color { return e.board.turn }

// PieceAt returns a value copy of the piece at sq, if any.
func (e *Engine) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	pc := e.board.pieceAt[sq]
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// InCheck reports whether the given color's king is attacked. A board with
// no king of that color reports false.
func (e *Engine) InCheck(color Color) bool {
	return e.board.kingInCheck(color)
}

// LegalMoves returns every legal move for the piece at from: pseudo-moves
// filtered so that none leaves the mover's own king in check.
func (e *Engine) LegalMoves(from Square) ([]Move, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSquare, from)
	}
	pc := e.board.pieceAt[from]
	if pc == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	return e.board.legalMoves(pc), nil
}

// PreviewCombat reports, without mutating anything, whether moving the piece
// at from along mv is a combat move and how the damage exchange would end.
func (e *Engine) PreviewCombat(from Square, mv Move) (CombatPreview, error) {
	if !from.Valid() || !mv.To.Valid() {
		return CombatPreview{}, ErrInvalidSquare
	}
	pc := e.board.pieceAt[from]
	if pc == nil {
		return CombatPreview{}, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	return e.board.previewCombat(from, mv), nil
}

// Begin validates a move intent and arms the commit gate. The returned plan
// carries the decided combat parameters for the presentation step; the
// decision is final and Commit will apply it even if presentation is
// interrupted. Begin fails with ErrMoveInProgress while a plan is pending.
func (e *Engine) Begin(from, to Square) (MovePlan, error) {
	if e.pending != nil {
		return MovePlan{}, ErrMoveInProgress
	}
	mv, err := e.validateMove(from, to)
	if err != nil {
		return MovePlan{}, err
	}
	plan := MovePlan{From: from, Move: mv, Preview: e.board.previewCombat(from, mv)}
	e.pending = &plan
	return plan, nil
}

// Commit applies the pending plan to the authoritative board, flips the
// turn, re-evaluates game status and releases the commit gate.
func (e *Engine) Commit() (MoveResult, error) {
	if e.pending == nil {
		return MoveResult{}, ErrNoPendingMove
	}
	plan := *e.pending

	outcome := e.board.resolveMove(plan.From, plan.Move)
	e.board.turn = e.board.turn.Opposite()
	e.board.updateStatus()
	e.board.noteOutcome(outcome)

	e.pending = nil
	return MoveResult{Outcome: outcome, State: e.State()}, nil
}

// Move is Begin+Commit for callers with no presentation step in between.
func (e *Engine) Move(from, to Square) (MoveResult, error) {
	if _, err := e.Begin(from, to); err != nil {
		return MoveResult{}, err
	}
	return e.Commit()
}

func (e *Engine) validateMove(from, to Square) (Move, error) {
	if !from.Valid() || !to.Valid() {
		return Move{}, ErrInvalidSquare
	}
	if e.board.GameOver {
		return Move{}, ErrGameOver
	}
	pc := e.board.pieceAt[from]
	if pc == nil {
		return Move{}, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	if pc.Color != e.board.turn {
		return Move{}, fmt.Errorf("%w: it is %s's turn", ErrIllegalMove, e.board.turn)
	}
	for _, mv := range e.board.legalMoves(pc) {
		if mv.To == to {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s-%s", ErrIllegalMove, from, to)
}

func clonePiece(pc *Piece) *Piece {
	if pc == nil {
		return nil
	}
	clone := *pc
	return &clone
}

// clone produces a deep, independent copy; mutations to the clone are never
// observable on the original.
func (b *Board) clone() Board {
	out := *b
	for i, pc := range b.pieceAt {
		out.pieceAt[i] = clonePiece(pc)
	}
	if b.lastMove != nil {
		lm := *b.lastMove
		out.lastMove = &lm
	}
	return out
}

func appendNote(dst *string, note string) {
	if *dst == "" || *dst == "New game" {
		*dst = note
	} else {
		*dst += "; " + note
	}
}

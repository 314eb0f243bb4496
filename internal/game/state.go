// path: internal/game/state.go
package game

// PieceState is a serializable representation of a Piece.
type PieceState struct {
	ID        int       `json:"id"`
	Color     Color     `json:"color"`
	ColorName string    `json:"colorName"`
	Type      PieceType `json:"type"`
	TypeName  string    `json:"typeName"`
	Square    Square    `json:"square"`
	Coord     string    `json:"coord"`
	HP        int       `json:"hp"`
	MaxHP     int       `json:"maxHp"`
	HasMoved  bool      `json:"hasMoved"`
}

// LastMoveState is a serializable representation of the last-move memory.
type LastMoveState struct {
	From              string `json:"from"`
	To                string `json:"to"`
	Color             string `json:"color"`
	Piece             string `json:"piece"`
	WasDoublePawnStep bool   `json:"wasDoublePawnStep"`
}

// BoardState is a serializable representation of the game state.
type BoardState struct {
	Pieces     []PieceState   `json:"pieces"`
	Turn       Color          `json:"turn"`
	TurnName   string         `json:"turnName"`
	LastNote   string         `json:"lastNote"`
	InCheck    bool           `json:"inCheck"`
	GameOver   bool           `json:"gameOver"`
	Status     string         `json:"status"`
	HasWinner  bool           `json:"hasWinner"`
	Winner     Color          `json:"winner"`
	WinnerName string         `json:"winnerName"`
	LastMove   *LastMoveState `json:"lastMove,omitempty"`
}

// MoveOption pairs a legal move with its combat preview for presentation.
type MoveOption struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Kind     string        `json:"kind"`
	RookFrom string        `json:"rookFrom,omitempty"`
	RookTo   string        `json:"rookTo,omitempty"`
	Preview  CombatPreview `json:"preview"`
}

// MoveResult is returned by Commit: the outcome of the move plus the new
// authoritative state.
type MoveResult struct {
	Outcome MoveOutcome `json:"outcome"`
	State   BoardState  `json:"state"`
}

// State returns a serializable representation of the current game state.
func (e *Engine) State() BoardState {
	winnerName := ""
	if e.board.HasWinner {
		winnerName = e.board.Winner.String()
	}

	state := BoardState{
		Pieces:     make([]PieceState, 0, 32),
		Turn:       e.board.turn,
		TurnName:   e.board.turn.String(),
		LastNote:   e.board.lastNote,
		InCheck:    e.board.InCheck,
		GameOver:   e.board.GameOver,
		Status:     e.board.Status,
		HasWinner:  e.board.HasWinner,
		Winner:     e.board.Winner,
		WinnerName: winnerName,
	}

	for _, pc := range e.board.pieceAt {
		if pc == nil {
			continue
		}
		state.Pieces = append(state.Pieces, PieceState{
			ID:        pc.ID,
			Color:     pc.Color,
			ColorName: pc.Color.String(),
			Type:      pc.Type,
			TypeName:  pc.Type.String(),
			Square:    pc.Square,
			Coord:     pc.Square.String(),
			HP:        pc.HP,
			MaxHP:     pc.MaxHP,
			HasMoved:  pc.HasMoved,
		})
	}

	if lm := e.board.lastMove; lm != nil {
		state.LastMove = &LastMoveState{
			From:              lm.From.String(),
			To:                lm.To.String(),
			Color:             lm.Color.String(),
			Piece:             lm.Type.String(),
			WasDoublePawnStep: lm.WasDoublePawnStep,
		}
	}

	return state
}

// MoveOptions returns the legal moves for the piece at from together with
// their combat previews.
func (e *Engine) MoveOptions(from Square) ([]MoveOption, error) {
	moves, err := e.LegalMoves(from)
	if err != nil {
		return nil, err
	}
	options := make([]MoveOption, 0, len(moves))
	for _, mv := range moves {
		opt := MoveOption{
			From:    from.String(),
			To:      mv.To.String(),
			Kind:    mv.Kind.String(),
			Preview: e.board.previewCombat(from, mv),
		}
		if mv.Kind == MoveCastle {
			opt.RookFrom = mv.RookFrom.String()
			opt.RookTo = mv.RookTo.String()
		}
		options = append(options, opt)
	}
	return options, nil
}

// path: internal/game/errors.go
package game

import "errors"

// All engine errors are caller-recoverable: the board is never mutated
// before every precondition check has passed.
var (
	ErrInvalidSquare   = errors.New("invalid square")
	ErrNoPieceAtOrigin = errors.New("no piece at origin square")
	ErrIllegalMove     = errors.New("illegal move")
	ErrMoveInProgress  = errors.New("move already in progress")
	ErrNoPendingMove   = errors.New("no pending move to commit")
	ErrGameOver        = errors.New("game is over")
)

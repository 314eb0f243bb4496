// path: internal/game/status_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoolsMate(t *testing.T) {
	eng := NewEngine()

	playMoves(t, eng, [][2]string{
		{"f2", "f3"},
		{"e7", "e5"},
		{"g2", "g4"},
	})

	res, err := eng.Move(mustSquare(t, "d8"), mustSquare(t, "h4"))
	require.NoError(t, err)

	state := res.State
	require.True(t, state.GameOver)
	require.Equal(t, StatusCheckmate, state.Status)
	require.True(t, state.InCheck)
	require.True(t, state.HasWinner)
	require.Equal(t, Black, state.Winner)
	require.Equal(t, White, state.Turn)
	require.Contains(t, state.LastNote, "checkmate")
}

func TestStalemate(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	place(eng, Black, King, "a8")
	place(eng, White, King, "b6")
	place(eng, White, Queen, "c7")
	eng.board.turn = Black
	eng.board.updateStatus()

	state := eng.State()
	require.True(t, state.GameOver)
	require.Equal(t, StatusStalemate, state.Status)
	require.False(t, state.InCheck)
	require.False(t, state.HasWinner)
}

func TestCheckReportedInState(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	place(eng, White, King, "e1")
	place(eng, White, Pawn, "a2")
	place(eng, Black, King, "h8")
	place(eng, Black, Rook, "e8")
	eng.board.updateStatus()

	require.True(t, eng.InCheck(White))
	require.False(t, eng.InCheck(Black))
	require.True(t, eng.State().InCheck)
	require.False(t, eng.State().GameOver)
}

func TestMissingKingReportsNoCheck(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	place(eng, White, King, "e1")
	place(eng, White, Rook, "e4")

	require.False(t, eng.InCheck(Black))
}

func TestPinnedSliderMayOnlyStrikeAlongPin(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	place(eng, White, King, "e1")
	place(eng, White, Rook, "e2")
	place(eng, Black, King, "h8")
	place(eng, Black, Rook, "e8")

	moves, err := eng.LegalMoves(mustSquare(t, "e2"))
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	for _, mv := range moves {
		require.Equal(t, 4, mv.To.File(), "pinned rook may not leave the e-file, got %s", mv.To)
	}

	// The attack on the pinning rook is legal even though it cannot kill:
	// the attacker stays on its square and the king stays shielded.
	atk, ok := findMoveTo(moves, mustSquare(t, "e8"))
	require.True(t, ok)

	res, err := eng.Move(mustSquare(t, "e2"), atk.To)
	require.NoError(t, err)
	require.True(t, res.Outcome.Combat)
	require.False(t, res.Outcome.Lethal)
	require.False(t, eng.InCheck(White))
}

func TestNonLethalCaptureDoesNotRelieveCheck(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	place(eng, White, King, "e1")
	place(eng, Black, King, "h8")
	place(eng, Black, Queen, "e2")
	place(eng, Black, Rook, "f3")

	// Kxe2 would not be lethal (2 damage against 5 HP), so the king would
	// stay on e1, still in check. The move must be filtered out.
	moves, err := eng.LegalMoves(mustSquare(t, "e1"))
	require.NoError(t, err)
	_, ok := findMoveTo(moves, mustSquare(t, "e2"))
	require.False(t, ok, "a failed attack cannot answer check")
}

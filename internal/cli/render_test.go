// path: internal/cli/render_test.go
package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hpchess/internal/game"
)

func TestDrawNewGame(t *testing.T) {
	eng := game.NewEngine()
	out := Draw(eng.State(), true)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9, "eight ranks plus the file labels")
	require.Contains(t, lines[0], "8")
	require.Contains(t, lines[7], "1")
	require.Contains(t, lines[8], "a")

	require.Equal(t, 8, strings.Count(out, "♙"), "eight white pawns")
	require.Equal(t, 1, strings.Count(out, "♚"), "one black king")
	require.Contains(t, out, "♔7", "king drawn with its HP")
	require.Contains(t, out, "♟2", "pawn drawn with its HP")
}

func TestDrawWithoutHP(t *testing.T) {
	eng := game.NewEngine()
	out := Draw(eng.State(), false)
	require.NotContains(t, out, "♔7")
	require.Contains(t, out, "♔")
}

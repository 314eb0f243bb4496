// path: internal/boardsvg/boardsvg_test.go
package boardsvg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hpchess/internal/game"
)

func TestRenderNewGame(t *testing.T) {
	eng := game.NewEngine()

	var buf bytes.Buffer
	Render(&buf, eng.State(), ClassicTheme)
	out := buf.String()

	require.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	require.Contains(t, out, "</svg>")
	require.Equal(t, 8, strings.Count(out, "♙"), "eight white pawns")
	require.Equal(t, 1, strings.Count(out, "♛"), "one black queen")
	// 64 board squares plus nothing else uses <rect>.
	require.Equal(t, 64, strings.Count(out, "<rect"))
}

func TestRenderShowsHPPips(t *testing.T) {
	eng := game.NewEngine()

	var buf bytes.Buffer
	Render(&buf, eng.State(), DarkTheme)
	out := buf.String()

	// 2*(8 pawns*2 + 2 knights*3 + 2 bishops*3 + 2 rooks*4 + queen*5 + king*7)
	wantPips := 2 * (8*2 + 2*3 + 2*3 + 2*4 + 5 + 7)
	require.Equal(t, wantPips, strings.Count(out, "<circle"))
	require.Contains(t, out, DarkTheme.HPFull)
	require.NotContains(t, out, DarkTheme.HPLost, "no piece is wounded yet")
}

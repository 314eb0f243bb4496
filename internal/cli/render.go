// path: internal/cli/render.go
// Package cli renders a board state as colored text for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"hpchess/internal/game"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	rankLabel   = color.New(color.Bold)
	noteStyle   = color.New(color.Faint)
	checkStyle  = color.New(color.FgRed, color.Bold)
)

var glyphs = map[game.Color]map[game.PieceType]string{
	game.White: {
		game.Pawn: "♙", game.Knight: "♘", game.Bishop: "♗",
		game.Rook: "♖", game.Queen: "♕", game.King: "♔",
	},
	game.Black: {
		game.Pawn: "♟", game.Knight: "♞", game.Bishop: "♝",
		game.Rook: "♜", game.Queen: "♛", game.King: "♚",
	},
}

// Draw renders the board with white's back rank at the bottom. When showHP
// is set each occupied square carries the piece's current HP.
func Draw(state game.BoardState, showHP bool) string {
	occupied := make(map[game.Square]game.PieceState, len(state.Pieces))
	for _, pc := range state.Pieces {
		occupied[pc.Square] = pc
	}

	builder := strings.Builder{}
	for rank := 7; rank >= 0; rank-- {
		builder.WriteString(rankLabel.Sprintf(" %d ", rank+1))
		for file := 0; file < 8; file++ {
			sq, _ := game.SquareFromCoords(rank, file)
			cell := "    "
			if pc, ok := occupied[sq]; ok {
				if showHP {
					cell = fmt.Sprintf(" %s%d ", glyphs[pc.Color][pc.Type], pc.HP)
				} else {
					cell = fmt.Sprintf(" %s  ", glyphs[pc.Color][pc.Type])
				}
			}
			style := darkSquare
			if (rank+file)%2 == 1 {
				style = lightSquare
			}
			builder.WriteString(style.Sprint(cell))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("   ")
	for file := 0; file < 8; file++ {
		builder.WriteString(rankLabel.Sprintf("  %c ", 'a'+file))
	}
	builder.WriteString("\n")
	return builder.String()
}

// Status renders the one-line game status under the board.
func Status(state game.BoardState) string {
	if state.GameOver || state.InCheck {
		return checkStyle.Sprint(state.LastNote)
	}
	return noteStyle.Sprint(state.LastNote)
}

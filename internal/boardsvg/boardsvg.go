// path: internal/boardsvg/boardsvg.go
// Package boardsvg renders a board state as a standalone SVG image with
// hit-point pips under every piece.
package boardsvg

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"hpchess/internal/game"
)

const (
	squareSize = 60
	margin     = 24
	boardSpan  = 8 * squareSize
	imageSpan  = boardSpan + 2*margin
)

// Theme holds the fill colors used by Render.
type Theme struct {
	Light     string
	Dark      string
	WhiteText string
	BlackText string
	HPFull    string
	HPLost    string
}

// ClassicTheme is the default wood-like palette.
var ClassicTheme = Theme{
	Light:     "#f0d9b5",
	Dark:      "#b58863",
	WhiteText: "#ffffff",
	BlackText: "#202020",
	HPFull:    "#2e7d32",
	HPLost:    "#c62828",
}

// DarkTheme is a low-glare palette for dark pages.
var DarkTheme = Theme{
	Light:     "#6b7280",
	Dark:      "#374151",
	WhiteText: "#f9fafb",
	BlackText: "#111827",
	HPFull:    "#34d399",
	HPLost:    "#f87171",
}

var glyphs = map[string]map[game.PieceType]string{
	"white": {
		game.Pawn: "♙", game.Knight: "♘", game.Bishop: "♗",
		game.Rook: "♖", game.Queen: "♕", game.King: "♔",
	},
	"black": {
		game.Pawn: "♟", game.Knight: "♞", game.Bishop: "♝",
		game.Rook: "♜", game.Queen: "♛", game.King: "♚",
	},
}

// Render writes the state as an SVG document. White's back rank is drawn at
// the bottom.
func Render(w io.Writer, state game.BoardState, theme Theme) {
	canvas := svg.New(w)
	canvas.Start(imageSpan, imageSpan)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := squareOrigin(rank, file)
			fill := theme.Dark
			if (rank+file)%2 == 1 {
				fill = theme.Light
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)
		}
	}

	drawCoordinates(canvas)

	for _, pc := range state.Pieces {
		drawPiece(canvas, pc, theme)
	}
}

func squareOrigin(rank, file int) (int, int) {
	x := margin + file*squareSize
	y := margin + (7-rank)*squareSize
	return x, y
}

func drawCoordinates(canvas *svg.SVG) {
	const style = "font-size:12px;font-family:sans-serif;fill:#555;text-anchor:middle"
	for file := 0; file < 8; file++ {
		x := margin + file*squareSize + squareSize/2
		canvas.Text(x, imageSpan-margin/3, string(rune('a'+file)), style)
	}
	for rank := 0; rank < 8; rank++ {
		y := margin + (7-rank)*squareSize + squareSize/2 + 4
		canvas.Text(margin/2, y, string(rune('1'+rank)), style)
	}
}

func drawPiece(canvas *svg.SVG, pc game.PieceState, theme Theme) {
	x, y := squareOrigin(pc.Square.Rank(), pc.Square.File())
	cx := x + squareSize/2

	glyph := glyphs[pc.ColorName][pc.Type]
	textColor := theme.BlackText
	if pc.ColorName == "white" {
		textColor = theme.WhiteText
	}
	canvas.Text(cx, y+squareSize/2+12, glyph,
		fmt.Sprintf("font-size:40px;text-anchor:middle;fill:%s", textColor))

	// One pip per max HP, filled for the HP still left.
	pipSpacing := squareSize / (pc.MaxHP + 1)
	pipY := y + squareSize - 6
	for i := 0; i < pc.MaxHP; i++ {
		fill := theme.HPLost
		if i < pc.HP {
			fill = theme.HPFull
		}
		canvas.Circle(x+pipSpacing*(i+1), pipY, 3, "fill:"+fill)
	}
}

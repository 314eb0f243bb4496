// path: internal/tui/board.go
// Package tui specifies custom controls for tview to play hit-point chess in
// the terminal.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hpchess/internal/config"
	"hpchess/internal/game"
)

var glyphs = map[game.Color]map[game.PieceType]rune{
	game.White: {
		game.Pawn: '♙', game.Knight: '♘', game.Bishop: '♗',
		game.Rook: '♖', game.Queen: '♕', game.King: '♔',
	},
	game.Black: {
		game.Pawn: '♟', game.Knight: '♞', game.Bishop: '♝',
		game.Rook: '♜', game.Queen: '♛', game.King: '♚',
	},
}

// BoardUI renders the engine state into a tview Box and tracks the cursor
// and the currently picked origin square.
type BoardUI struct {
	Box  *tview.Box
	hint *tview.TextView
	cfg  *config.Config
	eng  *game.Engine

	selRank int
	selFile int
	origin  *game.Square
	targets map[game.Square]game.CombatPreview
}

// NewBoardUI builds the board widget around an engine.
func NewBoardUI(eng *game.Engine, cfg *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:     tview.NewBox(),
		hint:    hint,
		cfg:     cfg,
		eng:     eng,
		selRank: 0,
		selFile: 4,
	}
	b.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		b.draw(screen, x, y)
		return x, y, 8*3 + 4, 8 + 2
	})
	b.refreshHint()
	return b
}

func (b *BoardUI) draw(screen tcell.Screen, x, y int) {
	state := b.eng.State()
	occupied := make(map[game.Square]game.PieceState, len(state.Pieces))
	for _, pc := range state.Pieces {
		occupied[pc.Square] = pc
	}

	light, dark := tcell.ColorWheat, tcell.ColorDarkGoldenrod
	if b.cfg.Theme == config.ThemeDark {
		light, dark = tcell.ColorGray, tcell.ColorDarkSlateGray
	}

	for rank := 7; rank >= 0; rank-- {
		screenY := y + (7 - rank)
		screen.SetContent(x, screenY, rune('1'+rank), nil, tcell.StyleDefault)
		for file := 0; file < 8; file++ {
			sq, _ := game.SquareFromCoords(rank, file)
			bg := dark
			if (rank+file)%2 == 1 {
				bg = light
			}
			switch {
			case b.origin != nil && *b.origin == sq:
				bg = tcell.ColorYellow
			case b.isTarget(sq):
				if prev, ok := b.targets[sq]; ok && prev.IsCombat {
					bg = tcell.ColorIndianRed
				} else {
					bg = tcell.ColorSkyblue
				}
			case rank == b.selRank && file == b.selFile:
				bg = tcell.ColorLightGreen
			}
			style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)

			cell := [3]rune{' ', ' ', ' '}
			if pc, ok := occupied[sq]; ok {
				cell[0] = glyphs[pc.Color][pc.Type]
				if b.cfg.ShowHP {
					cell[1] = rune('0' + pc.HP)
				}
			}
			screenX := x + 2 + file*3
			for i, r := range cell {
				screen.SetContent(screenX+i, screenY, r, nil, style)
			}
		}
	}
	for file := 0; file < 8; file++ {
		screen.SetContent(x+3+file*3, y+8, rune('a'+file), nil, tcell.StyleDefault)
	}
}

func (b *BoardUI) isTarget(sq game.Square) bool {
	_, ok := b.targets[sq]
	return ok
}

func (b *BoardUI) selected() game.Square {
	sq, _ := game.SquareFromCoords(b.selRank, b.selFile)
	return sq
}

// MoveSelection moves the cursor by the given file and rank offsets.
func (b *BoardUI) MoveSelection(df, dr int) {
	if b.selFile+df >= 0 && b.selFile+df < 8 {
		b.selFile += df
	}
	if b.selRank+dr >= 0 && b.selRank+dr < 8 {
		b.selRank += dr
	}
}

// Select picks the cursor square as the move origin, or commits the move when
// an origin is already picked and the cursor is on one of its targets.
func (b *BoardUI) Select() {
	sq := b.selected()

	if b.origin != nil {
		if *b.origin == sq {
			b.ClearSelection()
			b.refreshHint()
			return
		}
		if b.isTarget(sq) {
			_, err := b.eng.Move(*b.origin, sq)
			b.ClearSelection()
			if err != nil {
				b.hint.SetText(fmt.Sprintf("[red]%v", err))
				return
			}
			b.refreshHint()
			return
		}
	}

	pc, ok := b.eng.PieceAt(sq)
	if !ok || pc.Color != b.eng.Turn() {
		b.ClearSelection()
		b.refreshHint()
		return
	}
	options, err := b.eng.MoveOptions(sq)
	if err != nil || len(options) == 0 {
		b.ClearSelection()
		b.refreshHint()
		return
	}
	origin := sq
	b.origin = &origin
	b.targets = make(map[game.Square]game.CombatPreview, len(options))
	for _, opt := range options {
		to, ok := game.CoordToSquare(opt.To)
		if !ok {
			continue
		}
		b.targets[to] = opt.Preview
	}
	b.refreshHint()
}

// ClearSelection drops the picked origin and its targets.
func (b *BoardUI) ClearSelection() {
	b.origin = nil
	b.targets = nil
}

// Reset starts a new game.
func (b *BoardUI) Reset() {
	b.eng.Reset()
	b.ClearSelection()
	b.refreshHint()
}

func (b *BoardUI) refreshHint() {
	state := b.eng.State()
	text := state.LastNote
	if b.origin != nil {
		if prev, ok := b.targets[b.selected()]; ok && prev.IsCombat {
			if prev.Lethal {
				text = fmt.Sprintf("%s deals %d damage: lethal", b.origin, prev.Damage)
			} else {
				text = fmt.Sprintf("%s deals %d damage, defender keeps %d hp", b.origin, prev.Damage, prev.RemainingHP)
			}
		} else {
			text = fmt.Sprintf("%s selected", b.origin)
		}
	}
	if state.GameOver {
		text = "[red]" + state.LastNote + "[-] (n: new game, q: quit)"
	}
	b.hint.SetText(text)
}

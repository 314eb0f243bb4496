// path: internal/tui/app.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hpchess/internal/config"
	"hpchess/internal/game"
)

// Run starts the interactive terminal client and blocks until the player
// quits.
func Run(eng *game.Engine, cfg *config.Config) error {
	app := tview.NewApplication()

	hint := tview.NewTextView().SetDynamicColors(true)
	hint.SetBorderPadding(1, 0, 1, 1)

	board := NewBoardUI(eng, cfg, hint)
	board.Box.SetBorder(true).SetTitle(" hpchess ")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, 11, 0, true).
		AddItem(hint, 0, 1, false)

	move := func(df, dr int) {
		board.MoveSelection(df, dr)
		board.refreshHint()
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			move(0, 1)
		case tcell.KeyDown:
			move(0, -1)
		case tcell.KeyLeft:
			move(-1, 0)
		case tcell.KeyRight:
			move(1, 0)
		case tcell.KeyEnter:
			board.Select()
		case tcell.KeyEscape:
			board.ClearSelection()
			board.refreshHint()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'k':
				move(0, 1)
			case 'j':
				move(0, -1)
			case 'h':
				move(-1, 0)
			case 'l':
				move(1, 0)
			case ' ':
				board.Select()
			case 'n':
				board.Reset()
			case 'q':
				app.Stop()
			}
		default:
			return event
		}
		return nil
	})

	return app.SetRoot(layout, true).Run()
}

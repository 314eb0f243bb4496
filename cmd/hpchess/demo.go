// path: cmd/hpchess/demo.go
package main

import (
	"fmt"
	"math/rand"
	"time"

	"hpchess/internal/cli"
	"hpchess/internal/config"
	"hpchess/internal/game"
)

type candidate struct {
	from game.Square
	mv   game.Move
}

// runDemo plays random legal moves until the game ends or the move cap is
// reached, drawing the board after each move.
func runDemo(eng *game.Engine, cfg *config.Config, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	for step := 0; step < 400; step++ {
		mvs := allLegalMoves(eng)
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: %s", eng.State().Status)
		}
		pick := mvs[rng.Intn(len(mvs))]

		res, err := eng.Move(pick.from, pick.mv.To)
		if err != nil {
			return fmt.Errorf("apply %s-%s: %w", pick.from, pick.mv.To, err)
		}

		fmt.Printf("\n===== [#%d] %s: %s-%s\n", step/2+1, res.Outcome.Color, pick.from, pick.mv.To)
		fmt.Println(cli.Draw(res.State, cfg.ShowHP))
		fmt.Println(cli.Status(res.State))

		if res.State.GameOver {
			break
		}
		if res.State.InCheck {
			<-time.Tick(100 * time.Millisecond)
		}
		<-time.Tick(10 * time.Millisecond)
	}
	return nil
}

func allLegalMoves(eng *game.Engine) []candidate {
	var out []candidate
	turn := eng.Turn()
	for sq := game.Square(0); sq < 64; sq++ {
		pc, ok := eng.PieceAt(sq)
		if !ok || pc.Color != turn {
			continue
		}
		mvs, err := eng.LegalMoves(sq)
		if err != nil {
			continue
		}
		for _, mv := range mvs {
			out = append(out, candidate{from: sq, mv: mv})
		}
	}
	return out
}

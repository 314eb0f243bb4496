// path: cmd/hpchess/main.go
// Terminal client: interactive board by default, -demo plays a random game
// against itself and prints every position.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"hpchess/internal/config"
	"hpchess/internal/game"
	"hpchess/internal/tui"
)

func main() {
	demo := flag.Bool("demo", getenb("HPCHESS_DEMO", false), "play a random demo game and exit")
	seed := flag.Int64("seed", 1, "random seed for -demo")
	flag.Parse()

	cfg, err := config.InitConfig()
	fatalIf(err, "load config")

	eng := game.NewEngine()

	if *demo {
		fatalIf(runDemo(eng, cfg, *seed), "demo")
		return
	}
	fatalIf(tui.Run(eng, cfg), "tui")
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}

// path: cmd/server/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hpchess/internal/config"
	"hpchess/internal/game"
	"hpchess/internal/httpx"
)

func main() {
	// Flags (env fallbacks).
	addr := flag.String("addr", getenv("HPCHESS_ADDR", ":8080"), "listen address")
	theme := flag.String("theme", getenv("HPCHESS_THEME", ""), "board theme override (classic|dark)")
	flag.Parse()

	cfg, err := config.InitConfig()
	fatalIf(err, "load config")
	if *theme != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(*theme))
		fatalIf(cfg.Validate(), "theme flag")
	}

	eng := game.NewEngine()
	srv := httpx.NewServer(eng, cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}

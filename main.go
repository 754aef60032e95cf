package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/papercards/prefabs"
)

func main() {
	deckName := flag.String("deck", prefabs.DefaultDeck, "deck file in prefabs/ (or an absolute path)")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	resume := flag.Bool("resume", false, "restore and save card positions between runs")
	dbPath := flag.String("db", "papercards.db", "card state database used with -resume")
	outDir := flag.String("out", ".", "directory the exported archive is written to")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("papercards")

	game, err := NewGame(gameOptions{
		deck:   *deckName,
		debug:  *debug,
		resume: *resume,
		dbPath: *dbPath,
		outDir: *outDir,
		logger: logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

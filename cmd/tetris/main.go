package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/internal/gameflags"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize = 28
	Margin   = 40
	Sidebar  = 160
)

func main() {
	gf := gameflags.Register(flag.CommandLine)
	flag.Parse()

	game, err := gf.NewGame()
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	cfg := game.Config()

	scheduler := tetris.NewScheduler(nil)
	scheduler.Register(game)

	width := Margin*2 + cfg.Columns*CellSize + Sidebar
	height := Margin*2 + cfg.Rows*CellSize

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Blockfall")

	ui := &UI{
		Game:      game,
		Scheduler: scheduler,
		width:     width,
		height:    height,
	}

	game.Start()
	log.Printf("Started %dx%d game, gravity %s", cfg.Rows, cfg.Columns, game.Interval())

	if err := ebiten.RunGame(ui); err != nil {
		log.Fatalf("Game exited: %v", err)
	}

	stats := scheduler.GetStats()
	for _, sys := range stats.Systems {
		log.Printf("%s: %d ticks, avg %s, max %s", sys.Name, sys.ExecutionCount, sys.AvgDuration, sys.MaxDuration)
	}
	log.Printf("Final score %d, %d lines, level %d", game.Score(), game.Lines(), game.Level())
}

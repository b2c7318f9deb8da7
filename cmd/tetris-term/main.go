package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/gameflags"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	gf := gameflags.Register(flag.CommandLine)
	logPath := flag.String("log", "", "Write the log to this file. The terminal is the screen, so logs are discarded by default.")
	sound := flag.Bool("sound", true, "Play tones for cleared rows and game over.")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.New(os.Stderr, "", 0).Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	game, err := gf.NewGame()
	if err != nil {
		log.New(os.Stderr, "", 0).Fatalf("Failed to create game: %v", err)
	}

	var sounds *Sounds
	if *sound {
		if sounds, err = NewSounds(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
		defer sounds.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.New(os.Stderr, "", 0).Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.New(os.Stderr, "", 0).Fatalf("Failed to initialise terminal: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := run(screen, game, sounds); err != nil {
		log.Printf("Exited: %v", err)
	}
	log.Printf("Final score %d, %d lines, level %d", game.Score(), game.Lines(), game.Level())
}

func run(screen tcell.Screen, game *tetris.Game, sounds *Sounds) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := game.Config()
	scheduler := tetris.NewScheduler(nil)
	scheduler.Register(game)
	go scheduler.Run(ctx, cfg.Tick)

	keys := make(chan *tcell.EventKey, 16)
	go func() {
		defer close(keys)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				keys <- ev
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	game.Start()
	log.Printf("Started %dx%d game", cfg.Rows, cfg.Columns)

	redraw := time.NewTicker(cfg.Tick)
	defer redraw.Stop()

	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			switch action(ev.Key(), ev.Rune()) {
			case actionQuit:
				return nil
			case actionRestart:
				log.Printf("Restart after score %d", game.Score())
				game.Start()
			case actionMove:
				game.HandleInput(keyCode(ev.Key(), ev.Rune()))
			}
		case <-redraw.C:
		}

		for _, ev := range game.Drain() {
			switch ev.Kind {
			case tetris.EventScoreChanged:
				log.Printf("Cleared %d rows, score %d", ev.Delta, game.Score())
				sounds.Cleared(ev.Delta)
			case tetris.EventGameOver:
				log.Printf("Game over with score %d", game.Score())
				sounds.GameOver()
			}
		}

		snap := game.Snapshot()
		draw(screen, &snap)
	}
}

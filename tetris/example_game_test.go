package tetris_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// ExampleGame shows a game driven by hand with a manual clock. The first
// tick after Start spawns a piece; gravity then moves it one row per
// interval while input moves it in between.
func ExampleGame() {
	clock := tetris.NewManualClock(time.Unix(0, 0))
	game, err := tetris.NewGame(tetris.DefaultConfig(),
		tetris.WithClock(clock),
		tetris.WithRandomizer(tetris.NewBag(1)),
		tetris.WithLevelPolicy(tetris.FixedLevel(1)),
	)
	if err != nil {
		panic(err)
	}

	game.Start()
	game.Tick()

	piece, _ := game.ActivePiece()
	start := piece.Position()

	game.HandleInput("ArrowLeft")
	clock.Advance(game.Interval())
	game.Tick()

	piece, _ = game.ActivePiece()
	fmt.Println(piece.Position() == start.Left().Down())
	fmt.Println(game.Score(), game.Level(), game.IsRunning())

	// Output:
	// true
	// 0 1 true
}

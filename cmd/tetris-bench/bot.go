package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

var botIntents = [...]tetris.Intent{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.MoveDown,
	tetris.MoveRotate,
	tetris.MoveGround,
}

// Bot is a System that plays a game with random input and restarts it
// after game over.
type Bot struct {
	Game *tetris.Game
	// Actions is the chance of an input on each frame.
	Actions float64

	rng     *rand.Rand
	games   int
	best    int
	lines   int
	inputs  int64
	applied int64
}

// NewBot creates a bot for game.
func NewBot(game *tetris.Game, seed uint64, actions float64) *Bot {
	return &Bot{
		Game:    game,
		Actions: actions,
		rng:     rand.New(rand.NewPCG(seed, ^seed)),
	}
}

func (b *Bot) Execute(frame *tetris.Frame) {
	for _, ev := range b.Game.Drain() {
		if ev.Kind == tetris.EventGameOver {
			b.finish()
			b.Game.Start()
		}
	}

	if b.rng.Float64() >= b.Actions {
		return
	}
	b.inputs++
	if b.Game.Apply(botIntents[b.rng.IntN(len(botIntents))]) {
		b.applied++
	}
}

func (b *Bot) finish() {
	b.games++
	b.best = max(b.best, b.Game.Score())
	b.lines += b.Game.Lines()
}

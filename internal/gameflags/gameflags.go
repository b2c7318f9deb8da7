// Package gameflags binds the command line flags shared by the blockfall
// binaries onto a tetris.Config and its options.
package gameflags

import (
	"flag"
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Flags holds the parsed values. Register them on a FlagSet, parse, then
// call NewGame.
type Flags struct {
	Rows    int
	Columns int
	Base    time.Duration
	Step    time.Duration
	Tick    time.Duration
	Seed    uint64
	Level   int
	Bag     bool
}

// Register defines the flags on fs with DefaultConfig values.
func Register(fs *flag.FlagSet) *Flags {
	def := tetris.DefaultConfig()
	f := &Flags{}

	fs.IntVar(&f.Rows, "rows", def.Rows, "Number of grid rows.")
	fs.IntVar(&f.Columns, "columns", def.Columns, "Number of grid columns.")
	fs.DurationVar(&f.Base, "base", def.BaseInterval, "Gravity interval before level adjustment.")
	fs.DurationVar(&f.Step, "step", def.LevelStep, "Gravity speed-up per level.")
	fs.DurationVar(&f.Tick, "tick", def.Tick, "Scheduler tick cadence.")
	fs.Uint64Var(&f.Seed, "seed", 0, "Randomizer seed. 0 picks one from the clock.")
	fs.IntVar(&f.Level, "level", 0, "Fixed level. 0 levels up every 10 cleared rows.")
	fs.BoolVar(&f.Bag, "bag", false, "Deal pieces from a shuffled 7-bag instead of uniformly.")
	return f
}

// Config returns the validated configuration.
func (f *Flags) Config() (tetris.Config, error) {
	cfg := tetris.DefaultConfig()
	cfg.Rows = f.Rows
	cfg.Columns = f.Columns
	cfg.BaseInterval = f.Base
	cfg.LevelStep = f.Step
	cfg.Tick = f.Tick
	if err := cfg.Validate(); err != nil {
		return tetris.Config{}, err
	}
	return cfg, nil
}

// Options returns the game options selected by the flags. The seed is
// resolved against now when it was left at zero.
func (f *Flags) Options(now time.Time) []tetris.Option {
	seed := f.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	var opts []tetris.Option
	if f.Bag {
		opts = append(opts, tetris.WithRandomizer(tetris.NewBag(seed)))
	} else {
		opts = append(opts, tetris.WithRandomizer(tetris.NewUniform(seed)))
	}
	if f.Level > 0 {
		opts = append(opts, tetris.WithLevelPolicy(tetris.FixedLevel(f.Level)))
	}
	return opts
}

// NewGame builds a game from the flags plus any extra options, which are
// applied last.
func (f *Flags) NewGame(extra ...tetris.Option) (*tetris.Game, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	game, err := tetris.NewGame(cfg, append(f.Options(time.Now()), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return game, nil
}

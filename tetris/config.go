package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// Config holds the construction-time parameters of a game.
type Config struct {
	Rows    int
	Columns int

	// Gravity interval is BaseInterval - level*LevelStep, never below
	// MinInterval.
	BaseInterval time.Duration
	LevelStep    time.Duration
	MinInterval  time.Duration

	// Tick is the cadence the driver should call Game.Tick at.
	Tick time.Duration

	// GameOverRow is the row whose occupancy ends the game.
	GameOverRow int

	// EventBuffer bounds the number of undrained events kept.
	EventBuffer int
}

// DefaultConfig returns the reference configuration: a 24x10 grid, 750ms
// base gravity, 50ms per level and a 50ms tick.
func DefaultConfig() Config {
	return Config{
		Rows:         24,
		Columns:      10,
		BaseInterval: 750 * time.Millisecond,
		LevelStep:    50 * time.Millisecond,
		MinInterval:  50 * time.Millisecond,
		Tick:         50 * time.Millisecond,
		GameOverRow:  3,
		EventBuffer:  256,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Columns < 4:
		return fmt.Errorf("%w: columns must be at least 4, got %d", ErrInvalidConfig, c.Columns)
	case c.Rows < 4:
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalidConfig, c.Rows)
	case c.GameOverRow < 0 || c.GameOverRow >= c.Rows:
		return fmt.Errorf("%w: game over row %d outside [0, %d)", ErrInvalidConfig, c.GameOverRow, c.Rows)
	case c.BaseInterval <= 0:
		return fmt.Errorf("%w: base interval must be positive", ErrInvalidConfig)
	case c.LevelStep < 0:
		return fmt.Errorf("%w: level step must not be negative", ErrInvalidConfig)
	case c.MinInterval <= 0:
		return fmt.Errorf("%w: min interval must be positive", ErrInvalidConfig)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive", ErrInvalidConfig)
	case c.EventBuffer <= 0:
		return fmt.Errorf("%w: event buffer must be positive", ErrInvalidConfig)
	}
	return nil
}

// Interval returns the gravity interval for a level.
func (c Config) Interval(level int) time.Duration {
	interval := c.BaseInterval - time.Duration(level)*c.LevelStep
	if interval < c.MinInterval {
		return c.MinInterval
	}
	return interval
}

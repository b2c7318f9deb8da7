package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, tetris.DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tetris.Config)
	}{
		{"narrow", func(c *tetris.Config) { c.Columns = 3 }},
		{"short", func(c *tetris.Config) { c.Rows = 2 }},
		{"game over row below grid", func(c *tetris.Config) { c.GameOverRow = 24 }},
		{"negative game over row", func(c *tetris.Config) { c.GameOverRow = -1 }},
		{"zero base interval", func(c *tetris.Config) { c.BaseInterval = 0 }},
		{"negative level step", func(c *tetris.Config) { c.LevelStep = -time.Millisecond }},
		{"zero min interval", func(c *tetris.Config) { c.MinInterval = 0 }},
		{"zero tick", func(c *tetris.Config) { c.Tick = 0 }},
		{"zero event buffer", func(c *tetris.Config) { c.EventBuffer = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tetris.ErrInvalidConfig)
		})
	}
}

func TestConfigInterval(t *testing.T) {
	cfg := tetris.DefaultConfig()

	assert.Equal(t, 700*time.Millisecond, cfg.Interval(1))
	assert.Equal(t, 250*time.Millisecond, cfg.Interval(10))
	assert.Equal(t, 50*time.Millisecond, cfg.Interval(14))
	assert.Equal(t, 50*time.Millisecond, cfg.Interval(15), "floored at MinInterval")
}

func TestFixedLevel(t *testing.T) {
	assert.Equal(t, 3, tetris.FixedLevel(3).Level())
	assert.Equal(t, 1, tetris.FixedLevel(0).Level())
}

func TestScoreLevel(t *testing.T) {
	l := tetris.NewScoreLevel(10, 3)
	assert.Equal(t, 1, l.Level())

	l.ScoreChanged(9)
	assert.Equal(t, 1, l.Level())
	l.ScoreChanged(1)
	assert.Equal(t, 2, l.Level())
	l.ScoreChanged(100)
	assert.Equal(t, 3, l.Level(), "capped at MaxLevel")
	l.ScoreChanged(-5)
	assert.Equal(t, 3, l.Level(), "never decreases")

	l.Reset()
	assert.Equal(t, 1, l.Level())
}

func TestDefaultKeyMap(t *testing.T) {
	m := tetris.DefaultKeyMap()

	tests := map[string]tetris.Intent{
		"ArrowLeft":  tetris.MoveLeft,
		"ArrowRight": tetris.MoveRight,
		"ArrowDown":  tetris.MoveDown,
		"ArrowUp":    tetris.MoveRotate,
		"Space":      tetris.MoveGround,
	}
	for code, want := range tests {
		got, ok := m.Intent(code)
		assert.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}

	_, ok := m.Intent("Enter")
	assert.False(t, ok)
}

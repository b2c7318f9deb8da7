package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestBotPlaysUntilGameOver(t *testing.T) {
	cfg := tetris.DefaultConfig()
	clock := tetris.NewManualClock(time.Unix(0, 0))
	scheduler := tetris.NewScheduler(clock)

	var bots []*Bot
	for i := range 2 {
		game, err := tetris.NewGame(cfg, tetris.WithClock(clock), tetris.WithRandomizer(tetris.NewUniform(uint64(i))))
		require.NoError(t, err)
		bot := NewBot(game, uint64(i), 1)
		scheduler.Register(bot)
		scheduler.Register(game)
		bots = append(bots, bot)
		game.Start()
	}

	for range 20000 {
		clock.Advance(cfg.Tick)
		scheduler.Once()
	}

	report := &Report{Games: len(bots)}
	report.Collect(bots, scheduler.GetStats())

	assert.Positive(t, report.Play.Finished)
	assert.Equal(t, int64(40000), report.Play.Inputs)
	assert.Positive(t, report.Play.Applied)

	require.Len(t, report.Systems, 2)
	assert.Equal(t, "Bot", report.Systems[0].Name)
	assert.Equal(t, "Game", report.Systems[1].Name)
	assert.Equal(t, int64(40000), report.Systems[1].ExecutionCount)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:     time.Second,
		Games:        4,
		Rows:         24,
		Columns:      10,
		Tick:         50 * time.Millisecond,
		TotalUpdates: 100,
		TotalTime:    time.Second,
		Play:         PlayStats{Finished: 3, Lines: 12, BestScore: 7},
		Systems:      []tetris.SystemStats{{Name: "Game", ExecutionCount: 400}},
	}
	report.SimulatedTime = 5 * time.Second

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Bench Report")
	assert.Contains(t, out, "- **Grid:** 24x10")
	assert.Contains(t, out, "(5.0x real time)")
	assert.Contains(t, out, "- **Game:** 400 runs")
	assert.Contains(t, out, "- **Best Score:** 7")
	assert.NotContains(t, out, "GC Pause")
}

package tetris_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	frames []tetris.Frame
	sleep  time.Duration
}

func (s *countingSystem) Execute(frame *tetris.Frame) {
	s.frames = append(s.frames, *frame)
	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(*tetris.Frame) {
	*s.log = append(*s.log, s.name)
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var log []string
		scheduler := tetris.NewScheduler(nil)
		scheduler.Register(&orderSystem{name: "input", log: &log})
		scheduler.Register(&orderSystem{name: "game", log: &log})

		scheduler.Once()
		scheduler.Once()

		assert.Equal(t, []string{"input", "game", "input", "game"}, log)
	})

	t.Run("frames carry clock time and delta", func(t *testing.T) {
		clock := tetris.NewManualClock(time.Unix(0, 0))
		scheduler := tetris.NewScheduler(clock)
		sys := &countingSystem{}
		scheduler.Register(sys)

		scheduler.Once()
		clock.Advance(50 * time.Millisecond)
		scheduler.Once()

		require.Len(t, sys.frames, 2)
		assert.Equal(t, time.Duration(0), sys.frames[0].Delta)
		assert.Equal(t, 50*time.Millisecond, sys.frames[1].Delta)
		assert.Equal(t, clock.Now(), sys.frames[1].Now)
	})

	t.Run("drives a game", func(t *testing.T) {
		clock := tetris.NewManualClock(time.Unix(0, 0))
		game, err := tetris.NewGame(tetris.DefaultConfig(), tetris.WithClock(clock), tetris.WithRandomizer(tetris.NewUniform(1)))
		require.NoError(t, err)
		scheduler := tetris.NewScheduler(clock)
		scheduler.Register(game)

		game.Start()
		scheduler.Once()

		_, ok := game.ActivePiece()
		assert.True(t, ok)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := tetris.NewScheduler(nil)
		sys := &countingSystem{}
		scheduler.Register(sys)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
		assert.NotEmpty(t, sys.frames)
	})

	t.Run("nil system panics", func(t *testing.T) {
		assert.Panics(t, func() {
			tetris.NewScheduler(nil).Register(nil)
		})
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := tetris.NewScheduler(nil)

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	scheduler.Register(&countingSystem{sleep: time.Millisecond})
	scheduler.Register(&countingSystem{sleep: 2 * time.Millisecond})

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once()
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)

	for _, sys := range stats.Systems {
		assert.Equal(t, "countingSystem", sys.Name)
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.NotZero(t, sys.MinDuration)
		assert.NotZero(t, sys.LastDuration)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
	}
	assert.GreaterOrEqual(t, stats.Systems[1].MinDuration, 2*time.Millisecond)
}

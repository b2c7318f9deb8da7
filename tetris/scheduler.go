package tetris

import (
	"context"
	"reflect"
	"time"
)

// Frame is passed to every system on each scheduler pass.
type Frame struct {
	Now   time.Time
	Delta time.Duration
}

// System is driven by a Scheduler. *Game is a System; front-ends and bots
// register their own alongside it.
type System interface {
	Execute(frame *Frame)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order from a single goroutine.
// Frame times come from its Clock; the durations in the stats are always
// measured on the real clock.
type Scheduler struct {
	clock       Clock
	systems     []System
	systemStats []*systemStatsInternal

	last    time.Time
	started bool
}

// NewScheduler creates a scheduler reading frame times from clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		systems: make([]System, 0),
	}
}

// Register appends a system.
func (s *Scheduler) Register(system System) {
	if system == nil {
		panic("cannot register nil system")
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once.
func (s *Scheduler) Once() {
	now := s.clock.Now()
	frame := &Frame{Now: now}
	if s.started {
		frame.Delta = now.Sub(s.last)
	}
	s.last = now
	s.started = true

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run executes all systems at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once()
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/internal/gameflags"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	gf := gameflags.Register(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total wall clock duration the bench should run for.")
	gameCount := flag.Int("games", 16, "The number of games simulated side by side.")
	actions := flag.Float64("actions", 0.3, "Chance of a bot input on each tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall bench...")

	cfg, err := gf.Config()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Simulated time advances one tick per pass, independent of wall time.
	clock := tetris.NewManualClock(time.Unix(0, 0))
	scheduler := tetris.NewScheduler(clock)

	bots := make([]*Bot, 0, *gameCount)
	for i := range *gameCount {
		game, err := gf.NewGame(tetris.WithClock(clock))
		if err != nil {
			log.Fatalf("Failed to create game: %v", err)
		}
		bot := NewBot(game, uint64(i+1), *actions)
		scheduler.Register(bot)
		scheduler.Register(game)
		bots = append(bots, bot)
		game.Start()
	}
	log.Printf("Created %d games on a %dx%d grid.\n", len(bots), cfg.Rows, cfg.Columns)

	report := &Report{
		Duration:       *duration,
		Games:          len(bots),
		Rows:           cfg.Rows,
		Columns:        cfg.Columns,
		Tick:           cfg.Tick,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running bench for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			clock.Advance(cfg.Tick)

			updateStart := time.Now()
			scheduler.Once()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = time.Duration(totalUpdates) * cfg.Tick
	report.UpdateTime.Finalize()
	report.Collect(bots, scheduler.GetStats())
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Bench finished.")

	fmt.Println("\n\n--- Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/session"
)

const frameDelta = 1.0 / 60.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Piece bag seed. Zero picks a random seed.")
	configPath := flag.String("config", "", "Path to a YAML config file. Built-in defaults are used when empty.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	cfg := session.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = session.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.Seed = *seed

	s, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	autoplay := &AutoplaySystem{}
	scheduler := session.NewScheduler(s)
	scheduler.Register(autoplay)
	scheduler.Register(&session.InputSystem{})
	scheduler.Register(&session.GravitySystem{})
	scheduler.Register(&session.SpawnSystem{})

	report := &Report{
		Duration:       *duration,
		Config:         cfg,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running autoplay for %s...\n", *duration)
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
			updateStart := time.Now()
			scheduler.Once(frameDelta)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.collect(s, scheduler, autoplay.Scores)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Autoplay finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

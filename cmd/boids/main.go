package main

import (
	"flag"
	stdlog "log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/log"

	"github.com/flocklab/go-boids-simulation/internal/game"
	"github.com/flocklab/go-boids-simulation/pkg/flock"
)

func main() {
	var (
		configFile = flag.String("config", "", "path to a JSON config file (default built-in configuration)")
		schemaFile = flag.String("schema", "config.schema.json", "path to the JSON schema used to validate -config")
		numBoids   = flag.Int("n", 0, "initial population override (0 keeps the configured value)")
		seed       = flag.Uint64("seed", 0, "RNG seed override (0 keeps the configured value)")
		workers    = flag.Int("workers", 0, "force-pass worker goroutines (0 keeps the configured value)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			stdlog.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *numBoids > 0 {
		cfg.InitialBoids = *numBoids
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stdout)

	f, err := flock.New(cfg, logger)
	if err != nil {
		stdlog.Fatalf("creating flock: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids Simulation")

	if err := ebiten.RunGame(game.New(cfg, f)); err != nil {
		stdlog.Fatal(err)
	}
}

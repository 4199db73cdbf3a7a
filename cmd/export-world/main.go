// Package main provides the export-world binary, which loads a data set and
// writes it as YAML for content review.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/exporter"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	game := flag.String("game", "", "data set name; overrides game.name")
	output := flag.String("output", "", "path to output YAML file; empty = stdout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}
	if *game != "" {
		cfg.Game.Name = *game
	}

	start := time.Now()
	w, err := world.LoadFromFiles(cfg.Game.RoomsPath(), cfg.Game.ItemsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := exporter.WriteFile(*output, cfg.Game.Name, w); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *output != "" {
		fmt.Printf("wrote   %s  (%d rooms, %d items)  in %s\n",
			*output, w.RoomCount(), w.ItemCount(), time.Since(start).Round(time.Millisecond))
	}
}

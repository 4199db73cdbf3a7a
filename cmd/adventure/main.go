// Package main provides the adventure binary, which plays a text adventure
// loaded from a named data set on the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/console"
	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and ADVENTURE_* environment")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: adventure [-config <file>] [NAME]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if flag.NArg() == 1 {
		cfg.Game.Name = flag.Arg(0)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	loadStart := time.Now()
	w, err := world.LoadFromFiles(cfg.Game.RoomsPath(), cfg.Game.ItemsPath())
	if err != nil {
		logger.Fatal("loading world", zap.String("game", cfg.Game.Name), zap.Error(err))
	}
	synonyms, err := command.LoadSynonyms(cfg.Game.SynonymsPath())
	if err != nil {
		logger.Fatal("loading synonyms", zap.Error(err))
	}
	logger.Info("world loaded",
		zap.String("game", cfg.Game.Name),
		zap.Int("rooms", w.RoomCount()),
		zap.Int("items", w.ItemCount()),
		zap.Int("synonyms", len(synonyms)),
		zap.Duration("elapsed", time.Since(loadStart)),
	)

	sess, err := session.New(w, cfg.Game.StartRoom,
		session.WithLogger(logger),
		session.WithVictoryRoom(cfg.Game.VictoryRoom),
	)
	if err != nil {
		logger.Fatal("starting session", zap.Error(err))
	}

	c := console.New(sess, command.DefaultRegistry(), synonyms, cfg.Console, logger)
	if err := c.Run(os.Stdin, os.Stdout); err != nil {
		logger.Fatal("console", zap.Error(err))
	}
}

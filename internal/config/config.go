// Package config provides Viper-based configuration loading for the adventure game.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig selects which world data set is loaded and how a session starts.
type GameConfig struct {
	// Name is the data set prefix, e.g. "Small" loads SmallRooms.txt and SmallItems.txt.
	Name string `mapstructure:"name"`
	// DataDir is the directory containing the room, item and synonym files.
	DataDir string `mapstructure:"data_dir"`
	// SynonymsFile is the synonym table file name inside DataDir.
	SynonymsFile string `mapstructure:"synonyms_file"`
	// StartRoom is the room ID the player starts in.
	StartRoom int `mapstructure:"start_room"`
	// VictoryRoom is the room name that ends the game with a win.
	VictoryRoom string `mapstructure:"victory_room"`
}

// RoomsPath returns the path of the room definition file for the configured game.
func (g GameConfig) RoomsPath() string {
	return filepath.Join(g.DataDir, g.Name+"Rooms.txt")
}

// ItemsPath returns the path of the item definition file for the configured game.
func (g GameConfig) ItemsPath() string {
	return filepath.Join(g.DataDir, g.Name+"Items.txt")
}

// SynonymsPath returns the path of the synonym table.
func (g GameConfig) SynonymsPath() string {
	return filepath.Join(g.DataDir, g.SynonymsFile)
}

// ConsoleConfig holds interactive frontend settings.
type ConsoleConfig struct {
	// Prompt is written before every command read.
	Prompt string `mapstructure:"prompt"`
	// Color enables ANSI styling of room names and messages.
	Color bool `mapstructure:"color"`
	// Width is the column at which game text is word-wrapped; 0 disables wrapping.
	Width int `mapstructure:"width"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Console.Width < 0 {
		errs = append(errs, fmt.Sprintf("console.width must be >= 0, got %d", c.Console.Width))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Name == "" {
		errs = append(errs, "game.name must not be empty")
	}
	if g.DataDir == "" {
		errs = append(errs, "game.data_dir must not be empty")
	}
	if g.SynonymsFile == "" {
		errs = append(errs, "game.synonyms_file must not be empty")
	}
	if g.StartRoom < 1 {
		errs = append(errs, fmt.Sprintf("game.start_room must be >= 1, got %d", g.StartRoom))
	}
	if g.VictoryRoom == "" {
		errs = append(errs, "game.victory_room must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ADVENTURE_ prefix
	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.name", "Small")
	v.SetDefault("game.data_dir", "data")
	v.SetDefault("game.synonyms_file", "SmallSynonyms.txt")
	v.SetDefault("game.start_room", 1)
	v.SetDefault("game.victory_room", "Victory")

	v.SetDefault("console.prompt", "> ")
	v.SetDefault("console.color", false)
	v.SetDefault("console.width", 80)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

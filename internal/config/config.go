package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/diegok/linkpong/internal/game"
)

// Default values for configuration
const (
	DefaultPoints   = 10
	DefaultMode     = ModeMenu
	DefaultLogLevel = "info"
)

// Modes the game can start in
const (
	ModeMenu = "menu"
	ModePong = "pong"
)

// Config holds the application configuration
type Config struct {
	Mode        string
	PointsToWin int
	TuningPath  string
	LogPath     string
	LogLevel    string
	Seed        int64
	Width       float64
	Height      float64
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("linkpong", flag.ContinueOnError)

	mode := fs.String("mode", DefaultMode, "start screen: menu or pong")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	tuning := fs.String("config", "", "YAML tuning file")
	logPath := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", DefaultLogLevel, "debug, info, warn or error")
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	width := fs.Float64("width", 0, "playfield width (0 = from tuning)")
	height := fs.Float64("height", 0, "playfield height (0 = from tuning)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if *mode != ModeMenu && *mode != ModePong {
		return nil, fmt.Errorf("mode must be %q or %q, got %q", ModeMenu, ModePong, *mode)
	}

	// Validate points
	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}

	if _, err := ParseLogLevel(*logLevel); err != nil {
		return nil, err
	}

	if *width < 0 || *height < 0 {
		return nil, errors.New("width and height must not be negative")
	}

	cfg := &Config{
		Mode:        *mode,
		PointsToWin: *points,
		TuningPath:  *tuning,
		LogPath:     *logPath,
		LogLevel:    *logLevel,
		Seed:        *seed,
		Width:       *width,
		Height:      *height,
	}

	return cfg, nil
}

// ParseLogLevel converts a level name to a slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

// Tuning loads the tuning file, applies the playfield overrides and
// validates the result.
func (c *Config) Tuning() (game.Tuning, error) {
	t := game.DefaultTuning()
	if c.TuningPath != "" {
		var err error
		t, err = LoadTuning(c.TuningPath)
		if err != nil {
			return t, err
		}
	}

	if c.Width > 0 {
		t.Width = c.Width
	}
	if c.Height > 0 {
		t.Height = c.Height
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning loads tuning from a YAML file. Fields the file leaves out keep
// their defaults. If the file doesn't exist, returns defaults.
func LoadTuning(path string) (game.Tuning, error) {
	t := game.DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("reading tuning %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing tuning %s: %w", path, err)
	}

	return t, nil
}

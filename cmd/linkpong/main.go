package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/diegok/linkpong/internal/app"
	"github.com/diegok/linkpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	tuning, err := cfg.Tuning()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("linkpong starting", "mode", cfg.Mode, "points", cfg.PointsToWin, "tuning", cfg.TuningPath)

	application := app.New(cfg, tuning, logger)
	return application.Run(context.Background())
}

// openLog builds the logger. The terminal belongs to the game, so logs only
// go to a file and are discarded without --log.
func openLog(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogPath == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log %s: %w", cfg.LogPath, err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	closeLog := func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: closing log %s: %v\n", cfg.LogPath, err)
		}
	}
	return logger, closeLog, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  linkpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --mode <menu|pong>   Start screen (default: menu)")
	fmt.Fprintln(os.Stderr, "  --points <n>         Points to win (default: 10)")
	fmt.Fprintln(os.Stderr, "  --config <file>      YAML tuning file")
	fmt.Fprintln(os.Stderr, "  --width <w>          Playfield width override")
	fmt.Fprintln(os.Stderr, "  --height <h>         Playfield height override")
	fmt.Fprintln(os.Stderr, "  --seed <n>           Random seed (default: time based)")
	fmt.Fprintln(os.Stderr, "  --log <file>         Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>  debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  linkpong")
	fmt.Fprintln(os.Stderr, "  linkpong --mode pong --points 5")
	fmt.Fprintln(os.Stderr, "  linkpong --config config/tuning.example.yaml --log pong.log --log-level debug")
}

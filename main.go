package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/exp/rand"

	"glide-snake/game"
	"glide-snake/game/types"
	"glide-snake/terminal"
	"glide-snake/ui"
)

var (
	backend  = flag.String("backend", "window", "Frontend to run: window or terminal")
	width    = flag.Int("width", 800, "Initial window width in pixels")
	height   = flag.Int("height", 600, "Initial window height in pixels")
	fps      = flag.Int("fps", 60, "Target frames per second")
	seed     = flag.Uint64("seed", 0, "Fruit placement seed (0 = time based)")
	speed    = flag.Float64("speed", types.InitSpeed, "Snake speed in field units per second")
	rotation = flag.Float64("rotation", types.RotationPerSec, "Turn rate in radians per second")
	logFile  = flag.String("logfile", "", "Write logs to file instead of stderr")
	verbose  = flag.Bool("v", false, "Log every frame")
)

func main() {
	flag.Parse()

	logger, closeLog, err := newLogger(*logFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closeLog()

	if err := run(logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(logger *log.Logger) error {
	cfg := types.DefaultConfig()
	cfg.InitSpeed = *speed
	cfg.RotationPerSec = *rotation
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	logger.Printf("starting %s backend: seed=%d speed=%.2f rotation=%.2f", *backend, s, cfg.InitSpeed, cfg.RotationPerSec)

	g := game.NewGame(cfg, rand.New(rand.NewSource(s)), logger)
	g.SetVerbose(*verbose)

	switch *backend {
	case "window":
		opts := ui.DefaultOptions()
		opts.Width, opts.Height, opts.FPS = int32(*width), int32(*height), int32(*fps)
		ui.Run(g, opts, logger)
		return nil
	case "terminal":
		// The terminal owns stderr while running.
		if *logFile == "" {
			logger.SetOutput(io.Discard)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		opts := terminal.DefaultOptions()
		opts.FPS = *fps
		if err := terminal.Run(ctx, g, opts, logger); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(os.Stderr, "glide-snake ", log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "glide-snake ", log.LstdFlags), func() { f.Close() }, nil
}

package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"glide-snake/game"
	"glide-snake/game/types"
)

type Options struct {
	FPS        int
	HoldWindow time.Duration
}

func DefaultOptions() Options {
	return Options{FPS: 30, HoldWindow: DefaultHoldWindow}
}

// Run drives g on the terminal until ctx is done or the player quits with
// Esc, Ctrl-C or q.
func Run(ctx context.Context, g *game.Game, opts Options, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return Loop(ctx, screen, g, opts, logger)
}

// Loop runs the frame loop on an initialized screen. The caller owns the screen.
func Loop(ctx context.Context, screen tcell.Screen, g *game.Game, opts Options, logger *log.Logger) error {
	if opts.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", opts.FPS)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := NewKeyState(opts.HoldWindow, nil)
	go readEvents(screen, keys, cancel)

	painter := NewPainter(screen)
	ticker := time.NewTicker(time.Second / time.Duration(opts.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if logger != nil {
				st := g.State()
				logger.Printf("terminal closed after %d rounds, best score %d", st.Rounds(), st.GetHighScore())
			}
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			left, right := keys.Held()
			g.Step(types.Input{Left: left, Right: right}, dt)

			painter.UpdateDimensions()
			g.Draw(painter)
			screen.Show()
		}
	}
}

// readEvents feeds key presses into keys and cancels on quit. It returns when
// the screen is finalized.
func readEvents(screen tcell.Screen, keys *KeyState, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyLeft:
				keys.PressLeft()
			case tcell.KeyRight:
				keys.PressRight()
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit()
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					quit()
				}
			}
		}
	}
}

package ui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"glide-snake/game"
)

type Options struct {
	Width  int32
	Height int32
	FPS    int32
	Title  string
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, FPS: 60, Title: "Snake"}
}

// Run opens a resizable window and drives g until the window is closed.
func Run(g *game.Game, opts Options, logger *log.Logger) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(opts.FPS)

	renderer := NewRenderer()
	for !rl.WindowShouldClose() {
		g.Step(PollInput(), float64(rl.GetFrameTime()))

		renderer.UpdateDimensions()
		rl.BeginDrawing()
		g.Draw(renderer)
		rl.EndDrawing()
	}

	if logger != nil {
		st := g.State()
		logger.Printf("window closed after %d rounds, best score %d", st.Rounds(), st.GetHighScore())
	}
}

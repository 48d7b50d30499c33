package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glide-snake/game/types"
)

// PollInput samples the arrow keys for this frame.
func PollInput() types.Input {
	return types.Input{
		Left:  rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyRight),
	}
}

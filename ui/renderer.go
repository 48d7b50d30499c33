package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glide-snake/game/types"
)

// Renderer draws through raylib onto the current window. It implements
// types.Painter and must be used between rl.BeginDrawing and rl.EndDrawing.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions picks up window resizes; call once per frame.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Size() (float64, float64) {
	return float64(r.screenWidth), float64(r.screenHeight)
}

func (r *Renderer) Clear(c types.Color) {
	rl.ClearBackground(toRaylib(c))
}

func (r *Renderer) FillCircle(x, y, radius float64, c types.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(radius), toRaylib(c))
}

func (r *Renderer) FillRect(x, y, width, height float64, c types.Color) {
	rl.DrawRectangleV(
		rl.Vector2{X: float32(x), Y: float32(y)},
		rl.Vector2{X: float32(width), Y: float32(height)},
		toRaylib(c))
}

func (r *Renderer) Text(s string, x, y, size float64, c types.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), toRaylib(c))
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport maps the square playing field onto a possibly non-square screen.
// It is rebuilt from the current screen size every frame.
type Viewport struct {
	Width     float64
	Height    float64
	FieldSize float64
}

func NewViewport(width, height, fieldSize float64) Viewport {
	return Viewport{Width: width, Height: height, FieldSize: fieldSize}
}

func (v Viewport) minDim() float64 {
	return math.Min(v.Width, v.Height)
}

// PixelsPerMeter scales world lengths by the smaller screen side.
func (v Viewport) PixelsPerMeter() float64 {
	return v.minDim() / v.FieldSize
}

// Offset is the letterbox margin centering the field along the longer side.
func (v Viewport) Offset() r2.Vec {
	m := v.minDim()
	return r2.Vec{X: (v.Width - m) / 2, Y: (v.Height - m) / 2}
}

// ToScreen converts a world position to screen pixels, flipping y.
func (v Viewport) ToScreen(p r2.Vec) r2.Vec {
	half := v.FieldSize / 2
	shifted := r2.Add(p, r2.Vec{X: half, Y: -half})
	ppm := v.PixelsPerMeter()
	scaled := r2.Vec{X: shifted.X * ppm, Y: -shifted.Y * ppm}
	return r2.Add(scaled, v.Offset())
}

// Length converts a world length to pixels.
func (v Viewport) Length(meters float64) float64 {
	return meters * v.PixelsPerMeter()
}

// FieldRect returns the top-left corner and side of the field in pixels.
func (v Viewport) FieldRect() (topLeft r2.Vec, side float64) {
	half := v.FieldSize / 2
	return v.ToScreen(r2.Vec{X: -half, Y: half}), v.Length(v.FieldSize)
}

package types

type Color struct {
	R, G, B, A uint8
}

var (
	LightGray = Color{R: 200, G: 200, B: 200, A: 255}
	Green     = Color{R: 0, G: 228, B: 48, A: 255}
	White     = Color{R: 255, G: 255, B: 255, A: 255}
	Black     = Color{R: 0, G: 0, B: 0, A: 255}
	Red       = Color{R: 230, G: 41, B: 55, A: 255}
)

// Painter is what a host backend exposes to the simulation for drawing.
// Coordinates and sizes are in screen pixels, y growing downward.
type Painter interface {
	Size() (width, height float64)
	Clear(c Color)
	FillCircle(x, y, radius float64, c Color)
	FillRect(x, y, width, height float64, c Color)
	Text(s string, x, y, size float64, c Color)
}

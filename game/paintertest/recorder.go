// Package paintertest provides a Painter that records draw calls.
package paintertest

import "glide-snake/game/types"

type Kind int

const (
	Clear Kind = iota
	Circle
	Rect
	Text
)

type Call struct {
	Kind  Kind
	X, Y  float64
	W, H  float64 // radius for circles and font size for text are stored in W
	Text  string
	Color types.Color
}

type Recorder struct {
	Width, Height float64
	Calls         []Call
}

func New(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear(c types.Color) {
	r.Calls = append(r.Calls, Call{Kind: Clear, Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c types.Color) {
	r.Calls = append(r.Calls, Call{Kind: Circle, X: x, Y: y, W: radius, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c types.Color) {
	r.Calls = append(r.Calls, Call{Kind: Rect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Text(s string, x, y, size float64, c types.Color) {
	r.Calls = append(r.Calls, Call{Kind: Text, X: x, Y: y, W: size, Text: s, Color: c})
}

// OfKind filters recorded calls.
func (r *Recorder) OfKind(k Kind) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

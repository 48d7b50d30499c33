package entity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"glide-snake/game/geom"
	"glide-snake/game/types"
)

// Head is the steerable leading unit of a snake.
type Head struct {
	Unit
	Direction r2.Vec
	Speed     float64

	eyeSpread    float64
	eyeRadiusDiv float64
}

func NewHead(cfg types.Config) Head {
	return Head{
		Unit:         NewUnit(r2.Vec{}, cfg.UnitRadius),
		Direction:    r2.Vec{X: 1},
		Speed:        cfg.InitSpeed,
		eyeSpread:    cfg.EyeSpread,
		eyeRadiusDiv: cfg.EyeRadiusDiv,
	}
}

// Rotate turns the heading counter-clockwise by angle radians.
func (h *Head) Rotate(angle float64) {
	h.Direction = r2.Rotate(h.Direction, angle, r2.Vec{})
}

func (h *Head) Advance(dt float64) {
	h.Position = r2.Add(h.Position, r2.Scale(h.Speed*dt, h.Direction))
}

func (h Head) Render(p types.Painter, vp geom.Viewport) {
	h.Unit.Render(p, vp)

	eyeR := vp.Length(h.Radius / h.eyeRadiusDiv)
	for _, angle := range []float64{h.eyeSpread, -h.eyeSpread} {
		shift := r2.Scale(h.Radius, r2.Rotate(h.Direction, angle, r2.Vec{}))
		eye := vp.ToScreen(r2.Add(h.Position, shift))
		p.FillCircle(eye.X, eye.Y, eyeR, types.Black)
	}
}

package entity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"glide-snake/game/geom"
	"glide-snake/game/types"
)

// Unit is one circular body segment.
type Unit struct {
	Position r2.Vec
	Radius   float64
}

func NewUnit(pos r2.Vec, radius float64) Unit {
	return Unit{Position: pos, Radius: radius}
}

// AdvanceToward pulls the unit after its leader once the link stretches past
// two radii, stopping exactly at that distance. Returns whether it moved.
func (u *Unit) AdvanceToward(leader r2.Vec) bool {
	toLeader := r2.Sub(leader, u.Position)
	dist := r2.Norm(toLeader)
	shift := dist - 2*u.Radius
	if shift <= 0 || dist == 0 {
		return false
	}
	u.Position = r2.Add(u.Position, r2.Scale(shift/dist, toLeader))
	return true
}

// Intersects reports whether a circle at pos with the given radius overlaps the unit.
func (u Unit) Intersects(pos r2.Vec, radius float64) bool {
	return r2.Norm(r2.Sub(u.Position, pos)) < radius+u.Radius
}

func (u Unit) Render(p types.Painter, vp geom.Viewport) {
	c := vp.ToScreen(u.Position)
	p.FillCircle(c.X, c.Y, vp.Length(u.Radius), types.White)
}

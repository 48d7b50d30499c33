package entity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"glide-snake/game/geom"
	"glide-snake/game/types"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Fruit is the single collectible on the field. It is replaced, not moved,
// once eaten.
type Fruit struct {
	Position r2.Vec
	Radius   float64
}

// RespawnFruit places a fresh fruit uniformly over the whole field. The snake
// is not excluded, so a fruit may land on its body.
func RespawnFruit(src Source, cfg types.Config) Fruit {
	half := cfg.HalfField()
	return Fruit{
		Position: r2.Vec{
			X: src.Float64()*cfg.FieldSize - half,
			Y: src.Float64()*cfg.FieldSize - half,
		},
		Radius: cfg.FruitRadius,
	}
}

func (f Fruit) Render(p types.Painter, vp geom.Viewport) {
	c := vp.ToScreen(f.Position)
	p.FillCircle(c.X, c.Y, vp.Length(f.Radius), types.Red)
}

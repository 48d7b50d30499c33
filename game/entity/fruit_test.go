package entity

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"glide-snake/game/geom"
	"glide-snake/game/paintertest"
	"glide-snake/game/types"
)

func TestRespawnFruitMapsUnitRange(t *testing.T) {
	cfg := types.DefaultConfig()
	tests := []struct {
		name string
		vals []float64
		want r2.Vec
	}{
		{"Low corner", []float64{0, 0}, r2.Vec{X: -1, Y: -1}},
		{"Center", []float64{0.5, 0.5}, r2.Vec{}},
		{"Mixed", []float64{0.75, 0.25}, r2.Vec{X: 0.5, Y: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := RespawnFruit(&seqSource{vals: tt.vals}, cfg)
			if !nearVec(f.Position, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, f.Position)
			}
			if f.Radius != cfg.FruitRadius {
				t.Errorf("Expected radius %v, got %v", cfg.FruitRadius, f.Radius)
			}
		})
	}
}

func TestRespawnFruitStaysInField(t *testing.T) {
	cfg := types.DefaultConfig()
	src := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		f := RespawnFruit(src, cfg)
		if f.Position.X < -1 || f.Position.X >= 1 || f.Position.Y < -1 || f.Position.Y >= 1 {
			t.Fatalf("Expected position in [-1,1)^2, got %v", f.Position)
		}
	}
}

func TestFruitRender(t *testing.T) {
	cfg := types.DefaultConfig()
	rec := paintertest.New(800, 800)
	f := Fruit{Position: r2.Vec{X: -1, Y: 1}, Radius: cfg.FruitRadius}

	f.Render(rec, geom.NewViewport(800, 800, cfg.FieldSize))

	circles := rec.OfKind(paintertest.Circle)
	if len(circles) != 1 {
		t.Fatalf("Expected 1 circle, got %d", len(circles))
	}
	if circles[0].X != 0 || circles[0].Y != 0 {
		t.Errorf("Expected fruit at screen origin, got (%v, %v)", circles[0].X, circles[0].Y)
	}
	if circles[0].Color != types.Red {
		t.Errorf("Expected red fruit, got %v", circles[0].Color)
	}
}

package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func near(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestPixelsPerMeter(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          float64
	}{
		{"Square", 800, 800, 400},
		{"Wide", 1280, 800, 400},
		{"Tall", 600, 900, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.width, tt.height, 2)
			if got := v.PixelsPerMeter(); got != tt.want {
				t.Errorf("Expected %v pixels per meter, got %v", tt.want, got)
			}
		})
	}
}

func TestToScreen(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		world         r2.Vec
		want          r2.Vec
	}{
		{"Origin square", 800, 800, r2.Vec{}, r2.Vec{X: 400, Y: 400}},
		{"Top left square", 800, 800, r2.Vec{X: -1, Y: 1}, r2.Vec{X: 0, Y: 0}},
		{"Bottom right square", 800, 800, r2.Vec{X: 1, Y: -1}, r2.Vec{X: 800, Y: 800}},
		{"Origin letterboxed wide", 1000, 600, r2.Vec{}, r2.Vec{X: 500, Y: 300}},
		{"Top left letterboxed wide", 1000, 600, r2.Vec{X: -1, Y: 1}, r2.Vec{X: 200, Y: 0}},
		{"Top left letterboxed tall", 600, 1000, r2.Vec{X: -1, Y: 1}, r2.Vec{X: 0, Y: 200}},
		{"Y flips", 800, 800, r2.Vec{X: 0, Y: 0.5}, r2.Vec{X: 400, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.width, tt.height, 2)
			if got := v.ToScreen(tt.world); !near(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// The general form must agree with offset + (p + (1,-1)) * (1,-1) * ppm for a field of 2.
func TestToScreenMatchesUnitFieldFormula(t *testing.T) {
	v := NewViewport(1280, 720, 2)
	ppm := v.PixelsPerMeter()
	off := v.Offset()
	for _, p := range []r2.Vec{{X: 0.3, Y: -0.7}, {X: -0.9, Y: 0.2}, {X: 1, Y: 1}} {
		want := r2.Vec{
			X: off.X + (p.X+1)*ppm,
			Y: off.Y + (p.Y-1)*-1*ppm,
		}
		if got := v.ToScreen(p); !near(got, want) {
			t.Errorf("Expected %v for %v, got %v", want, p, got)
		}
	}
}

func TestFieldRect(t *testing.T) {
	v := NewViewport(1000, 600, 2)
	topLeft, side := v.FieldRect()
	if !near(topLeft, r2.Vec{X: 200, Y: 0}) {
		t.Errorf("Expected top left (200, 0), got %v", topLeft)
	}
	if side != 600 {
		t.Errorf("Expected side 600, got %v", side)
	}
}

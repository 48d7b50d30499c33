package entity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

// seqSource replays fixed values, wrapping around.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

func nearVec(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

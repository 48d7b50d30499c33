package entity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"glide-snake/game/geom"
	"glide-snake/game/types"
)

// Snake is a head followed by a chain of units, ordered head to tail.
type Snake struct {
	Head  Head
	Units []Unit

	unitRadius    float64
	selfHitFactor float64
	wallLimit     float64
}

// NewSnake returns the starting snake: a lone head at the origin facing +X.
func NewSnake(cfg types.Config) *Snake {
	return &Snake{
		Head:          NewHead(cfg),
		Units:         make([]Unit, 0),
		unitRadius:    cfg.UnitRadius,
		selfHitFactor: cfg.SelfHitFactor,
		wallLimit:     cfg.WallLimit(),
	}
}

// Advance steers and moves the head, then drags each unit after the
// already-moved element in front of it.
func (s *Snake) Advance(dt, rotation float64) {
	s.Head.Rotate(rotation * dt)
	s.Head.Advance(dt)

	prev := s.Head.Position
	for i := range s.Units {
		s.Units[i].AdvanceToward(prev)
		prev = s.Units[i].Position
	}
}

func (s *Snake) Length() int {
	return len(s.Units) + 1
}

// Tail is the last unit, or the head's unit when the snake has no body.
func (s *Snake) Tail() Unit {
	if len(s.Units) == 0 {
		return s.Head.Unit
	}
	return s.Units[len(s.Units)-1]
}

// Grow appends a unit on top of the current tail; following frames pull it into place.
func (s *Snake) Grow() {
	s.Units = append(s.Units, NewUnit(s.Tail().Position, s.unitRadius))
}

func (s *Snake) CanEat(f Fruit) bool {
	return s.Head.Intersects(f.Position, f.Radius)
}

// SelfCollides checks the head against every unit but the first, which is
// always within touching distance of the head.
func (s *Snake) SelfCollides() bool {
	if len(s.Units) < 2 {
		return false
	}
	radius := s.unitRadius * s.selfHitFactor
	for _, u := range s.Units[1:] {
		if s.Head.Intersects(u.Position, radius) {
			return true
		}
	}
	return false
}

func (s *Snake) HitsWall() bool {
	pos := s.Head.Position
	return pos.X > s.wallLimit || pos.X < -s.wallLimit ||
		pos.Y > s.wallLimit || pos.Y < -s.wallLimit
}

func (s *Snake) IsLosing() bool {
	return s.SelfCollides() || s.HitsWall()
}

func (s *Snake) HeadPosition() r2.Vec {
	return s.Head.Position
}

func (s *Snake) Render(p types.Painter, vp geom.Viewport) {
	s.Head.Render(p, vp)
	for _, u := range s.Units {
		u.Render(p, vp)
	}
}

package types

import (
	"errors"
	"fmt"
	"math"
)

// Field and snake defaults. Sizes are in meters, angles in radians.
const (
	FieldSize      = 2.0
	InitSpeed      = 0.4
	UnitRadius     = 0.04
	FruitRadius    = 0.06
	RotationPerSec = 2.0
	SelfHitFactor  = 0.8 // head vs. body uses a tighter radius to tolerate chain slack
	EyeSpread      = 0.3 // half angle between the eyes
	EyeRadiusDiv   = 6.0 // eye radius = UnitRadius / EyeRadiusDiv
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the tuning record shared by every component. It is built once
// at startup and passed by value.
type Config struct {
	FieldSize      float64
	InitSpeed      float64
	UnitRadius     float64
	FruitRadius    float64
	RotationPerSec float64
	SelfHitFactor  float64
	EyeSpread      float64
	EyeRadiusDiv   float64
}

func DefaultConfig() Config {
	return Config{
		FieldSize:      FieldSize,
		InitSpeed:      InitSpeed,
		UnitRadius:     UnitRadius,
		FruitRadius:    FruitRadius,
		RotationPerSec: RotationPerSec,
		SelfHitFactor:  SelfHitFactor,
		EyeSpread:      EyeSpread,
		EyeRadiusDiv:   EyeRadiusDiv,
	}
}

// HalfField is the distance from the origin to each wall.
func (c Config) HalfField() float64 {
	return c.FieldSize / 2
}

// WallLimit is the largest coordinate the head center may reach on either axis.
func (c Config) WallLimit() float64 {
	return c.HalfField() - c.UnitRadius
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field size", c.FieldSize},
		{"unit radius", c.UnitRadius},
		{"fruit radius", c.FruitRadius},
		{"eye radius divisor", c.EyeRadiusDiv},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.InitSpeed < 0 || math.IsNaN(c.InitSpeed) || math.IsInf(c.InitSpeed, 0) {
		return fmt.Errorf("%w: speed must be non-negative, got %v", ErrInvalidConfig, c.InitSpeed)
	}
	if math.IsNaN(c.RotationPerSec) || math.IsInf(c.RotationPerSec, 0) {
		return fmt.Errorf("%w: rotation rate must be finite, got %v", ErrInvalidConfig, c.RotationPerSec)
	}
	if c.SelfHitFactor < 0 || math.IsNaN(c.SelfHitFactor) {
		return fmt.Errorf("%w: self hit factor must be non-negative, got %v", ErrInvalidConfig, c.SelfHitFactor)
	}
	if c.WallLimit() <= 0 {
		return fmt.Errorf("%w: unit radius %v leaves no room in a field of %v", ErrInvalidConfig, c.UnitRadius, c.FieldSize)
	}
	return nil
}

// Input is the directional state sampled once per frame.
type Input struct {
	Left  bool
	Right bool
}

// RotationRate combines both turn keys additively, so holding both cancels.
func (in Input) RotationRate(perSec float64) float64 {
	var rate float64
	if in.Left {
		rate += perSec
	}
	if in.Right {
		rate -= perSec
	}
	return rate
}

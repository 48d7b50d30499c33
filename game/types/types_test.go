package types

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.WallLimit() != 0.96 {
		t.Errorf("Expected wall limit 0.96, got %v", cfg.WallLimit())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"Zero field", func(c *Config) { c.FieldSize = 0 }},
		{"NaN unit radius", func(c *Config) { c.UnitRadius = math.NaN() }},
		{"Negative fruit radius", func(c *Config) { c.FruitRadius = -0.1 }},
		{"Negative speed", func(c *Config) { c.InitSpeed = -1 }},
		{"Infinite rotation", func(c *Config) { c.RotationPerSec = math.Inf(1) }},
		{"Unit fills field", func(c *Config) { c.UnitRadius = 1 }},
		{"Zero eye divisor", func(c *Config) { c.EyeRadiusDiv = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestInputRotationRate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"None", Input{}, 0},
		{"Left", Input{Left: true}, 2},
		{"Right", Input{Right: true}, -2},
		{"Both cancel", Input{Left: true, Right: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RotationRate(2); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// Package config provides YAML-based tuning for the bus puzzle.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BusJamConfig holds all gameplay tuning.
type BusJamConfig struct {
	Movement  MovementConfig  `yaml:"movement"`
	Collision CollisionConfig `yaml:"collision"`
	Boarding  BoardingConfig  `yaml:"boarding"`
	Disappear DisappearConfig `yaml:"disappear"`
	Timer     TimerConfig     `yaml:"timer"`
}

// MovementConfig controls drag stepping and visual motion.
type MovementConfig struct {
	StepInterval  time.Duration `yaml:"step_interval"`
	Motion        string        `yaml:"motion"` // "smooth" or "linear"
	SmoothingRate float64       `yaml:"smoothing_rate"`
	LinearSpeed   float64       `yaml:"linear_speed"` // cells per second
	HitRadius     float64       `yaml:"hit_radius"`   // cells
}

// CollisionConfig controls the world-object overlap check.
type CollisionConfig struct {
	Mask         []string `yaml:"mask"`
	CheckRadius  float64  `yaml:"check_radius"`
	ObjectRadius float64  `yaml:"object_radius"`
}

// BoardingConfig controls passenger pickup.
type BoardingConfig struct {
	JumpDuration    time.Duration `yaml:"jump_duration"`
	PickupDelay     time.Duration `yaml:"pickup_delay"`
	ZoneRadius      float64       `yaml:"zone_radius"` // cells
	SeatsPerSegment int           `yaml:"seats_per_segment"`
}

// DisappearConfig controls the full-bus exit animation.
type DisappearConfig struct {
	JumpHeight        float64       `yaml:"jump_height"`
	JumpDuration      time.Duration `yaml:"jump_duration"`
	ScaleDownDuration time.Duration `yaml:"scale_down_duration"`
	DestroyDelay      time.Duration `yaml:"destroy_delay"`
}

// TimerConfig controls the level countdown.
type TimerConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"`
}

// Validate reports configuration values the game cannot run with.
func (c BusJamConfig) Validate() error {
	var errs []error
	if c.Movement.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("movement.step_interval must be positive, got %s", c.Movement.StepInterval))
	}
	switch c.Movement.Motion {
	case "smooth", "linear":
	default:
		errs = append(errs, fmt.Errorf("movement.motion must be smooth or linear, got %q", c.Movement.Motion))
	}
	if c.Movement.HitRadius <= 0 {
		errs = append(errs, fmt.Errorf("movement.hit_radius must be positive, got %g", c.Movement.HitRadius))
	}
	for _, m := range c.Collision.Mask {
		if !isObjectTypeName(m) {
			errs = append(errs, fmt.Errorf("collision.mask: unknown object type %q", m))
		}
	}
	if c.Boarding.SeatsPerSegment < 1 {
		errs = append(errs, fmt.Errorf("boarding.seats_per_segment must be at least 1, got %d", c.Boarding.SeatsPerSegment))
	}
	if c.Timer.Scale <= 0 {
		errs = append(errs, fmt.Errorf("timer.scale must be positive, got %g", c.Timer.Scale))
	}
	return errors.Join(errs...)
}

func isObjectTypeName(s string) bool {
	switch s {
	case "border", "passenger_spawn", "passage", "vehicle":
		return true
	}
	return false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyZen    DifficultyPreset = "zen"
)

// ParseDifficulty parses a preset name. An empty name is normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or zen)", s)
}

// TimerScaleForPreset returns the level time multiplier for a preset.
func TimerScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

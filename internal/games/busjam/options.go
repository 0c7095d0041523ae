package busjam

import (
	"fmt"

	"github.com/vovakirdan/busjam/internal/config"
	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

// OptionsFromConfig converts the YAML tuning into session options.
func OptionsFromConfig(cfg config.BusJamConfig) (core.Options, error) {
	opts := core.DefaultOptions()

	kind, ok := core.ParseMotionKind(cfg.Movement.Motion)
	if !ok {
		return opts, fmt.Errorf("busjam: unknown motion %q", cfg.Movement.Motion)
	}
	opts.StepInterval = cfg.Movement.StepInterval
	opts.Motion = core.Motion{
		Kind:  kind,
		Rate:  cfg.Movement.SmoothingRate,
		Speed: cfg.Movement.LinearSpeed,
	}
	opts.HitRadius = cfg.Movement.HitRadius

	types := make([]core.ObjectType, 0, len(cfg.Collision.Mask))
	for _, name := range cfg.Collision.Mask {
		t, ok := core.ParseObjectType(name)
		if !ok {
			return opts, fmt.Errorf("busjam: unknown collision type %q", name)
		}
		types = append(types, t)
	}
	opts.CollisionMask = core.MaskOf(types...)
	opts.CheckRadius = cfg.Collision.CheckRadius
	opts.ObjectRadius = cfg.Collision.ObjectRadius

	opts.SeatsPerSegment = cfg.Boarding.SeatsPerSegment
	opts.ZoneRadius = cfg.Boarding.ZoneRadius
	opts.Boarding = core.BoardingTiming{
		JumpDuration: cfg.Boarding.JumpDuration,
		PickupDelay:  cfg.Boarding.PickupDelay,
	}

	opts.Disappear.JumpHeight = cfg.Disappear.JumpHeight
	opts.Disappear.JumpDuration = cfg.Disappear.JumpDuration
	opts.Disappear.ScaleDownDuration = cfg.Disappear.ScaleDownDuration
	opts.Disappear.DestroyDelay = cfg.Disappear.DestroyDelay

	opts.TimerEnabled = cfg.Timer.Enabled
	opts.TimerScale = cfg.Timer.Scale
	return opts, nil
}

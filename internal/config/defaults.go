package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/busjam.yaml
var defaultBusJamYAML []byte

// DefaultConfig returns the hardcoded gameplay configuration.
func DefaultConfig() BusJamConfig {
	return BusJamConfig{
		Movement: MovementConfig{
			StepInterval:  60 * time.Millisecond,
			Motion:        "smooth",
			SmoothingRate: 15,
			LinearSpeed:   8,
			HitRadius:     0.5,
		},
		Collision: CollisionConfig{
			Mask:         []string{"border"},
			CheckRadius:  0.3,
			ObjectRadius: 0.5,
		},
		Boarding: BoardingConfig{
			JumpDuration:    450 * time.Millisecond,
			PickupDelay:     100 * time.Millisecond,
			ZoneRadius:      1.0,
			SeatsPerSegment: 1,
		},
		Disappear: DisappearConfig{
			JumpHeight:        1.0,
			JumpDuration:      500 * time.Millisecond,
			ScaleDownDuration: 800 * time.Millisecond,
			DestroyDelay:      250 * time.Millisecond,
		},
		Timer: TimerConfig{
			Enabled: true,
			Scale:   1.0,
		},
	}
}

package core

import "time"

// DisappearTiming shapes the full-bus exit animation.
type DisappearTiming struct {
	JumpHeight        float64
	JumpDuration      time.Duration
	ScaleDownDuration time.Duration
	// DestroyDelay is the pause after shrinking before removal.
	DestroyDelay time.Duration
	// FinalScale is the segment scale at the end of the shrink.
	FinalScale float64
}

// DefaultDisappearTiming returns the standard exit animation.
func DefaultDisappearTiming() DisappearTiming {
	return DisappearTiming{
		JumpHeight:        1,
		JumpDuration:      500 * time.Millisecond,
		ScaleDownDuration: 800 * time.Millisecond,
		DestroyDelay:      250 * time.Millisecond,
		FinalScale:        0.1,
	}
}

// Total returns the full animation length.
func (d DisappearTiming) Total() time.Duration {
	return d.JumpDuration + d.ScaleDownDuration + d.DestroyDelay
}

// disappearTask lifts the bus, shrinks it, then calls done.
type disappearTask struct {
	bus     *Bus
	timing  DisappearTiming
	elapsed time.Duration
	done    func()
}

func (t *disappearTask) Step(dt time.Duration) bool {
	t.elapsed += dt
	lift, scale := t.timing.pose(t.elapsed)
	for _, s := range t.bus.segments {
		s.Lift = lift
		s.Scale = scale
	}
	if t.elapsed < t.timing.Total() {
		return false
	}
	if t.done != nil {
		t.done()
	}
	return true
}

// pose returns lift and scale at time e into the animation.
func (d DisappearTiming) pose(e time.Duration) (lift, scale float64) {
	switch {
	case e < d.JumpDuration:
		return d.JumpHeight * progress(e, d.JumpDuration), 1
	case e < d.JumpDuration+d.ScaleDownDuration:
		p := progress(e-d.JumpDuration, d.ScaleDownDuration)
		return d.JumpHeight, 1 + (d.FinalScale-1)*p
	default:
		return d.JumpHeight, d.FinalScale
	}
}

func progress(e, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := float64(e) / float64(total)
	if p > 1 {
		return 1
	}
	return p
}

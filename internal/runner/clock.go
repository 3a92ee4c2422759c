package runner

// Tick is the timing of one simulation step.
type Tick struct {
	DT  float64 // Seconds since the previous step
	Now float64 // Seconds since the clock started
}

// Clock supplies step timing. The simulation never measures time itself.
type Clock interface {
	Tick() Tick
}

// FixedClock advances by a constant step on every call.
type FixedClock struct {
	step float64
	now  float64
}

// NewFixedClock creates a clock stepping at tickRate ticks per second.
func NewFixedClock(tickRate int) *FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedClock{step: 1 / float64(tickRate)}
}

// Tick implements Clock.
func (c *FixedClock) Tick() Tick {
	c.now += c.step
	return Tick{DT: c.step, Now: c.now}
}

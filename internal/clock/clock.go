package clock

import "time"

// DefaultMaxStep caps how far a single tick can move animation time. A frame that takes
// longer than this slows the scene down instead of jumping entities forward.
const DefaultMaxStep = 100 * time.Millisecond

// Clock is the elapsed-time source every animation reads. Elapsed time starts at zero,
// only grows, and cannot be reset. Advance is called once per tick by the frame scheduler;
// Elapsed is a pure read usable from anywhere inside the tick.
type Clock struct {
	now     func() time.Time
	maxStep float64
	last    time.Time
	started bool
	elapsed float64
}

// New returns a clock driven by now (time.Now when nil). maxStep <= 0 uses DefaultMaxStep.
func New(now func() time.Time, maxStep time.Duration) *Clock {
	if now == nil {
		now = time.Now
	}
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{now: now, maxStep: maxStep.Seconds()}
}

// Elapsed returns seconds of animation time since the scene started.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Advance moves elapsed time forward by the real time since the previous Advance, clamped
// to [0, maxStep], and returns the new elapsed value. The first call only records the
// starting instant, so the first tick always sees t == 0.
func (c *Clock) Advance() float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return c.elapsed
	}
	step := now.Sub(c.last).Seconds()
	c.last = now
	if step < 0 {
		step = 0
	}
	if step > c.maxStep {
		step = c.maxStep
	}
	c.elapsed += step
	return c.elapsed
}

package frame

import "time"

// Clock turns wall time into a whole number of fixed update ticks so that
// camera movement speed does not depend on the frame rate.
type Clock struct {
	step    time.Duration
	prev    time.Duration
	pending time.Duration
	started bool
}

// NewClock ticks updateHz*substeps times per second.
func NewClock(updateHz, substeps int) *Clock {
	rate := updateHz * substeps
	if rate <= 0 {
		rate = 1
	}
	return &Clock{step: time.Second / time.Duration(rate)}
}

// Step is the duration of one tick.
func (c *Clock) Step() time.Duration {
	return c.step
}

// maxPending caps catch-up after a stall (window drag, breakpoint) so the
// camera does not sprint for seconds afterwards.
const maxPending = 250 * time.Millisecond

// Advance moves the clock to now, measured from any fixed origin such as
// glfw.GetTime, and returns how many ticks are due.
func (c *Clock) Advance(now time.Duration) int {
	if !c.started {
		c.started = true
		c.prev = now
		return 0
	}
	elapsed := now - c.prev
	c.prev = now
	if elapsed < 0 {
		return 0
	}
	c.pending += elapsed
	if c.pending > maxPending {
		c.pending = maxPending
	}
	ticks := int(c.pending / c.step)
	c.pending -= time.Duration(ticks) * c.step
	return ticks
}

// Seconds converts a float seconds timestamp into a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

package frame

import "time"

// Counter measures frames per second over a fixed number of frames.
type Counter struct {
	every int
	count int
	since time.Duration
	fps   float64
}

func NewCounter(every int) *Counter {
	if every <= 0 {
		every = 1
	}
	return &Counter{every: every, since: -1}
}

// Frame records a finished frame at now and reports whether a new FPS value
// is available.
func (c *Counter) Frame(now time.Duration) bool {
	if c.since < 0 {
		c.since = now
		return false
	}
	c.count++
	if c.count < c.every {
		return false
	}
	if elapsed := now - c.since; elapsed > 0 {
		c.fps = float64(c.count) / elapsed.Seconds()
	}
	c.count = 0
	c.since = now
	return true
}

// FPS is the most recent measurement.
func (c *Counter) FPS() float64 {
	return c.fps
}

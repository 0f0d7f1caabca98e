package frame

import (
	"time"

	"freelook/internal/config"
)

// spinWindow is the tail of each frame that is polled instead of slept,
// since timer wakeups can overshoot by about this much.
const spinWindow = 200 * time.Microsecond

// Limiter paces a loop to a fixed number of frames per second.
// The zero deadline means the next call starts a new schedule.
type Limiter struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter returns a Limiter on the wall clock.
func NewLimiter() *Limiter {
	return &Limiter{now: time.Now, sleep: time.Sleep}
}

// Wait paces the caller to config.GetFPSLimit. The limit is read on every
// call so runtime changes apply from the next frame.
func (l *Limiter) Wait() {
	l.WaitFor(config.GetFPSLimit())
}

// WaitFor blocks until the deadline for a cap of limit frames per second.
// Deadlines advance by whole periods, so short overruns are paid back.
// A limit <= 0 disables pacing and clears the schedule.
func (l *Limiter) WaitFor(limit int) {
	if limit <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if l.next.IsZero() {
		l.next = l.now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := l.next.Sub(l.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			l.sleep(remaining - spinWindow)
		}
		if !l.now().Before(l.next) {
			break
		}
	}

	// more than a period behind: restart the schedule from now
	if late := l.now().Sub(l.next); late > target {
		l.next = l.now().Add(target)
	}
}

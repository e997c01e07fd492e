package gui

import (
	"time"
)

// FrameInterval is roughly 60 frames per second
const FrameInterval = 16 * time.Millisecond

// Clock measures the wall-clock time between frames.
type Clock struct {
	Interval time.Duration
	Paused   bool

	last time.Time
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{Interval: interval}
}

// Elapsed returns the time since the previous call. The first call, and any
// call while paused, returns zero.
func (cl *Clock) Elapsed(now time.Time) time.Duration {
	if cl.last.IsZero() || cl.Paused {
		cl.last = now
		return 0
	}

	elapsed := now.Sub(cl.last)
	if elapsed < 0 {
		elapsed = 0
	}
	cl.last = now

	return elapsed
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

// Resume restarts the measurement so the paused time is never reported.
func (cl *Clock) Resume() {
	cl.Paused = false
	cl.last = time.Time{}
}

// Run calls frame with the tick time once per interval until done is closed.
func (cl *Clock) Run(done <-chan struct{}, frame func(now time.Time)) {
	tick := time.NewTicker(cl.Interval)
	defer tick.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-tick.C:
			frame(now)
		}
	}
}

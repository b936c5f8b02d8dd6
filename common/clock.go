package common

import "time"

// Clock measures the time between host-loop frames. It is owned by the host
// loop and its readings are passed into the simulation explicitly.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock starts a clock at now(). A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick (or since the
// clock was created) and restarts the measurement. Long stalls are reported
// as they are.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}

package sim

import "time"

// SystemClock measures monotonic wall time from its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Set may move it backwards.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Elapsed() time.Duration {
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

func (c *ManualClock) Set(d time.Duration) {
	c.now = d
}

// AdvanceSeconds advances the clock by a fractional number of seconds.
func (c *ManualClock) AdvanceSeconds(s float64) {
	c.now += time.Duration(s * float64(time.Second))
}

package core

import "time"

// Clock measures wall time between Start and Stop. Elapsed keeps the last
// measured span after Stop.
type Clock struct {
	started time.Time
	elapsed time.Duration
}

func NewClock() *Clock {
	return &Clock{}
}

// Update refreshes Elapsed while the clock runs. A stopped clock is left as is.
func (c *Clock) Update() {
	if c.Running() {
		c.elapsed = time.Since(c.started)
	}
}

// Start resets Elapsed and begins a new span.
func (c *Clock) Start() {
	c.started = time.Now()
	c.elapsed = 0
}

func (c *Clock) Stop() {
	c.Update()
	c.started = time.Time{}
}

func (c *Clock) Running() bool {
	return !c.started.IsZero()
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

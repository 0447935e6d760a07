package core

import "time"

// Clock measures wall time between Start and the most recent Update.
type Clock struct {
	now     func() time.Time
	start   time.Time
	running bool
	elapsed time.Duration
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource builds a clock that reads time from now instead of
// the system clock.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Updates the clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.now().Sub(c.start)
	}
}

// Starts the clock. Resets elapsed time.
func (c *Clock) Start() {
	c.start = c.now()
	c.running = true
	c.elapsed = 0
}

// Stops the clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool {
	return c.running
}

func (c *Clock) Now() time.Time {
	return c.now()
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

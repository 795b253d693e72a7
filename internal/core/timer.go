package core

import "time"

// Clock advances sketch time in fixed steps of 1/TPS seconds, independent of
// wall time, so a run of N ticks is reproducible.
type Clock struct {
	step    time.Duration
	elapsed time.Duration
	frames  int
}

// NewClock constructs a Clock targeting the given TPS.
func NewClock(tps int) *Clock {
	c := &Clock{}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (c *Clock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	c.step = time.Second / time.Duration(tps)
}

// Tick advances the clock by one step and returns the step in seconds.
func (c *Clock) Tick() float64 {
	c.elapsed += c.step
	c.frames++
	return c.step.Seconds()
}

// Step returns the step length in seconds without advancing.
func (c *Clock) Step() float64 { return c.step.Seconds() }

// Elapsed returns the total simulated time.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

// Frames returns the number of ticks so far.
func (c *Clock) Frames() int { return c.frames }

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.frames = 0
}

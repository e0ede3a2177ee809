package jumper

import "time"

// Clock counts simulation ticks and carries the slow-motion time scale.
type Clock struct {
	Tick      uint64
	TimeScale float64
}

// Reset rewinds the clock to tick zero at normal speed.
func (c *Clock) Reset() {
	c.Tick = 0
	c.TimeScale = 1
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.Tick++
}

// Accumulator turns variable real-time frame durations into a whole number of
// fixed simulation ticks. Time that does not fill a whole tick carries over.
type Accumulator struct {
	Step     time.Duration
	MaxSteps int // ticks per Add before the backlog is dropped
	acc      time.Duration
}

// NewAccumulator creates an accumulator for the given tick rate.
func NewAccumulator(tickRate int) *Accumulator {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Accumulator{
		Step:     time.Second / time.Duration(tickRate),
		MaxSteps: 5,
	}
}

// Add records elapsed real time and returns how many ticks to run now.
// After a long stall (suspended terminal, slow SSH link) at most MaxSteps
// ticks are returned and the rest of the backlog is discarded.
func (a *Accumulator) Add(elapsed time.Duration) int {
	if elapsed <= 0 || a.Step <= 0 {
		return 0
	}
	a.acc += elapsed
	n := int(a.acc / a.Step)
	a.acc -= time.Duration(n) * a.Step
	if a.MaxSteps > 0 && n > a.MaxSteps {
		n = a.MaxSteps
		a.acc = 0
	}
	return n
}

// Reset drops any carried-over time.
func (a *Accumulator) Reset() {
	a.acc = 0
}

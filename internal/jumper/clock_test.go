package jumper

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	var c Clock
	c.Reset()
	if c.TimeScale != 1 {
		t.Errorf("TimeScale = %f, expected 1", c.TimeScale)
	}
	c.Advance()
	c.Advance()
	if c.Tick != 2 {
		t.Errorf("Tick = %d, expected 2", c.Tick)
	}
}

func TestAccumulator(t *testing.T) {
	a := NewAccumulator(60)
	step := a.Step

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{"less than a tick", step / 2, 0},
		{"completes the carried tick", step / 2, 1},
		{"three ticks", 3 * step, 3},
		{"nothing", 0, 0},
		{"long stall is capped", time.Second, 5},
		{"backlog was dropped", step, 1},
	}

	for _, tc := range tests {
		if got := a.Add(tc.elapsed); got != tc.expected {
			t.Errorf("%s: Add(%v) = %d, expected %d", tc.name, tc.elapsed, got, tc.expected)
		}
	}
}

func TestAccumulatorDefaultRate(t *testing.T) {
	a := NewAccumulator(0)
	if a.Step != time.Second/60 {
		t.Errorf("Step = %v, expected 60 Hz", a.Step)
	}
	a.Add(a.Step / 2)
	a.Reset()
	if got := a.Add(a.Step / 2); got != 0 {
		t.Errorf("Reset should drop carried time, got %d ticks", got)
	}
}

package jumper

import "math"

// Score accumulates climbed distance and bonus points for one run.
// Both parts only ever grow, so the total is monotonic.
type Score struct {
	Climb float64 // world units scrolled
	Bonus int     // coins and stomps
}

// Total returns the reported score: whole climb points plus bonus.
func (s Score) Total(divisor float64) int {
	if divisor <= 0 {
		return s.Bonus
	}
	return int(math.Floor(s.Climb/divisor)) + s.Bonus
}

// Camera tracks how far the world has scrolled.
type Camera struct {
	Offset float64
}

// scroll pins the player to the threshold line once it rises above it and
// shifts every other entity down by the same amount.
func (e *Engine) scroll() {
	line := e.cfg.Camera.Threshold * e.w.height
	pl := &e.w.player
	if pl.Y >= line {
		return
	}
	delta := line - pl.Y
	pl.Y = line

	e.w.shift(delta)
	e.camera.Offset += delta
	e.score.Climb += delta
}

// shift moves every entity except the player down by dy.
func (w *world) shift(dy float64) {
	for i := range w.platforms {
		w.platforms[i].Y += dy
	}
	for i := range w.items {
		w.items[i].Y += dy
	}
	for i := range w.enemies {
		w.enemies[i].Y += dy
		w.enemies[i].BaseY += dy
	}
	w.particles.shift(dy)
}

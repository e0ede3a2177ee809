package jumper

import (
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	testW = 40
	testH = 24
)

// newTestEngine returns an engine that has already started a run.
func newTestEngine(t *testing.T, mutate func(*config.SkyhopConfig)) *Engine {
	t.Helper()
	cfg := config.DefaultSkyhopConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	e := NewEngine(cfg, core.NewSimpleRNG(42))
	e.Resize(testW, testH)
	e.Step(Input{Interact: true})
	if e.State() != StatePlaying {
		t.Fatalf("expected playing after Interact, got %v", e.State())
	}
	return e
}

// isolate drops the generated world so a test can place entities by hand.
func isolate(e *Engine) {
	e.w.platforms = e.w.platforms[:0]
	e.w.items = e.w.items[:0]
	e.w.enemies = e.w.enemies[:0]
	e.w.particles.reset()
}

// collide runs one collision pass over the current world.
func collide(e *Engine) {
	e.broad.sync(&e.w)
	e.resolveCollisions()
	e.notify()
}

// quiet disables items and enemies so only platforms spawn.
func quiet(c *config.SkyhopConfig) {
	c.Items.Chance = 0
	c.Enemies.MinScore = 1 << 30
}

// scriptedRNG replays a fixed sequence of values in [0, 1).
type scriptedRNG struct {
	values []float64
	pos    int
}

func newScriptedRNG(values ...float64) *scriptedRNG {
	return &scriptedRNG{values: values}
}

func (r *scriptedRNG) Float64() float64 {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// botInput is a fixed input script: steer in slow waves and always press
// Interact so a lost run restarts.
func botInput(tick int) Input {
	phase := (tick / 45) % 4
	return Input{
		MoveLeft:  phase == 1,
		MoveRight: phase == 3,
		Interact:  true,
	}
}

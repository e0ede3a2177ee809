package jumper

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle is a cosmetic dot. It never collides.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64 // shrinks from the configured start size to zero
}

type particle struct {
	Particle
	fade *gween.Tween
}

// particlePool is a fixed-capacity set of live particles.
// Emitting into a full pool drops the new particle.
type particlePool struct {
	live    []particle
	gravity float64
}

func newParticlePool(capacity int, gravity float64) particlePool {
	return particlePool{
		live:    make([]particle, 0, capacity),
		gravity: gravity,
	}
}

func (pp *particlePool) reset() {
	clear(pp.live)
	pp.live = pp.live[:0]
}

func (pp *particlePool) len() int {
	return len(pp.live)
}

// emit adds a particle that shrinks to nothing over life ticks.
func (pp *particlePool) emit(x, y, vx, vy, size float64, life int) {
	if len(pp.live) == cap(pp.live) || life <= 0 || size <= 0 {
		return
	}
	pp.live = append(pp.live, particle{
		Particle: Particle{X: x, Y: y, VX: vx, VY: vy, Size: size},
		fade:     gween.New(float32(size), 0, float32(life), ease.Linear),
	})
}

// burst emits count particles spread evenly around a circle.
func (pp *particlePool) burst(cx, cy float64, count int, speed, size float64, life int) {
	for i := 0; i < count; i++ {
		a := 2 * math.Pi * float64(i) / float64(count)
		pp.emit(cx, cy, math.Cos(a)*speed, math.Sin(a)*speed, size, life)
	}
}

// update moves every particle one tick and drops the ones that have faded.
func (pp *particlePool) update() {
	for i := 0; i < len(pp.live); {
		p := &pp.live[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += pp.gravity
		size, done := p.fade.Update(1)
		p.Size = float64(size)
		if done || p.Size <= 0 {
			last := len(pp.live) - 1
			pp.live[i] = pp.live[last]
			pp.live[last] = particle{}
			pp.live = pp.live[:last]
			continue
		}
		i++
	}
}

// shift moves every particle down by dy.
func (pp *particlePool) shift(dy float64) {
	for i := range pp.live {
		pp.live[i].Y += dy
	}
}

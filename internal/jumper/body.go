package jumper

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the single physics body of a run.
// X, Y is the top-left corner; y grows downward.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Facing int // -1 left, 1 right
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Feet returns the y coordinate of the player's lower edge.
func (p *Player) Feet() float64 {
	return p.Y + p.H
}

// integrate advances the player by one tick.
// Horizontal motion wraps around [0, width). Vertical motion follows gravity
// scaled by timeScale, or the thrust override when thrusting.
// Falling displacement is scaled by timeScale a second time; rising is not.
func integrate(p *Player, in Input, phys config.SkyhopPhysics, timeScale, width float64, thrusting bool) {
	if in.MoveLeft {
		p.VX -= phys.MoveAccel
		p.Facing = -1
	}
	if in.MoveRight {
		p.VX += phys.MoveAccel
		p.Facing = 1
	}
	p.VX *= phys.Friction
	p.VX = core.ClampF(p.VX, -phys.MaxSpeed, phys.MaxSpeed)
	p.X = core.Wrap(p.X+p.VX, width)

	if thrusting {
		p.VY = math.Min(p.VY, 0) - phys.ThrustForce
		if p.VY < -phys.ThrustMaxSpeed {
			p.VY = -phys.ThrustMaxSpeed
		}
	} else {
		p.VY += phys.Gravity * timeScale
		if p.VY > phys.MaxFallSpeed {
			p.VY = phys.MaxFallSpeed
		}
	}

	dy := p.VY
	if dy > 0 {
		dy *= timeScale
	}
	p.Y += dy
}

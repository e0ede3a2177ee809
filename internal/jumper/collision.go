package jumper

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// resolveCollisions tests the player against every live entity and applies
// the per-type responses. All tests use the state at the start of the pass,
// so a landing in this tick does not turn an enemy stomp into a side hit.
func (e *Engine) resolveCollisions() {
	pl := &e.w.player
	falling := pl.VY > 0
	feet := pl.Feet()
	body := pl.Rect()
	swept := body
	if falling {
		swept = body.ExtendDown(pl.VY)
	}
	thrusting := e.powers.Active(PowerThrust)

	e.broad.query(swept)

	if falling && !thrusting {
		e.collidePlatforms(swept)
	}
	if e.collideEnemies(swept, falling, feet, thrusting) {
		return
	}
	e.collideItems(body)
}

// collidePlatforms lands the player on the highest overlapping platform.
// Ties go to the older platform.
func (e *Engine) collidePlatforms(swept core.RectF) {
	best := -1
	for i := range e.w.platforms {
		p := &e.w.platforms[i]
		if !p.Active || !e.broad.hit(p.ID) || !swept.Intersects(p.Rect()) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := &e.w.platforms[best]
		if p.Y < b.Y || (p.Y == b.Y && p.ID < b.ID) {
			best = i
		}
	}
	if best >= 0 {
		e.land(&e.w.platforms[best])
	}
}

// land snaps the player's feet onto p and applies the bounce for its kind.
func (e *Engine) land(p *Platform) {
	pl := &e.w.player
	phys := e.cfg.Physics
	pl.Y = p.Y - pl.H

	switch p.Kind {
	case PlatformBreakable:
		p.Active = false
		pl.VY = -phys.JumpImpulse / 2
		pc := e.cfg.Particles
		cx, cy := p.Rect().Center()
		e.w.particles.burst(cx, cy, pc.BurstCount, pc.BurstSpeed, pc.StartSize, pc.BurstLife)
	case PlatformSpring:
		pl.VY = -phys.SpringImpulse
	default:
		pl.VY = -phys.JumpImpulse
	}
}

// collideEnemies handles stomps and fatal contacts. It reports whether the
// run ended.
func (e *Engine) collideEnemies(swept core.RectF, falling bool, feet float64, thrusting bool) bool {
	for i := range e.w.enemies {
		en := &e.w.enemies[i]
		if !en.Active || !e.broad.hit(en.ID) || !swept.Intersects(en.Rect()) {
			continue
		}

		if falling && feet <= en.Y+e.cfg.Enemies.StompMargin {
			en.Active = false
			e.score.Bonus += e.cfg.Scoring.StompBonus
			e.w.player.VY = -e.cfg.Physics.JumpImpulse
			continue
		}

		switch {
		case thrusting:
		case e.powers.Active(PowerShield):
			if e.cfg.Shield.Policy == config.ShieldSingleHit {
				e.powers.Deactivate(PowerShield)
			}
		default:
			e.endRun()
			return true
		}
	}
	return false
}

// collideItems consumes every item overlapping the player's body.
func (e *Engine) collideItems(body core.RectF) {
	for i := range e.w.items {
		it := &e.w.items[i]
		if it.Consumed || !e.broad.hit(it.ID) || !body.Intersects(it.Rect()) {
			continue
		}
		it.Consumed = true
		e.applyItem(it.Kind)
	}
}

// applyItem applies the pickup effect of an item kind.
func (e *Engine) applyItem(kind ItemKind) {
	pu := e.cfg.PowerUps
	switch kind {
	case ItemThrust:
		e.powers.Activate(PowerThrust, pu.ThrustDuration)
	case ItemBoost:
		e.w.player.VY = -e.cfg.Physics.BoostImpulse
	case ItemShield:
		duration := 0
		if e.cfg.Shield.Policy == config.ShieldTimed {
			duration = e.cfg.Shield.Duration
		}
		e.powers.Activate(PowerShield, duration)
	case ItemMagnet:
		e.powers.Activate(PowerMagnet, pu.MagnetDuration)
	case ItemSlowmo:
		e.powers.Activate(PowerSlowmo, pu.SlowmoDuration)
	case ItemCoin:
		e.score.Bonus += e.cfg.Scoring.CoinValue
	}
}

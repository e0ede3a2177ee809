package jumper

// PowerUp identifies a registry-managed effect.
type PowerUp int

const (
	PowerThrust PowerUp = iota // Gravity override, passes through platforms
	PowerShield                // Immunity to enemy contact
	PowerMagnet                // Pulls nearby coins
	PowerSlowmo                // Time dilation
	NumPowerUps                // Sentinel for counting kinds
)

// String returns the name of the power-up.
func (k PowerUp) String() string {
	switch k {
	case PowerThrust:
		return "thrust"
	case PowerShield:
		return "shield"
	case PowerMagnet:
		return "magnet"
	case PowerSlowmo:
		return "slowmo"
	default:
		return "?"
	}
}

// Effect is the uniform state of one power-up.
// Untimed effects stay active until cleared explicitly.
type Effect struct {
	Active    bool
	Remaining int // ticks left, meaningful when Timed
	Timed     bool
}

// Registry holds every power-up effect, indexed by kind.
type Registry struct {
	effects [NumPowerUps]Effect
}

// Reset clears every effect.
func (r *Registry) Reset() {
	r.effects = [NumPowerUps]Effect{}
}

// Tick decrements all active timed effects and clears the ones reaching zero.
func (r *Registry) Tick() {
	for k := range r.effects {
		e := &r.effects[k]
		if !e.Active || !e.Timed {
			continue
		}
		e.Remaining--
		assertf(e.Remaining >= 0, "power-up %v has negative remaining time %d", PowerUp(k), e.Remaining)
		if e.Remaining <= 0 {
			*e = Effect{}
		}
	}
}

// Activate turns an effect on for exactly duration ticks.
// A non-positive duration activates it without a timer.
// Activating an already active effect restarts it.
func (r *Registry) Activate(k PowerUp, duration int) {
	if k < 0 || k >= NumPowerUps {
		return
	}
	if duration > 0 {
		r.effects[k] = Effect{Active: true, Remaining: duration, Timed: true}
		return
	}
	r.effects[k] = Effect{Active: true}
}

// Deactivate clears an effect.
func (r *Registry) Deactivate(k PowerUp) {
	if k < 0 || k >= NumPowerUps {
		return
	}
	r.effects[k] = Effect{}
}

// Active reports whether an effect is on.
func (r *Registry) Active(k PowerUp) bool {
	if k < 0 || k >= NumPowerUps {
		return false
	}
	return r.effects[k].Active
}

// Remaining returns the ticks left on a timed effect, 0 otherwise.
func (r *Registry) Remaining(k PowerUp) int {
	if k < 0 || k >= NumPowerUps {
		return 0
	}
	return r.effects[k].Remaining
}

// Effects returns a copy of all effect states.
func (r *Registry) Effects() [NumPowerUps]Effect {
	return r.effects
}

package jumper

import "math"

// Snapshot is the renderer-facing view of one tick.
// Slices are copies; holding a Snapshot never aliases engine state.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	Difficulty   float64
	CameraOffset float64
	TimeScale    float64
	Width        float64
	Height       float64

	Player    Player
	PowerUps  [NumPowerUps]Effect
	Platforms []Platform
	Items     []Item
	Enemies   []Enemy
	Particles []Particle
}

// Snapshot returns a freshly allocated view of the current state.
func (e *Engine) Snapshot() Snapshot {
	var s Snapshot
	e.FillSnapshot(&s)
	return s
}

// FillSnapshot writes the current state into s, reusing its slices.
func (e *Engine) FillSnapshot(s *Snapshot) {
	s.Tick = e.clock.Tick
	s.State = e.state
	s.Score = e.Score()
	s.Difficulty = e.spawner.Difficulty()
	s.CameraOffset = e.camera.Offset
	s.TimeScale = e.clock.TimeScale
	s.Width = e.w.width
	s.Height = e.w.height
	s.Player = e.w.player
	s.PowerUps = e.powers.Effects()

	s.Platforms = s.Platforms[:0]
	for _, p := range e.w.platforms {
		if p.Active {
			s.Platforms = append(s.Platforms, p)
		}
	}
	s.Items = s.Items[:0]
	for _, it := range e.w.items {
		if !it.Consumed {
			s.Items = append(s.Items, it)
		}
	}
	s.Enemies = s.Enemies[:0]
	for _, en := range e.w.enemies {
		if en.Active {
			s.Enemies = append(s.Enemies, en)
		}
	}
	s.Particles = s.Particles[:0]
	for _, p := range e.w.particles.live {
		s.Particles = append(s.Particles, p.Particle)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Particles are cosmetic and left out.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.State)        //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(s.Score)) //#nosec G115 -- hash computation
	h = mixFloat(h, s.CameraOffset)
	h = mixFloat(h, s.Player.X)
	h = mixFloat(h, s.Player.Y)
	h = mixFloat(h, s.Player.VX)
	h = mixFloat(h, s.Player.VY)
	for _, eff := range s.PowerUps {
		h = h*31 + uint64(int64(eff.Remaining)) //#nosec G115 -- hash computation
		if eff.Active {
			h = h*31 + 1
		}
	}
	for _, p := range s.Platforms {
		h = h*31 + p.ID
		h = h*31 + uint64(p.Kind)
		h = mixFloat(h, p.X)
		h = mixFloat(h, p.Y)
		h = mixFloat(h, p.W)
	}
	for _, it := range s.Items {
		h = h*31 + it.ID
		h = h*31 + uint64(it.Kind)
		h = mixFloat(h, it.X)
		h = mixFloat(h, it.Y)
	}
	for _, en := range s.Enemies {
		h = h*31 + en.ID
		h = h*31 + uint64(en.Kind)
		h = mixFloat(h, en.X)
		h = mixFloat(h, en.Y)
	}
	return h
}

func mixFloat(h uint64, f float64) uint64 {
	return h*31 + math.Float64bits(f)
}

// HashSpawn folds a spawn event into a running hash.
func HashSpawn(h uint64, ev SpawnEvent) uint64 {
	h = h*31 + ev.Seq
	h = h*31 + ev.Tick
	h = h*31 + uint64(ev.Entity)
	h = h*31 + uint64(ev.Kind)
	h = mixFloat(h, ev.X)
	h = mixFloat(h, ev.Y)
	h = mixFloat(h, ev.W)
	return mixFloat(h, ev.Gap)
}

package jumper

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// world is every piece of mutable run state except the bookkeeping
// components. There is exactly one per engine.
type world struct {
	width, height float64
	player        Player
	platforms     []Platform // bottom-most first, top-most last
	items         []Item
	enemies       []Enemy
	particles     particlePool
}

// topPlatform returns the highest live platform.
func (w *world) topPlatform() (*Platform, bool) {
	for i := len(w.platforms) - 1; i >= 0; i-- {
		if w.platforms[i].Active {
			return &w.platforms[i], true
		}
	}
	return nil, false
}

// platformByID finds a platform using the spawn ordering of the slice.
func (w *world) platformByID(id uint64) (*Platform, bool) {
	i, ok := slices.BinarySearchFunc(w.platforms, id, func(p Platform, id uint64) int {
		return cmp.Compare(p.ID, id)
	})
	if !ok {
		return nil, false
	}
	return &w.platforms[i], true
}

// Engine runs the jumper simulation. It is not safe for concurrent use;
// the host calls every method from one goroutine.
type Engine struct {
	cfg     config.SkyhopConfig
	hooks   Hooks
	state   State
	w       world
	clock   Clock
	powers  Registry
	camera  Camera
	score   Score
	spawner *Spawner
	broad   *broadphase

	lastScore   int
	gameOverDue bool
	runs        int
}

// NewEngine creates an engine in the start state. The viewport is empty
// until Resize is called; Step does nothing before that.
// A nil rng falls back to a fixed-seed SimpleRNG.
func NewEngine(cfg config.SkyhopConfig, rng core.RNG) *Engine {
	if rng == nil {
		rng = core.NewSimpleRNG(1)
	}
	e := &Engine{
		cfg:   cfg,
		state: StateStart,
		broad: newBroadphase(),
	}
	e.clock.Reset()
	e.w.particles = newParticlePool(cfg.Particles.Capacity, cfg.Physics.Gravity)
	e.spawner = NewSpawner(&e.cfg, rng, config.NewDifficultyManager(cfg.Difficulty))
	return e
}

// SetHooks installs the lifecycle callbacks.
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
	e.spawner.onSpawn = h.OnSpawn
}

// Resize sets the viewport. Entity positions are kept; the player is wrapped
// into the new width. The camera threshold follows the new height from the
// next tick on. A zero dimension pauses the simulation.
func (e *Engine) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.w.width, e.w.height = width, height
	if width > 0 {
		e.w.player.X = core.Wrap(e.w.player.X, width)
	}
	e.broad.resize(width, height)
}

// Step advances the simulation by one tick.
func (e *Engine) Step(in Input) {
	if e.w.width <= 0 || e.w.height <= 0 {
		return
	}

	switch e.state {
	case StateStart:
		if in.Interact || e.cfg.AutoStart {
			e.startRun()
		}
		return
	case StateGameOver:
		if in.Interact {
			e.startRun()
		}
		return
	}

	e.clock.Advance()

	e.powers.Tick()
	e.clock.TimeScale = 1
	if e.powers.Active(PowerSlowmo) {
		e.clock.TimeScale = e.cfg.Physics.SlowmoScale
	}

	integrate(&e.w.player, in, e.cfg.Physics, e.clock.TimeScale, e.w.width, e.powers.Active(PowerThrust))
	e.moveEntities()
	e.scroll()

	e.spawner.tick = e.clock.Tick
	e.spawner.score = e.Score()
	e.spawner.recycle(&e.w)
	e.spawner.fill(&e.w)

	e.broad.sync(&e.w)
	e.resolveCollisions()

	if e.state == StatePlaying && e.w.player.Y > e.w.height {
		e.endRun()
	}

	e.sweep()
	e.notify()
}

// startRun resets every component and lays a fresh ladder.
// The RNG keeps its sequence across runs.
func (e *Engine) startRun() {
	e.clock.Reset()
	e.powers.Reset()
	e.camera = Camera{}
	e.score = Score{}
	e.gameOverDue = false

	clear(e.w.platforms)
	e.w.platforms = e.w.platforms[:0]
	clear(e.w.items)
	e.w.items = e.w.items[:0]
	clear(e.w.enemies)
	e.w.enemies = e.w.enemies[:0]
	e.w.particles.reset()

	pc := e.cfg.Player
	e.w.player = Player{
		W:      pc.Width,
		H:      pc.Height,
		X:      core.Wrap(e.w.width/2-pc.Width/2, e.w.width),
		Facing: 1,
	}

	e.spawner.reset()
	e.spawner.seed(&e.w)
	e.broad.sync(&e.w)

	e.state = StatePlaying
	e.runs++
	e.notify()
}

// endRun moves to the game-over state. The callback fires at the end of the tick.
func (e *Engine) endRun() {
	if e.state != StatePlaying {
		return
	}
	e.state = StateGameOver
	e.gameOverDue = true
}

// notify fires score and game-over callbacks.
func (e *Engine) notify() {
	total := e.Score()
	if total != e.lastScore {
		e.lastScore = total
		if e.hooks.OnScoreChanged != nil {
			e.hooks.OnScoreChanged(total)
		}
	}
	if e.gameOverDue {
		e.gameOverDue = false
		if e.hooks.OnGameOver != nil {
			e.hooks.OnGameOver(total)
		}
	}
}

// moveEntities advances everything that moves on its own.
func (e *Engine) moveEntities() {
	w := &e.w
	ts := e.clock.TimeScale

	for i := range w.platforms {
		p := &w.platforms[i]
		if p.Active && p.VX != 0 {
			p.X, p.VX = bounce(p.X+p.VX*ts, p.VX, p.W, w.width)
		}
	}

	for i := range w.items {
		it := &w.items[i]
		if it.Consumed || it.Anchor == 0 {
			continue
		}
		if p, ok := w.platformByID(it.Anchor); ok && p.Active {
			it.X = p.X + it.OffsetX
		} else {
			it.Anchor = 0
		}
	}

	if e.powers.Active(PowerMagnet) {
		e.pullCoins()
	}

	ec := e.cfg.Enemies
	for i := range w.enemies {
		en := &w.enemies[i]
		if !en.Active {
			continue
		}
		en.X, en.VX = bounce(en.X+en.VX*ts, en.VX, en.W, w.width)
		if en.Kind == EnemyFlyer {
			en.Phase += ec.BobSpeed * ts
			en.Y = en.BaseY + ec.BobAmplitude*math.Sin(en.Phase)
		}
	}

	if e.powers.Active(PowerThrust) {
		pl := &w.player
		pc := e.cfg.Particles
		heel := pl.Feet()
		w.particles.emit(pl.X+pl.W*0.25, heel, -0.05, 0.15, pc.StartSize, pc.TrailLife)
		w.particles.emit(pl.X+pl.W*0.75, heel, 0.05, 0.15, pc.StartSize, pc.TrailLife)
	}
	w.particles.update()
}

// pullCoins moves every coin within the magnet radius a fixed fraction of
// the way toward the player's centre.
func (e *Engine) pullCoins() {
	pu := e.cfg.PowerUps
	px, py := e.w.player.Rect().Center()
	r2 := pu.MagnetRadius * pu.MagnetRadius
	for i := range e.w.items {
		it := &e.w.items[i]
		if it.Consumed || it.Kind != ItemCoin {
			continue
		}
		cx, cy := it.Rect().Center()
		dx, dy := px-cx, py-cy
		if dx*dx+dy*dy > r2 {
			continue
		}
		it.X += dx * pu.MagnetPull
		it.Y += dy * pu.MagnetPull
		it.Anchor = 0
	}
}

// bounce reflects a box of width w moving at vx off the sides of [0, width).
func bounce(x, vx, w, width float64) (float64, float64) {
	maxX := width - w
	if maxX <= 0 {
		return 0, vx
	}
	if x < 0 {
		x, vx = -x, -vx
	} else if x > maxX {
		x, vx = 2*maxX-x, -vx
	}
	return core.ClampF(x, 0, maxX), vx
}

// sweep drops dead entities. Platforms keep their order.
func (e *Engine) sweep() {
	e.w.platforms = compactStable(e.w.platforms, platformAlive)
	e.w.items = compactSwap(e.w.items, itemAlive)
	e.w.enemies = compactSwap(e.w.enemies, enemyAlive)
}

// State returns the current state machine phase.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current reported score.
func (e *Engine) Score() int {
	return e.score.Total(e.cfg.Scoring.Divisor)
}

// Tick returns the number of simulated ticks in the current run.
func (e *Engine) Tick() uint64 {
	return e.clock.Tick
}

// Runs returns how many runs have been started.
func (e *Engine) Runs() int {
	return e.runs
}

// Player returns a copy of the player body.
func (e *Engine) Player() Player {
	return e.w.player
}

// PowerUp returns the state of one effect.
func (e *Engine) PowerUp(k PowerUp) Effect {
	if k < 0 || k >= NumPowerUps {
		return Effect{}
	}
	return e.powers.effects[k]
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.SkyhopConfig {
	return e.cfg
}

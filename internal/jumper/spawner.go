package jumper

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Spawner procedurally creates platforms, items and enemies above the player
// and recycles whatever scrolls out below the viewport.
type Spawner struct {
	cfg        *config.SkyhopConfig
	rng        core.RNG
	difficulty *config.DifficultyManager
	onSpawn    func(SpawnEvent)

	nextID uint64
	seq    uint64
	tick   uint64
	score  int
}

// NewSpawner creates a spawner reading cfg and drawing from rng.
func NewSpawner(cfg *config.SkyhopConfig, rng core.RNG, dm *config.DifficultyManager) *Spawner {
	return &Spawner{
		cfg:        cfg,
		rng:        rng,
		difficulty: dm,
	}
}

// Difficulty returns the current level in [0, 1].
func (s *Spawner) Difficulty() float64 {
	return s.difficulty.Level(s.score, int(s.tick)) //#nosec G115 -- tick count fits in int
}

// MinGap returns the smallest gap a new platform may have at difficulty d.
func (s *Spawner) MinGap(d float64) float64 {
	return s.cfg.Platforms.BaseGap + s.cfg.Platforms.MaxExtraGap*d
}

// Width returns the platform width at difficulty d. It never drops below the
// configured minimum, which is itself positive.
func (s *Spawner) Width(d float64) float64 {
	pc := s.cfg.Platforms
	w := pc.BaseWidth - pc.WidthShrink*d
	if w < pc.MinWidth {
		w = pc.MinWidth
	}
	assertf(w > 0, "platform width %g is not positive", w)
	return w
}

// reset starts a new run. IDs and sequence numbers restart; the RNG does not.
func (s *Spawner) reset() {
	s.nextID = 0
	s.seq = 0
	s.tick = 0
	s.score = 0
}

func (s *Spawner) newID() uint64 {
	s.nextID++
	return s.nextID
}

func (s *Spawner) emit(ev SpawnEvent) {
	s.seq++
	ev.Seq = s.seq
	ev.Tick = s.tick
	if s.onSpawn != nil {
		s.onSpawn(ev)
	}
}

// seed lays the starting ladder: a platform under the player, a run of
// plain platforms, then regular spawns up to the lookahead line.
func (s *Spawner) seed(w *world) {
	pc := s.cfg.Platforms
	pl := &w.player

	base := Platform{
		ID:     s.newID(),
		W:      pc.BaseWidth,
		H:      pc.Height,
		Y:      w.height - s.cfg.Player.StartOffset,
		Kind:   PlatformNormal,
		Active: true,
	}
	base.X = core.ClampF(pl.X+pl.W/2-base.W/2, 0, max(0, w.width-base.W))
	w.platforms = append(w.platforms, base)
	pl.Y = base.Y - pl.H
	s.emit(SpawnEvent{Entity: EntityPlatform, Kind: uint8(base.Kind), X: base.X, Y: base.Y, W: base.W})

	for i := 0; i < pc.SafePlatforms; i++ {
		s.spawnPlatform(w, true)
	}
	s.fill(w)
}

// recycle deactivates everything that scrolled below the viewport and spawns
// one replacement platform per recycled platform.
func (s *Spawner) recycle(w *world) {
	replace := 0
	for i := range w.platforms {
		p := &w.platforms[i]
		if p.Active && p.Y > w.height {
			p.Active = false
			replace++
		}
	}
	for i := range w.items {
		if it := &w.items[i]; !it.Consumed && it.Y > w.height {
			it.Consumed = true
		}
	}
	for i := range w.enemies {
		if en := &w.enemies[i]; en.Active && en.Y > w.height {
			en.Active = false
		}
	}
	for ; replace > 0; replace-- {
		s.spawnPlatform(w, false)
	}
}

// maxFill bounds a single fill pass on absurd viewports.
const maxFill = 4096

// fill appends platforms until the ladder reaches the lookahead line above
// the viewport.
func (s *Spawner) fill(w *world) {
	for n := 0; n < maxFill; n++ {
		top, ok := w.topPlatform()
		if ok && top.Y <= -s.cfg.Platforms.Lookahead {
			return
		}
		s.spawnPlatform(w, false)
	}
}

// spawnPlatform appends one platform above the current top-most one.
// Safe platforms are always normal and carry nothing.
func (s *Spawner) spawnPlatform(w *world, safe bool) {
	pc := s.cfg.Platforms
	d := s.Difficulty()

	topY := w.height
	if top, ok := w.topPlatform(); ok {
		topY = top.Y
	}
	gap := s.MinGap(d) + s.rng.Float64()*pc.Jitter

	kind := PlatformNormal
	if !safe {
		kind = s.rollPlatformKind()
	}

	p := Platform{
		ID:     s.newID(),
		W:      s.Width(d),
		H:      pc.Height,
		Y:      topY - gap,
		Kind:   kind,
		Active: true,
	}
	p.X = s.rng.Float64() * max(0, w.width-p.W)
	if kind == PlatformMoving {
		p.VX = pc.MovingSpeed
		if s.rng.Intn(2) == 0 {
			p.VX = -p.VX
		}
	}
	w.platforms = append(w.platforms, p)
	s.emit(SpawnEvent{Entity: EntityPlatform, Kind: uint8(kind), X: p.X, Y: p.Y, W: p.W, Gap: gap})

	if safe {
		return
	}
	if s.rng.Float64() < s.cfg.Items.Chance {
		s.spawnItem(w, &p)
	}
	ec := s.cfg.Enemies
	if s.score >= ec.MinScore && s.rng.Float64() < ec.Chance+ec.ExtraChance*d {
		s.spawnEnemy(w, p.Y+gap/2)
	}
}

func (s *Spawner) spawnItem(w *world, on *Platform) {
	ic := s.cfg.Items
	it := Item{
		ID:     s.newID(),
		Anchor: on.ID,
		W:      ic.Width,
		H:      ic.Height,
		Kind:   s.rollItemKind(),
	}
	it.OffsetX = s.rng.Float64() * max(0, on.W-it.W)
	it.X = on.X + it.OffsetX
	it.Y = on.Y - it.H
	w.items = append(w.items, it)
	s.emit(SpawnEvent{Entity: EntityItem, Kind: uint8(it.Kind), X: it.X, Y: it.Y, W: it.W})
}

// spawnEnemy places an enemy centred on the line centreY.
func (s *Spawner) spawnEnemy(w *world, centreY float64) {
	ec := s.cfg.Enemies
	en := Enemy{
		ID:     s.newID(),
		W:      ec.Width,
		H:      ec.Height,
		Kind:   EnemyKind(s.rng.Intn(int(enemyKindCount))),
		Active: true,
	}
	en.X = s.rng.Float64() * max(0, w.width-en.W)
	en.Y = centreY - en.H/2
	en.BaseY = en.Y
	en.VX = ec.Speed
	if s.rng.Intn(2) == 0 {
		en.VX = -en.VX
	}
	w.enemies = append(w.enemies, en)
	s.emit(SpawnEvent{Entity: EntityEnemy, Kind: uint8(en.Kind), X: en.X, Y: en.Y, W: en.W})
}

// rollPlatformKind selects a platform kind based on weights.
func (s *Spawner) rollPlatformKind() PlatformKind {
	wt := s.cfg.Platforms.Weights
	weights := [platformKindCount]int{
		PlatformNormal:    wt.Normal,
		PlatformMoving:    wt.Moving,
		PlatformBreakable: wt.Breakable,
		PlatformSpring:    wt.Spring,
	}
	return PlatformKind(rollWeighted(s.rng, weights[:]))
}

// rollItemKind selects an item kind based on weights.
func (s *Spawner) rollItemKind() ItemKind {
	wt := s.cfg.Items.Weights
	weights := [itemKindCount]int{
		ItemThrust: wt.Thrust,
		ItemBoost:  wt.Boost,
		ItemShield: wt.Shield,
		ItemMagnet: wt.Magnet,
		ItemSlowmo: wt.Slowmo,
		ItemCoin:   wt.Coin,
	}
	return ItemKind(rollWeighted(s.rng, weights[:]))
}

// rollWeighted returns an index into weights with probability proportional
// to its weight. Non-positive weights are never chosen; if all are, 0 is.
func rollWeighted(rng core.RNG, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return 0
}

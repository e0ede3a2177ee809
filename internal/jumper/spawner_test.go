package jumper

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

func newTestSpawner(cfg *config.SkyhopConfig, rng core.RNG) (*Spawner, *world) {
	s := NewSpawner(cfg, rng, config.NewDifficultyManager(cfg.Difficulty))
	w := &world{width: testW, height: testH}
	return s, w
}

func TestSpawnerWidthNeverBelowMinimum(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	cfg.Platforms.WidthShrink = 100 // would go negative without the clamp
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(3))

	for score := 0; score <= 6000; score += 25 {
		s.score = score
		s.spawnPlatform(w, false)
	}
	for _, p := range w.platforms {
		if p.W < cfg.Platforms.MinWidth || p.W <= 0 {
			t.Fatalf("platform %d has width %f below minimum %f", p.ID, p.W, cfg.Platforms.MinWidth)
		}
	}
}

func TestSpawnerGapsRespectDifficultyMinimum(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(11))

	for score := 0; score <= 4000; score += 10 {
		s.score = score
		top, ok := w.topPlatform()
		prevY := w.height
		if ok {
			prevY = top.Y
		}
		minGap := s.MinGap(s.Difficulty())

		s.spawnPlatform(w, false)

		newTop, _ := w.topPlatform()
		if gap := prevY - newTop.Y; gap < minGap {
			t.Fatalf("score %d: gap %f below minimum %f", score, gap, minGap)
		}
	}
}

func TestSpawnerDifficultyWidensGapsAndNarrowsPlatforms(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s, _ := newTestSpawner(&cfg, core.NewSimpleRNG(1))

	s.score = 0
	easyGap, easyWidth := s.MinGap(s.Difficulty()), s.Width(s.Difficulty())
	s.score = cfg.Difficulty.Progression.MaxAt
	hardGap, hardWidth := s.MinGap(s.Difficulty()), s.Width(s.Difficulty())

	if hardGap <= easyGap {
		t.Errorf("gap should widen with difficulty: %f -> %f", easyGap, hardGap)
	}
	if hardWidth >= easyWidth {
		t.Errorf("width should shrink with difficulty: %f -> %f", easyWidth, hardWidth)
	}
	if hardGap != cfg.Platforms.BaseGap+cfg.Platforms.MaxExtraGap {
		t.Errorf("gap at full difficulty = %f, expected %f", hardGap, cfg.Platforms.BaseGap+cfg.Platforms.MaxExtraGap)
	}
}

func TestSpawnerPlatformOrdering(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(5))
	w.player = Player{X: 19, W: 2, H: 2}
	s.seed(w)

	for i := 1; i < len(w.platforms); i++ {
		if w.platforms[i].Y >= w.platforms[i-1].Y {
			t.Fatalf("platform %d (y=%f) is not above platform %d (y=%f)",
				i, w.platforms[i].Y, i-1, w.platforms[i-1].Y)
		}
		if w.platforms[i].ID <= w.platforms[i-1].ID {
			t.Fatalf("platform IDs should grow with index")
		}
	}
}

func TestSpawnerSeedLadder(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(5))
	w.player = Player{X: 19, W: 2, H: 2}
	s.seed(w)

	base := w.platforms[0]
	if base.Kind != PlatformNormal {
		t.Errorf("base platform kind = %v, expected normal", base.Kind)
	}
	if w.player.Feet() != base.Y {
		t.Errorf("player feet %f should rest on the base platform at %f", w.player.Feet(), base.Y)
	}
	px, _ := w.player.Rect().Center()
	if px < base.X || px > base.X+base.W {
		t.Error("base platform should be under the player")
	}
	for i := 1; i <= cfg.Platforms.SafePlatforms; i++ {
		if w.platforms[i].Kind != PlatformNormal {
			t.Errorf("safe platform %d has kind %v", i, w.platforms[i].Kind)
		}
	}

	top, _ := w.topPlatform()
	if top.Y > -cfg.Platforms.Lookahead {
		t.Errorf("ladder should reach the lookahead line, top at %f", top.Y)
	}
}

func TestSpawnerRecycle(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(8))
	w.player = Player{X: 19, W: 2, H: 2}
	s.seed(w)

	before := len(w.platforms)
	w.platforms[0].Y = testH + 1
	w.items = append(w.items, Item{ID: 9000, Y: testH + 2, W: 1, H: 1})
	w.enemies = append(w.enemies, Enemy{ID: 9001, Y: testH + 2, W: 3, H: 1, Active: true})

	s.recycle(w)

	if w.platforms[0].Active {
		t.Error("platform below the viewport should be deactivated")
	}
	if len(w.platforms) != before+1 {
		t.Errorf("expected one replacement platform, got %d new", len(w.platforms)-before)
	}
	for _, it := range w.items {
		if it.ID == 9000 && !it.Consumed {
			t.Error("item below the viewport should be removed")
		}
	}
	for _, en := range w.enemies {
		if en.ID == 9001 && en.Active {
			t.Error("enemy below the viewport should be deactivated")
		}
	}
}

func TestSpawnerItemsSitOnPlatforms(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	cfg.Items.Chance = 1
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(21))

	for i := 0; i < 50; i++ {
		s.spawnPlatform(w, false)
	}
	if len(w.items) != 50 {
		t.Fatalf("expected an item on every platform, got %d", len(w.items))
	}
	for _, it := range w.items {
		p, ok := w.platformByID(it.Anchor)
		if !ok {
			t.Fatalf("item %d anchored to missing platform %d", it.ID, it.Anchor)
		}
		if math.Abs(it.Y+it.H-p.Y) > 1e-9 {
			t.Errorf("item %d bottom %f should touch platform top %f", it.ID, it.Y+it.H, p.Y)
		}
		if it.X < p.X || it.X+it.W > p.X+p.W+1e-9 {
			t.Errorf("item %d at x=%f hangs off platform [%f, %f]", it.ID, it.X, p.X, p.X+p.W)
		}
	}
}

func TestSpawnerEnemiesGatedByScore(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	cfg.Enemies.Chance = 1
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(2))

	s.score = cfg.Enemies.MinScore - 1
	for i := 0; i < 20; i++ {
		s.spawnPlatform(w, false)
	}
	if len(w.enemies) != 0 {
		t.Fatalf("no enemies expected below the score threshold, got %d", len(w.enemies))
	}

	s.score = cfg.Enemies.MinScore
	top, _ := w.topPlatform()
	prevY := top.Y
	s.spawnPlatform(w, false)
	if len(w.enemies) != 1 {
		t.Fatalf("expected one enemy at the threshold, got %d", len(w.enemies))
	}
	en := w.enemies[0]
	newTop, _ := w.topPlatform()
	mid := (prevY + newTop.Y) / 2
	if _, cy := en.Rect().Center(); math.Abs(cy-mid) > 1e-9 {
		t.Errorf("enemy centre %f should sit halfway into the gap at %f", cy, mid)
	}
	if en.VX != cfg.Enemies.Speed && en.VX != -cfg.Enemies.Speed {
		t.Errorf("enemy vx = %f, expected ±%f", en.VX, cfg.Enemies.Speed)
	}
}

func TestSpawnerMovingPlatformVelocity(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	cfg.Platforms.Weights = config.PlatformWeights{Moving: 1}
	s, w := newTestSpawner(&cfg, core.NewSimpleRNG(4))

	sawLeft, sawRight := false, false
	for i := 0; i < 40; i++ {
		s.spawnPlatform(w, false)
	}
	for _, p := range w.platforms {
		if p.Kind != PlatformMoving {
			t.Fatalf("expected only moving platforms, got %v", p.Kind)
		}
		switch p.VX {
		case cfg.Platforms.MovingSpeed:
			sawRight = true
		case -cfg.Platforms.MovingSpeed:
			sawLeft = true
		default:
			t.Fatalf("moving platform vx = %f", p.VX)
		}
	}
	if !sawLeft || !sawRight {
		t.Error("moving platforms should start in both directions")
	}
}

type fixedIntRNG struct{ n int }

func (r fixedIntRNG) Float64() float64 { return 0 }
func (r fixedIntRNG) Intn(int) int    { return r.n }

func TestRollWeighted(t *testing.T) {
	weights := []int{60, 20, 12, 8}

	tests := []struct {
		roll     int
		expected int
	}{
		{0, 0},
		{59, 0},
		{60, 1},
		{79, 1},
		{80, 2},
		{91, 2},
		{92, 3},
		{99, 3},
	}

	for _, tc := range tests {
		if got := rollWeighted(fixedIntRNG{tc.roll}, weights); got != tc.expected {
			t.Errorf("roll %d -> %d, expected %d", tc.roll, got, tc.expected)
		}
	}

	if got := rollWeighted(fixedIntRNG{0}, []int{0, 0, 5}); got != 2 {
		t.Errorf("zero weights should be skipped, got %d", got)
	}
	if got := rollWeighted(fixedIntRNG{0}, []int{0, 0}); got != 0 {
		t.Errorf("all-zero weights should fall back to 0, got %d", got)
	}
}

func TestRollWeightedDistribution(t *testing.T) {
	rng := core.NewSimpleRNG(77)
	weights := []int{60, 20, 12, 8}
	var counts [4]int

	const n = 20000
	for i := 0; i < n; i++ {
		counts[rollWeighted(rng, weights)]++
	}
	for i, w := range weights {
		got := float64(counts[i]) / n
		want := float64(w) / 100
		if got < want-0.02 || got > want+0.02 {
			t.Errorf("kind %d frequency %.3f, expected about %.2f", i, got, want)
		}
	}
}

package jumper

import "testing"

func TestSnapshotContents(t *testing.T) {
	e := newTestEngine(t, nil)
	for i := 0; i < 50; i++ {
		e.Step(Input{})
	}

	snap := e.Snapshot()

	if snap.State != StatePlaying {
		t.Errorf("state = %v, expected playing", snap.State)
	}
	if snap.Tick != e.Tick() || snap.Score != e.Score() {
		t.Error("tick and score should match the engine")
	}
	if snap.Width != testW || snap.Height != testH {
		t.Errorf("viewport = %gx%g, expected %dx%d", snap.Width, snap.Height, testW, testH)
	}
	active := 0
	for _, p := range e.w.platforms {
		if p.Active {
			active++
		}
	}
	if len(snap.Platforms) != active {
		t.Errorf("snapshot has %d platforms, engine %d", len(snap.Platforms), active)
	}
	if snap.Player != e.Player() {
		t.Error("player pose should match")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	e := newTestEngine(t, nil)
	snap := e.Snapshot()

	snap.Platforms[0].Y = -999
	snap.Player.X = -1

	if e.w.platforms[0].Y == -999 || e.w.player.X == -1 {
		t.Error("mutating a snapshot must not change the engine")
	}
}

func TestFillSnapshotReusesSlices(t *testing.T) {
	e := newTestEngine(t, nil)
	var snap Snapshot
	e.FillSnapshot(&snap)
	first := &snap.Platforms[0]

	e.FillSnapshot(&snap)

	if &snap.Platforms[0] != first {
		t.Error("FillSnapshot should reuse the platform slice")
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	e := newTestEngine(t, nil)
	a := e.Snapshot()
	b := e.Snapshot()
	if a.Hash() != b.Hash() {
		t.Fatal("identical snapshots should hash equally")
	}

	e.Step(Input{})
	c := e.Snapshot()
	if a.Hash() == c.Hash() {
		t.Error("a tick should change the hash")
	}
}

func TestSnapshotPowerUps(t *testing.T) {
	e := newTestEngine(t, nil)
	e.powers.Activate(PowerMagnet, 77)

	snap := e.Snapshot()
	if eff := snap.PowerUps[PowerMagnet]; !eff.Active || eff.Remaining != 77 {
		t.Errorf("magnet = %+v, expected active with 77 ticks", eff)
	}
}

func TestHashSpawn(t *testing.T) {
	ev := SpawnEvent{Seq: 1, Entity: EntityPlatform, X: 1, Y: 2, W: 3}
	if HashSpawn(0, ev) == HashSpawn(0, SpawnEvent{Seq: 1, Entity: EntityPlatform, X: 1, Y: 2, W: 4}) {
		t.Error("different events should hash differently")
	}
	if HashSpawn(0, ev) != HashSpawn(0, ev) {
		t.Error("HashSpawn should be deterministic")
	}
}

package jumper

import "testing"

func TestCompactStableKeepsOrder(t *testing.T) {
	ps := []Platform{
		{ID: 1, Active: true},
		{ID: 2},
		{ID: 3, Active: true},
		{ID: 4},
		{ID: 5, Active: true},
	}
	backing := &ps[0]

	ps = compactStable(ps, platformAlive)

	if len(ps) != 3 {
		t.Fatalf("len = %d, expected 3", len(ps))
	}
	for i, want := range []uint64{1, 3, 5} {
		if ps[i].ID != want {
			t.Errorf("ps[%d].ID = %d, expected %d", i, ps[i].ID, want)
		}
	}
	if &ps[0] != backing {
		t.Error("compaction should reuse the backing array")
	}
}

func TestCompactSwapRemovesAll(t *testing.T) {
	items := []Item{
		{ID: 1, Consumed: true},
		{ID: 2},
		{ID: 3, Consumed: true},
		{ID: 4, Consumed: true},
		{ID: 5},
	}

	items = compactSwap(items, itemAlive)

	if len(items) != 2 {
		t.Fatalf("len = %d, expected 2", len(items))
	}
	seen := map[uint64]bool{}
	for _, it := range items {
		if it.Consumed {
			t.Errorf("consumed item %d survived", it.ID)
		}
		seen[it.ID] = true
	}
	if !seen[2] || !seen[5] {
		t.Errorf("expected items 2 and 5 to survive, got %v", seen)
	}
}

func TestCompactEmpty(t *testing.T) {
	var en []Enemy
	if got := compactSwap(en, enemyAlive); len(got) != 0 {
		t.Error("empty input should stay empty")
	}
	if got := compactStable([]Platform{{ID: 1}}, platformAlive); len(got) != 0 {
		t.Error("all dead platforms should be removed")
	}
}

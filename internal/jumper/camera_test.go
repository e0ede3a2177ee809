package jumper

import "testing"

func TestScoreTotal(t *testing.T) {
	tests := []struct {
		score    Score
		divisor  float64
		expected int
	}{
		{Score{}, 0.5, 0},
		{Score{Climb: 10}, 0.5, 20},
		{Score{Climb: 10.3}, 0.5, 20},
		{Score{Climb: 10, Bonus: 25}, 1, 35},
		{Score{Climb: 99, Bonus: 5}, 0, 5},
	}

	for _, tc := range tests {
		if got := tc.score.Total(tc.divisor); got != tc.expected {
			t.Errorf("%+v.Total(%g) = %d, expected %d", tc.score, tc.divisor, got, tc.expected)
		}
	}
}

func TestScrollPinsPlayerAndShiftsWorld(t *testing.T) {
	e := newTestEngine(t, quiet)
	isolate(e)
	e.w.platforms = append(e.w.platforms, Platform{ID: 10000, X: 0, Y: 5, W: 10, H: 1, Active: true})
	e.w.items = append(e.w.items, Item{ID: 10001, X: 2, Y: 4, W: 1, H: 1})
	e.w.enemies = append(e.w.enemies, Enemy{ID: 10002, X: 2, Y: 1, BaseY: 1, W: 3, H: 1, Active: true})
	e.w.particles.emit(3, 3, 0, 0, 1, 10)

	threshold := e.cfg.Camera.Threshold * testH
	e.w.player.Y = threshold - 4

	e.scroll()

	if e.w.player.Y != threshold {
		t.Errorf("player y = %f, expected pinned at %f", e.w.player.Y, threshold)
	}
	if e.w.platforms[0].Y != 9 {
		t.Errorf("platform y = %f, expected 9", e.w.platforms[0].Y)
	}
	if e.w.items[0].Y != 8 {
		t.Errorf("item y = %f, expected 8", e.w.items[0].Y)
	}
	if e.w.enemies[0].Y != 5 || e.w.enemies[0].BaseY != 5 {
		t.Errorf("enemy y = %f base %f, expected 5", e.w.enemies[0].Y, e.w.enemies[0].BaseY)
	}
	if e.w.particles.live[0].Y != 7 {
		t.Errorf("particle y = %f, expected 7", e.w.particles.live[0].Y)
	}
	if e.camera.Offset != 4 || e.score.Climb != 4 {
		t.Errorf("offset %f climb %f, expected 4", e.camera.Offset, e.score.Climb)
	}
	if e.Score() != 8 {
		t.Errorf("score = %d, expected 8 with divisor 0.5", e.Score())
	}
}

func TestNoScrollBelowThreshold(t *testing.T) {
	e := newTestEngine(t, quiet)
	threshold := e.cfg.Camera.Threshold * testH
	e.w.player.Y = threshold + 1

	e.scroll()

	if e.camera.Offset != 0 || e.w.player.Y != threshold+1 {
		t.Error("no scroll should happen below the threshold")
	}
}

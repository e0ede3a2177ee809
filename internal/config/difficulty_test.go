package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   DifficultyConfig
		score int
		ticks int
		want  float64
	}{
		{"score start", scoreCurve(0, 1000), 0, 0, 0},
		{"score quarter", scoreCurve(0, 1000), 250, 0, 0.25},
		{"score max", scoreCurve(0, 1000), 1000, 0, 1},
		{"score beyond max", scoreCurve(0, 1000), 5000, 0, 1},
		{"negative score", scoreCurve(0, 1000), -10, 0, 0},
		{"initial level", scoreCurve(0.5, 100), 0, 0, 0.5},
		{"initial level halfway", scoreCurve(0.5, 100), 50, 0, 0.75},
		{"initial level clamps", scoreCurve(3, 100), 0, 0, 1},
		{"zero max_at saturates", scoreCurve(0, 0), 1, 0, 1},
		{
			"time ignores score",
			DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: ProgressTime, MaxAt: 600}},
			99999, 300, 0.5,
		},
		{
			"disabled stays at initial",
			DifficultyConfig{Enabled: false, InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 100}},
			10000, 0, 0.3,
		},
		{
			"none stays at initial",
			DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: ProgressNone}},
			10000, 10000, 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDifficultyManager(tt.cfg)
			if got := dm.Level(tt.score, tt.ticks); got != tt.want {
				t.Errorf("Level(%d, %d) = %g, want %g", tt.score, tt.ticks, got, tt.want)
			}
		})
	}
}

func scoreCurve(initial float64, maxAt int) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: ProgressScore, MaxAt: maxAt},
	}
}

func TestDifficultyLevelMonotonic(t *testing.T) {
	dm := NewDifficultyManager(DefaultSkyhopConfig().Difficulty)
	prev := dm.Level(0, 0)
	for score := 1; score < 5000; score += 7 {
		lvl := dm.Level(score, 0)
		if lvl < prev {
			t.Fatalf("level decreased at score %d: %g < %g", score, lvl, prev)
		}
		if lvl < 0 || lvl > 1 {
			t.Fatalf("level %g out of [0, 1]", lvl)
		}
		prev = lvl
	}
}

func TestDifficultyProgressing(t *testing.T) {
	if !NewDifficultyManager(scoreCurve(0, 10)).Progressing() {
		t.Error("score curve should progress")
	}

	cfg := DefaultSkyhopConfig()
	ApplySkyhopPreset(&cfg, DifficultyFixed)
	dm := NewDifficultyManager(cfg.Difficulty)
	if dm.Progressing() {
		t.Error("fixed preset should not progress")
	}
	if got := dm.Level(100000, 100000); got != cfg.Difficulty.InitialLevel {
		t.Errorf("fixed preset level = %g, want %g", got, cfg.Difficulty.InitialLevel)
	}
}

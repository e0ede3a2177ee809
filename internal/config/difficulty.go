package config

// ProgressionType selects what drives the difficulty level.
type ProgressionType string

const (
	ProgressScore ProgressionType = "score" // level follows the run score
	ProgressTime  ProgressionType = "time"  // level follows elapsed ticks
	ProgressNone  ProgressionType = "none"  // level stays at the initial level
)

// DifficultyManager maps run progress to a level in [0, 1]. The level
// starts at the initial level and rises linearly to 1 at max_at.
type DifficultyManager struct {
	kind    ProgressionType
	maxAt   float64
	initial float64
}

// NewDifficultyManager creates a manager. A disabled config behaves like
// ProgressNone. A non-positive max_at saturates on the first point of
// progress.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	kind := cfg.Progression.Type
	if !cfg.Enabled {
		kind = ProgressNone
	}
	return &DifficultyManager{
		kind:    kind,
		maxAt:   max(float64(cfg.Progression.MaxAt), 1),
		initial: clamp01(cfg.InitialLevel),
	}
}

// Progressing reports whether the level can change during a run.
func (d *DifficultyManager) Progressing() bool {
	return d.kind == ProgressScore || d.kind == ProgressTime
}

// Level returns the level for the given score and elapsed ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	var progress float64
	switch d.kind {
	case ProgressScore:
		progress = float64(score) / d.maxAt
	case ProgressTime:
		progress = float64(ticks) / d.maxAt
	default:
		return d.initial
	}
	return d.initial + clamp01(progress)*(1-d.initial)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

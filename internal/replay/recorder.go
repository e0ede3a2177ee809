package replay

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/jumper"
)

// Recorder captures a run as it is played. It is fed from the same place
// that feeds the engine, one call per tick.
type Recorder struct {
	rec       Recording
	tick      uint64
	spawnHash uint64
}

// NewRecorder starts a recording for an engine created with the given
// seed and rules.
func NewRecorder(gameID string, seed int64, cfg config.SkyhopConfig) (*Recorder, error) {
	h, err := HashConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Recorder{rec: Recording{
		Version:    Version,
		GameID:     gameID,
		Seed:       seed,
		ConfigHash: h,
	}}, nil
}

// Resize records a viewport change that applies before the next Step.
func (r *Recorder) Resize(width, height float64) {
	if n := len(r.rec.Resizes); n > 0 && r.rec.Resizes[n-1].Tick == r.tick {
		r.rec.Resizes[n-1].Width, r.rec.Resizes[n-1].Height = width, height
		return
	}
	r.rec.Resizes = append(r.rec.Resizes, Resize{Tick: r.tick, Width: width, Height: height})
}

// Step records the input for one tick.
func (r *Recorder) Step(in jumper.Input) {
	b := Pack(in)
	r.tick++
	if n := len(r.rec.Inputs); n > 0 {
		last := &r.rec.Inputs[n-1]
		if last.Input == b && last.Count < math.MaxUint32 {
			last.Count++
			return
		}
	}
	r.rec.Inputs = append(r.rec.Inputs, Span{Input: b, Count: 1})
}

// OnSpawn folds a spawn event into the running spawn-stream hash.
// Install it as the engine's OnSpawn hook.
func (r *Recorder) OnSpawn(ev jumper.SpawnEvent) {
	r.spawnHash = jumper.HashSpawn(r.spawnHash, ev)
}

// Ticks returns the number of recorded ticks.
func (r *Recorder) Ticks() uint64 {
	return r.tick
}

// Finish seals the recording with the engine's final state.
func (r *Recorder) Finish(e *jumper.Engine) *Recording {
	snap := e.Snapshot()
	rec := r.rec
	rec.Resizes = append([]Resize(nil), r.rec.Resizes...)
	rec.Inputs = append([]Span(nil), r.rec.Inputs...)
	rec.Outcome = Outcome{
		Score:     e.Score(),
		Ticks:     r.tick,
		SpawnHash: r.spawnHash,
		Snapshot:  snap.Hash(),
	}
	return &rec
}

// Package skyhop adapts the jumper engine to the game registry.
// It maps platform actions to engine input, draws engine snapshots into a
// character screen and owns shell-only state such as pause.
package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/jumper"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/replay"
)

// Mode selects how difficulty progresses.
type Mode int

const (
	ModeClassic Mode = iota // Difficulty follows score
	ModeRush                // Difficulty follows elapsed time
)

// rushMaxAt is the tick count at which rush mode reaches full difficulty.
const rushMaxAt = 60 * 120

// HUD takes the top row; the world is drawn below it.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig resolves the configuration the way Reset does, so other
// commands (sim, replay) run with identical rules.
func LoadConfig(mode Mode) config.SkyhopConfig {
	cfg, err := config.LoadSkyhop(configPath)
	if err != nil {
		cfg = config.DefaultSkyhopConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkyhopPreset(&cfg, difficultyPreset)
	}
	if mode == ModeRush && cfg.Difficulty.Enabled {
		cfg.Difficulty.Progression.Type = config.ProgressTime
		cfg.Difficulty.Progression.MaxAt = rushMaxAt
	}
	return cfg
}

// Game implements registry.Game on top of a jumper.Engine.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.SkyhopConfig
	engine  *jumper.Engine
	snap    jumper.Snapshot
	hooks   jumper.Hooks
	paused  bool
	fixed   bool // difficulty never changes during a run

	record   bool
	recorder *replay.Recorder

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic Sky Hop game.
func New() *Game {
	return &Game{mode: ModeClassic, minScreenW: 20, minScreenH: 12}
}

// NewRush creates a Sky Hop game whose difficulty ramps with time.
func NewRush() *Game {
	return &Game{mode: ModeRush, minScreenW: 20, minScreenH: 12}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return "skyhop_rush"
	}
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Sky Hop (Rush)"
	}
	return "Sky Hop"
}

// Description is the one-line blurb shown by listings.
func (g *Game) Description() string {
	if g.mode == ModeRush {
		return "difficulty climbs with time, full speed after two minutes"
	}
	return "difficulty climbs with height"
}

// Reset builds a fresh engine for the given runtime settings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig(g.mode)
	g.fixed = !config.NewDifficultyManager(g.cfg.Difficulty).Progressing()
	g.engine = jumper.NewEngine(g.cfg, core.NewSimpleRNG(runtime.Seed))
	g.paused = false
	g.recorder = nil
	if g.record {
		// A config that cannot be hashed only disables recording.
		if rec, err := replay.NewRecorder(g.ID(), runtime.Seed, g.cfg); err == nil {
			g.recorder = rec
		}
	}
	g.installHooks()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the world viewport to a new screen size. The run continues.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
	if g.engine == nil {
		return
	}
	var vw, vh float64
	if !g.screenTooSmall {
		vw, vh = float64(w), float64(h-hudRows)
	}
	g.engine.Resize(vw, vh)
	if g.recorder != nil {
		g.recorder.Resize(vw, vh)
	}
}

// SetHooks installs engine callbacks. They survive Reset.
func (g *Game) SetHooks(h jumper.Hooks) {
	g.hooks = h
	if g.engine != nil {
		g.installHooks()
	}
}

func (g *Game) installHooks() {
	h := g.hooks
	if rec := g.recorder; rec != nil {
		user := h.OnSpawn
		h.OnSpawn = func(ev jumper.SpawnEvent) {
			rec.OnSpawn(ev)
			if user != nil {
				user(ev)
			}
		}
	}
	g.engine.SetHooks(h)
}

// EnableRecording makes every following Reset start a replay recording.
func (g *Game) EnableRecording() {
	g.record = true
}

// Recording seals and returns the recording of the current engine, or nil
// when recording is off.
func (g *Game) Recording() *replay.Recording {
	if g.recorder == nil || g.engine == nil {
		return nil
	}
	return g.recorder.Finish(g.engine)
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *jumper.Engine {
	return g.engine
}

// Config returns the rules the current engine runs with.
func (g *Game) Config() config.SkyhopConfig {
	return g.cfg
}

// Mode returns the difficulty mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// The frame that toggles pause is consumed, not simulated.
	if in.Has(core.ActionPause) && g.engine.State() == jumper.StatePlaying {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	input := InputFromFrame(in)
	if g.recorder != nil {
		g.recorder.Step(input)
	}
	g.engine.Step(input)
	return core.StepResult{State: g.State()}
}

// InputFromFrame maps platform actions to engine input. Jump and Restart
// both act as Interact.
func InputFromFrame(in core.InputFrame) jumper.Input {
	return jumper.Input{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Interact:  in.Has(core.ActionJump) || in.Has(core.ActionRestart),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: st == jumper.StateGameOver,
		Paused:   g.paused,
		Started:  st != jumper.StateStart,
	}
}

// Register the games with the registry
func init() {
	registry.Register("skyhop", func() registry.Game {
		return New()
	})
	registry.Register("skyhop_rush", func() registry.Game {
		return NewRush()
	})
}

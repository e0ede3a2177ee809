package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/jumper"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// helpRows is the space reserved below the game for the help bar.
const helpRows = 1

// engineGame is implemented by games built on the jumper engine.
type engineGame interface {
	SetHooks(h jumper.Hooks)
	Engine() *jumper.Engine
}

// resizableGame is implemented by games that keep their run across a
// terminal resize.
type resizableGame interface {
	Resize(w, h int)
}

// Options tunes a game model.
type Options struct {
	Player string      // recorded with scores, empty for local play
	Logger *log.Logger // nil discards warnings
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	holds     *HoldTracker
	acc       *jumper.Accumulator
	pending   core.InputFrame // one-shot actions waiting for the next tick
	gameState core.GameState
	lastTick  time.Time
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:   store,
		config:  cfg,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		holds:   NewHoldTracker(holdWindow),
		acc:     jumper.NewAccumulator(cfg.TickRate),
		pending: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	if eg, ok := game.(engineGame); ok {
		eg.SetHooks(jumper.Hooks{OnGameOver: m.saveRun(eg)})
	}
	m.game.Reset(m.runtime())
	m.gameState = m.game.State()
	return m
}

// saveRun returns the OnGameOver hook that writes the run to the store.
func (m Model) saveRun(eg engineGame) func(score int) {
	store, gameID, seed, player, logger := m.store, m.game.ID(), m.config.Seed, m.opts.Player, m.opts.Logger
	return func(score int) {
		if store == nil || score <= 0 {
			return
		}
		run := storage.Run{GameID: gameID, Player: player, Score: score, Seed: seed, Ticks: eg.Engine().Tick()}
		if _, err := store.SaveRun(run); err != nil {
			logger.Warn("could not save score", "game", gameID, "score", score, "error", err)
		}
	}
}

// runtime is the config the game sees: the help bar is not game space.
func (m Model) runtime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = gameHeight(rt.ScreenH)
	return rt
}

func gameHeight(h int) int {
	return max(h-helpRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Shot):
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.back = true
		return m, tea.Quit
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(a, time.Now())
	case core.ActionNone:
	default:
		m.pending.Set(a)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	rt := m.runtime()
	if rg, ok := m.game.(resizableGame); ok {
		rg.Resize(rt.ScreenW, rt.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(rt)
	}
	return m, nil
}

// handleTick runs as many fixed simulation steps as the elapsed real time
// calls for.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	steps := 1
	if !m.lastTick.IsZero() {
		steps = m.acc.Add(now.Sub(m.lastTick))
	}
	m.lastTick = now

	for range steps {
		frame := m.pending.Clone()
		m.holds.Apply(&frame, now)
		m.pending.Clear()

		result := m.game.Step(frame)
		m.gameState = result.State
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game the model runs.
func (m Model) Game() registry.Game {
	return m.game
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for one game and returns the final
// model so the caller can inspect the game afterwards.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/replay"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: skyhop).

Controls:
  Left/Right, A/D  - Steer
  Space/Enter      - Start / restart
  P/Esc            - Pause
  B                - Back (when paused or game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, wider platforms, shields last
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, narrow platforms, one-hit shields
  fixed  - No progression, stays at config's initial level

Examples:
  skyhop play
  skyhop play skyhop_rush
  skyhop play --difficulty hard --seed 42
  skyhop play --record last
  skyhop play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save a replay of the session under this name")
	playCmd.Flags().Lookup("record").NoOptDefVal = "last"
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A failure only disables scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyhop list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if rg, ok := game.(*skyhop.Game); ok && flagRecord != "" {
		rg.EnableRecording()
	}

	store := openStore()
	final, runErr := tui.Run(game, store, terminalConfig(), tui.Options{Logger: logger})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagRecord != "" {
		saveRecording(final.Game(), flagRecord)
	}
}

// saveRecording stores the session recording of a finished game.
func saveRecording(game registry.Game, name string) {
	rg, ok := game.(*skyhop.Game)
	if !ok {
		return
	}
	rec := rg.Recording()
	if rec == nil {
		return
	}

	lib, err := replay.OpenLibrary(appName)
	if err != nil {
		logger.Error("could not open replay library", "error", err)
		return
	}
	if err := lib.Save(name, rec); err != nil {
		logger.Error("could not save replay", "error", err)
		return
	}
	logger.Info("replay saved", "name", name, "ticks", rec.Ticks(), "score", rec.Outcome.Score, "seed", rec.Seed)
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/jumper"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/replay"
)

var (
	flagSimTicks  int
	flagSimWidth  int
	flagSimHeight int
	flagSimSave   string
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a headless seeded bot run",
	Long: `Run the engine without a terminal, steered by a fixed bot script.

The bot restarts every lost run, so the simulation always covers the
requested number of ticks. The same seed and rules always print the same
hashes, which makes sim a quick determinism check.

Examples:
  skyhop sim --seed 42
  skyhop sim skyhop_rush --ticks 72000 --difficulty hard
  skyhop sim --seed 7 --save bot`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 40, "Viewport width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Viewport height in cells")
	simCmd.Flags().StringVar(&flagSimSave, "save", "", "Save the run as a replay under this name")
}

// botInput steers in slow waves and always presses Interact so a lost run
// restarts.
func botInput(tick int) jumper.Input {
	phase := (tick / 45) % 4
	return jumper.Input{
		MoveLeft:  phase == 1,
		MoveRight: phase == 3,
		Interact:  true,
	}
}

func runSim(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		os.Exit(1)
	}
	if flagSimTicks <= 0 || flagSimWidth <= 0 || flagSimHeight <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks, --width and --height must be positive")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := skyhop.LoadConfig(modeFor(gameID))

	rec, err := replay.NewRecorder(gameID, seed, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e := jumper.NewEngine(cfg, core.NewSimpleRNG(seed))
	best := 0
	e.SetHooks(jumper.Hooks{
		OnSpawn: rec.OnSpawn,
		OnGameOver: func(score int) {
			best = max(best, score)
			logger.Debug("run over", "run", e.Runs(), "score", score)
		},
	})

	w, h := float64(flagSimWidth), float64(flagSimHeight)
	e.Resize(w, h)
	rec.Resize(w, h)

	start := time.Now()
	for i := range flagSimTicks {
		in := botInput(i)
		rec.Step(in)
		e.Step(in)
	}
	elapsed := time.Since(start)

	result := rec.Finish(e)
	best = max(best, result.Outcome.Score)

	fmt.Printf("mode:        %s\n", gameID)
	fmt.Printf("seed:        %d\n", seed)
	fmt.Printf("ticks:       %d\n", result.Outcome.Ticks)
	fmt.Printf("runs:        %d\n", e.Runs())
	fmt.Printf("best score:  %d\n", best)
	fmt.Printf("last score:  %d\n", result.Outcome.Score)
	fmt.Printf("spawn hash:  %016x\n", result.Outcome.SpawnHash)
	fmt.Printf("state hash:  %016x\n", result.Outcome.Snapshot)
	logger.Debug("simulation finished", "elapsed", elapsed, "ticks_per_sec", float64(flagSimTicks)/elapsed.Seconds())

	if flagSimSave != "" {
		lib, err := replay.OpenLibrary(appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := lib.Save(flagSimSave, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("replay saved", "name", flagSimSave)
	}
}

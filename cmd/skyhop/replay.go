package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/replay"
)

var (
	flagReplayFile   string
	flagReplayExport string
)

var replayCmd = &cobra.Command{
	Use:   "replay [name]",
	Short: "Re-simulate a saved recording",
	Long: `Load a recording, re-run it through the engine and check that the
result matches what was recorded. Recordings are made with
'skyhop play --record' or 'skyhop sim --save'.

The rules (including --config and --difficulty) must match the ones the
recording was made with.

Examples:
  skyhop replay              # the recording named "last"
  skyhop replay bot
  skyhop replay --file ./run.skyhop
  skyhop replay last --export ./run.skyhop`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayFile, "file", "", "Read the recording from a file instead of the library")
	replayCmd.Flags().StringVar(&flagReplayExport, "export", "", "Write the recording to a file")
}

func loadRecording(args []string) (*replay.Recording, error) {
	if flagReplayFile != "" {
		data, err := os.ReadFile(flagReplayFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", flagReplayFile, err)
		}
		return replay.Unmarshal(data)
	}

	name := "last"
	if len(args) > 0 {
		name = args[0]
	}
	lib, err := replay.OpenLibrary(appName)
	if err != nil {
		return nil, err
	}
	return lib.Load(name)
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := loadRecording(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReplayExport != "" {
		data, err := replay.Marshal(rec)
		if err == nil {
			err = os.WriteFile(flagReplayExport, data, 0o600)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot export: %v\n", err)
			os.Exit(1)
		}
		logger.Info("recording exported", "path", flagReplayExport)
	}

	cfg := skyhop.LoadConfig(modeFor(rec.GameID))
	got, err := replay.Verify(rec, cfg)

	fmt.Printf("mode:        %s\n", rec.GameID)
	fmt.Printf("seed:        %d\n", rec.Seed)
	fmt.Printf("ticks:       %d\n", got.Ticks)
	fmt.Printf("score:       %d\n", got.Score)
	fmt.Printf("spawn hash:  %016x\n", got.SpawnHash)
	fmt.Printf("state hash:  %016x\n", got.Snapshot)

	switch {
	case errors.Is(err, replay.ErrMismatch):
		fmt.Fprintf(os.Stderr, "Replay diverged: %v\n", err)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("verified:    ok")
}

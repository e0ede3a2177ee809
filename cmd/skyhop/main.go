// skyhop is an endless vertical jumper for the terminal.
//
// Usage:
//
//	skyhop list              - List available modes
//	skyhop play [mode]       - Play a mode (default: skyhop)
//	skyhop menu              - Pick a mode interactively
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores [mode]     - Show high scores for a mode
//	skyhop sim               - Run a headless seeded bot run
//	skyhop replay [name]     - Re-simulate a saved recording
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyhop/scores.db)
//	--config <path>      - Custom rules YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

// appName names the per-user data directory used for recordings.
const appName = "skyhop"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "skyhop"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Sky Hop - an endless vertical jumper for your terminal",
	Long: `Sky Hop is a terminal platformer: bounce from platform to platform,
collect power-ups, stomp enemies and climb as high as you can.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless seeded bot run
  replay   - Re-simulate a recording

Examples:
  skyhop play
  skyhop play skyhop_rush --difficulty hard
  skyhop play --record
  skyhop replay last
  skyhop sim --seed 42 --ticks 36000
  skyhop serve --ssh :2222`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup validates global flags and applies them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	cfg, err := config.LoadSkyhop(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	skyhop.SetConfigPath(flagConfig)
	skyhop.SetDifficultyPreset(flagDifficulty)
	logger.Debug("configured", "fps", flagFPS, "seed", flagSeed, "difficulty", flagDifficulty, "config", flagConfig)
	return nil
}

// modeArg returns the mode named on the command line, defaulting to classic.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "skyhop"
}

// modeFor maps a registered game ID to its difficulty mode.
func modeFor(gameID string) skyhop.Mode {
	if gameID == "skyhop_rush" {
		return skyhop.ModeRush
	}
	return skyhop.ModeClassic
}

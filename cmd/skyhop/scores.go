package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode (default: skyhop).

Examples:
  skyhop scores
  skyhop scores skyhop_rush --limit 25
  skyhop scores --all                # one summary line per mode
  skyhop scores skyhop --clear       # delete every run of a mode`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyhop list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("scores cleared", "mode", gameID)
	case flagScoresAll:
		printSummary(store)
	default:
		printTop(store, info)
	}
}

func printTop(store *storage.Store, info registry.GameInfo) {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyhop play %s' to set the first high score!\n", info.ID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %-20s  %s\n", "Rank", "Score", "Player", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %-20s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %-20d  %s\n", i+1, entry.Score, player, entry.Seed, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(info.ID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Printf("  %-14s  %-8s  %-6s  %-8s  %s\n", "Mode", "Best", "Runs", "Average", "Last played")
	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-14s  %-8s  %-6d  %-8s  %s\n", g.ID, "-", 0, "-", "never")
			continue
		}
		fmt.Printf("  %-14s  %-8d  %-6d  %-8.0f  %s\n",
			g.ID, stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

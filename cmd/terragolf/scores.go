package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terragolf/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <course>",
	Short: "Show best rounds for a course",
	Long: `Display the best recorded rounds for a course, lowest strokes first.

Examples:
  terragolf scores dunes
  terragolf scores glacier --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.BestRounds(levelID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rounds: %v\n", err)
		os.Exit(1)
	}

	if len(rounds) == 0 {
		fmt.Printf("No rounds recorded for %q yet. Play one with: terragolf play %s\n", levelID, levelID)
		return
	}

	fmt.Printf("Best rounds for %s:\n", levelID)
	fmt.Println()
	fmt.Printf("%-5s %-8s %-6s %-10s %s\n", "RANK", "STROKES", "PAR", "BALL", "DATE")
	fmt.Printf("%-5s %-8s %-6s %-10s %s\n", "----", "-------", "---", "----", "----")
	for i, r := range rounds {
		fmt.Printf("%-5d %-8d %-6d %-10s %s\n",
			i+1, r.Strokes, r.Par, r.BallType, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GetLevelStats(levelID); statsErr == nil && stats.RoundsCount > 0 {
		fmt.Println()
		fmt.Printf("Rounds played: %d   Best: %d   Average: %.1f\n",
			stats.RoundsCount, stats.BestStrokes, stats.AvgStrokes)
	}
}

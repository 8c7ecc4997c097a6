package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkuksa/termsnake/internal/game"
	"github.com/vkuksa/termsnake/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top recorded scores across all difficulties.

Examples:
  termsnake scores
  termsnake scores --db ./scores.db
  termsnake scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	scores, err := store.TopScores(10)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termsnake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "----------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	for _, d := range game.Difficulties {
		if best, err := store.HighScoreFor(d.String()); err == nil && best > 0 {
			fmt.Printf("Best (%s): %d\n", d, best)
		}
	}
	return nil
}

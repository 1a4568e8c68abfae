package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unscramble/internal/platform/tui"
	"github.com/vovakirdan/unscramble/internal/storage"
)

var (
	flagInteractive bool
	flagPlayer      string
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded games.

Examples:
  unscramble scores
  unscramble scores --player alice
  unscramble scores --interactive
  unscramble scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show recent games of one player")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "db", cfg.Storage.DB)
		fmt.Println("All scores cleared.")
		return
	}

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var results []storage.Result
	title := "High Scores"
	if flagPlayer != "" {
		title = fmt.Sprintf("Recent games - %s", flagPlayer)
		results, err = store.PlayerResults(flagPlayer, flagLimit)
	} else {
		results, err = store.TopResults(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'unscramble play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Solved", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %s\n", "----", "------", "-----", "------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		solved := fmt.Sprintf("%d/%d", r.Correct, r.Rounds)
		fmt.Printf("  %-4d  %-12s  %-6d  %-7s  %s\n", i+1, r.Player, r.Score, solved, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

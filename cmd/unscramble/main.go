// unscramble is a terminal word game: unscramble each word before you run
// out of rounds.
//
// Usage:
//
//	unscramble               - Play a game (same as "unscramble play")
//	unscramble play          - Play a game
//	unscramble scores        - Show high scores
//	unscramble words         - Show and validate the vocabulary
//	unscramble serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.unscramble/scores.db)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "unscramble",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "unscramble",
	Short: "Unscramble - a word game for your terminal",
	Long: `Unscramble shows you a scrambled word. Type the original word and
press enter, or skip it. Each correct word scores points; the game ends
after a fixed number of rounds.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  words    - Show and validate the vocabulary
  serve    - Start SSH server for remote play

Examples:
  unscramble
  unscramble play --difficulty hard
  unscramble scores
  unscramble serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config: ~/.unscramble/scores.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	addGameFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(serveCmd)
}

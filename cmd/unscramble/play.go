package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/unscramble/internal/game"
	"github.com/vovakirdan/unscramble/internal/platform/tui"
	"github.com/vovakirdan/unscramble/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Unscramble.

Controls:
  Enter    - Submit your guess
  Tab      - Skip the word (no points lost)
  Ctrl+R   - Start a new game
  Esc      - Quit

Difficulty options:
  easy   - 5 rounds
  normal - 10 rounds
  hard   - 20 rounds

Examples:
  unscramble play
  unscramble play --difficulty easy
  unscramble play --rounds 3 --seed 42
  unscramble play --config ./my-words.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := gameConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Configuration errors surface here, before the screen opens.
	engine, err := game.New(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(engine, store, tui.Options{Player: tui.DefaultPlayer})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

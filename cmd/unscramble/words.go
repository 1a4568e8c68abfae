package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unscramble/internal/words"
)

var (
	flagListWords bool
	flagSample    int
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show and validate the vocabulary",
	Long: `Load the configured vocabulary and check it can supply a full game.

Examples:
  unscramble words
  unscramble words --list
  unscramble words --sample 5 --seed 1`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	addGameFlags(wordsCmd)
	wordsCmd.Flags().BoolVar(&flagListWords, "list", false, "Print every word")
	wordsCmd.Flags().IntVar(&flagSample, "sample", 0, "Print N random words with their scrambled form")
}

func runWords(cmd *cobra.Command, args []string) {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := checkGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	vocab, err := words.NewVocabulary(gameCfg.Vocabulary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := "built-in list"
	switch {
	case cfg.Words.File != "":
		source = cfg.Words.File
	case len(cfg.Words.List) > 0:
		source = "config list"
	}

	fmt.Printf("Vocabulary: %d words (%s)\n", vocab.Len(), source)
	fmt.Printf("Rounds per game: %d\n", gameCfg.RoundBudget)
	fmt.Printf("Points per word: %d\n", gameCfg.ScoreIncrement)
	fmt.Println("OK")

	if flagListWords {
		fmt.Println()
		for _, w := range vocab.Words() {
			fmt.Printf("  %s\n", w)
		}
	}

	if flagSample > 0 {
		seed := flagSeed
		if seed == 0 {
			seed = rand.Int63()
		}
		rng := rand.New(rand.NewSource(seed))
		used := make(map[string]struct{})

		fmt.Println()
		for range min(flagSample, vocab.Len()) {
			w, err := words.PickUnused(rng, vocab, used)
			if err != nil {
				break
			}
			used[w] = struct{}{}
			s, err := words.Scramble(rng, w)
			if err != nil {
				continue
			}
			fmt.Printf("  %-16s %s\n", s, w)
		}
	}
}

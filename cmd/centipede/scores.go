package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/centipede-arcade/internal/platform/tui"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
	"github.com/vovakirdan/centipede-arcade/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 table and the game history.

By default the scores open in an interactive table. With --plain they
are printed as text.

Examples:
  centipede scores
  centipede scores --plain
  centipede scores --clear
  centipede scores --store gdata`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the top 10 table and the game history")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "centipede")

	e, err := openEnv(logger)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	hs := scoring.NewHighScores(e.scores, logger)
	hs.Load()

	if flagClear {
		if err := clearScores(hs, e.store); err != nil {
			fail("%v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var history tui.HistoryReader
		if e.store != nil {
			history = e.store
		}
		if err := tui.RunScoreboard(hs, history, width, height); err != nil {
			fail("showing scores: %v", err)
		}
		return
	}

	printScores(hs)
	if e.store != nil {
		printHistory(e.store)
	}
}

// clearScores empties the top 10 table and, when a database is open, the
// game history.
func clearScores(hs *scoring.HighScores, store *storage.Store) error {
	if err := hs.Clear(); err != nil {
		return err
	}
	if store != nil {
		return store.ClearScores()
	}
	return nil
}

// printScores writes the top 10 table, then the history summary.
func printScores(hs *scoring.HighScores) {
	fmt.Println("High Scores - Centipede")
	fmt.Println()

	entries := hs.Entries()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'centipede play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

		for i, entry := range entries {
			fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.Date)
		}
	}
}

// printHistory writes the recorded games summary.
func printHistory(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fail("reading history: %v", err)
	}
	fmt.Println()
	fmt.Println("History")
	fmt.Println()
	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return
	}
	fmt.Printf("  Games played: %d\n", stats.GamesCount)
	fmt.Printf("  Best score:   %d\n", stats.HighScore)
	fmt.Printf("  Best level:   %d\n", stats.BestLevel)
	fmt.Printf("  Average:      %.0f\n", stats.AvgScore)
	fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	entries, err := store.TopScores(10)
	if err != nil {
		fail("reading history: %v", err)
	}
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range entries {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

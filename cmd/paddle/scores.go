package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddle-arcade/internal/menus"
	"github.com/vovakirdan/paddle-arcade/internal/platform/tui"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the game history",
	Long: `Browse the recorded games and the per-player best scores.

On a terminal this opens an interactive scoreboard; otherwise, or with
--plain, the top 10 games of each variant are printed.

Examples:
  paddle scores
  paddle scores breakout
  paddle scores pong --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 'paddle list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, variant, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	variants := registry.List()
	for _, info := range variants {
		if variant != "" && info.ID != variant {
			continue
		}
		if err := printHistory(store, info); err != nil {
			fail("%v", err)
		}
	}
	printBest(store)
}

// printHistory prints the top games of one variant.
func printHistory(store *storage.Store, info registry.Info) error {
	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Game History - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No games recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(info.ID); err == nil {
		fmt.Printf("\n  %d games, best %d, average %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	fmt.Println()
	return nil
}

// printBest prints the per-player high-score table.
func printBest(store *storage.Store) {
	best, err := store.LoadHighScores()
	if err != nil || len(best) == 0 {
		return
	}

	fmt.Println("High Scores")
	fmt.Println()
	for i, e := range menus.Ranked(best) {
		if i == menus.MaxListed {
			break
		}
		fmt.Printf("  %-4d  %-12s  %d\n", i+1, e.Player, e.Score)
	}
}

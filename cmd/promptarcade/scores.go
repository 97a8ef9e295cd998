package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/platform/tui"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [type]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a game type, or a summary of every
type when none is given.

Examples:
  promptarcade scores
  promptarcade scores shooter
  promptarcade scores -i          # browse in a full-screen table`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
}

func runScores(_ *cobra.Command, args []string) {
	var archetype core.Archetype
	if len(args) == 1 {
		a, ok := core.ParseArchetype(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown game type %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'promptarcade archetypes' to see available types.")
			os.Exit(1)
		}
		archetype = a
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height, archetype); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if archetype == "" {
		printSummary(store)
		return
	}
	printTopScores(store, archetype)
}

func printTopScores(store *storage.Store, archetype core.Archetype) {
	scores, err := store.TopScores(archetype, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", archetype.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Date", "Game")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-16s  %s\n",
			i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), entry.Title)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Type", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, a := range core.AllArchetypes() {
		s, ok := stats[a]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.1f  %s\n",
			a, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

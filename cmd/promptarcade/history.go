package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prompt-arcade/internal/platform/tui"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

var (
	flagHistoryLimit int
	flagReplay       int
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent prompts",
	Long: `List the most recently played prompts, newest first.

Examples:
  promptarcade history
  promptarcade history --limit 3
  promptarcade history --replay 2     # play entry #2 again
  promptarcade history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Show at most this many entries (0 = all)")
	historyCmd.Flags().IntVar(&flagReplay, "replay", 0, "Play history entry N again")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all history entries")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagReplay > 0 {
		runTUI(replayEntry(flagReplay))
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	entries, err := store.History(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No history yet.")
		fmt.Println()
		fmt.Println("Run 'promptarcade play <prompt>' to create your first game.")
		return
	}

	fmt.Printf("  %-3s  %-28s  %-10s  %-16s  %s\n", "#", "Title", "Type", "Date", "Prompt")
	fmt.Printf("  %-3s  %-28s  %-10s  %-16s  %s\n", "-", "-----", "----", "----", "------")
	for i, e := range entries {
		fmt.Printf("  %-3d  %-28s  %-10s  %-16s  %s\n",
			i+1, truncate(e.Title, 28), e.Archetype, e.CreatedAt.Format("2006-01-02 15:04"), e.Prompt)
	}

	fmt.Println()
	fmt.Println("Run 'promptarcade history --replay <#>' to play one again.")
}

// replayEntry picks history entry n for the session to open with.
func replayEntry(n int) func(env tui.Env) (*tui.Choice, error) {
	return func(env tui.Env) (*tui.Choice, error) {
		if env.Store == nil {
			return nil, errors.New("history is unavailable without a database")
		}
		entry, err := env.Store.HistoryAt(n)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no history entry #%d", n)
		}
		if err != nil {
			return nil, err
		}
		logger.Info("replaying", "uid", entry.UID, "prompt", entry.Prompt)
		return &tui.Choice{Prompt: entry.Prompt, Config: entry.Config, Replay: true}, nil
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

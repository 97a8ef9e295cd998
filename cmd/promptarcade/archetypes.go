package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List game types and the words that select them",
	Long: `Shows every game type with its controls and the prompt keywords
that pick it. When a prompt matches several types equally, the one listed
first wins. A prompt with no matching words makes a catcher game.`,
	Args: cobra.NoArgs,
	Run:  runArchetypes,
}

func runArchetypes(_ *cobra.Command, _ []string) {
	fmt.Println("Game types:")
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %-7s  %s\n", "Type", "Move", "Action", "Keywords")
	fmt.Printf("  %-10s  %-10s  %-7s  %s\n", "----", "----", "------", "--------")
	for _, a := range core.AllArchetypes() {
		caps := prompt.Capabilities(a)
		fmt.Printf("  %-10s  %-10s  %-7s  %s\n", a, caps.Axes, action(caps), strings.Join(prompt.Keywords(a), ", "))
	}

	fmt.Println()
	fmt.Println("Themes:")
	fmt.Println()
	for _, t := range core.AllThemes() {
		fmt.Printf("  %-10s  %s\n", t, strings.Join(prompt.ThemeKeywords(t), ", "))
	}
}

func action(caps core.PlayerSpec) string {
	switch {
	case caps.CanShoot:
		return "shoot"
	case caps.CanJump:
		return "jump"
	}
	return "-"
}

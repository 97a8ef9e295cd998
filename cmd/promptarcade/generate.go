package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
)

var flagExplain bool

var generateCmd = &cobra.Command{
	Use:   "generate <prompt...>",
	Short: "Print the game config a prompt produces",
	Long: `Interpret a prompt and print the resulting game config as YAML.
Nothing is played or recorded.

With --explain, the keyword hits per game type, theme and difficulty are
printed as YAML comments above the config.

Examples:
  promptarcade generate a space shooter where I destroy asteroids
  promptarcade generate --explain "hard neon racer"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagExplain, "explain", false, "Show how the prompt was classified")
}

func runGenerate(_ *cobra.Command, args []string) {
	text := strings.Join(args, " ")
	if err := prompt.Validate(text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}

	cfg := prompt.New(table).Interpret(text)
	if flagExplain {
		fmt.Print(explain(prompt.Analyze(text)))
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// explain renders an analysis as YAML comments.
func explain(a prompt.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# tokens: %s\n", strings.Join(a.Tokens, " "))

	b.WriteString("# type hits:")
	for _, arch := range core.AllArchetypes() {
		if n := a.ArchetypeHits[arch]; n > 0 {
			fmt.Fprintf(&b, " %s=%d", arch, n)
		}
	}
	b.WriteString("\n# theme hits:")
	for _, t := range core.AllThemes() {
		if n := a.ThemeHits[t]; n > 0 {
			fmt.Fprintf(&b, " %s=%d", t, n)
		}
	}
	b.WriteString("\n# difficulty hits:")
	for _, d := range core.AllDifficulties() {
		if n := a.DifficultyHits[d]; n > 0 {
			fmt.Fprintf(&b, " %s=%d", d, n)
		}
	}
	fmt.Fprintf(&b, "\n# picked: %s / %s / %s", a.Archetype, a.Theme, a.Difficulty)
	if a.Subject != "" {
		fmt.Fprintf(&b, " (subject %q)", a.Subject)
	}
	b.WriteString("\n")
	return b.String()
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prompt-arcade/internal/platform/tui"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
)

var playCmd = &cobra.Command{
	Use:   "play <prompt...>",
	Short: "Generate a game from a prompt and play it",
	Long: `Generate a game from the prompt, record it in the history and play it.

Controls:
  Arrows/WASD  - Move
  Space        - Shoot, jump, flap or serve, depending on the game
  P            - Pause
  R            - Restart (after game over)
  N/B/Esc      - Back to the prompt screen (paused or after game over)
  Q/Ctrl+C     - Quit

Examples:
  promptarcade play a space shooter where I destroy asteroids
  promptarcade play "easy ninja platformer" --seed 42`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	text := strings.Join(args, " ")
	if err := prompt.Validate(text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runTUI(func(env tui.Env) (*tui.Choice, error) {
		text = strings.TrimSpace(text)
		cfg := env.Interpreter.Interpret(text)
		logger.Info("game generated", "title", cfg.Title, "type", cfg.Type, "theme", cfg.Theme, "difficulty", cfg.Difficulty)
		return &tui.Choice{Prompt: text, Config: cfg}, nil
	})
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive prompt -> game loop",
	Long: `Open the prompt screen. Type a description and press Enter to play it,
or pick one of your recent prompts to replay it.

Keys on the prompt screen:
  Enter   - Play the typed prompt or the selected history entry
  Tab     - Switch between the text box and the history
  Ctrl+D  - Clear the history
  Ctrl+S  - High scores
  Esc     - Quit`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runTUI(nil)
	},
}

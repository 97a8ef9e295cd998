// promptarcade turns a one-line prompt into a playable terminal arcade game.
//
// Usage:
//
//	promptarcade generate <prompt...>  - Print the game config a prompt produces
//	promptarcade play <prompt...>      - Generate a game and play it
//	promptarcade menu                  - Interactive prompt -> game loop
//	promptarcade history               - List recent prompts
//	promptarcade scores [type]         - Show high scores
//	promptarcade serve                 - Start SSH server for remote play
//	promptarcade archetypes            - List game types and their keywords
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.promptarcade/arcade.db)
//	--tuning <path>       - Load a custom tuning YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prompt-arcade/internal/config"
	"github.com/vovakirdan/prompt-arcade/internal/core"
	"github.com/vovakirdan/prompt-arcade/internal/platform/tui"
	"github.com/vovakirdan/prompt-arcade/internal/prompt"
	"github.com/vovakirdan/prompt-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagTuning   string
	flagLogLevel string
)

// logger is the root logger, configured before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "promptarcade",
	Short: "Prompt Arcade - describe a game, then play it in your terminal",
	Long: `Prompt Arcade turns a short description into a playable arcade game.

The prompt picks one of eight game types (shooter, catcher, runner,
platformer, racer, breakout, flappy, pong), a visual theme and a difficulty.

Examples:
  promptarcade play "a space shooter where I destroy asteroids"
  promptarcade generate "easy ninja platformer in the jungle"
  promptarcade menu
  promptarcade history --replay 1
  promptarcade serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.promptarcade/arcade.db", "Path to history and scores database")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(archetypesCmd)
}

// loadTuning loads the tuning table named by --tuning, or the default one.
func loadTuning() (config.TuningTable, error) {
	table, err := config.Load(flagTuning)
	if err != nil {
		return config.TuningTable{}, err
	}
	logger.Debug("tuning loaded", "path", flagTuning)
	return table, nil
}

// openStore opens the database. On failure it logs a warning and returns
// nil so the game still works without history or scores.
func openStore(table config.TuningTable) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}
	store.SetHistoryCap(table.HistoryCap())
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// newEnv builds the host environment from the global flags.
func newEnv(table config.TuningTable, store *storage.Store) tui.Env {
	width, height := terminalSize()
	return tui.Env{
		Store:       store,
		Interpreter: prompt.New(table),
		Logger:      logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}
}

// logToFile sends log output to ~/.promptarcade/arcade.log while the
// full-screen UI owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	path := filepath.Join(home, ".promptarcade", "arcade.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("could not open log file", "path", path, "error", err)
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// runTUI runs the interactive session. pick, when set, chooses the game the
// session opens with; a nil choice starts on the prompt screen.
func runTUI(pick func(env tui.Env) (*tui.Choice, error)) {
	table, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}

	store := openStore(table)
	env := newEnv(table, store)

	var first *tui.Choice
	if pick != nil {
		if first, err = pick(env); err != nil {
			closeStore(store)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	restore := logToFile()
	runErr := tui.Run(env, first)
	restore()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

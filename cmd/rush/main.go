// rush is Santa's Resource Rush, a turn-based grid puzzle for the terminal.
//
// Usage:
//
//	rush play      - Play a run directly
//	rush menu      - Title menu with level select
//	rush levels    - Print the level table
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible layouts
//	--config <path>      - Custom YAML config
//	--start-level <n>    - Override session.start_level
//	--log-file <path>    - Write logs to a file (discarded otherwise)
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/resource-rush/internal/config"
	"github.com/vovakirdan/resource-rush/internal/core"
	"github.com/vovakirdan/resource-rush/internal/game"
	"github.com/vovakirdan/resource-rush/internal/platform/tui"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagStartLevel int
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "Santa's Resource Rush - collect the gifts and reach Santa",
	Long: `Santa's Resource Rush is a turn-based grid puzzle for the terminal.

Walk the 7x7 field from the bottom-right corner to Santa in the top-left,
picking up enough gifts on the way. Every step costs a move; icy patches
and hidden mines cost more. Run out of moves and you lose a life.

Available commands:
  play     - Play a run directly
  menu     - Title menu with level select
  levels   - Print the level table

Examples:
  rush play
  rush play --start-level 6 --seed 42
  rush menu --config ./my-rush.yaml
  rush levels`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagStartLevel, "start-level", 0, "Level to start at (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (config.RushConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RushConfig{}, err
	}
	if flagStartLevel != 0 {
		cfg.Session.StartLevel = flagStartLevel
		if err := cfg.Validate(); err != nil {
			return config.RushConfig{}, fmt.Errorf("--start-level: %w", err)
		}
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or discarding output.
// The TUI owns the terminal, so logs never go to stderr. The returned
// close function must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rush",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// runtimeConfig returns the terminal size and seed for a game.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// newGame builds the game with its collaborators.
func newGame(cfg config.RushConfig, logger *log.Logger) *game.Game {
	return game.New(game.Options{
		Config: cfg,
		Logger: logger,
		Sharer: tui.NewClipboardSharer(),
	})
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

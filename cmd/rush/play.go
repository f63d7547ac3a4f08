package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run directly, skipping the title menu.

Controls:
  Arrows/WASD  - Move one cell
  Mouse click  - Move to the clicked cell
  Enter/Space  - Dismiss a notice
  R            - Play again after victory
  Ctrl+S       - Save a screenshot to ~/.rush/screenshots
  Q/Ctrl+C     - Quit

Examples:
  rush play
  rush play --start-level 8
  rush play --seed 42 --log-file rush.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	logger, closeLog, err := newLogger()
	exitOnError(err)
	defer closeLog()

	rt := runtimeConfig()
	logger.Info("starting play", "seed", rt.Seed, "start_level", cfg.Session.StartLevel)

	_, err = runGame(cfg, logger, rt)
	exitOnError(err)
}

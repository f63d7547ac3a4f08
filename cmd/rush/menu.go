package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/resource-rush/internal/config"
	"github.com/vovakirdan/resource-rush/internal/core"
	"github.com/vovakirdan/resource-rush/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  rush menu
  rush menu --seed 7`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	logger, closeLog, err := newLogger()
	exitOnError(err)
	defer closeLog()

	rt := runtimeConfig()
	for {
		result, err := tui.RunMenu(rt, cfg.Session.MaxLevels)
		exitOnError(err)
		rt = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsLevels:
			goBack, err := tui.RunLevels(cfg.Session.MaxLevels, rt.ScreenW, rt.ScreenH)
			exitOnError(err)
			if !goBack {
				return
			}

		case result.Play:
			runCfg := cfg
			if result.StartLevel > 0 {
				runCfg.Session.StartLevel = result.StartLevel
			}
			logger.Info("starting play", "start_level", runCfg.Session.StartLevel)

			goBack, err := runGame(runCfg, logger, rt)
			exitOnError(err)
			if !goBack {
				return
			}
		}
	}
}

// runGame plays one session. Returns true if the player left with back.
func runGame(cfg config.RushConfig, logger *log.Logger, rt core.RuntimeConfig) (bool, error) {
	return tui.Run(newGame(cfg, logger), rt)
}

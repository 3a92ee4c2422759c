package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snack-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run directly",
	Long: `Start a run without going through the menu.

Controls:
  Space/Up/W  - Jump (twice for a double jump)
  R/Enter     - Restart after death
  Esc         - Back (after death)
  Ctrl+S      - Save a screenshot
  Q           - Quit

Examples:
  snackrunner play
  snackrunner play --difficulty easy
  snackrunner play --config ./runner.yaml --seed 7`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	runnerCfg, err := loadRunnerConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	game := tui.NewGame(runnerCfg, rt, asStore(store), logger)
	_, err = tui.Run(game, rt)
	return err
}

// snackrunner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	snackrunner              - Start the menu
//	snackrunner play         - Jump straight into a run
//	snackrunner scores       - Show the best or most recent runs
//	snackrunner serve        - Start SSH server for remote play
//	snackrunner config       - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default: ~/.snackrunner/scores.db)
//	--log-file <path>    - Write logs to a file (the game owns the terminal)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snack-runner/internal/config"
	"github.com/vovakirdan/snack-runner/internal/core"
	"github.com/vovakirdan/snack-runner/internal/platform/tui"
	"github.com/vovakirdan/snack-runner/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Runner config flags, shared by the menu, play and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snackrunner",
	Short: "Snack Runner - eat, dodge, survive",
	Long: `Snack Runner is an endless side-scroller for your terminal.

Eat food to heal, grab golden food for a few seconds of invincibility
and double score, and jump over enemies. Two jumps between landings.

Available commands:
  play     - Start a run directly
  scores   - View the run history
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  snackrunner
  snackrunner play --difficulty hard
  snackrunner scores --board recent
  snackrunner serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snackrunner/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to a runner config file (.yaml or .toml)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger. The TUI owns the terminal, so
// logs go to --log-file or nowhere; closeFn releases the file.
func newLogger(fallback io.Writer) (logger *log.Logger, closeFn func(), err error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn = func() {}
	if flagLogFile != "" {
		if mkErr := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snackrunner",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadRunnerConfig loads the runner config and applies --difficulty.
func loadRunnerConfig(logger *log.Logger) (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset)
	return cfg, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is not fatal: the game runs
// with an in-memory high score.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// asStore avoids handing a typed nil to the game.
func asStore(s *storage.Store) tui.Store {
	if s == nil {
		return nil
	}
	return s
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	for {
		choice, updated, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}
		rt = updated

		switch choice {
		case tui.MenuChoiceQuit, tui.MenuChoiceNone:
			return nil

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, tui.BoardTop, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			game := tui.NewGame(runnerCfg, rt, asStore(store), logger)
			back, playErr := tui.Run(game, rt)
			if playErr != nil {
				return playErr
			}
			if !back {
				return nil
			}
		}
	}
}

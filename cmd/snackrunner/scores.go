package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snack-runner/internal/platform/tui"
	"github.com/vovakirdan/snack-runner/internal/storage"
)

var (
	flagLimit       int
	flagBoard       string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best or most recent runs.

Examples:
  snackrunner scores
  snackrunner scores --board recent --limit 20
  snackrunner scores --interactive
  snackrunner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagBoard, "board", "top", "Board to show: top or recent")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	board, err := tui.ParseBoard(flagBoard)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(store, board, rt.ScreenW, rt.ScreenH)
		return err
	}

	runs, err := tui.LoadRuns(store, board, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s - Snack Runner\n", board.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snackrunner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-4s  %s\n", "Rank", "Score", "Time", "Food", "Hits", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-4s  %s\n", "----", "-----", "----", "----", "----", "----")

	for i, r := range runs {
		score := fmt.Sprintf("%.0f", r.Score)
		if r.NewBest {
			score += "*"
		}
		fmt.Printf("  %-4d  %-10s  %-8s  %-5d  %-4d  %s\n",
			i+1, score, formatDuration(r.Duration), r.Food+r.Golden, r.EnemyHits,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %.0f  Runs: %d  Average: %.0f  Played: %s\n",
			stats.BestScore, stats.Runs, stats.AvgScore, formatDuration(stats.TotalTime))
	}
	return nil
}

func formatDuration(secs float64) string {
	return (time.Duration(secs) * time.Second).Round(time.Second).String()
}

package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack-runner/internal/config"
	"github.com/vovakirdan/snack-runner/internal/core"
	"github.com/vovakirdan/snack-runner/internal/runner"
	"github.com/vovakirdan/snack-runner/internal/storage"
)

// Store is the persistence the platform needs: the best score for the
// session and a place to append finished runs.
type Store interface {
	runner.HighScoreStore
	SaveRun(r storage.RunRecord) (int64, error)
}

var _ Store = (*storage.Store)(nil)

// NewGame builds a game for one player. A nil store keeps the high score in
// memory and drops the run history.
func NewGame(cfg config.RunnerConfig, rt core.RuntimeConfig, store Store, logger *log.Logger) *runner.Game {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	opts := runner.Options{
		Clock:  runner.NewFixedClock(rt.TickRate),
		Seed:   rt.Seed,
		Logger: logger,
	}
	if store != nil {
		opts.Store = store
		opts.OnRunEnd = func(s runner.RunSummary) {
			if _, err := store.SaveRun(RunRecord(s)); err != nil && logger != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
	} else {
		opts.Store = &runner.MemoryHighScores{}
	}

	g := runner.New(cfg, opts)
	g.Resize(rt.ScreenW, rt.ScreenH)
	return g
}

// RunRecord converts a finished run into its storage row.
func RunRecord(s runner.RunSummary) storage.RunRecord {
	return storage.RunRecord{
		Score:       s.Score,
		HighScore:   s.HighScore,
		NewBest:     s.NewHighScore,
		Duration:    s.Stats.Duration,
		Food:        s.Stats.Food,
		Golden:      s.Stats.Golden,
		EnemyHits:   s.Stats.EnemyHits,
		EnemyPasses: s.Stats.EnemyPasses,
	}
}

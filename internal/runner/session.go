package runner

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack-runner/internal/config"
)

// RunStats counts what happened during one run.
type RunStats struct {
	Duration    float64 // Seconds spent playing
	Food        int     // Food eaten
	Golden      int     // Golden food eaten
	EnemyHits   int     // Enemies that cost health
	EnemyPasses int     // Enemies run through while invincible
}

// RunSummary describes a finished run. It is emitted once per death.
type RunSummary struct {
	Score        float64
	HighScore    float64
	NewHighScore bool
	Stats        RunStats
}

// SessionDeps wires a session to the rest of the game. Every collaborator is
// optional: a missing one disables the behavior that needs it and is logged.
type SessionDeps struct {
	World           *World
	Spawner         *Spawner
	Deferred        *Deferred
	Store           HighScoreStore
	Intro           IntroDisplay
	Death           DeathDisplay
	DeathCheckDelay float64
	OnRunEnd        func(RunSummary)
	Logger          *log.Logger
}

// Session owns score, speed and the Intro/Playing/Dead lifecycle.
type Session struct {
	cfg        config.SessionConfig
	deps       SessionDeps
	logger     *log.Logger
	state      State
	score      float64
	highScore  float64
	speed      float64
	multiplier float64
	now        float64
	stats      RunStats
}

// NewSession creates a session in the Intro state.
func NewSession(cfg config.SessionConfig, deps SessionDeps) *Session {
	if deps.Logger == nil {
		deps.Logger = discardLogger()
	}
	if deps.Deferred == nil {
		deps.Deferred = &Deferred{}
	}
	s := &Session{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger,
	}
	s.InitializeGame()
	return s
}

// InitializeGame performs the one-time setup: initial speed, empty score,
// high score loaded from the store, Intro state.
func (s *Session) InitializeGame() {
	s.state = StateIntro
	s.speed = s.cfg.InitialSpeed
	s.score = 0
	s.multiplier = 1
	s.stats = RunStats{}
	s.highScore = 0

	if s.deps.Store == nil {
		s.logger.Warn("no high score store, best score will not persist")
	} else if hs, err := s.deps.Store.GetHighScore(); err != nil {
		s.logger.Warn("could not load high score", "error", err)
	} else {
		s.highScore = math.Max(0, hs)
	}

	if s.deps.Spawner != nil {
		s.deps.Spawner.SetEnabled(false)
	}
	s.setIntroVisible(true)
}

// StartGame begins a run from Intro or Dead. Score, multiplier and speed are
// reset to their initial values every time. It is a no-op while playing.
func (s *Session) StartGame() {
	if s.state == StatePlaying {
		s.logger.Debug("start ignored, already playing")
		return
	}

	from := s.state
	s.score = 0
	s.multiplier = 1
	s.speed = s.cfg.InitialSpeed
	s.stats = RunStats{}
	s.state = StatePlaying

	if s.deps.Spawner != nil {
		s.deps.Spawner.SetEnabled(true)
	} else {
		s.logger.Warn("no spawner, nothing will appear")
	}
	s.setIntroVisible(false)

	s.logger.Info("run started", "from", from, "speed", s.speed, "high_score", s.highScore)
}

// GameOver ends the current run: purges every entity, stops spawning,
// records a new high score and queues the death display for the next step.
// It reports false when the session was not playing.
func (s *Session) GameOver() bool {
	if s.state != StatePlaying {
		return false
	}
	s.state = StateDead

	purged := 0
	if s.deps.World != nil {
		purged = s.deps.World.Purge()
	}
	if s.deps.Spawner != nil {
		s.deps.Spawner.SetEnabled(false)
	}

	s.refreshHighScore()
	newBest := s.score > s.highScore
	if newBest {
		s.highScore = s.score
		if s.deps.Store == nil {
			s.logger.Warn("new high score not persisted, no store")
		} else if err := s.deps.Store.SetHighScore(s.highScore); err != nil {
			s.logger.Warn("could not persist high score", "error", err)
		}
	}

	s.logger.Info("run over",
		"score", s.score,
		"high_score", s.highScore,
		"new_best", newBest,
		"purged", purged,
	)

	s.queueDeathDisplay(s.score, s.highScore)
	s.setIntroVisible(true)

	if s.deps.OnRunEnd != nil {
		s.deps.OnRunEnd(RunSummary{
			Score:        s.score,
			HighScore:    s.highScore,
			NewHighScore: newBest,
			Stats:        s.stats,
		})
	}
	return true
}

// refreshHighScore picks up a record another session saved since this one
// loaded it.
func (s *Session) refreshHighScore() {
	if s.deps.Store == nil {
		return
	}
	hs, err := s.deps.Store.GetHighScore()
	if err != nil {
		s.logger.Warn("could not reload high score", "error", err)
		return
	}
	s.highScore = math.Max(s.highScore, hs)
}

func (s *Session) queueDeathDisplay(score, highScore float64) {
	deferred := s.deps.Deferred
	deferred.After(s.now, 0, "death-display", func(now float64) {
		if s.deps.Death == nil {
			s.logger.Warn("no death display, skipping end-of-run panel")
			return
		}
		s.deps.Death.Show(score, highScore)

		deferred.After(now, s.deps.DeathCheckDelay, "death-display-check", func(float64) {
			if r, ok := s.deps.Death.(readinessReporter); ok {
				s.logger.Debug("death display status", "ready", r.Ready())
			}
		})
	})
}

func (s *Session) setIntroVisible(visible bool) {
	if s.deps.Intro == nil {
		return
	}
	s.deps.Intro.SetVisible(visible)
}

// Advance accrues score and speed while playing. Outside Playing both are
// frozen, but the session clock still follows the tick.
func (s *Session) Advance(t Tick) {
	s.now = t.Now
	if s.state != StatePlaying {
		return
	}
	dt := math.Max(0, t.DT)
	s.score += dt * s.multiplier
	s.speed = math.Min(s.cfg.MaxSpeed, s.speed+s.cfg.SpeedIncreaseRate*dt)
	s.stats.Duration += dt
}

// AddScore adds bonus points. Ignored unless playing; negative amounts are ignored.
func (s *Session) AddScore(amount float64) {
	if s.state != StatePlaying || amount <= 0 {
		return
	}
	s.score += amount
}

// SetScoreMultiplier changes the rate at which time turns into score.
func (s *Session) SetScoreMultiplier(m float64) {
	s.multiplier = math.Max(0, m)
}

func (s *Session) recordContact(kind Kind, harmful bool) {
	if s.state != StatePlaying {
		return
	}
	switch kind {
	case KindFood:
		s.stats.Food++
	case KindGoldenFood:
		s.stats.Golden++
	case KindEnemy:
		if harmful {
			s.stats.EnemyHits++
		} else {
			s.stats.EnemyPasses++
		}
	}
}

// State returns the lifecycle phase.
func (s *Session) State() State { return s.state }

// IsPlaying reports whether a run is in progress.
func (s *Session) IsPlaying() bool { return s.state == StatePlaying }

// Score returns the current run score.
func (s *Session) Score() float64 { return s.score }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() float64 { return s.highScore }

// Speed returns the current world speed.
func (s *Session) Speed() float64 { return s.speed }

// ScoreMultiplier returns the active score multiplier.
func (s *Session) ScoreMultiplier() float64 { return s.multiplier }

// Stats returns counters for the current or last run.
func (s *Session) Stats() RunStats { return s.stats }

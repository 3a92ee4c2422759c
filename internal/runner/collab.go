package runner

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score across sessions.
// It is read at construction and again when a run ends, and written when a
// run beats the record. SetHighScore must never lower the stored value.
type HighScoreStore interface {
	GetHighScore() (float64, error)
	SetHighScore(score float64) error
}

// DeathDisplay shows the end-of-run panel.
type DeathDisplay interface {
	Show(score, highScore float64)
}

// readinessReporter is implemented by death displays that can report whether
// they finished activating. It is only used for diagnostics.
type readinessReporter interface {
	Ready() bool
}

// IntroDisplay is visible while the session is not playing.
type IntroDisplay interface {
	SetVisible(visible bool)
}

// Animator receives discrete animation signals from the player.
type Animator interface {
	Play(state AnimState)
}

// Bounds supplies the horizontal half-width of the visible world.
type Bounds interface {
	HalfWidth() float64
}

// FixedBounds is a constant half-width.
type FixedBounds float64

// HalfWidth implements Bounds.
func (b FixedBounds) HalfWidth() float64 { return float64(b) }

// Viewport derives world bounds from the terminal size.
type Viewport struct {
	Cols         int
	Rows         int
	CellsPerUnit float64
	RowsPerUnit  float64
}

// HalfWidth implements Bounds.
func (v *Viewport) HalfWidth() float64 {
	if v.CellsPerUnit <= 0 {
		return float64(v.Cols) / 2
	}
	return float64(v.Cols) / 2 / v.CellsPerUnit
}

// Resize updates the terminal size.
func (v *Viewport) Resize(cols, rows int) {
	v.Cols = cols
	v.Rows = rows
}

// MemoryHighScores keeps the high score in memory only.
type MemoryHighScores struct {
	value float64
}

// GetHighScore implements HighScoreStore.
func (m *MemoryHighScores) GetHighScore() (float64, error) { return m.value, nil }

// SetHighScore implements HighScoreStore. Lower scores are ignored.
func (m *MemoryHighScores) SetHighScore(score float64) error {
	m.value = max(m.value, score)
	return nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

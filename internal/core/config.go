package core

// RuntimeConfig contains the settings the platform hands to the game.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for spawn randomness
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only snapshot the platform pulls after each step.
type GameState struct {
	Phase     string  // "intro", "playing" or "dead"
	Score     float64 // Current run score
	HighScore float64 // Best score seen so far
	Health    int     // Player health
	GameOver  bool    // Whether the run has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

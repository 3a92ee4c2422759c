package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded Snack Runner configuration.
// It mirrors defaults/runner.yaml and is the last fallback of the loader.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Session: SessionConfig{
			InitialSpeed:      5.0,
			MaxSpeed:          15.0,
			SpeedIncreaseRate: 0.1,
		},
		Player: PlayerConfig{
			MaxHealth:          3,
			JumpForce:          7.0,
			Gravity:            20.0,
			InvincibleDuration: 5.0,
			X:                  -6.0,
			Width:              0.8,
			Height:             1.2,
		},
		Spawner: SpawnerConfig{
			MinDelay: 1.0,
			MaxDelay: 1.5,
			Prefabs: []PrefabConfig{
				{Kind: "food", Width: 0.6, Height: 0.6, Y: 0, Speed: 5},
				{Kind: "golden_food", Width: 0.6, Height: 0.6, Y: 1.8, Speed: 5},
				{Kind: "enemy", Width: 0.8, Height: 1.0, Y: 0, Speed: 5},
			},
		},
		Score: ScoreConfig{
			FoodBonus:            0,
			GoldenBonus:          0,
			InvincibleMultiplier: 1,
		},
		Rules: RulesConfig{
			DestroyEnemyWhenInvincible: true,
		},
		View: ViewConfig{
			CellsPerUnit: 4,
			RowsPerUnit:  2,
			GroundOffset: 2,
		},
		Display: DisplayConfig{
			DeathCheckDelay: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

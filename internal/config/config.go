// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for Snack Runner.
package config

// RunnerConfig contains all tunables for a Snack Runner session.
// Distances are world units, times are seconds of simulation time.
type RunnerConfig struct {
	Session SessionConfig `yaml:"session" toml:"session"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Spawner SpawnerConfig `yaml:"spawner" toml:"spawner"`
	Score   ScoreConfig   `yaml:"score" toml:"score"`
	Rules   RulesConfig   `yaml:"rules" toml:"rules"`
	View    ViewConfig    `yaml:"view" toml:"view"`
	Display DisplayConfig `yaml:"display" toml:"display"`
}

// SessionConfig defines the speed ramp of a run.
type SessionConfig struct {
	InitialSpeed      float64 `yaml:"initial_speed" toml:"initial_speed"`
	MaxSpeed          float64 `yaml:"max_speed" toml:"max_speed"`
	SpeedIncreaseRate float64 `yaml:"speed_increase_rate" toml:"speed_increase_rate"` // Speed gained per second
}

// PlayerConfig defines the player body and survival parameters.
type PlayerConfig struct {
	MaxHealth          int     `yaml:"max_health" toml:"max_health"`
	JumpForce          float64 `yaml:"jump_force" toml:"jump_force"`
	Gravity            float64 `yaml:"gravity" toml:"gravity"`
	InvincibleDuration float64 `yaml:"invincible_duration" toml:"invincible_duration"`
	X                  float64 `yaml:"x" toml:"x"` // Horizontal center, world units from screen center
	Width              float64 `yaml:"width" toml:"width"`
	Height             float64 `yaml:"height" toml:"height"`
}

// SpawnerConfig defines spawn timing and the entity prefabs to choose from.
type SpawnerConfig struct {
	MinDelay float64        `yaml:"min_delay" toml:"min_delay"`
	MaxDelay float64        `yaml:"max_delay" toml:"max_delay"`
	Prefabs  []PrefabConfig `yaml:"prefabs" toml:"prefabs"`
}

// PrefabConfig describes one spawnable entity template.
type PrefabConfig struct {
	Kind   string  `yaml:"kind" toml:"kind"` // "food", "golden_food" or "enemy"
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Y      float64 `yaml:"y" toml:"y"`         // Bottom edge height above the ground
	Speed  float64 `yaml:"speed" toml:"speed"` // Leftward speed in units per second
}

// ScoreConfig defines bonus points and the invincibility multiplier.
type ScoreConfig struct {
	FoodBonus            float64 `yaml:"food_bonus" toml:"food_bonus"`
	GoldenBonus          float64 `yaml:"golden_bonus" toml:"golden_bonus"`
	InvincibleMultiplier float64 `yaml:"invincible_multiplier" toml:"invincible_multiplier"`
}

// RulesConfig holds collision policy switches.
type RulesConfig struct {
	// DestroyEnemyWhenInvincible removes an enemy the invincible player runs through.
	// When false the enemy stays and keeps overlapping harmlessly.
	DestroyEnemyWhenInvincible bool `yaml:"destroy_enemy_when_invincible" toml:"destroy_enemy_when_invincible"`
}

// ViewConfig maps world units to terminal cells.
type ViewConfig struct {
	CellsPerUnit float64 `yaml:"cells_per_unit" toml:"cells_per_unit"`
	RowsPerUnit  float64 `yaml:"rows_per_unit" toml:"rows_per_unit"`
	GroundOffset int     `yaml:"ground_offset" toml:"ground_offset"` // Rows between ground line and bottom edge
}

// DisplayConfig holds timings of the death panel.
type DisplayConfig struct {
	DeathCheckDelay float64 `yaml:"death_check_delay" toml:"death_check_delay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

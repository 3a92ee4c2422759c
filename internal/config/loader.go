package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// Load loads the Snack Runner configuration.
// Search order: customPath -> ~/.snackrunner/configs/runner.{yaml,toml} ->
// ./configs/runner.yaml -> embedded default -> hardcoded default.
// Files are decoded on top of the defaults, so partial files are fine.
func Load(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, name := range []string{"runner.yaml", "runner.yml", "runner.toml"} {
		path := userConfigPath(name)
		if path == "" {
			break
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decode(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := decode("runner.yaml", data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode("runner.yaml", defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the hardcoded defaults, picking the format
// from the file extension.
func decode(path string, data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snackrunner", "configs", filename)
}

// ParsePreset converts a CLI flag value into a preset.
// An empty string yields an empty preset, meaning "keep the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return "", nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyFixed:
		return DifficultyFixed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.InitialSpeed = 4
		cfg.Session.SpeedIncreaseRate = 0.05
		scaleDelays(&cfg.Spawner, 1.3)
	case DifficultyHard:
		cfg.Session.InitialSpeed = 7
		cfg.Session.SpeedIncreaseRate = 0.2
		scaleDelays(&cfg.Spawner, 0.75)
	case DifficultyFixed:
		cfg.Session.SpeedIncreaseRate = 0
	}
}

func scaleDelays(s *SpawnerConfig, factor float64) {
	s.MinDelay *= factor
	s.MaxDelay *= factor
}

// Normalize clamps out-of-range values in place and describes each fix.
// Bad configuration never stops the game; callers log the warnings.
func (c *RunnerConfig) Normalize() []string {
	def := DefaultRunnerConfig()
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if c.Session.InitialSpeed < 0 {
		warn("session.initial_speed %.2f < 0, using 0", c.Session.InitialSpeed)
		c.Session.InitialSpeed = 0
	}
	if c.Session.MaxSpeed < c.Session.InitialSpeed {
		warn("session.max_speed %.2f below initial_speed, using %.2f", c.Session.MaxSpeed, c.Session.InitialSpeed)
		c.Session.MaxSpeed = c.Session.InitialSpeed
	}
	if c.Session.SpeedIncreaseRate < 0 {
		warn("session.speed_increase_rate %.2f < 0, using 0", c.Session.SpeedIncreaseRate)
		c.Session.SpeedIncreaseRate = 0
	}

	if c.Player.MaxHealth < 1 {
		warn("player.max_health %d < 1, using %d", c.Player.MaxHealth, def.Player.MaxHealth)
		c.Player.MaxHealth = def.Player.MaxHealth
	}
	if c.Player.JumpForce <= 0 {
		warn("player.jump_force must be positive, using %.2f", def.Player.JumpForce)
		c.Player.JumpForce = def.Player.JumpForce
	}
	if c.Player.Gravity <= 0 {
		warn("player.gravity must be positive, using %.2f", def.Player.Gravity)
		c.Player.Gravity = def.Player.Gravity
	}
	if c.Player.InvincibleDuration <= 0 {
		warn("player.invincible_duration must be positive, using %.2f", def.Player.InvincibleDuration)
		c.Player.InvincibleDuration = def.Player.InvincibleDuration
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		warn("player size must be positive, using %.2fx%.2f", def.Player.Width, def.Player.Height)
		c.Player.Width = def.Player.Width
		c.Player.Height = def.Player.Height
	}

	if c.Spawner.MinDelay < 0 {
		warn("spawner.min_delay %.2f < 0, using 0", c.Spawner.MinDelay)
		c.Spawner.MinDelay = 0
	}
	if c.Spawner.MaxDelay < c.Spawner.MinDelay {
		warn("spawner.max_delay %.2f below min_delay, using %.2f", c.Spawner.MaxDelay, c.Spawner.MinDelay)
		c.Spawner.MaxDelay = c.Spawner.MinDelay
	}
	for i := range c.Spawner.Prefabs {
		p := &c.Spawner.Prefabs[i]
		if p.Width <= 0 || p.Height <= 0 {
			warn("spawner.prefabs[%d] (%s) size must be positive, using 1x1", i, p.Kind)
			p.Width, p.Height = 1, 1
		}
		if p.Speed < 0 {
			warn("spawner.prefabs[%d] (%s) speed %.2f < 0, using 0", i, p.Kind, p.Speed)
			p.Speed = 0
		}
	}
	if len(c.Spawner.Prefabs) == 0 {
		warn("spawner.prefabs is empty, nothing will spawn")
	}

	if c.Score.InvincibleMultiplier < 0 {
		warn("score.invincible_multiplier %.2f < 0, using 1", c.Score.InvincibleMultiplier)
		c.Score.InvincibleMultiplier = 1
	}

	if c.View.CellsPerUnit <= 0 {
		c.View.CellsPerUnit = def.View.CellsPerUnit
	}
	if c.View.RowsPerUnit <= 0 {
		c.View.RowsPerUnit = def.View.RowsPerUnit
	}
	if c.View.GroundOffset < 0 {
		c.View.GroundOffset = 0
	}
	if c.Display.DeathCheckDelay < 0 {
		c.Display.DeathCheckDelay = 0
	}

	return warnings
}

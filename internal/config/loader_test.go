package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("runner.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("decode embedded default: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig() drifted apart:\n yaml: %+v\n code: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadCustomYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("session:\n  max_speed: 20\nrules:\n  destroy_enemy_when_invincible: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Session.MaxSpeed != 20 {
		t.Errorf("MaxSpeed = %v, expected 20", cfg.Session.MaxSpeed)
	}
	if cfg.Rules.DestroyEnemyWhenInvincible {
		t.Error("DestroyEnemyWhenInvincible should be overridden to false")
	}
	// Untouched fields keep their defaults
	if cfg.Session.InitialSpeed != 5 {
		t.Errorf("InitialSpeed = %v, expected default 5", cfg.Session.InitialSpeed)
	}
	if len(cfg.Spawner.Prefabs) != 3 {
		t.Errorf("expected default prefabs, got %d", len(cfg.Spawner.Prefabs))
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.toml")
	data := []byte(`
[session]
initial_speed = 6.0

[spawner]
min_delay = 2.0
max_delay = 3.0

[[spawner.prefabs]]
kind = "enemy"
width = 1.0
height = 1.0
speed = 4.0
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Session.InitialSpeed != 6 {
		t.Errorf("InitialSpeed = %v, expected 6", cfg.Session.InitialSpeed)
	}
	if cfg.Spawner.MinDelay != 2 || cfg.Spawner.MaxDelay != 3 {
		t.Errorf("delays = %v..%v, expected 2..3", cfg.Spawner.MinDelay, cfg.Spawner.MaxDelay)
	}
	if len(cfg.Spawner.Prefabs) != 1 || cfg.Spawner.Prefabs[0].Kind != "enemy" {
		t.Errorf("prefabs = %+v, expected a single enemy", cfg.Spawner.Prefabs)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("session: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for invalid YAML")
	}
	if cfg.Session.InitialSpeed != 5 {
		t.Error("a failed load should still hand back the defaults")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{" fixed ", DifficultyFixed, false},
		{"normal", DifficultyNormal, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownPreset) {
				t.Errorf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Session.SpeedIncreaseRate != 0 {
		t.Errorf("fixed preset should disable the ramp, rate = %v", cfg.Session.SpeedIncreaseRate)
	}

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Session.InitialSpeed <= DefaultRunnerConfig().Session.InitialSpeed {
		t.Error("hard preset should start faster")
	}
	if cfg.Spawner.MaxDelay >= DefaultRunnerConfig().Spawner.MaxDelay {
		t.Error("hard preset should spawn more often")
	}

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("normal preset should leave the config untouched")
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Session.MaxSpeed = 1
	cfg.Session.SpeedIncreaseRate = -1
	cfg.Player.MaxHealth = 0
	cfg.Spawner.MinDelay = 2
	cfg.Spawner.MaxDelay = 1
	cfg.Spawner.Prefabs[0].Width = 0

	warnings := cfg.Normalize()

	if len(warnings) != 5 {
		t.Errorf("expected 5 warnings, got %d: %v", len(warnings), warnings)
	}
	if cfg.Session.MaxSpeed != cfg.Session.InitialSpeed {
		t.Errorf("MaxSpeed = %v, expected clamp to InitialSpeed", cfg.Session.MaxSpeed)
	}
	if cfg.Session.SpeedIncreaseRate != 0 {
		t.Errorf("SpeedIncreaseRate = %v, expected 0", cfg.Session.SpeedIncreaseRate)
	}
	if cfg.Player.MaxHealth != 3 {
		t.Errorf("MaxHealth = %d, expected default 3", cfg.Player.MaxHealth)
	}
	if cfg.Spawner.MaxDelay != 2 {
		t.Errorf("MaxDelay = %v, expected 2", cfg.Spawner.MaxDelay)
	}
	if cfg.Spawner.Prefabs[0].Width != 1 {
		t.Errorf("prefab width = %v, expected 1", cfg.Spawner.Prefabs[0].Width)
	}
}

func TestNormalizeDefaultsClean(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if warnings := cfg.Normalize(); len(warnings) != 0 {
		t.Errorf("defaults should normalize cleanly, got %v", warnings)
	}
}

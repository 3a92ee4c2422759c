package runner

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snack-runner/internal/config"
)

func fixedDelay(d float64) config.SpawnerConfig {
	return config.SpawnerConfig{MinDelay: d, MaxDelay: d}
}

func TestSpawnerSpawnsPastRightEdge(t *testing.T) {
	w := NewWorld()
	prefabs := []Prefab{{Kind: KindEnemy, Width: 1, Height: 1, Speed: 5}}
	s := NewSpawner(fixedDelay(1), prefabs, w, FixedBounds(10), 7, nil)

	if s.NextSpawnTime() != 1 {
		t.Fatalf("NextSpawnTime() = %v, want 1", s.NextSpawnTime())
	}
	if _, ok := s.Update(1); ok {
		t.Error("disabled spawner spawned")
	}

	s.SetEnabled(true)
	if _, ok := s.Update(0.5); ok {
		t.Error("spawned before the delay elapsed")
	}

	id, ok := s.Update(1)
	if !ok {
		t.Fatal("expected a spawn at t=1")
	}
	e, _ := w.Get(id)
	if e.X != 10.5 || e.Kind != KindEnemy || e.Speed != 5 {
		t.Errorf("spawned %+v, want enemy at x=10.5", e)
	}
	if s.NextSpawnTime() != 2 {
		t.Errorf("NextSpawnTime() = %v, want 2", s.NextSpawnTime())
	}

	// At most one spawn per update even when far behind.
	s.Update(100)
	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}
}

func TestSpawnerDelayRange(t *testing.T) {
	s := NewSpawner(config.SpawnerConfig{MinDelay: 1, MaxDelay: 1.5},
		[]Prefab{{Kind: KindFood, Width: 1, Height: 1, Speed: 5}}, NewWorld(), FixedBounds(10), 3, nil)
	s.SetEnabled(true)

	now := s.NextSpawnTime()
	for i := 0; i < 200; i++ {
		if _, ok := s.Update(now); !ok {
			t.Fatalf("iteration %d: no spawn at due time", i)
		}
		d := s.NextSpawnTime() - now
		if d < 1 || d > 1.5 {
			t.Fatalf("delay %v outside [1, 1.5]", d)
		}
		now = s.NextSpawnTime()
	}
}

func TestSpawnerEmptyPrefabsStillReschedules(t *testing.T) {
	w := NewWorld()
	s := NewSpawner(fixedDelay(1), nil, w, FixedBounds(10), 1, nil)
	s.SetEnabled(true)

	if _, ok := s.Update(1); ok {
		t.Error("spawned without prefabs")
	}
	if s.NextSpawnTime() != 2 {
		t.Errorf("NextSpawnTime() = %v, want 2", s.NextSpawnTime())
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}
}

func TestSpawnerMissingBounds(t *testing.T) {
	s := NewSpawner(fixedDelay(1), []Prefab{{Kind: KindFood}}, NewWorld(), nil, 1, nil)
	s.SetEnabled(true)

	if _, ok := s.Update(1); ok {
		t.Error("spawned without bounds")
	}
	if s.NextSpawnTime() != 2 {
		t.Errorf("NextSpawnTime() = %v, want rescheduled to 2", s.NextSpawnTime())
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	prefabs, _ := PrefabsFromConfig(config.DefaultRunnerConfig().Spawner.Prefabs)
	run := func() []Kind {
		w := NewWorld()
		s := NewSpawner(config.DefaultRunnerConfig().Spawner, prefabs, w, FixedBounds(10), 42, nil)
		s.SetEnabled(true)
		for now := 0.0; now < 60; now += 0.1 {
			s.Update(now)
		}
		var kinds []Kind
		for _, e := range w.Entities() {
			kinds = append(kinds, e.Kind)
		}
		return kinds
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs spawned %d and %d entities", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPrefabsFromConfig(t *testing.T) {
	prefabs, warnings := PrefabsFromConfig([]config.PrefabConfig{
		{Kind: "food", Width: 1},
		{Kind: "dragon"},
		{Kind: "Golden-Food"},
	})

	if len(prefabs) != 2 || prefabs[0].Kind != KindFood || prefabs[1].Kind != KindGoldenFood {
		t.Errorf("prefabs = %+v", prefabs)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want 1", warnings)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"food", KindFood, false},
		{" ENEMY ", KindEnemy, false},
		{"golden_food", KindGoldenFood, false},
		{"golden", KindGoldenFood, false},
		{"", 0, true},
		{"cactus", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestCullerRemovesOffscreenEntities(t *testing.T) {
	w := NewWorld()
	bounds := FixedBounds(10)
	s := NewSpawner(fixedDelay(1), []Prefab{{Kind: KindEnemy, Width: 1, Height: 1, Speed: 5}}, w, bounds, 1, nil)
	s.SetEnabled(true)
	c := NewCuller(w, bounds, nil)

	id, ok := s.Update(1)
	if !ok {
		t.Fatal("no spawn")
	}
	s.SetEnabled(false)

	removedAt := -1
	for step := 0; step < 1000; step++ {
		w.Move(0.1)
		before, _ := w.Get(id)
		if c.Sweep() > 0 {
			if before.Right() >= -10 {
				t.Fatalf("culled while right edge %v still on screen", before.Right())
			}
			removedAt = step
			break
		}
		if before.Right() < -10 {
			t.Fatalf("entity with right edge %v survived a sweep", before.Right())
		}
	}

	if removedAt < 0 {
		t.Fatal("entity never culled")
	}
	if _, ok := w.Get(id); ok {
		t.Error("culled entity still in world")
	}
	if c.Sweep() != 0 {
		t.Error("second sweep removed something")
	}
}

func TestCullerKeepsStationaryEntities(t *testing.T) {
	w := NewWorld()
	w.Insert(Entity{X: -50, Width: 1, Speed: 0})
	w.Insert(Entity{X: 0, Width: 1, Speed: 5})

	if n := NewCuller(w, FixedBounds(10), nil).Sweep(); n != 0 {
		t.Errorf("Sweep() = %d, want 0", n)
	}
}

package runner

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack-runner/internal/config"
)

// Prefab is a template the spawner stamps entities from.
type Prefab struct {
	Kind   Kind
	Width  float64
	Height float64
	Y      float64
	Speed  float64
}

// PrefabsFromConfig converts config prefabs, skipping unknown kinds.
// The returned warnings describe every skipped entry.
func PrefabsFromConfig(cfgs []config.PrefabConfig) ([]Prefab, []string) {
	prefabs := make([]Prefab, 0, len(cfgs))
	var warnings []string
	for _, c := range cfgs {
		kind, err := ParseKind(c.Kind)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		prefabs = append(prefabs, Prefab{
			Kind:   kind,
			Width:  c.Width,
			Height: c.Height,
			Y:      c.Y,
			Speed:  c.Speed,
		})
	}
	return prefabs, warnings
}

// Spawner drops one entity just past the right screen edge at random intervals.
// It only spawns while enabled; the session enables it while playing.
type Spawner struct {
	prefabs       []Prefab
	minDelay      float64
	maxDelay      float64
	bounds        Bounds
	world         *World
	rng           *rand.Rand
	nextSpawnTime float64
	enabled       bool
	logger        *log.Logger
}

// NewSpawner creates a disabled spawner whose first spawn is due one random
// delay after time zero.
func NewSpawner(cfg config.SpawnerConfig, prefabs []Prefab, world *World, bounds Bounds, seed int64, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = discardLogger()
	}
	maxDelay := cfg.MaxDelay
	if maxDelay < cfg.MinDelay {
		maxDelay = cfg.MinDelay
	}
	s := &Spawner{
		prefabs:  prefabs,
		minDelay: cfg.MinDelay,
		maxDelay: maxDelay,
		bounds:   bounds,
		world:    world,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
	}
	s.scheduleNext(0)
	return s
}

// SetEnabled turns spawning on or off. The pending spawn time is kept.
func (s *Spawner) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether the spawner is active.
func (s *Spawner) Enabled() bool {
	return s.enabled
}

// NextSpawnTime returns the time at which the next spawn check fires.
func (s *Spawner) NextSpawnTime() float64 {
	return s.nextSpawnTime
}

// Reseed restarts the random sequence and schedules from now.
func (s *Spawner) Reseed(seed int64, now float64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.scheduleNext(now)
}

// Update spawns at most one entity if the spawn time has come.
// It returns the spawned entity's ID, or false when nothing spawned.
func (s *Spawner) Update(now float64) (EntityID, bool) {
	if !s.enabled || now < s.nextSpawnTime {
		return 0, false
	}
	// The timer is resampled even when the spawn itself is skipped.
	defer s.scheduleNext(now)

	if len(s.prefabs) == 0 {
		s.logger.Debug("spawn skipped", "reason", "no prefabs configured")
		return 0, false
	}
	if s.bounds == nil || s.world == nil {
		s.logger.Warn("spawn skipped", "reason", "missing bounds or world")
		return 0, false
	}

	p := s.prefabs[s.rng.Intn(len(s.prefabs))]
	id := s.world.Insert(Entity{
		Kind:   p.Kind,
		X:      s.bounds.HalfWidth() + p.Width/2,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
		Speed:  p.Speed,
	})
	s.logger.Debug("spawned", "id", id, "kind", p.Kind, "at", now)
	return id, true
}

func (s *Spawner) scheduleNext(now float64) {
	delay := s.minDelay
	if s.maxDelay > s.minDelay {
		delay += s.rng.Float64() * (s.maxDelay - s.minDelay)
	}
	s.nextSpawnTime = now + delay
}

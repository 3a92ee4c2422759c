package runner

import (
	"github.com/vovakirdan/snack-runner/internal/core"
)

// EntityID identifies an entity for its whole lifetime. IDs are never reused.
type EntityID uint64

// Entity is a spawned actor moving left across the play field.
type Entity struct {
	ID     EntityID
	Kind   Kind
	X      float64 // Horizontal center
	Y      float64 // Bottom edge height above the ground
	Width  float64
	Height float64
	Speed  float64 // Leftward speed in units per second
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y+e.Height/2, e.Width, e.Height)
}

// Right returns the x-coordinate of the entity's right edge.
func (e Entity) Right() float64 {
	return e.X + e.Width/2
}

// World is the registry that owns every live entity.
// The spawner inserts into it; collision handling, the culler and the
// death purge remove from it.
type World struct {
	entities []*Entity
	nextID   EntityID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		entities: make([]*Entity, 0, 16),
		nextID:   1,
	}
}

// Insert takes ownership of e, assigns it a fresh ID and returns that ID.
func (w *World) Insert(e Entity) EntityID {
	e.ID = w.nextID
	w.nextID++
	w.entities = append(w.entities, &e)
	return e.ID
}

// Remove destroys the entity with the given ID.
// It reports false if the entity is already gone.
func (w *World) Remove(id EntityID) bool {
	for i, e := range w.entities {
		if e.ID == id {
			copy(w.entities[i:], w.entities[i+1:])
			w.entities[len(w.entities)-1] = nil
			w.entities = w.entities[:len(w.entities)-1]
			return true
		}
	}
	return false
}

// RemoveIf destroys every entity matching pred and returns how many went.
func (w *World) RemoveIf(pred func(e *Entity) bool) int {
	kept := w.entities[:0]
	removed := 0
	for _, e := range w.entities {
		if pred(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	return removed
}

// Purge destroys all entities and returns how many there were.
func (w *World) Purge() int {
	n := len(w.entities)
	for i := range w.entities {
		w.entities[i] = nil
	}
	w.entities = w.entities[:0]
	return n
}

// Get returns a copy of the entity with the given ID.
func (w *World) Get(id EntityID) (Entity, bool) {
	for _, e := range w.entities {
		if e.ID == id {
			return *e, true
		}
	}
	return Entity{}, false
}

// Move advances every entity leftward by its own speed.
func (w *World) Move(dt float64) {
	for _, e := range w.entities {
		e.X -= e.Speed * dt
	}
}

// Each calls fn for every live entity in spawn order. fn must not insert or
// remove entities.
func (w *World) Each(fn func(e Entity)) {
	for _, e := range w.entities {
		fn(*e)
	}
}

// Entities returns a snapshot of the live entities in spawn order.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	for i, e := range w.entities {
		out[i] = *e
	}
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

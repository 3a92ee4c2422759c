// Package runner implements Snack Runner: an endless side-scroller where the
// player collects food, dodges enemies and grabs golden food for a short
// invincibility window.
//
// The package owns the authoritative game state. Rendering targets a
// core.Screen; persistence, displays and animation are reached through small
// collaborator interfaces so the simulation stays deterministic and testable.
package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognized entity kinds.
var ErrUnknownKind = errors.New("runner: unknown entity kind")

// State is the session lifecycle phase.
type State int

const (
	StateIntro   State = iota // Waiting for the first start signal
	StatePlaying              // Score and speed advance, entities spawn
	StateDead                 // Frozen until a restart signal
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Kind tags what an entity does on contact with the player.
type Kind int

const (
	KindFood       Kind = iota // Restores one health point
	KindGoldenFood             // Grants invincibility
	KindEnemy                  // Costs one health point
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindGoldenFood:
		return "golden_food"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// ParseKind converts a config name into a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "food":
		return KindFood, nil
	case "golden_food", "golden-food", "goldenfood", "golden":
		return KindGoldenFood, nil
	case "enemy":
		return KindEnemy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// AnimState is the visual state signalled to the animation collaborator.
type AnimState int

const (
	AnimRun AnimState = iota
	AnimJump
	AnimLand
)

// String returns the name of the animation state.
func (a AnimState) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimLand:
		return "land"
	default:
		return "unknown"
	}
}

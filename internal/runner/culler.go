package runner

import (
	"github.com/charmbracelet/log"
)

// Culler removes entities that have fully left the screen on the left.
type Culler struct {
	bounds Bounds
	world  *World
	logger *log.Logger
}

// NewCuller creates a culler over the given world.
func NewCuller(world *World, bounds Bounds, logger *log.Logger) *Culler {
	if logger == nil {
		logger = discardLogger()
	}
	return &Culler{bounds: bounds, world: world, logger: logger}
}

// Sweep destroys every leftward-moving entity whose right edge is past the
// left screen edge, and returns how many were removed. Sweeping twice without
// movement in between removes nothing the second time.
func (c *Culler) Sweep() int {
	if c.bounds == nil || c.world == nil {
		c.logger.Warn("cull skipped", "reason", "missing bounds or world")
		return 0
	}

	left := -c.bounds.HalfWidth()
	removed := c.world.RemoveIf(func(e *Entity) bool {
		return e.Speed > 0 && e.Right() < left
	})
	if removed > 0 {
		c.logger.Debug("culled", "count", removed)
	}
	return removed
}

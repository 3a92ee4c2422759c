// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It has no external dependencies (in
// particular no Bubble Tea) so game logic stays pure and testable.
package core

// Rect is an integer, cell-aligned rectangle used when drawing on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// X and Y are the center; world Y grows upward from the ground line.
type Box struct {
	X, Y float64 // Center
	W, H float64 // Full width and height
}

// NewBox creates a box centered on (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W/2 }

// Bottom returns the y-coordinate of the lower edge.
func (b Box) Bottom() float64 { return b.Y - b.H/2 }

// Top returns the y-coordinate of the upper edge.
func (b Box) Top() float64 { return b.Y + b.H/2 }

// Overlaps reports whether two boxes share any area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	if b.Left() >= other.Right() || other.Left() >= b.Right() {
		return false
	}
	if b.Bottom() >= other.Top() || other.Bottom() >= b.Top() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

package runner

// ContactEvent is a change in ground contact reported by the body.
type ContactEvent int

const (
	ContactNone  ContactEvent = iota
	ContactBegin              // Touched the ground
	ContactEnd                // Left the ground
)

// Body is the player's vertical motion. It stands in for a physics engine:
// the only things the rest of the game observes are the jump impulse going in
// and ground contact events coming out.
type Body struct {
	Y        float64 // Height of the feet above the ground
	VY       float64 // Vertical velocity, positive is up
	gravity  float64
	grounded bool
}

// NewBody creates a body resting on the ground.
func NewBody(gravity float64) *Body {
	return &Body{gravity: gravity, grounded: true}
}

// Impulse sets the vertical velocity, keeping horizontal motion unchanged.
func (b *Body) Impulse(vy float64) {
	b.VY = vy
}

// Grounded reports whether the body currently touches the ground.
func (b *Body) Grounded() bool {
	return b.grounded
}

// Integrate advances the body by dt and reports a contact change, if any.
func (b *Body) Integrate(dt float64) ContactEvent {
	if b.grounded {
		if b.VY > 0 {
			b.grounded = false
			b.Y += b.VY * dt
			return ContactEnd
		}
		b.VY = 0
		return ContactNone
	}

	b.VY -= b.gravity * dt
	b.Y += b.VY * dt
	if b.Y <= 0 {
		b.Y = 0
		b.VY = 0
		b.grounded = true
		return ContactBegin
	}
	return ContactNone
}

// Reset puts the body back on the ground at rest.
func (b *Body) Reset() {
	b.Y = 0
	b.VY = 0
	b.grounded = true
}

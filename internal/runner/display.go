package runner

import "fmt"

// DeathPanel is the default DeathDisplay: it remembers what to draw on the
// end-of-run overlay.
type DeathPanel struct {
	visible   bool
	score     float64
	highScore float64
}

// Show implements DeathDisplay.
func (d *DeathPanel) Show(score, highScore float64) {
	d.visible = true
	d.score = score
	d.highScore = highScore
}

// Ready reports whether the panel has been activated.
func (d *DeathPanel) Ready() bool { return d.visible }

// Hide deactivates the panel.
func (d *DeathPanel) Hide() { d.visible = false }

// Visible reports whether the panel is shown.
func (d *DeathPanel) Visible() bool { return d.visible }

// Lines returns the panel text, top to bottom.
func (d *DeathPanel) Lines() []string {
	message := "NEW HIGH SCORE!"
	if d.score < d.highScore {
		message = "Better luck next time"
	}
	return []string{
		"GAME OVER",
		fmt.Sprintf("SCORE: %.0f", d.score),
		fmt.Sprintf("HIGH SCORE: %.0f", d.highScore),
		message,
		"[SPACE] play again",
	}
}

// IntroPanel is the default IntroDisplay.
type IntroPanel struct {
	visible bool
}

// SetVisible implements IntroDisplay.
func (p *IntroPanel) SetVisible(visible bool) { p.visible = visible }

// Visible reports whether the intro overlay is shown.
func (p *IntroPanel) Visible() bool { return p.visible }

// landHold is how long the land pose stays before running resumes.
const landHold = 0.15

// SpriteAnimator is the default Animator. It turns the discrete signals into
// a pose and a running-leg frame for the renderer.
type SpriteAnimator struct {
	state AnimState
	age   float64
}

// Play implements Animator.
func (a *SpriteAnimator) Play(state AnimState) {
	a.state = state
	a.age = 0
}

// Advance ages the current pose.
func (a *SpriteAnimator) Advance(dt float64) {
	a.age += dt
	if a.state == AnimLand && a.age >= landHold {
		a.state = AnimRun
		a.age = 0
	}
}

// Pose returns the pose to draw.
func (a *SpriteAnimator) Pose() AnimState { return a.state }

// LegFrame alternates between 0 and 1 while running.
func (a *SpriteAnimator) LegFrame() int {
	return int(a.age*8) % 2
}

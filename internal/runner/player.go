package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack-runner/internal/config"
	"github.com/vovakirdan/snack-runner/internal/core"
)

// MaxJumps is the jump budget between two ground contacts.
const MaxJumps = 2

// Contact is the outcome of the player touching an entity.
type Contact struct {
	Kind        Kind
	Destroy     bool // Whether the entity must be removed from the world
	HealthDelta int
}

// Player is the controlled runner: jump state, health and invincibility.
type Player struct {
	cfg      config.PlayerConfig
	score    config.ScoreConfig
	rules    config.RulesConfig
	session  *Session
	body     *Body
	animator Animator
	logger   *log.Logger

	health          int
	invincible      bool
	invincibleTimer float64
	jumpCount       int
	grounded        bool
	wasGrounded     bool
	anim            AnimState
}

// NewPlayer creates a player standing on the ground with full health.
func NewPlayer(cfg config.RunnerConfig, session *Session, animator Animator, logger *log.Logger) *Player {
	if logger == nil {
		logger = discardLogger()
	}
	if session == nil {
		logger.Warn("player has no session, jumps and deaths are ignored")
	}
	if animator == nil {
		logger.Debug("player has no animator, animation signals are dropped")
	}
	p := &Player{
		cfg:      cfg.Player,
		score:    cfg.Score,
		rules:    cfg.Rules,
		session:  session,
		body:     NewBody(cfg.Player.Gravity),
		animator: animator,
		logger:   logger,
	}
	p.ResetPlayer()
	return p
}

// ResetPlayer restores full health, clears invincibility and puts the player
// back on the ground.
func (p *Player) ResetPlayer() {
	p.health = p.cfg.MaxHealth
	p.invincible = false
	p.invincibleTimer = 0
	p.jumpCount = 0
	p.grounded = true
	p.wasGrounded = true
	p.body.Reset()
	p.signal(AnimRun)
}

// DecayInvincibility counts the invincibility timer down. It runs every step
// whatever the session state.
func (p *Player) DecayInvincibility(dt float64) {
	if !p.invincible {
		return
	}
	p.invincibleTimer -= dt
	if p.invincibleTimer > 0 {
		return
	}
	p.invincibleTimer = 0
	p.invincible = false
	if p.session != nil {
		p.session.SetScoreMultiplier(1)
	}
	p.logger.Debug("invincibility expired")
}

// HandleJump applies a jump press. The first jump needs ground contact, the
// second may happen in the air and spends the rest of the budget.
// It reports whether an impulse was applied.
func (p *Player) HandleJump(pressed bool) bool {
	if !pressed || p.session == nil || !p.session.IsPlaying() {
		return false
	}

	switch {
	case p.grounded:
		p.jump()
		p.jumpCount = 1
	case p.jumpCount < MaxJumps:
		p.jump()
		p.jumpCount = MaxJumps
	default:
		p.logger.Debug("jump ignored, budget spent", "jumps", p.jumpCount)
		return false
	}
	return true
}

func (p *Player) jump() {
	p.body.Impulse(p.cfg.JumpForce)
	p.grounded = false
	p.signal(AnimJump)
}

// UpdateLanding emits the land signal on the step after ground contact returns.
func (p *Player) UpdateLanding() {
	if !p.wasGrounded && p.grounded {
		p.signal(AnimLand)
	}
	p.wasGrounded = p.grounded
}

// OnGroundContact handles the start of ground contact.
func (p *Player) OnGroundContact() {
	p.grounded = true
	p.jumpCount = 0
}

// OnGroundContactLost handles leaving the ground. Falling looks like jumping.
func (p *Player) OnGroundContactLost() {
	p.grounded = false
	if p.anim != AnimJump {
		p.signal(AnimJump)
	}
}

func (p *Player) signal(a AnimState) {
	p.anim = a
	if p.animator != nil {
		p.animator.Play(a)
	}
}

// ModifyHealth changes health within [0, max]. Reaching zero ends the run
// immediately.
func (p *Player) ModifyHealth(delta int) {
	p.health = core.Clamp(p.health+delta, 0, p.cfg.MaxHealth)
	if p.health > 0 {
		return
	}
	if p.session == nil {
		p.logger.Warn("player died without a session")
		return
	}
	p.session.GameOver()
}

// ActivateInvincibility starts or refreshes the invincibility window.
func (p *Player) ActivateInvincibility() {
	p.invincible = true
	p.invincibleTimer = p.cfg.InvincibleDuration
	if p.session != nil {
		p.session.SetScoreMultiplier(p.score.InvincibleMultiplier)
	}
}

// Collide resolves contact with an entity and tells the caller whether the
// entity is consumed.
func (p *Player) Collide(e *Entity) Contact {
	c := Contact{Kind: e.Kind}

	switch e.Kind {
	case KindEnemy:
		if p.invincible {
			c.Destroy = p.rules.DestroyEnemyWhenInvincible
			if c.Destroy {
				p.record(e.Kind, false)
			}
			return c
		}
		p.record(e.Kind, true)
		c.Destroy = true
		c.HealthDelta = -1
		p.ModifyHealth(-1)

	case KindGoldenFood:
		p.record(e.Kind, false)
		p.ActivateInvincibility()
		p.addScore(p.score.GoldenBonus)
		c.Destroy = true

	case KindFood:
		p.record(e.Kind, false)
		before := p.health
		p.ModifyHealth(1)
		p.addScore(p.score.FoodBonus)
		c.HealthDelta = p.health - before
		c.Destroy = true
	}
	return c
}

func (p *Player) record(kind Kind, harmful bool) {
	if p.session != nil {
		p.session.recordContact(kind, harmful)
	}
}

func (p *Player) addScore(amount float64) {
	if p.session != nil {
		p.session.AddScore(amount)
	}
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.cfg.X, p.body.Y+p.cfg.Height/2, p.cfg.Width, p.cfg.Height)
}

// Body exposes the vertical motion driven by the physics step.
func (p *Player) Body() *Body { return p.body }

// Health returns the current health.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the health cap.
func (p *Player) MaxHealth() int { return p.cfg.MaxHealth }

// IsInvincible reports whether enemy contact is currently harmless.
func (p *Player) IsInvincible() bool { return p.invincible }

// InvincibleTimer returns the remaining invincibility time.
func (p *Player) InvincibleTimer() float64 { return p.invincibleTimer }

// JumpCount returns the jumps spent since the last ground contact.
func (p *Player) JumpCount() int { return p.jumpCount }

// IsGrounded reports whether the player stands on the ground.
func (p *Player) IsGrounded() bool { return p.grounded }

// Anim returns the last animation signal.
func (p *Player) Anim() AnimState { return p.anim }

package runner

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack-runner/internal/config"
	"github.com/vovakirdan/snack-runner/internal/core"
)

// Input is everything the simulation reads from the player in one step.
type Input struct {
	Jump    bool // Jump pressed this step
	Start   bool // Start requested from the intro screen
	Restart bool // Restart requested from the death screen
}

// Options carries the collaborators of a Game. Zero values get defaults,
// except Store: without one the high score lives only as long as the game.
type Options struct {
	Store    HighScoreStore
	Death    DeathDisplay
	Intro    IntroDisplay
	Animator Animator
	Bounds   Bounds
	Clock    Clock
	Seed     int64
	OnRunEnd func(RunSummary)
	Logger   *log.Logger
}

// Game wires the session, player, spawner and culler together and runs them
// in a fixed order every step.
type Game struct {
	cfg    config.RunnerConfig
	logger *log.Logger
	clock  Clock
	bounds Bounds

	viewport *Viewport
	world    *World
	deferred *Deferred
	spawner  *Spawner
	culler   *Culler
	session  *Session
	player   *Player

	deathPanel *DeathPanel
	introPanel *IntroPanel
	sprite     *SpriteAnimator

	now    float64
	scroll float64 // Background offset in world units
}

// New creates a game in the Intro state.
func New(cfg config.RunnerConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	for _, w := range cfg.Normalize() {
		logger.Warn("config adjusted", "detail", w)
	}

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		clock:    opts.Clock,
		world:    NewWorld(),
		deferred: &Deferred{},
		viewport: &Viewport{
			Cols:         80,
			Rows:         24,
			CellsPerUnit: cfg.View.CellsPerUnit,
			RowsPerUnit:  cfg.View.RowsPerUnit,
		},
	}
	if g.clock == nil {
		g.clock = NewFixedClock(60)
	}

	g.bounds = opts.Bounds
	if g.bounds == nil {
		g.bounds = g.viewport
	}

	death := opts.Death
	if death == nil {
		g.deathPanel = &DeathPanel{}
		death = g.deathPanel
	} else if p, ok := death.(*DeathPanel); ok {
		g.deathPanel = p
	}

	intro := opts.Intro
	if intro == nil {
		g.introPanel = &IntroPanel{}
		intro = g.introPanel
	} else if p, ok := intro.(*IntroPanel); ok {
		g.introPanel = p
	}

	animator := opts.Animator
	if animator == nil {
		g.sprite = &SpriteAnimator{}
		animator = g.sprite
	} else if s, ok := animator.(*SpriteAnimator); ok {
		g.sprite = s
	}

	prefabs, warnings := PrefabsFromConfig(cfg.Spawner.Prefabs)
	for _, w := range warnings {
		logger.Warn("prefab skipped", "error", w)
	}

	g.spawner = NewSpawner(cfg.Spawner, prefabs, g.world, g.bounds, opts.Seed, logger.WithPrefix("spawner"))
	g.culler = NewCuller(g.world, g.bounds, logger.WithPrefix("culler"))
	g.session = NewSession(cfg.Session, SessionDeps{
		World:           g.world,
		Spawner:         g.spawner,
		Deferred:        g.deferred,
		Store:           opts.Store,
		Intro:           intro,
		Death:           death,
		DeathCheckDelay: cfg.Display.DeathCheckDelay,
		OnRunEnd:        opts.OnRunEnd,
		Logger:          logger.WithPrefix("session"),
	})
	g.player = NewPlayer(cfg, g.session, animator, logger.WithPrefix("player"))

	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "snackrunner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snack Runner"
}

// Resize updates the default viewport to a new terminal size.
func (g *Game) Resize(cols, rows int) {
	g.viewport.Resize(cols, rows)
}

// Start begins the first run with a fresh player. Only honored in the Intro state.
func (g *Game) Start() bool {
	if g.session.State() != StateIntro {
		return false
	}
	g.player.ResetPlayer()
	g.session.StartGame()
	return true
}

// Restart resets the player and begins a new run. Only honored when dead.
func (g *Game) Restart() bool {
	if g.session.State() != StateDead {
		return false
	}
	if g.deathPanel != nil {
		g.deathPanel.Hide()
	}
	g.player.ResetPlayer()
	g.session.StartGame()
	return true
}

// Step advances one tick of the game clock using platform input.
// The jump key doubles as the start and restart key.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	input := Input{Jump: in.Has(core.ActionJump)}
	switch g.session.State() {
	case StateIntro:
		input.Start = input.Jump
		input.Jump = false
	case StateDead:
		input.Restart = input.Jump || in.Has(core.ActionRestart)
		input.Jump = false
	}
	return g.Advance(g.clock.Tick(), input)
}

// Advance runs one simulation step. The order is fixed:
// deferred callbacks, start/restart, invincibility decay, jump, session,
// spawn, movement and ground contact, collisions, culling.
func (g *Game) Advance(t Tick, in Input) core.StepResult {
	dt := math.Max(0, t.DT)
	g.now = t.Now

	g.deferred.RunDue(t.Now)

	if in.Start {
		g.Start()
	}
	if in.Restart {
		g.Restart()
	}

	g.player.DecayInvincibility(dt)
	g.player.HandleJump(in.Jump)
	g.player.UpdateLanding()

	g.session.Advance(t)
	g.spawner.Update(t.Now)

	g.world.Move(dt)
	switch g.player.Body().Integrate(dt) {
	case ContactBegin:
		g.player.OnGroundContact()
	case ContactEnd:
		g.player.OnGroundContactLost()
	}

	g.resolveCollisions()
	g.culler.Sweep()

	if g.session.IsPlaying() {
		g.scroll += g.session.Speed() * dt
	}
	if g.sprite != nil {
		g.sprite.Advance(dt)
	}

	return core.StepResult{State: g.State()}
}

// resolveCollisions applies every overlap between the player and an entity.
// A death mid-sweep purges the world, so the sweep stops there.
func (g *Game) resolveCollisions() {
	if g.world.Len() == 0 {
		return
	}
	pb := g.player.Box()
	for _, e := range g.world.Entities() {
		if !pb.Overlaps(e.Box()) {
			continue
		}
		c := g.player.Collide(&e)
		if c.Destroy {
			g.world.Remove(e.ID)
		}
		if g.session.State() == StateDead {
			return
		}
	}
}

// State returns the snapshot the platform polls after each step.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.session.State().String(),
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Health:    g.player.Health(),
		GameOver:  g.session.State() == StateDead,
	}
}

// Session returns the session state machine.
func (g *Game) Session() *Session { return g.session }

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// World returns the entity registry.
func (g *Game) World() *World { return g.world }

// Spawner returns the spawner.
func (g *Game) Spawner() *Spawner { return g.spawner }

// Deferred returns the deferred callback queue.
func (g *Game) Deferred() *Deferred { return g.deferred }

// DeathPanel returns the built-in death panel, or nil if a custom display is used.
func (g *Game) DeathPanel() *DeathPanel { return g.deathPanel }

// Now returns the time of the last step.
func (g *Game) Now() float64 { return g.now }

package snake

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebite/internal/config"
	"github.com/vovakirdan/snakebite/internal/core"
	"github.com/vovakirdan/snakebite/internal/effects"
	"github.com/vovakirdan/snakebite/internal/registry"
)

// Variant ids.
const (
	IDTorus  = "snakebite"
	IDWalled = "snakebite_walled"
)

// Package-level settings applied on the next Reset (set from CLI flags).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register(IDTorus, func() registry.Game {
		return New()
	})
	registry.Register(IDWalled, func() registry.Game {
		return NewWalled()
	})
}

// Game adapts a Loop to the registry.Game interface and owns its
// presentation state: the particle system and the last published snapshot.
type Game struct {
	id    string
	title string
	wrap  bool

	cfg    config.SnakeConfig
	loop   *Loop
	fx     *effects.System
	view   snapshotView
	logger *log.Logger
}

// New creates the toroidal variant.
func New() *Game {
	return &Game{id: IDTorus, title: "Snakebite", wrap: true, cfg: config.DefaultSnakeConfig()}
}

// NewWalled creates the variant whose board edges are walls.
func NewWalled() *Game {
	return &Game{id: IDWalled, title: "Snakebite (Walled)", wrap: false, cfg: config.DefaultSnakeConfig()}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.wrap {
		return "Edges wrap around. Avoid yourself and the enemy's bite."
	}
	return "Edges are walls. Avoid them, yourself and the enemy's bite."
}

// TickPeriod returns the simulation period from the loaded config.
func (g *Game) TickPeriod() time.Duration {
	return g.cfg.TickPeriod()
}

// Reset loads configuration and builds a fresh loop wired to env.
// Config problems are logged and the defaults are used instead.
func (g *Game) Reset(rc core.RuntimeConfig, env registry.Env) {
	g.logger = orDiscard(env.Logger)
	g.cfg = g.loadConfig()

	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	g.fx = effects.New(g.cfg.Effects, uint64(rc.Seed)+1)
	g.view = snapshotView{}
	g.loop = NewLoop(LoopOptions{
		Config:    g.cfg,
		Seed:      rc.Seed,
		Scheduler: env.Scheduler,
		Store:     env.Store,
		Effects:   g.fx,
		Renderer:  &g.view,
		Logger:    g.logger,
	})

	g.logger.Debug("game reset", "id", g.id, "seed", rc.Seed, "board", g.cfg.Board.Size, "tick", g.cfg.TickPeriod())
}

func (g *Game) loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultSnakeConfig()
	}

	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		g.logger.Warn("ignoring difficulty", "error", err)
		preset = config.DifficultyNormal
	}
	config.ApplySnakePreset(&cfg, preset)

	cfg.Board.Wrap = g.wrap
	return cfg
}

// HandleInput starts a run on any key while stopped, and steers while running.
// The key that starts a run is not applied as a heading.
func (g *Game) HandleInput(in core.InputFrame) core.StepResult {
	if in.Empty() || in.Has(core.ActionQuit) {
		return core.StepResult{State: g.loop.State()}
	}

	if g.loop.Phase() != PhaseRunning {
		g.fx.Reset()
		g.loop.Start()
		return core.StepResult{State: g.loop.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.loop.Steer(Up)
	case in.Has(core.ActionDown):
		g.loop.Steer(Down)
	case in.Has(core.ActionLeft):
		g.loop.Steer(Left)
	case in.Has(core.ActionRight):
		g.loop.Steer(Right)
	}
	return core.StepResult{State: g.loop.State()}
}

// Step advances the simulation by one tick.
func (g *Game) Step() core.StepResult {
	res := g.loop.Tick()
	return core.StepResult{State: g.loop.State(), Ended: res.Ended}
}

// Animate advances the particle system by one frame.
func (g *Game) Animate() {
	g.fx.Update()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.loop.State()
}

// Snapshot returns the latest published world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.view.last
}

// snapshotView keeps the most recent snapshot published by the loop.
type snapshotView struct {
	last  Snapshot
	count int
}

func (v *snapshotView) Render(snap Snapshot) {
	v.last = snap
	v.count++
}

package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/snakebite/internal/config"
	"github.com/vovakirdan/snakebite/internal/core"
)

// Renderer receives a snapshot after every reset and every tick.
type Renderer interface {
	Render(snap Snapshot)
}

// Effects receives a one-way notification when food is eaten.
// Coordinates are in pixels: cell times tile size.
type Effects interface {
	Burst(x, y float64)
}

// LoopOptions wires a Loop to its collaborators. Nil collaborators are
// replaced with no-ops.
type LoopOptions struct {
	Config    config.SnakeConfig
	Seed      int64
	Scheduler core.Scheduler
	Store     core.KeyValueStore
	Effects   Effects
	Renderer  Renderer
	Logger    *log.Logger
	Now       func() time.Time
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Ate   bool     // The player ate food
	Ended bool     // The run ended on this tick
	Cause EndCause // Why it ended
}

// Loop is the game state machine. It owns the world and drives one tick at
// a time; it never blocks and is not safe for concurrent use.
type Loop struct {
	world World

	wrap     bool
	tileSize int
	labelFor time.Duration

	rng    *rand.Rand
	enemy  *EnemyController
	scores *ScoreKeeper

	sched    core.Scheduler
	effects  Effects
	renderer Renderer
	logger   *log.Logger
	now      func() time.Time

	labelUntil time.Time
}

// NewLoop creates a loop in the idle phase with the initial layout in place.
func NewLoop(opts LoopOptions) *Loop {
	cfg := opts.Config
	logger := orDiscard(opts.Logger)

	rng := rand.New(rand.NewSource(uint64(opts.Seed)))

	l := &Loop{
		wrap:     cfg.Board.Wrap,
		tileSize: cfg.Board.TileSize,
		labelFor: cfg.LabelDuration(),
		rng:      rng,
		enemy:    NewEnemyController(rng, cfg.Enemy.TurnProbability),
		scores:   NewScoreKeeper(opts.Store, logger),
		sched:    opts.Scheduler,
		effects:  opts.Effects,
		renderer: opts.Renderer,
		logger:   logger,
		now:      opts.Now,
	}
	if l.sched == nil {
		l.sched = nopScheduler{}
	}
	if l.effects == nil {
		l.effects = nopEffects{}
	}
	if l.renderer == nil {
		l.renderer = nopRenderer{}
	}
	if l.now == nil {
		l.now = time.Now
	}

	l.reset(cfg.Board.Size)
	return l
}

// reset restores the initial layout, spawns food and shows the player label.
func (l *Loop) reset(size int) {
	l.world = layout(size)
	l.world.Food = SpawnFood(l.rng, l.world.Player, size)
	l.labelUntil = l.now().Add(l.labelFor)
	l.publish()
}

// Start begins a new run from the idle or game-over phase.
// It reports false if a run is already in progress.
func (l *Loop) Start() bool {
	if l.world.Phase == PhaseRunning {
		return false
	}

	l.reset(l.world.Size)
	l.world.Phase = PhaseRunning
	l.sched.Start()

	l.logger.Info("run started", "best", l.scores.Best())
	return true
}

// Steer queues a heading for the next tick. Reversals of the current
// heading are never queued, and input outside a run is ignored.
func (l *Loop) Steer(h Heading) bool {
	if l.world.Phase != PhaseRunning || Opposite(h, l.world.Heading) {
		return false
	}
	l.world.Next = h
	return true
}

// Tick advances the world by one step. Ticks outside a run do nothing.
func (l *Loop) Tick() TickResult {
	w := &l.world
	if w.Phase != PhaseRunning {
		return TickResult{}
	}
	w.Ticks++

	w.Heading = w.Next

	var head core.Point
	if l.wrap {
		head = Advance(w.Player, w.Heading, w.Size)
	} else {
		head = AdvanceBounded(w.Player, w.Heading)
	}

	switch {
	case IsWallCollision(head, w.Size):
		return l.end(CauseWall)
	case IsSelfCollision(head, w.Player):
		return l.end(CauseSelf)
	}

	ate := head == w.Food
	w.Player = Slither(w.Player, head, ate)
	if ate {
		l.eat()
	}

	w.EnemyHeading = l.enemy.Steer(w.EnemyHeading)
	w.Enemy = Slither(w.Enemy, Advance(w.Enemy, w.EnemyHeading, w.Size), false)

	l.logger.Debug("tick", "n", w.Ticks, "head", head, "enemy", w.Enemy[0])

	if EnemyBitesPlayer(w.Enemy, w.Player) {
		res := l.end(CauseBitten)
		res.Ate = ate
		return res
	}

	l.publish()
	return TickResult{Ate: ate}
}

// eat handles a consumed food cell: score, best score, effects, respawn.
func (l *Loop) eat() {
	w := &l.world
	w.Score++

	if l.scores.Observe(w.Score) {
		l.logger.Debug("new best score", "score", w.Score)
	}

	px := w.Food.Scale(l.tileSize)
	l.effects.Burst(float64(px.X), float64(px.Y))

	w.Food = SpawnFood(l.rng, w.Player, w.Size)
}

// end freezes the world and stops the tick source.
func (l *Loop) end(cause EndCause) TickResult {
	l.world.Phase = PhaseGameOver
	l.world.Cause = cause
	l.sched.Stop()

	l.logger.Info("game over", "cause", cause, "score", l.world.Score, "ticks", l.world.Ticks)
	l.publish()
	return TickResult{Ended: true, Cause: cause}
}

func (l *Loop) publish() {
	l.renderer.Render(l.Snapshot())
}

// Snapshot returns a read-only copy of the current world.
func (l *Loop) Snapshot() Snapshot {
	return l.world.snapshot(l.scores.Best(), l.LabelVisible())
}

// LabelVisible reports whether the player label is still on screen.
func (l *Loop) LabelVisible() bool {
	return l.now().Before(l.labelUntil)
}

// Phase returns the current loop phase.
func (l *Loop) Phase() Phase {
	return l.world.Phase
}

// State returns the platform-facing game state.
func (l *Loop) State() core.GameState {
	return core.GameState{
		Score:    l.world.Score,
		Best:     l.scores.Best(),
		Ticks:    l.world.Ticks,
		Running:  l.world.Phase == PhaseRunning,
		GameOver: l.world.Phase == PhaseGameOver,
	}
}

type nopScheduler struct{}

func (nopScheduler) Start() {}
func (nopScheduler) Stop()  {}

type nopEffects struct{}

func (nopEffects) Burst(float64, float64) {}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}

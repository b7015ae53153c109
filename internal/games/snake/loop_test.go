package snake

import (
	"errors"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/snakebite/internal/config"
	"github.com/vovakirdan/snakebite/internal/core"
)

type fakeScheduler struct {
	starts, stops int
}

func (s *fakeScheduler) Start() { s.starts++ }
func (s *fakeScheduler) Stop()  { s.stops++ }

type fakeEffects struct {
	bursts [][2]float64
}

func (e *fakeEffects) Burst(x, y float64) {
	e.bursts = append(e.bursts, [2]float64{x, y})
}

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (r *countingRenderer) Render(s Snapshot) {
	r.frames++
	r.last = s
}

type memStore struct {
	values map[string]string
	err    error
}

func (m *memStore) Get(key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

type harness struct {
	loop     *Loop
	sched    *fakeScheduler
	fx       *fakeEffects
	renderer *countingRenderer
	store    *memStore
	now      time.Time
}

// newHarness builds a loop with a still enemy and a controllable clock.
func newHarness(t *testing.T, mutate func(*config.SnakeConfig)) *harness {
	t.Helper()

	cfg := config.DefaultSnakeConfig()
	cfg.Enemy.TurnProbability = 0
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		sched:    &fakeScheduler{},
		fx:       &fakeEffects{},
		renderer: &countingRenderer{},
		store:    &memStore{},
		now:      time.Unix(1_700_000_000, 0),
	}
	h.loop = NewLoop(LoopOptions{
		Config:    cfg,
		Seed:      42,
		Scheduler: h.sched,
		Store:     h.store,
		Effects:   h.fx,
		Renderer:  h.renderer,
		Now:       func() time.Time { return h.now },
	})
	return h
}

// place starts a run and puts the player on row 5 heading right, with
// food out of the way.
func (h *harness) place() {
	h.loop.Start()
	w := &h.loop.world
	w.Player = []core.Point{{X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}
	w.Heading, w.Next = Right, Right
	w.Food = core.Point{X: 0, Y: 0}
}

func TestInitialLayout(t *testing.T) {
	h := newHarness(t, nil)
	snap := h.loop.Snapshot()

	if snap.Phase != PhaseIdle {
		t.Errorf("phase = %v, expected idle", snap.Phase)
	}
	wantPlayer := []core.Point{{X: 3, Y: 17}, {X: 2, Y: 17}, {X: 1, Y: 17}}
	if !slices.Equal(snap.Player, wantPlayer) {
		t.Errorf("player = %v, expected %v", snap.Player, wantPlayer)
	}
	wantEnemy := []core.Point{{X: 17, Y: 2}, {X: 18, Y: 2}, {X: 19, Y: 2}}
	if !slices.Equal(snap.Enemy, wantEnemy) {
		t.Errorf("enemy = %v, expected %v", snap.Enemy, wantEnemy)
	}
	if snap.Heading != Right || h.loop.world.EnemyHeading != Down {
		t.Errorf("headings = %v/%v, expected right/down", snap.Heading, h.loop.world.EnemyHeading)
	}
	if IsSelfCollision(snap.Food, snap.Player) {
		t.Errorf("food %v spawned on the player", snap.Food)
	}
	if snap.Score != 0 || !snap.ShowLabel {
		t.Errorf("score = %d, label = %v; expected 0 and visible", snap.Score, snap.ShowLabel)
	}
	if h.renderer.frames != 1 {
		t.Errorf("renderer called %d times on construction, expected 1", h.renderer.frames)
	}
}

func TestTickIgnoredWhenNotRunning(t *testing.T) {
	h := newHarness(t, nil)
	before := h.loop.Snapshot()

	if res := h.loop.Tick(); res != (TickResult{}) {
		t.Errorf("Tick() while idle = %+v, expected zero result", res)
	}
	if after := h.loop.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("idle tick changed the world")
	}
}

func TestStartTwiceIsRejected(t *testing.T) {
	h := newHarness(t, nil)
	if !h.loop.Start() {
		t.Fatal("first Start() should succeed")
	}
	if h.loop.Start() {
		t.Error("Start() while running should be rejected")
	}
	if h.sched.starts != 1 {
		t.Errorf("scheduler started %d times, expected 1", h.sched.starts)
	}
}

func TestStraightMove(t *testing.T) {
	h := newHarness(t, nil)
	h.place()

	res := h.loop.Tick()
	if res.Ended || res.Ate {
		t.Fatalf("unexpected tick result %+v", res)
	}

	want := []core.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}
	if got := h.loop.world.Player; !slices.Equal(got, want) {
		t.Errorf("player = %v, expected %v", got, want)
	}
	if h.loop.world.Score != 0 {
		t.Errorf("score = %d, expected 0", h.loop.world.Score)
	}
}

func TestEatFood(t *testing.T) {
	h := newHarness(t, nil)
	h.place()
	h.loop.world.Food = core.Point{X: 4, Y: 5}

	res := h.loop.Tick()
	if !res.Ate {
		t.Fatal("expected the player to eat")
	}

	w := h.loop.world
	if len(w.Player) != 4 {
		t.Errorf("length = %d, expected 4", len(w.Player))
	}
	if w.Score != 1 {
		t.Errorf("score = %d, expected 1", w.Score)
	}
	if IsSelfCollision(w.Food, w.Player) {
		t.Errorf("new food %v is on the player", w.Food)
	}
	if len(h.fx.bursts) != 1 || h.fx.bursts[0] != [2]float64{80, 100} {
		t.Errorf("bursts = %v, expected one at (80,100)", h.fx.bursts)
	}
	if got := h.store.values[BestScoreKey]; got != "1" {
		t.Errorf("stored best = %q, expected \"1\"", got)
	}
	if snap := h.loop.Snapshot(); snap.Best != 1 {
		t.Errorf("snapshot best = %d, expected 1", snap.Best)
	}
}

func TestNoReversal(t *testing.T) {
	h := newHarness(t, nil)
	h.place()

	if h.loop.Steer(Left) {
		t.Error("Steer(Left) while heading right should be rejected")
	}
	h.loop.Tick()
	if h.loop.world.Heading != Right {
		t.Errorf("heading = %v, expected right", h.loop.world.Heading)
	}
}

func TestSteerCommitsOnTick(t *testing.T) {
	h := newHarness(t, nil)
	h.place()

	if !h.loop.Steer(Up) {
		t.Fatal("Steer(Up) should be accepted")
	}
	if h.loop.world.Heading != Right {
		t.Error("heading changed before the tick")
	}

	h.loop.Tick()
	if h.loop.world.Heading != Up {
		t.Errorf("heading = %v, expected up", h.loop.world.Heading)
	}
	if head := h.loop.world.Player[0]; head != (core.Point{X: 3, Y: 4}) {
		t.Errorf("head = %v, expected (3,4)", head)
	}
}

func TestSteerIgnoredWhenIdle(t *testing.T) {
	h := newHarness(t, nil)
	if h.loop.Steer(Up) {
		t.Error("Steer() while idle should be ignored")
	}
}

func TestTailChaseIsFatal(t *testing.T) {
	h := newHarness(t, nil)
	h.place()

	w := &h.loop.world
	// Head at (4,5) came up from (4,6); the tail sits at (5,5).
	w.Player = []core.Point{{X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}}
	w.Heading, w.Next = Up, Up
	enemyBefore := slices.Clone(w.Enemy)

	h.loop.Steer(Right)
	res := h.loop.Tick()

	if !res.Ended || res.Cause != CauseSelf {
		t.Fatalf("result = %+v, expected self collision", res)
	}
	if h.loop.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", h.loop.Phase())
	}
	if !slices.Equal(w.Enemy, enemyBefore) {
		t.Error("enemy moved on a tick that ended in self collision")
	}
	if h.sched.stops != 1 {
		t.Errorf("scheduler stopped %d times, expected 1", h.sched.stops)
	}
}

func TestEnemyBiteEndsGame(t *testing.T) {
	h := newHarness(t, nil)
	h.place()

	w := &h.loop.world
	w.Enemy = []core.Point{{X: 3, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 2}}
	w.EnemyHeading = Down

	res := h.loop.Tick()
	if !res.Ended || res.Cause != CauseBitten {
		t.Fatalf("result = %+v, expected a bite", res)
	}
	if h.sched.stops != 1 {
		t.Errorf("scheduler stopped %d times, expected 1", h.sched.stops)
	}

	frozen := h.loop.Snapshot()
	h.loop.Tick()
	if after := h.loop.Snapshot(); !reflect.DeepEqual(frozen, after) {
		t.Error("world changed after game over")
	}
	if h.renderer.last.Phase != PhaseGameOver || h.renderer.last.Cause != CauseBitten {
		t.Errorf("renderer saw %v/%v, expected game over by bite", h.renderer.last.Phase, h.renderer.last.Cause)
	}
}

func TestPlayerMayCrossEnemyBody(t *testing.T) {
	h := newHarness(t, nil)
	h.place()

	w := &h.loop.world
	// The enemy body lies across the player's path but its head moves away.
	w.Enemy = []core.Point{{X: 4, Y: 7}, {X: 4, Y: 6}, {X: 4, Y: 5}}
	w.EnemyHeading = Down

	if res := h.loop.Tick(); res.Ended {
		t.Fatalf("moving onto the enemy body ended the run: %+v", res)
	}
}

func TestEnemyLengthInvariant(t *testing.T) {
	h := newHarness(t, func(c *config.SnakeConfig) {
		c.Enemy.TurnProbability = 0.2
	})
	h.loop.Start()

	for i := 0; i < 500 && h.loop.Phase() == PhaseRunning; i++ {
		before := len(h.loop.world.Player)
		res := h.loop.Tick()
		if n := len(h.loop.world.Enemy); n != 3 {
			t.Fatalf("tick %d: enemy length %d, expected 3", i, n)
		}
		if !res.Ended {
			after := len(h.loop.world.Player)
			if res.Ate && after != before+1 || !res.Ate && after != before {
				t.Fatalf("tick %d: player length %d -> %d (ate=%v)", i, before, after, res.Ate)
			}
		}
		for _, p := range h.loop.world.Enemy {
			if !p.In(h.loop.world.Size) {
				t.Fatalf("tick %d: enemy cell %v off the board", i, p)
			}
		}
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	h := newHarness(t, nil)
	h.place()
	h.loop.world.Score = 9
	h.loop.end(CauseWall)

	if !h.loop.Start() {
		t.Fatal("Start() after game over should succeed")
	}
	w := h.loop.world
	if w.Score != 0 || w.Phase != PhaseRunning || w.Cause != CauseNone || w.Ticks != 0 {
		t.Errorf("world not reset: %+v", w)
	}
	if w.Player[0] != (core.Point{X: 3, Y: 17}) {
		t.Errorf("player head = %v, expected initial layout", w.Player[0])
	}
	if h.sched.starts != 2 {
		t.Errorf("scheduler started %d times, expected 2", h.sched.starts)
	}
}

func TestWallCollisionWhenNotWrapping(t *testing.T) {
	tests := []struct {
		name    string
		wrap    bool
		ended   bool
		wantPos core.Point
	}{
		{"torus wraps", true, false, core.Point{X: 0, Y: 5}},
		{"walled stops", false, true, core.Point{X: 19, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(c *config.SnakeConfig) { c.Board.Wrap = tt.wrap })
			h.place()
			h.loop.world.Player = []core.Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}}

			res := h.loop.Tick()
			if res.Ended != tt.ended {
				t.Fatalf("ended = %v, expected %v", res.Ended, tt.ended)
			}
			if tt.ended && res.Cause != CauseWall {
				t.Errorf("cause = %v, expected wall", res.Cause)
			}
			if head := h.loop.world.Player[0]; head != tt.wantPos {
				t.Errorf("head = %v, expected %v", head, tt.wantPos)
			}
		})
	}
}

func TestLabelTiming(t *testing.T) {
	h := newHarness(t, nil)
	if !h.loop.LabelVisible() {
		t.Fatal("label should be visible right after reset")
	}

	h.now = h.now.Add(999 * time.Millisecond)
	if !h.loop.LabelVisible() {
		t.Error("label should still be visible before one second")
	}

	h.now = h.now.Add(time.Millisecond)
	if h.loop.LabelVisible() {
		t.Error("label should be hidden after one second")
	}

	h.loop.Start()
	if !h.loop.Snapshot().ShowLabel {
		t.Error("label should reappear after a restart")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(t, func(c *config.SnakeConfig) { c.Enemy.TurnProbability = 0.2 })
		h.loop.Start()
		for i := 0; i < 60; i++ {
			switch i {
			case 5:
				h.loop.Steer(Up)
			case 12:
				h.loop.Steer(Right)
			case 30:
				h.loop.Steer(Down)
			}
			h.loop.Tick()
		}
		return h.loop.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different worlds:\n%+v\n%+v", a, b)
	}
}

func TestScoreKeeper(t *testing.T) {
	tests := []struct {
		name     string
		store    *memStore
		wantBest int
	}{
		{"empty store", &memStore{}, 0},
		{"stored value", &memStore{values: map[string]string{BestScoreKey: "12"}}, 12},
		{"malformed value", &memStore{values: map[string]string{BestScoreKey: "abc"}}, 0},
		{"negative value", &memStore{values: map[string]string{BestScoreKey: "-3"}}, 0},
		{"read error", &memStore{err: errors.New("disk on fire")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewScoreKeeper(tt.store, nil)
			if k.Best() != tt.wantBest {
				t.Errorf("Best() = %d, expected %d", k.Best(), tt.wantBest)
			}
		})
	}
}

func TestScoreKeeperPersistsOnlyNewBest(t *testing.T) {
	store := &memStore{values: map[string]string{BestScoreKey: "3"}}
	k := NewScoreKeeper(store, nil)

	if k.Observe(2) || k.Observe(3) {
		t.Error("scores not above the best should not count")
	}
	if store.values[BestScoreKey] != "3" {
		t.Errorf("stored = %q, expected unchanged \"3\"", store.values[BestScoreKey])
	}

	if !k.Observe(4) {
		t.Error("4 should be a new best")
	}
	if store.values[BestScoreKey] != "4" || k.Best() != 4 {
		t.Errorf("stored = %q, best = %d; expected 4", store.values[BestScoreKey], k.Best())
	}
}

func TestScoreKeeperSurvivesWriteErrors(t *testing.T) {
	store := &memStore{}
	k := NewScoreKeeper(store, nil)
	store.err = errors.New("read-only")

	if !k.Observe(5) || k.Best() != 5 {
		t.Error("a failed write should still update the in-memory best")
	}
}

func TestNilCollaborators(t *testing.T) {
	l := NewLoop(LoopOptions{Config: config.DefaultSnakeConfig(), Seed: 1})
	l.Start()
	for i := 0; i < 10; i++ {
		l.Tick()
	}
	if l.State().Ticks == 0 {
		t.Error("loop without collaborators did not tick")
	}
}

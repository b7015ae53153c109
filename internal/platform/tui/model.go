package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebite/internal/core"
	"github.com/vovakirdan/snakebite/internal/registry"
	"github.com/vovakirdan/snakebite/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
//
// Two clocks drive it: the game's scheduler delivers simulation ticks at
// the game's fixed period, and an independent frame clock at cfg.FPS
// advances animations. Update is the only place the game is touched.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	sched     *tickScheduler
	keys      *KeyMapper
	logger    *log.Logger
	config    core.RuntimeConfig
	gameState core.GameState
	runs      int // Runs recorded this session
	quitting  bool
}

// NewModel wires the game to the scheduler, the store and the logger.
// A nil store disables persistence.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = core.DefaultConfig().FPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newTickScheduler(0)

	env := registry.Env{Scheduler: sched, Logger: logger}
	if store != nil {
		env.Store = store
	}
	game.Reset(cfg, env)
	sched.period = game.TickPeriod()

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sched:     sched,
		keys:      NewKeyMapper(),
		logger:    logger,
		config:    cfg,
		gameState: game.State(),
	}
}

// Init starts the animation clock. Simulation ticks start with the first key.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case frameMsg:
		m.game.Animate()
		return m, frameCmd(m.config.FPS)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.sched.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	res := m.game.HandleInput(core.FrameOf(action))
	m.gameState = res.State
	return m, m.sched.take()
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.accept(msg) {
		return m, nil
	}

	res := m.game.Step()
	m.gameState = res.State
	if res.Ended {
		m.recordRun(res.State)
	}
	return m, m.sched.next()
}

// recordRun saves a finished run. Failures are logged; the game goes on.
func (m *Model) recordRun(state core.GameState) {
	m.runs++
	if m.store == nil {
		return
	}

	runID, err := m.store.SaveRun(storage.RunEntry{
		GameID: m.game.ID(),
		Score:  state.Score,
		Ticks:  state.Ticks,
	})
	if err != nil {
		m.logger.Error("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("run saved", "run", runID, "score", state.Score, "ticks", state.Ticks)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snakebite", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

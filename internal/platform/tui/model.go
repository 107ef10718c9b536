package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong-quest/internal/core"
	"github.com/vovakirdan/pong-quest/internal/pong"
	"github.com/vovakirdan/pong-quest/internal/storage"
)

// Model is the Bubble Tea model driving a game session.
type Model struct {
	game       *pong.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	snap       pong.Snapshot
	quitting   bool
	runSaved   bool // whether the current run's result has been recorded
}

// NewModel creates a new Bubble Tea model around an existing game.
func NewModel(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		snap:       game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.snap = m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.game.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.snap.Mode {
	case pong.ModeGameOver:
		if !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	case pong.ModePlaying:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best effort: play continues whether or
// not the write succeeds.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	run := storage.Run{
		Mode:  storage.ModeCampaign,
		Score: m.snap.PlayerScore,
		Won:   m.snap.Win,
	}
	if m.snap.Infinite {
		run.Mode = storage.ModeInfinite
	} else {
		run.LevelReached = m.snap.LevelIndex + 1
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(run)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.snap)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program around the given game and blocks until
// the session ends.
func Run(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

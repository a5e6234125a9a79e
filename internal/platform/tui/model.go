package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Model is the Bubble Tea model for a blockfall session: title -> game -> title.
type Model struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	title      TitleModel
	game       *tetris.Game
	screen     *core.Screen
	inputFrame core.InputFrame
	lastTick   time.Time
	games      int  // Games started in this session
	inGame     bool
	overLogged bool // Game over has been logged for the current game
	quitting   bool
}

// NewModel creates a session model. A zero seed means every game is seeded
// from the clock; otherwise game n uses seed+n.
func NewModel(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) Model {
	rc = rc.WithTickRate(cfg.Window.TickRate)
	km := NewKeyMapper()
	return Model{
		cfg:        cfg,
		runtime:    rc,
		logger:     logger,
		keyMapper:  km,
		title:      NewTitleModel(rc.ScreenW, rc.ScreenH, km),
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model on the title screen.
func (m Model) Init() tea.Cmd {
	return m.title.Init()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		if m.inGame {
			return m.handleGameKey(msg)
		}
		return m.updateTitle(msg)
	}

	return m, nil
}

// updateTitle forwards messages to the title screen and starts a game on request.
func (m Model) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	newTitle, cmd := m.title.Update(msg)
	if title, ok := newTitle.(TitleModel); ok {
		m.title = title
	}

	if m.title.IsQuitting() {
		m.quitting = true
		m.logger.Debug("quit from title screen", "games", m.games)
		return m, tea.Quit
	}
	if m.title.Started() {
		return m.startGame()
	}
	return m, cmd
}

// startGame creates a fresh game and starts the tick loop.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	rc := m.runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	} else {
		rc.Seed += int64(m.games)
	}
	m.games++

	m.game = tetris.New(m.cfg)
	m.game.Reset(rc)
	m.inGame = true
	m.overLogged = false
	m.lastTick = time.Time{}
	m.inputFrame.Clear()
	m.keyMapper.Release()

	m.logger.Info("game started", "game", m.games, "seed", rc.Seed)
	return m, tickCmd(rc.TickRate)
}

// handleGameKey processes keyboard input while a game is running.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit during game", "score", m.game.Score())
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.game != nil {
		m.game.Resize(msg.Width, msg.Height)
	}

	newTitle, _ := m.title.Update(msg)
	if title, ok := newTitle.(TitleModel); ok {
		m.title = title
	}
	return m, nil
}

// handleTick runs one game frame. Ticks arriving on the title screen end the loop.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.inGame {
		return m, nil
	}

	elapsed := frameElapsed(m.lastTick, now)
	m.lastTick = now

	m.keyMapper.ApplyHeld(&m.inputFrame)
	result := m.game.Update(elapsed, m.inputFrame)
	m.inputFrame.Clear()

	if result.Rows > 0 {
		m.logger.Debug("rows cleared", "rows", result.Rows, "score", result.State.Score)
	}

	if result.State.GameOver && !m.overLogged {
		m.overLogged = true
		m.keyMapper.Release()
		m.logger.Info("game over",
			"score", m.game.Score(),
			"rows", m.game.RowsCleared(),
			"pieces", m.game.PiecesLocked(),
			"duration", m.game.PlayTime().Round(time.Millisecond),
			"reason", m.game.EndReason(),
		)
	}

	if m.game.Done() {
		m.inGame = false
		m.title = m.title.WithLastScore(m.game.Score())
		m.logger.Debug("back to title screen")
		return m, nil
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.inGame {
		return m.title.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// InGame reports whether a game is running.
func (m Model) InGame() bool {
	return m.inGame
}

// Game returns the current or last game, or nil before the first one.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

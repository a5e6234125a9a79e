package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TitleModel is the pre-game screen: "Press Space" to start, esc or q to leave.
type TitleModel struct {
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	lastScore int
	played    bool
	started   bool
	quitting  bool
}

// NewTitleModel creates a title screen sized to the terminal.
func NewTitleModel(width, height int, km *KeyMapper) TitleModel {
	return TitleModel{
		width:     width,
		height:    height,
		keyMapper: km,
		help:      help.New(),
	}
}

// WithLastScore returns a copy that shows the score of the previous game.
func (m TitleModel) WithLastScore(score int) TitleModel {
	m.lastScore = score
	m.played = true
	m.started = false
	return m
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionStart:
			m.started = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		titleStyle.Render("B L O C K F A L L"),
		"",
		promptStyle.Render("Press Space"),
		"",
	}
	if m.played {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("Last score: %d", m.lastScore)), "")
	}
	lines = append(lines,
		m.help.ShortHelpView(m.keyMapper.Keys.TitleHelp()),
		"",
		dimStyle.Render("In game: "+m.help.ShortHelpView(m.keyMapper.Keys.ShortHelp())),
	)

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Started returns true once the player asked for a new game.
func (m TitleModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m TitleModel) IsQuitting() bool {
	return m.quitting
}

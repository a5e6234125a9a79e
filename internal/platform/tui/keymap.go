package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// DefaultSoftDropHold is how long one down-key press counts as "held".
// Terminals report key repeats but no key releases.
const DefaultSoftDropHold = 150 * time.Millisecond

// KeyMap defines the key bindings for the title screen and the game.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Rotate   key.Binding
	SoftDrop key.Binding
	Pause    key.Binding
	Back     key.Binding
	Start    key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.Pause, k.Back, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop},
		{k.Pause, k.Back, k.Start, k.Quit},
	}
}

// TitleHelp returns the bindings shown on the title screen.
func (k KeyMap) TitleHelp() []key.Binding {
	return []key.Binding{k.Start, k.Back, k.Quit}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "rotate"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// It also stretches soft-drop presses into a held state.
type KeyMapper struct {
	Keys KeyMap

	hold          time.Duration
	softDropUntil time.Time
	now           func() time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Keys: DefaultKeyMap(),
		hold: DefaultSoftDropHold,
		now:  time.Now,
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.Keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.Keys.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, km.Keys.SoftDrop):
		return core.ActionSoftDrop, false
	case key.Matches(msg, km.Keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.Keys.Back):
		return core.ActionBack, false
	case key.Matches(msg, km.Keys.Start):
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Soft drop is not set directly; it starts the hold window instead.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionSoftDrop:
		km.softDropUntil = km.now().Add(km.hold)
	default:
		frame.Set(action)
	}
	return isQuit
}

// SoftDropHeld reports whether the down key counts as held right now.
func (km *KeyMapper) SoftDropHeld() bool {
	return km.now().Before(km.softDropUntil)
}

// ApplyHeld adds held actions to the frame.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame) {
	if km.SoftDropHeld() {
		frame.Set(core.ActionSoftDrop)
	}
}

// Release forgets any held key, e.g. when a game ends.
func (km *KeyMapper) Release() {
	km.softDropUntil = time.Time{}
}

// MenuAction represents a title-screen action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionStart
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a title-screen action.
// Escape leaves the title screen like quit does.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Keys.Quit), key.Matches(msg, km.Keys.Back):
		return MenuActionQuit
	case key.Matches(msg, km.Keys.Start):
		return MenuActionStart
	}
	return MenuActionNone
}

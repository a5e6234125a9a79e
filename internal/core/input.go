package core

import "math"

// Action is a player intent, decoupled from the key or button that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, h, a
	ActionRight           // Right arrow, l, d
	ActionRotate          // Up arrow, k, w
	ActionSoftDrop        // Down arrow held
	ActionConfirm         // Space: start a game from the title screen
	ActionBack            // Escape: end the current game
	ActionPause           // P
	ActionQuit            // Q, Ctrl+C, window close
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Rotate", "SoftDrop", "Confirm", "Back", "Pause", "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds the actions triggered during one simulation tick.
// Discrete actions (Left, Right, Rotate) are counted once per key-down event,
// so two presses landing in the same tick give two moves.
// SoftDrop is set on every frame while the key is held.
// The zero value is an empty frame.
type InputFrame struct {
	counts [actionCount]uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one occurrence of an action. Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a < 0 || a >= actionCount || f.counts[a] == math.MaxUint8 {
		return
	}
	f.counts[a]++
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if a < 0 || a >= actionCount {
		return 0
	}
	return int(f.counts[a])
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.counts = [actionCount]uint8{}
}

// Package tui provides the Bubble Tea frontend for blockfall.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps the elapsed time fed into one game update, so a stalled
// terminal or a suspended process does not drop the piece many rows at once.
const maxFrame = 250 * time.Millisecond

// TickMsg is sent to trigger a game frame. It carries the wall-clock time of the tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed returns the time between two ticks, clamped to [0, maxFrame].
func frameElapsed(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	switch {
	case d < 0:
		return 0
	case d > maxFrame:
		return maxFrame
	}
	return d
}

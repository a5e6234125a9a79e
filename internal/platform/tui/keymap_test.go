package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"w", runeKey('w'), core.ActionRotate, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{"j", runeKey('j'), core.ActionSoftDrop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestSoftDropHoldWindow(t *testing.T) {
	km := NewKeyMapper()
	now := time.Unix(1000, 0)
	km.now = func() time.Time { return now }

	frame := core.NewInputFrame()
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame) {
		t.Fatal("down should not quit")
	}
	if frame.Has(core.ActionSoftDrop) {
		t.Error("soft drop is applied through ApplyHeld, not directly")
	}

	km.ApplyHeld(&frame)
	if !frame.Has(core.ActionSoftDrop) {
		t.Error("soft drop should be held right after the key press")
	}

	now = now.Add(DefaultSoftDropHold - time.Millisecond)
	if !km.SoftDropHeld() {
		t.Error("soft drop should still be held inside the window")
	}

	now = now.Add(2 * time.Millisecond)
	if km.SoftDropHeld() {
		t.Error("soft drop should be released after the window")
	}

	// Key repeat refreshes the window.
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame)
	if !km.SoftDropHeld() {
		t.Error("repeat should restart the hold window")
	}
	km.Release()
	if km.SoftDropHeld() {
		t.Error("Release should clear the hold")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionStart},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestFrameElapsed(t *testing.T) {
	base := time.Unix(50, 0)
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick", time.Time{}, base, 0},
		{"normal frame", base, base.Add(8 * time.Millisecond), 8 * time.Millisecond},
		{"clock went back", base, base.Add(-time.Second), 0},
		{"stall", base, base.Add(5 * time.Second), maxFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameElapsed(tt.prev, tt.now); got != tt.want {
				t.Errorf("frameElapsed() = %v, expected %v", got, tt.want)
			}
		})
	}
}

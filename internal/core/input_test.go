package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionSoftDrop)
	f.Set(ActionLeft)

	for _, a := range []Action{ActionLeft, ActionSoftDrop} {
		if !f.Has(a) {
			t.Errorf("Has(%v) = false after Set", a)
		}
	}
	if f.Has(ActionRight) || f.Has(ActionQuit) {
		t.Error("unset actions should not be reported")
	}

	f.Set(ActionLeft)
	if got := f.Count(ActionLeft); got != 3 {
		t.Errorf("Count(Left) = %d, expected 3", got)
	}
	if got := f.Count(ActionSoftDrop); got != 1 {
		t.Errorf("Count(SoftDrop) = %d, expected 1", got)
	}
	f.Set(Action(99))
	if f.Count(Action(99)) != 0 {
		t.Error("unknown actions should be ignored")
	}

	copied := f
	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionSoftDrop) {
		t.Error("Clear should drop every action")
	}
	if !copied.Has(ActionLeft) {
		t.Error("frames are values; clearing one must not affect a copy")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionSoftDrop, "SoftDrop"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
		{Action(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tt.a), got, tt.want)
		}
	}
}

package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 19, true},
		{10, 0, false},
		{0, 20, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		n    int
		want Rect
	}{
		{"box border", NewRect(16, 3, 22, 27), 1, NewRect(17, 4, 20, 25)},
		{"zero", NewRect(1, 1, 4, 4), 0, NewRect(1, 1, 4, 4)},
		{"collapses", NewRect(0, 0, 3, 1), 2, NewRect(2, 2, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.n); got != tt.want {
				t.Errorf("Inset(%d) = %+v, expected %+v", tt.n, got, tt.want)
			}
		})
	}
}

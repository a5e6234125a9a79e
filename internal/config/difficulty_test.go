package config

import (
	"math"
	"testing"
	"time"
)

func TestDifficultyRamp(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty, 0.25)

	d.Advance(3 * time.Second)
	if d.Ramp() {
		t.Error("Ramp() at exactly the interval should not fire")
	}

	d.Advance(time.Millisecond)
	if !d.Ramp() {
		t.Fatal("Ramp() after the interval should fire")
	}
	if math.Abs(d.Period()-0.225) > 1e-9 {
		t.Errorf("Period() = %v, expected 0.225", d.Period())
	}
	if d.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", d.Level())
	}

	// The timer was reset by the ramp.
	if d.Ramp() {
		t.Error("Ramp() should not fire twice without more time")
	}
}

func TestDifficultyFloor(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty, 0.25)
	for i := 0; i < 100; i++ {
		d.Advance(4 * time.Second)
		d.Ramp()
	}
	period := d.Period()
	if period > 0.03 {
		t.Fatalf("Period() = %v, expected at or below the floor", period)
	}
	// Once at or below the floor, the ramp stops.
	if period < 0.03*0.9 {
		t.Errorf("Period() = %v overshot the floor by more than one step", period)
	}
	d.Advance(10 * time.Second)
	if d.Ramp() {
		t.Error("Ramp() should not fire once the period is at the floor")
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := Default().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg, 0.25)
	d.Advance(time.Minute)
	if d.Ramp() {
		t.Error("Ramp() should not fire when disabled")
	}
	if d.Period() != 0.25 {
		t.Errorf("Period() = %v, expected 0.25", d.Period())
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty, 0.25)
	d.Advance(4 * time.Second)
	d.Ramp()
	d.Reset()
	if d.Period() != 0.25 || d.Level() != 0 || d.Speedup() != 1 {
		t.Errorf("after Reset: period=%v level=%d speedup=%v", d.Period(), d.Level(), d.Speedup())
	}
}

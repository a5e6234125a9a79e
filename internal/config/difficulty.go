package config

import "time"

// DifficultyManager drives the auto-fall speed ramp. Every Interval seconds the
// auto-fall period is multiplied by Factor, until the period reaches Floor.
type DifficultyManager struct {
	cfg     DifficultyConfig
	initial float64
	period  float64
	elapsed time.Duration
	ramps   int
}

// NewDifficultyManager creates a manager starting at the given auto-fall period in seconds.
func NewDifficultyManager(cfg DifficultyConfig, initialPeriod float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		initial: initialPeriod,
		period:  initialPeriod,
	}
}

// Reset restores the initial period and clears the ramp timer.
func (d *DifficultyManager) Reset() {
	d.period = d.initial
	d.elapsed = 0
	d.ramps = 0
}

// Advance accumulates frame time on the ramp timer.
func (d *DifficultyManager) Advance(dt time.Duration) {
	d.elapsed += dt
}

// Ramp applies one speed-up if the interval has passed and the period is
// still above the floor. It reports whether the period changed.
func (d *DifficultyManager) Ramp() bool {
	if !d.cfg.Enabled {
		return false
	}
	if d.elapsed.Seconds() > d.cfg.Interval && d.period > d.cfg.Floor {
		d.elapsed = 0
		d.period *= d.cfg.Factor
		d.ramps++
		return true
	}
	return false
}

// Period returns the current auto-fall period in seconds.
func (d *DifficultyManager) Period() float64 {
	return d.period
}

// Level returns how many speed-ups have been applied so far.
func (d *DifficultyManager) Level() int {
	return d.ramps
}

// Speedup returns the current speed relative to the initial period (1.0 at start).
func (d *DifficultyManager) Speedup() float64 {
	if d.period <= 0 {
		return 1
	}
	return d.initial / d.period
}

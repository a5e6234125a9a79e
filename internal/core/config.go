package core

// RuntimeConfig is what a frontend knows when it starts a game: the size of
// its drawing surface, its frame rate and the seed for piece selection.
type RuntimeConfig struct {
	ScreenW  int   // Columns available to the game
	ScreenH  int   // Rows available to the game
	TickRate int   // Frames per second; fixed-step games advance 1/TickRate per Step
	Seed     int64 // Zero asks the frontend to pick a time-based seed
}

// DefaultConfig returns the runtime used when nothing is known about the terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  32,
		TickRate: 120,
	}
}

// WithTickRate fills in the tick rate when the caller left it unset.
func (rc RuntimeConfig) WithTickRate(fallback int) RuntimeConfig {
	if rc.TickRate <= 0 {
		rc.TickRate = fallback
	}
	return rc
}

// GameState summarizes a running game for its frontend.
type GameState struct {
	Score    int
	GameOver bool // Final score is on screen
	Paused   bool
	Done     bool // The final score was shown long enough; go back to the title
}

// StepResult reports what one frame did.
type StepResult struct {
	State  GameState
	Locked bool // A piece was committed to the board
	Rows   int  // Rows cleared by that commit
}

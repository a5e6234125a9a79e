package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	State       State
	Reason      EndReason
	Score       int
	RowsCleared int
	Pieces      int
	Current     Kind
	CurrentX    int
	CurrentY    int
	Rotation    int
	Next        Kind
	FallPeriod  float64
	Level       int
	LockedCells int
	Paused      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		State:       g.state,
		Reason:      g.reason,
		Score:       g.score,
		RowsCleared: g.rows,
		Pieces:      g.pieces,
		Current:     g.current.Kind,
		CurrentX:    g.current.X,
		CurrentY:    g.current.Y,
		Rotation:    g.current.Rotation,
		Next:        g.next.Kind,
		FallPeriod:  g.difficulty.Period(),
		Level:       g.difficulty.Level(),
		LockedCells: g.board.LockedCount(),
		Paused:      g.paused,
	}
}

package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// State is the game loop state.
type State int

const (
	StateSpawning State = iota // Next piece becomes current
	StateFalling               // Current piece falls on timers and input
	StateLocking               // Current piece could not move down and is committed
	StateGameOver              // Final score is shown until the hold elapses
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason tells why a game ended.
type EndReason int

const (
	EndNone     EndReason = iota
	EndToppedOut          // A settled cell reached the top row
	EndQuit               // The player pressed escape
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndToppedOut:
		return "topped_out"
	case EndQuit:
		return "quit"
	default:
		return "none"
	}
}

// PieceSource picks the next shape. *rand.Rand satisfies it.
type PieceSource interface {
	Intn(n int) int
}

// Game implements the falling-block game loop.
type Game struct {
	cfg        config.Config
	rng        PieceSource
	source     PieceSource // Injected source, used instead of a seeded one
	difficulty *config.DifficultyManager

	board   *Board
	current *Piece
	next    *Piece
	state   State
	reason  EndReason

	tick     uint64
	tickRate int
	score    int
	rows     int // Rows cleared this game
	pieces   int // Pieces locked this game
	playTime time.Duration

	// Timers
	autoFall time.Duration
	softDrop time.Duration
	hold     time.Duration

	paused bool
	done   bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game using the given configuration.
// Call Reset before the first Update.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// NewWithSource creates a game that draws shapes from src instead of a seeded RNG.
func NewWithSource(cfg config.Config, src PieceSource) *Game {
	return &Game{cfg: cfg, source: src}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.source != nil {
		g.rng = g.source
	} else {
		g.rng = rand.New(rand.NewSource(rc.Seed))
	}
	g.tickRate = rc.WithTickRate(g.cfg.Window.TickRate).TickRate

	if g.board == nil || g.board.Width() != g.cfg.Board.Width || g.board.Height() != g.cfg.Board.Height {
		g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	} else {
		g.board.Reset()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Timing.AutoFall)

	g.tick = 0
	g.score = 0
	g.rows = 0
	g.pieces = 0
	g.playTime = 0
	g.autoFall = 0
	g.softDrop = 0
	g.hold = 0
	g.paused = false
	g.done = false
	g.reason = EndNone

	g.current = g.randomPiece()
	g.next = g.randomPiece()
	g.state = StateSpawning

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one fixed tick of 1/TickRate seconds.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	return g.Update(time.Second/time.Duration(g.tickRate), input)
}

// Update advances the game by one frame that took elapsed wall-clock time.
func (g *Game) Update(elapsed time.Duration, input core.InputFrame) core.StepResult {
	g.tick++

	if g.state == StateGameOver {
		g.hold += elapsed
		if g.hold >= g.cfg.GameOverHold() {
			g.done = true
		}
		return g.result(false, 0)
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		// Escape still ends a frozen game.
		if input.Has(core.ActionBack) {
			g.gameOver(EndQuit)
		}
		return g.result(false, 0)
	}

	if g.state == StateSpawning {
		g.state = StateFalling
	}

	g.playTime += elapsed
	g.autoFall += elapsed
	g.softDrop += elapsed
	g.difficulty.Advance(elapsed)

	if g.autoFall.Seconds() > g.difficulty.Period() {
		g.autoFall = 0
		g.fall()
	}
	g.difficulty.Ramp()

	// One attempt per key-down event.
	for range input.Count(core.ActionLeft) {
		g.current.TryMove(g.current.X-1, g.current.Y, g.board)
	}
	for range input.Count(core.ActionRight) {
		g.current.TryMove(g.current.X+1, g.current.Y, g.board)
	}
	for range input.Count(core.ActionRotate) {
		g.current.TryRotate(g.board)
	}

	if input.Has(core.ActionSoftDrop) && g.softDrop > g.cfg.SoftDropPeriod() {
		g.autoFall = 0
		g.softDrop = 0
		g.fall()
	}

	locked, cleared := false, 0
	if g.state == StateLocking {
		locked = true
		cleared = g.lock()
	}

	switch {
	case g.board.Lost():
		g.gameOver(EndToppedOut)
	case input.Has(core.ActionBack):
		g.gameOver(EndQuit)
	}

	return g.result(locked, cleared)
}

// fall moves the current piece down one row and flags a lock if it cannot.
func (g *Game) fall() {
	if !g.current.TryMove(g.current.X, g.current.Y+1, g.board) {
		g.state = StateLocking
	}
}

// lock commits the current piece, advances the queue, clears rows and scores them.
func (g *Game) lock() int {
	g.board.Lock(g.current.Cells(), g.current.Color())
	g.pieces++

	g.current = g.next
	g.next = g.randomPiece()

	cleared := g.board.ClearRows()
	g.rows += cleared
	g.score += cleared * g.cfg.Scoring.PointsPerRow

	g.state = StateSpawning
	return cleared
}

// gameOver enters the terminal state and starts the score hold.
func (g *Game) gameOver(reason EndReason) {
	g.state = StateGameOver
	g.reason = reason
	g.paused = false
	g.hold = 0
}

func (g *Game) randomPiece() *Piece {
	kind := Kind(g.rng.Intn(NumKinds()))
	return Spawn(kind, g.board.Width())
}

func (g *Game) result(locked bool, rows int) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Locked: locked,
		Rows:   rows,
	}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
		Done:     g.done,
	}
}

// Phase returns the loop state.
func (g *Game) Phase() State {
	return g.state
}

// Done reports whether the game-over hold has elapsed and the caller should
// return to its menu.
func (g *Game) Done() bool {
	return g.done
}

// EndReason returns why the game ended, or EndNone while it is running.
func (g *Game) EndReason() EndReason {
	return g.reason
}

// Board returns the playfield.
func (g *Game) Board() *Board {
	return g.board
}

// Current returns the falling piece.
func (g *Game) Current() *Piece {
	return g.current
}

// Next returns the queued piece.
func (g *Game) Next() *Piece {
	return g.next
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// RowsCleared returns the total rows cleared this game.
func (g *Game) RowsCleared() int {
	return g.rows
}

// PiecesLocked returns how many pieces have been committed this game.
func (g *Game) PiecesLocked() int {
	return g.pieces
}

// PlayTime returns the unpaused time spent playing.
func (g *Game) PlayTime() time.Duration {
	return g.playTime
}

// FallPeriod returns the current auto-fall period in seconds.
func (g *Game) FallPeriod() float64 {
	return g.difficulty.Period()
}

// Level returns the number of speed-ups applied so far.
func (g *Game) Level() int {
	return g.difficulty.Level()
}

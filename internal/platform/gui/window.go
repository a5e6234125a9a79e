// Package gui provides the Ebiten window frontend for blockfall: a pixel
// rendering of the board at a fixed block size with the next-piece column
// on the left.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

const (
	menuColumns = 5 // Width of the next-piece column, in blocks

	// ebitenutil debug font cell size
	glyphW = 6
	glyphH = 16

	maxLabels = 32
)

var (
	windowColor = color.RGBA{30, 30, 30, 255}
	gridColor   = rgba(core.ColorGray)
	borderColor = rgba(core.ColorWhite)
	textColor   = rgba(core.ColorWhite)
	emptyColor  = rgba(core.ColorDarkTeal)
)

// Window implements ebiten.Game. It runs the title screen and one game at a time.
type Window struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger

	game       *tetris.Game
	playing    bool
	games      int
	overLogged bool
	lastScore  int
	played     bool

	block  int
	menuW  int
	boardW int
	boardH int

	labels map[string]*ebiten.Image // Rendered text, keyed by content
}

// New creates a window frontend. A zero seed means every game is seeded from the clock.
func New(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) *Window {
	rc = rc.WithTickRate(cfg.Window.TickRate)
	block := cfg.Window.BlockSize
	return &Window{
		cfg:     cfg,
		runtime: rc,
		logger:  logger,
		block:   block,
		menuW:   menuColumns * block,
		boardW:  cfg.Board.Width * block,
		boardH:  cfg.Board.Height * block,
		labels:  make(map[string]*ebiten.Image),
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	w := New(cfg, rc, logger)

	ebiten.SetWindowSize(w.Layout(0, 0))
	ebiten.SetWindowTitle("Blockfall")
	ebiten.SetTPS(w.runtime.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.menuW + w.boardW, w.boardH
}

// Update advances the title screen or the running game by one tick.
func (w *Window) Update() error {
	frame := core.NewInputFrame()
	pollInput(&frame)

	if !w.playing {
		switch {
		case frame.Has(core.ActionBack):
			w.logger.Debug("quit from title screen", "games", w.games)
			return ebiten.Termination
		case frame.Has(core.ActionConfirm):
			w.startGame()
		}
		return nil
	}

	w.game.Step(frame)

	if w.game.State().GameOver && !w.overLogged {
		w.overLogged = true
		w.logger.Info("game over",
			"score", w.game.Score(),
			"rows", w.game.RowsCleared(),
			"pieces", w.game.PiecesLocked(),
			"duration", w.game.PlayTime().Round(time.Millisecond),
			"reason", w.game.EndReason(),
		)
	}
	if w.game.Done() {
		w.playing = false
		w.played = true
		w.lastScore = w.game.Score()
		w.logger.Debug("back to title screen")
	}
	return nil
}

func (w *Window) startGame() {
	rc := w.runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	} else {
		rc.Seed += int64(w.games)
	}
	w.games++

	w.game = tetris.New(w.cfg)
	// Pixel layout is fixed, so the terminal size check must always pass.
	rc.ScreenW, rc.ScreenH = w.game.MinScreenSize()
	w.game.Reset(rc)
	w.playing = true
	w.overLogged = false
	w.logger.Info("game started", "game", w.games, "seed", rc.Seed)
}

// Draw renders the current screen.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(windowColor)

	if !w.playing {
		w.drawTextMiddle(screen, "Press Space", 5, 0)
		if w.played {
			w.drawTextMiddle(screen, fmt.Sprintf("Last score: %d", w.lastScore), 2, 3*w.block)
		}
		return
	}

	if w.game.State().GameOver {
		w.drawTextMiddle(screen, fmt.Sprintf("Score: %d", w.game.Score()), 5, 0)
		return
	}

	w.drawBoard(screen)
	w.drawGrid(screen)
	w.drawNext(screen)
	w.drawStats(screen)

	if w.game.State().Paused {
		w.drawTextMiddle(screen, "PAUSED", 4, 0)
	}
}

// drawBoard fills every cell with its locked color, then overlays the falling piece.
func (w *Window) drawBoard(screen *ebiten.Image) {
	board := w.game.Board()
	grid := board.Grid()
	piece := w.game.Current()
	for _, c := range piece.Cells() {
		if board.InBounds(c) {
			grid[c.Row][c.Col] = piece.Color()
		}
	}

	size := float32(w.block)
	for row := range grid {
		for col, c := range grid[row] {
			clr := emptyColor
			if c != core.ColorNone {
				clr = rgba(c)
			}
			x := float32(w.menuW + col*w.block)
			y := float32(row * w.block)
			vector.DrawFilledRect(screen, x, y, size, size, clr, false)
		}
	}
}

// drawGrid draws the cell lines and the border around the play area.
func (w *Window) drawGrid(screen *ebiten.Image) {
	left := float32(w.menuW)
	right := float32(w.menuW + w.boardW)
	bottom := float32(w.boardH)

	for row := 0; row < w.cfg.Board.Height; row++ {
		y := float32(row * w.block)
		vector.StrokeLine(screen, left, y, right, y, 1, gridColor, false)
	}
	for col := 0; col < w.cfg.Board.Width; col++ {
		x := float32(w.menuW + col*w.block)
		vector.StrokeLine(screen, x, 0, x, bottom, 1, gridColor, false)
	}
	vector.StrokeRect(screen, left, 0, float32(w.boardW), bottom, 3, borderColor, false)
}

// drawNext draws the queued piece's pattern in the left column, one block down.
func (w *Window) drawNext(screen *ebiten.Image) {
	next := w.game.Next()
	pattern := next.Pattern()
	clr := rgba(next.Color())
	size := float32(w.block)
	for row := 0; row < tetris.PatternSize; row++ {
		for col := 0; col < tetris.PatternSize; col++ {
			if pattern.Filled(col, row) {
				vector.DrawFilledRect(screen, float32(col*w.block), float32((1+row)*w.block), size, size, clr, false)
			}
		}
	}
}

// drawStats prints score and speed under the next piece.
func (w *Window) drawStats(screen *ebiten.Image) {
	y := (tetris.PatternSize + 2) * w.block
	lines := []string{
		fmt.Sprintf("SCORE %d", w.game.Score()),
		fmt.Sprintf("ROWS  %d", w.game.RowsCleared()),
		fmt.Sprintf("SPEED %.3fs", w.game.FallPeriod()),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, w.block/4, y+i*glyphH*2)
	}
}

// drawTextMiddle draws text centered on the window, scaled up from the debug font.
// dy shifts the text down from the center.
func (w *Window) drawTextMiddle(screen *ebiten.Image, text string, scale float64, dy int) {
	img := w.label(text)
	sw, sh := w.Layout(0, 0)
	tw := float64(img.Bounds().Dx()) * scale
	th := float64(img.Bounds().Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(sw)/2-tw/2, float64(sh)/2-th/2+float64(dy))
	op.ColorScale.ScaleWithColor(textColor)
	screen.DrawImage(img, op)
}

// label returns a cached image holding text in the debug font.
func (w *Window) label(text string) *ebiten.Image {
	if img, ok := w.labels[text]; ok {
		return img
	}
	if len(w.labels) > maxLabels {
		for k, img := range w.labels {
			img.Deallocate()
			delete(w.labels, k)
		}
	}
	img := ebiten.NewImage(len(text)*glyphW, glyphH)
	ebitenutil.DebugPrint(img, text)
	w.labels[text] = img
	return img
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 255}
}

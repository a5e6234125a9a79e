package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per board cell
	panelWidth = 14 // Side panel: next piece and stats
	panelGap   = 2
)

// MinScreenSize returns the smallest terminal that fits the board and side panel.
func (g *Game) MinScreenSize() (int, int) {
	w := panelWidth + panelGap + g.cfg.Board.Width*cellWidth + 2
	h := g.cfg.Board.Height + 2
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.state == StateGameOver {
		g.renderGameOver(dst)
		return
	}

	totalW, totalH := g.MinScreenSize()
	originX := (g.screenW - totalW) / 2
	originY := (g.screenH - totalH) / 2

	g.renderPanel(dst, originX, originY)

	boardRect := core.NewRect(originX+panelWidth+panelGap, originY, g.board.Width()*cellWidth+2, g.board.Height()+2)
	g.renderBoard(dst, boardRect)

	if g.paused {
		g.renderPaused(dst, boardRect)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.MinScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderPanel draws the next piece and the stats column.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, "NEXT", core.ColorWhite)

	pattern := g.next.Pattern()
	color := g.next.Color()
	for row := 0; row < PatternSize; row++ {
		for col := 0; col < PatternSize; col++ {
			if pattern.Filled(col, row) {
				px := x + col*cellWidth
				dst.SetWithColor(px, y+1+row, '█', color)
				dst.SetWithColor(px+1, y+1+row, '█', color)
			}
		}
	}

	sy := y + PatternSize + 2
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", g.score)},
		{"ROWS", fmt.Sprintf("%d", g.rows)},
		{"SPEED", fmt.Sprintf("%.3fs x%.1f", g.difficulty.Period(), g.difficulty.Speedup())},
		{"LEVEL", fmt.Sprintf("%d", g.difficulty.Level())},
	}
	for i, s := range stats {
		dst.DrawTextWithColor(x, sy+i*2, s.label, core.ColorGray)
		dst.DrawTextWithColor(x, sy+i*2+1, s.value, core.ColorWhite)
	}
}

// renderBoard draws locked cells, the falling piece and the border.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	grid := g.board.Grid()

	// The falling piece is overlaid on the materialized grid; cells above the top are hidden.
	for _, c := range g.current.Cells() {
		if g.board.InBounds(c) {
			grid[c.Row][c.Col] = g.current.Color()
		}
	}

	inner := r.Inset(1)
	for row := range grid {
		for col, color := range grid[row] {
			x := inner.X + col*cellWidth
			y := inner.Y + row
			if color == core.ColorNone {
				dst.SetWithColor(x, y, ' ', core.ColorDarkTeal)
				dst.SetWithColor(x+1, y, '·', core.ColorDarkTeal)
				continue
			}
			dst.SetWithColor(x, y, '█', color)
			dst.SetWithColor(x+1, y, '█', color)
		}
	}

	dst.DrawBox(r, core.ColorWhite)
}

func (g *Game) renderPaused(dst *core.Screen, r core.Rect) {
	msg := "PAUSED"
	cx, cy := r.Center()
	x := cx - len(msg)/2
	dst.DrawRect(core.NewRect(x-1, cy-1, len(msg)+2, 3), ' ', core.ColorNone)
	dst.DrawTextWithColor(x, cy, msg, core.ColorWhite)
}

// renderGameOver shows the final score on an otherwise empty screen.
func (g *Game) renderGameOver(dst *core.Screen) {
	y := g.screenH/2 - 1
	dst.DrawTextCentered(y-2, "GAME OVER")
	dst.DrawTextCentered(y, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(y+1, fmt.Sprintf("Rows: %d  Pieces: %d", g.rows, g.pieces))
	dst.DrawTextCentered(y+2, fmt.Sprintf("Time: %s", g.playTime.Round(time.Second)))
}

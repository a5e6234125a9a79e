package tetris

import (
	"slices"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Pattern-local origin correction, so the anchor sits near the pattern's center.
const (
	originCol = 2
	originRow = 3
)

// Cell is a board coordinate. Rows grow downward and may be negative above the top.
type Cell struct {
	Col, Row int
}

// Piece is the falling shape. It caches the cells of its last valid placement.
type Piece struct {
	X, Y     int // Anchor
	Kind     Kind
	Rotation int
	cells    []Cell
}

// NewPiece creates a piece of the given kind anchored at (x, y), rotation 0.
func NewPiece(kind Kind, x, y int) *Piece {
	p := &Piece{X: x, Y: y, Kind: kind}
	p.cells = p.ComputeCells()
	return p
}

// Spawn creates a piece at the spawn anchor for a board of the given width.
func Spawn(kind Kind, boardWidth int) *Piece {
	return NewPiece(kind, boardWidth/2, 0)
}

// ComputeCells derives absolute cells from kind, rotation and anchor.
// It does not touch the cached cell set.
func (p *Piece) ComputeCells() []Cell {
	pattern := p.Kind.Pattern(p.Rotation)
	cells := make([]Cell, 0, 4)
	for row, line := range pattern {
		for col := 0; col < len(line); col++ {
			if line[col] == '1' {
				cells = append(cells, Cell{
					Col: p.X + col - originCol,
					Row: p.Y + row - originRow,
				})
			}
		}
	}
	return cells
}

// Cells returns the cached cells of the last accepted placement.
func (p *Piece) Cells() []Cell {
	return p.cells
}

// Color returns the piece's display color.
func (p *Piece) Color() core.Color {
	return p.Kind.Color()
}

// Pattern returns the active rotation state.
func (p *Piece) Pattern() Pattern {
	return p.Kind.Pattern(p.Rotation)
}

// TryMove moves the anchor to (x, y) if the resulting placement is valid.
// On rejection the anchor and cached cells are left as they were.
func (p *Piece) TryMove(x, y int, b *Board) bool {
	oldX, oldY := p.X, p.Y
	p.X, p.Y = x, y
	cells := p.ComputeCells()
	if !b.ValidPlacement(cells) {
		p.X, p.Y = oldX, oldY
		return false
	}
	p.cells = cells
	return true
}

// TryRotate advances the rotation by one state if the result is valid.
// There are no wall kicks: a blocked rotation is simply rejected.
func (p *Piece) TryRotate(b *Board) bool {
	p.Rotation = mod(p.Rotation+1, p.Kind.Rotations())
	cells := p.ComputeCells()
	if !b.ValidPlacement(cells) {
		p.Rotation = mod(p.Rotation-1, p.Kind.Rotations())
		return false
	}
	p.cells = cells
	return true
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.cells = slices.Clone(p.cells)
	return &c
}

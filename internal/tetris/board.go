package tetris

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Key packs a cell into a single integer for the locked-cell map.
// The row lives in the high 32 bits so negative rows stay representable.
type Key int64

// KeyOf packs a cell.
func KeyOf(c Cell) Key {
	return Key(int64(c.Row)<<32 | int64(uint32(c.Col)))
}

// Cell unpacks a key.
func (k Key) Cell() Cell {
	return Cell{
		Col: int(int32(uint32(k))),
		Row: int(int64(k) >> 32),
	}
}

// LockedCells is the sparse map of settled cells to their colors.
// Absence means empty. Keys are not range checked.
type LockedCells = intmap.Map[Key, core.Color]

// Board owns the playfield dimensions and the settled cells.
type Board struct {
	width  int
	height int
	locked *LockedCells
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		locked: intmap.New[Key, core.Color](width * height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.locked.Clear()
}

// Locked returns the color of a settled cell.
func (b *Board) Locked(c Cell) (core.Color, bool) {
	return b.locked.Get(KeyOf(c))
}

// LockedCount returns the number of settled cells, including any above the top.
func (b *Board) LockedCount() int {
	return b.locked.Len()
}

// LockedCells exposes the underlying map. Callers must not hold it across a Reset.
func (b *Board) LockedCells() *LockedCells {
	return b.locked
}

// Lock commits cells with the given color. Cells above the top are stored too.
func (b *Board) Lock(cells []Cell, color core.Color) {
	for _, c := range cells {
		b.locked.Put(KeyOf(c), color)
	}
}

// Grid materializes a dense height x width view. Empty cells are core.ColorNone.
// Locked cells outside the visible area are ignored.
func (b *Board) Grid() [][]core.Color {
	grid := make([][]core.Color, b.height)
	for row := range grid {
		grid[row] = make([]core.Color, b.width)
	}
	for k, color := range b.locked.All() {
		c := k.Cell()
		if b.InBounds(c) {
			grid[c.Row][c.Col] = color
		}
	}
	return grid
}

// InBounds reports whether c is a visible board cell.
func (b *Board) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < b.width && c.Row >= 0 && c.Row < b.height
}

// accepts reports whether c is an empty visible cell.
func (b *Board) accepts(c Cell) bool {
	return b.InBounds(c) && !b.locked.Has(KeyOf(c))
}

// ValidPlacement reports whether every cell of a candidate placement is legal.
// A cell that is not an empty visible cell is rejected unless it sits above
// the top (row < 0) within the horizontal bounds. Cells above the top are
// accepted regardless of what is locked there, so pieces can spawn partially
// hidden. Cells below the bottom never make it into the accepted set.
func (b *Board) ValidPlacement(cells []Cell) bool {
	for _, c := range cells {
		if b.accepts(c) {
			continue
		}
		if c.Row > -1 || c.Col < 0 || c.Col >= b.width {
			return false
		}
	}
	return true
}

// ClearRows removes full rows and compacts the rows above them.
// It returns the number of rows removed.
func (b *Board) ClearRows() int {
	return ClearRows(b.Grid(), b.locked)
}

// Lost reports whether any settled cell reached row 0 or above.
func (b *Board) Lost() bool {
	lost := false
	b.locked.ForEach(func(k Key, _ core.Color) bool {
		if k.Cell().Row < 1 {
			lost = true
			return false
		}
		return true
	})
	return lost
}

// Package tetris implements the falling-block game: the shape catalog, pieces
// and rotation, the sparse board, placement validity, row-clear compaction
// and the timing-driven game loop.
package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// PatternSize is the side length of every rotation pattern.
const PatternSize = 5

// Pattern is one rotation state: a 5x5 occupancy grid, '1' marks a block.
type Pattern [PatternSize]string

// Kind identifies one of the seven shapes.
type Kind int

// Shape kinds, in catalog order. Random selection indexes into this order.
const (
	KindS Kind = iota
	KindZ
	KindI
	KindO
	KindJ
	KindL
	KindT
	kindCount
)

type shape struct {
	name      string
	color     core.Color
	rotations []Pattern
}

var catalog = [kindCount]shape{
	KindS: {"S", core.ColorCyan, []Pattern{
		{"00000", "00000", "00110", "01100", "00000"},
		{"00000", "00100", "00110", "00010", "00000"},
	}},
	KindZ: {"Z", core.ColorYellow, []Pattern{
		{"00000", "00000", "01100", "00110", "00000"},
		{"00000", "00100", "01100", "01000", "00000"},
	}},
	KindI: {"I", core.ColorGreen, []Pattern{
		{"00100", "00100", "00100", "00100", "00000"},
		{"00000", "11110", "00000", "00000", "00000"},
	}},
	KindO: {"O", core.ColorPurple, []Pattern{
		{"00000", "00000", "01100", "01100", "00000"},
	}},
	KindJ: {"J", core.ColorRed, []Pattern{
		{"00000", "01000", "01110", "00000", "00000"},
		{"00000", "00110", "00100", "00100", "00000"},
		{"00000", "00000", "01110", "00010", "00000"},
		{"00000", "00100", "00100", "01100", "00000"},
	}},
	KindL: {"L", core.ColorBlue, []Pattern{
		{"00000", "00010", "01110", "00000", "00000"},
		{"00000", "00100", "00100", "00110", "00000"},
		{"00000", "00000", "01110", "01000", "00000"},
		{"00000", "01100", "00100", "00100", "00000"},
	}},
	KindT: {"T", core.ColorOrange, []Pattern{
		{"00000", "00100", "01110", "00000", "00000"},
		{"00000", "00100", "00110", "00100", "00000"},
		{"00000", "00000", "01110", "00100", "00000"},
		{"00000", "00100", "01100", "00100", "00000"},
	}},
}

// Kinds returns all shape kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// NumKinds is the number of shapes in the catalog.
func NumKinds() int {
	return int(kindCount)
}

// Valid reports whether k names a catalog shape.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the shape's letter.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return catalog[k].name
}

// Color returns the shape's display color.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorNone
	}
	return catalog[k].color
}

// Rotations returns the number of distinct rotation states (1, 2 or 4).
func (k Kind) Rotations() int {
	if !k.Valid() {
		return 0
	}
	return len(catalog[k].rotations)
}

// Pattern returns the rotation state for the given rotation index.
// The index is taken modulo the number of rotation states.
func (k Kind) Pattern(rotation int) Pattern {
	rots := catalog[k].rotations
	return rots[mod(rotation, len(rots))]
}

// Blocks counts the occupied cells of a pattern.
func (p Pattern) Blocks() int {
	n := 0
	for _, line := range p {
		for i := 0; i < len(line); i++ {
			if line[i] == '1' {
				n++
			}
		}
	}
	return n
}

// Filled reports whether the pattern has a block at (col, row).
func (p Pattern) Filled(col, row int) bool {
	if row < 0 || row >= PatternSize || col < 0 || col >= len(p[row]) {
		return false
	}
	return p[row][col] == '1'
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

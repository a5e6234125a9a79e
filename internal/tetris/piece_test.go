package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestSpawnAnchor(t *testing.T) {
	p := Spawn(KindO, 10)
	assert.Equal(t, 5, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, []Cell{{4, -1}, {5, -1}, {4, 0}, {5, 0}}, p.Cells())
}

func TestSpawnOnEmptyBoardIsValid(t *testing.T) {
	b := NewBoard(10, 25)
	for _, k := range Kinds() {
		p := Spawn(k, b.Width())
		assert.True(t, b.ValidPlacement(p.Cells()), "spawn of %s should be valid", k)
	}
}

func TestComputeCellsIsPure(t *testing.T) {
	p := NewPiece(KindI, 5, 10)
	before := p.Clone()
	p.Rotation = 1
	cells := p.ComputeCells()
	assert.Equal(t, []Cell{{3, 8}, {4, 8}, {5, 8}, {6, 8}}, cells)
	// The cached cells only change through TryMove/TryRotate.
	assert.Equal(t, before.Cells(), p.Cells())
}

func TestTryMove(t *testing.T) {
	b := NewBoard(10, 25)
	p := NewPiece(KindO, 5, 10)

	require.True(t, p.TryMove(6, 10, b))
	assert.Equal(t, 6, p.X)
	assert.Equal(t, []Cell{{5, 9}, {6, 9}, {5, 10}, {6, 10}}, p.Cells())

	require.True(t, p.TryMove(6, 11, b))
	assert.Equal(t, 11, p.Y)
}

func TestTryMoveRejectionIsAtomic(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		x, y   int
		toX    int
		toY    int
		reason string
	}{
		{"left wall", nil, 1, 10, 0, 10, "column -1"},
		{"right wall", nil, 9, 10, 10, 10, "column 10"},
		{"floor", nil, 5, 24, 5, 25, "row 25"},
		{"locked cell", func(b *Board) { b.Lock([]Cell{{4, 12}}, core.ColorRed) }, 5, 11, 5, 12, "occupied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(10, 25)
			if tt.setup != nil {
				tt.setup(b)
			}
			p := NewPiece(KindO, tt.x, tt.y)
			require.True(t, b.ValidPlacement(p.Cells()))
			before := p.Clone()

			assert.False(t, p.TryMove(tt.toX, tt.toY, b), tt.reason)
			assert.Equal(t, before.X, p.X)
			assert.Equal(t, before.Y, p.Y)
			assert.Equal(t, before.Cells(), p.Cells())
		})
	}
}

func TestTryRotate(t *testing.T) {
	b := NewBoard(10, 25)
	p := NewPiece(KindI, 5, 10)

	require.True(t, p.TryRotate(b))
	assert.Equal(t, 1, p.Rotation)
	assert.Equal(t, []Cell{{3, 8}, {4, 8}, {5, 8}, {6, 8}}, p.Cells())

	// Two rotation states: rotating again returns to the vertical pattern.
	require.True(t, p.TryRotate(b))
	assert.Equal(t, 0, p.Rotation)
	assert.Len(t, p.Cells(), 4)
}

func TestTryRotateRejectionIsAtomic(t *testing.T) {
	b := NewBoard(10, 25)
	// Vertical I against the left wall; horizontal would reach column -2.
	p := NewPiece(KindI, 0, 10)
	require.True(t, b.ValidPlacement(p.Cells()))
	before := p.Clone()

	assert.False(t, p.TryRotate(b))
	assert.Equal(t, before.Rotation, p.Rotation)
	assert.Equal(t, before.Cells(), p.Cells())
}

func TestTryRotateBlockedByLockedCell(t *testing.T) {
	b := NewBoard(10, 25)
	p := NewPiece(KindT, 5, 10)
	// Rotation 1 of T adds a cell at (5, 10).
	b.Lock([]Cell{{5, 10}}, core.ColorBlue)
	before := p.Clone()

	assert.False(t, p.TryRotate(b))
	assert.Equal(t, before.Rotation, p.Rotation)
	assert.Equal(t, before.Cells(), p.Cells())
}

package tetris

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ClearRows scans grid bottom to top, removes every full row from locked, then
// shifts the cells above the topmost cleared row down by the number of
// cleared rows. Only the topmost cleared row bounds the shift, so cells
// sitting between two non-adjacent cleared rows stay where they are.
// The grid must be the materialized view of locked.
func ClearRows(grid [][]core.Color, locked *LockedCells) int {
	cleared := 0
	lastRow := 0
	for row := len(grid) - 1; row >= 0; row-- {
		if !rowFull(grid[row]) {
			continue
		}
		cleared++
		lastRow = row
		for col := range grid[row] {
			locked.Del(KeyOf(Cell{Col: col, Row: row}))
		}
	}
	if cleared == 0 {
		return 0
	}

	keys := make([]Key, 0, locked.Len())
	for k := range locked.Keys() {
		keys = append(keys, k)
	}
	// Lowest rows first, so a moved cell is never picked up again.
	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Compare(b.Cell().Row, a.Cell().Row)
	})

	for _, k := range keys {
		c := k.Cell()
		if c.Row >= lastRow {
			continue
		}
		color, _ := locked.Get(k)
		locked.Del(k)
		locked.Put(KeyOf(Cell{Col: c.Col, Row: c.Row + cleared}), color)
	}
	return cleared
}

func rowFull(row []core.Color) bool {
	for _, c := range row {
		if c == core.ColorNone {
			return false
		}
	}
	return true
}

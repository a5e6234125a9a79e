package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestCatalogOrder(t *testing.T) {
	names := ""
	for _, k := range Kinds() {
		names += k.String()
	}
	assert.Equal(t, "SZIOJLT", names)
	assert.Equal(t, 7, NumKinds())
}

func TestCellCountInvariantAcrossRotations(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			want := k.Pattern(0).Blocks()
			assert.Equal(t, 4, want)
			for r := 1; r < k.Rotations(); r++ {
				assert.Equal(t, want, k.Pattern(r).Blocks(), "rotation %d", r)
			}
		})
	}
}

func TestRotationCounts(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindO, 1},
		{KindS, 2},
		{KindZ, 2},
		{KindI, 2},
		{KindJ, 4},
		{KindL, 4},
		{KindT, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Rotations(), tt.kind.String())
	}
}

func TestPatternRotationWraps(t *testing.T) {
	assert.Equal(t, KindT.Pattern(0), KindT.Pattern(4))
	assert.Equal(t, KindT.Pattern(3), KindT.Pattern(-1))
	assert.Equal(t, KindS.Pattern(1), KindS.Pattern(3))
	assert.Equal(t, KindO.Pattern(0), KindO.Pattern(7))
}

func TestKindColors(t *testing.T) {
	want := map[Kind]core.Color{
		KindS: core.ColorCyan,
		KindZ: core.ColorYellow,
		KindI: core.ColorGreen,
		KindO: core.ColorPurple,
		KindJ: core.ColorRed,
		KindL: core.ColorBlue,
		KindT: core.ColorOrange,
	}
	for k, c := range want {
		assert.Equal(t, c, k.Color(), k.String())
	}
	assert.Equal(t, core.ColorNone, Kind(42).Color())
	assert.Equal(t, "?", Kind(-1).String())
}

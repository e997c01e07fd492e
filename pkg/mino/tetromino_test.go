package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTables(t *testing.T) {
	require.NoError(t, ValidateTables())
}

func TestShapeOfReturnsCopy(t *testing.T) {
	s := ShapeOf(KindT)
	s[0] = Point{9, 9}

	assert.Equal(t, Point{0, 1}, ShapeOf(KindT)[0])
}

func TestKickIndex(t *testing.T) {
	tests := []struct {
		from      int
		direction int
		want      int
	}{
		{Rotation0, CW, 0},
		{RotationR, CCW, 1},
		{RotationR, CW, 2},
		{Rotation2, CCW, 3},
		{Rotation2, CW, 4},
		{RotationL, CCW, 5},
		{RotationL, CW, 6},
		{Rotation0, CCW, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KickIndex(tt.from, tt.direction), "from %d direction %d", tt.from, tt.direction)
	}
}

func TestKickOffsetsStartWithoutKick(t *testing.T) {
	for _, k := range Kinds {
		for from := 0; from < RotationStates; from++ {
			for _, d := range []int{CW, CCW} {
				assert.Equal(t, Point{}, KickOffsets(k, from, d)[0], "kind %s from %d direction %d", k, from, d)
			}
		}
	}
}

func TestKickTablesShared(t *testing.T) {
	assert.Equal(t, Kicks{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, KickOffsets(KindI, Rotation0, CW))

	for _, k := range []Kind{KindJ, KindL, KindO, KindS, KindT, KindZ} {
		assert.Equal(t, Kicks{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, KickOffsets(k, Rotation0, CW), "kind %s", k)
	}
}

func TestKindString(t *testing.T) {
	var s string
	for _, k := range Kinds {
		s += k.String()
	}

	assert.Equal(t, "IJLOSTZ", s)
	assert.Equal(t, "?", Kind(42).String())
}

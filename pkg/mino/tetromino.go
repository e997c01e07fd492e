package mino

import (
	"fmt"
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4
)

const (
	CW  = 1
	CCW = -1
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every tetromino kind in table order.
var Kinds = []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is the four cell offsets of a piece relative to its anchor.
type Shape [4]Point

// Kicks is one row of wall kick candidates, tried in order.
type Kicks [5]Point

var shapes = [...]Shape{
	KindI: {{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
	KindJ: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	KindL: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	KindO: {{0, 1}, {1, 1}, {0, 0}, {1, 0}},
	KindS: {{0, 1}, {1, 1}, {-1, 0}, {0, 0}},
	KindT: {{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
	KindZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// Rows are ordered 0->R, R->0, R->2, 2->R, 2->L, L->2, L->0, 0->L.
var kicksI = [8]Kicks{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var kicksJLOSTZ = [8]Kicks{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var kickTables = [...]*[8]Kicks{
	KindI: &kicksI,
	KindJ: &kicksJLOSTZ,
	KindL: &kicksJLOSTZ,
	KindO: &kicksJLOSTZ,
	KindS: &kicksJLOSTZ,
	KindT: &kicksJLOSTZ,
	KindZ: &kicksJLOSTZ,
}

var colors = [...]Block{
	KindI: BlockSolidCyan,
	KindJ: BlockSolidBlue,
	KindL: BlockSolidOrange,
	KindO: BlockSolidYellow,
	KindS: BlockSolidGreen,
	KindT: BlockSolidMagenta,
	KindZ: BlockSolidRed,
}

// ShapeOf returns the rotation state 0 cells of k. The table is shared, so a
// copy is returned.
func ShapeOf(k Kind) Shape {
	return shapes[k]
}

// ColorOf returns the block colour used for pieces of kind k.
func ColorOf(k Kind) Block {
	return colors[k]
}

// KickIndex returns the kick table row for rotating away from rotation in the
// given direction.
func KickIndex(from int, direction int) int {
	i := from * 2
	if direction < 0 {
		i--
	}

	return wrap(i, len(kicksI))
}

// KickOffsets returns the ordered translations to try when rotating a piece
// of kind k away from rotation in the given direction. The first candidate is
// always (0,0).
func KickOffsets(k Kind, from int, direction int) Kicks {
	return kickTables[k][KickIndex(from, direction)]
}

// ValidateTables checks the shape and kick tables for every kind.
func ValidateTables() error {
	if len(shapes) != len(Kinds) || len(kickTables) != len(Kinds) || len(colors) != len(Kinds) {
		return fmt.Errorf("tetromino tables cover %d/%d/%d kinds, want %d", len(shapes), len(kickTables), len(colors), len(Kinds))
	}

	for _, k := range Kinds {
		seen := make(map[Point]bool, len(shapes[k]))
		for _, p := range shapes[k] {
			if seen[p] {
				return fmt.Errorf("shape %s repeats cell %s", k, p)
			}
			seen[p] = true
		}

		if colors[k] == BlockNone {
			return fmt.Errorf("shape %s has no colour", k)
		}

		t := kickTables[k]
		if t == nil {
			return fmt.Errorf("shape %s has no kick table", k)
		}
		for i, row := range t {
			if row[0] != (Point{}) {
				return fmt.Errorf("kick row %d of shape %s starts with %s, want (0,0)", i, k, row[0])
			}
		}
	}

	return nil
}

func wrap(v int, max int) int {
	v %= max
	if v < 0 {
		v += max
	}

	return v
}

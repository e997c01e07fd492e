package mino

import (
	"strconv"
	"strings"
)

// Point is a (column, row) pair. Row 0 is the bottom of the board.
type Point struct {
	X, Y int
}

var (
	Left  = Point{-1, 0}
	Right = Point{1, 0}
	Down  = Point{0, -1}
)

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}

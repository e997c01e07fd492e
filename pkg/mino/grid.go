package mino

import (
	"strings"
)

// Grid is the locked-block occupancy map of a board.
type Grid struct {
	W int // Width
	H int // Height

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewGrid(w int, h int) *Grid {
	return &Grid{W: w, H: h, M: make([]Block, w*h)}
}

func (g *Grid) inBounds(x int, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// IsOccupied reports whether a piece cell may not enter (x, y). Columns
// outside the board and rows below it block; rows above it are open.
func (g *Grid) IsOccupied(x int, y int) bool {
	if x < 0 || x >= g.W || y < 0 {
		return true
	} else if y >= g.H {
		return false
	}

	return g.M[I(x, y, g.W)] != BlockNone
}

// Block returns the block stored at (x, y), or BlockNone off the grid.
func (g *Grid) Block(x int, y int) Block {
	if !g.inBounds(x, y) {
		return BlockNone
	}

	return g.M[I(x, y, g.W)]
}

// Place stores b at each in-bounds cell. Cells above the board are dropped.
func (g *Grid) Place(cells []Point, b Block) {
	for _, p := range cells {
		if !g.inBounds(p.X, p.Y) {
			continue
		}

		g.M[I(p.X, p.Y, g.W)] = b
	}
}

func (g *Grid) IsRowFull(y int) bool {
	if y < 0 || y >= g.H {
		return false
	}

	for x := 0; x < g.W; x++ {
		if g.M[I(x, y, g.W)] == BlockNone {
			return false
		}
	}

	return true
}

// ClearRow empties row y and shifts every row above it down by one.
func (g *Grid) ClearRow(y int) {
	if y < 0 || y >= g.H {
		return
	}

	copy(g.M[I(0, y, g.W):], g.M[I(0, y+1, g.W):])

	top := g.M[I(0, g.H-1, g.W):]
	for x := range top {
		top[x] = BlockNone
	}
}

// ClearFullRows removes every full row and returns how many were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0

	y := 0
	for y < g.H {
		if g.IsRowFull(y) {
			g.ClearRow(y)
			cleared++
			continue
		}

		y++
	}

	return cleared
}

func (g *Grid) Reset() {
	for i := range g.M {
		g.M[i] = BlockNone
	}
}

// Empty reports whether no cell of the grid is occupied.
func (g *Grid) Empty() bool {
	for _, b := range g.M {
		if b != BlockNone {
			return false
		}
	}

	return true
}

// Render draws the grid top row first, one rune per cell.
func (g *Grid) Render() string {
	var b strings.Builder

	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			b.WriteRune(g.M[I(x, y, g.W)].Rune())
		}

		if y == 0 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}

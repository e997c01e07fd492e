package mino

import (
	"fmt"
	"math"
	"time"
)

// Piece is the falling piece of a board. A board allocates one Piece and
// re-initializes it on every spawn.
type Piece struct {
	Point
	Kind     Kind
	Cells    Shape
	Rotation int
	Color    Block

	StepDelay time.Duration
	LockDelay time.Duration

	stepTime time.Duration
	lockTime time.Duration
	grounded bool
}

func NewPiece(stepDelay time.Duration, lockDelay time.Duration) *Piece {
	return &Piece{StepDelay: stepDelay, LockDelay: lockDelay}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s r%d", p.Kind, p.Point, p.Rotation)
}

// Initialize places a fresh piece of kind k at loc in rotation state 0. The
// caller is responsible for checking that it fits.
func (p *Piece) Initialize(k Kind, loc Point, color Block) {
	p.Kind = k
	p.Cells = ShapeOf(k)
	p.Point = loc
	p.Rotation = Rotation0
	p.Color = color

	p.stepTime = 0
	p.lockTime = 0
	p.grounded = false
}

// Absolute returns the board coordinates of the piece cells.
func (p *Piece) Absolute() []Point {
	return p.cellsAt(p.Point)
}

func (p *Piece) cellsAt(loc Point) []Point {
	cells := make([]Point, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = loc.Add(c)
	}

	return cells
}

func (p *Piece) fitsAt(g *Grid, loc Point) bool {
	for _, c := range p.Cells {
		if g.IsOccupied(loc.X+c.X, loc.Y+c.Y) {
			return false
		}
	}

	return true
}

// Fits reports whether the piece can occupy its current position.
func (p *Piece) Fits(g *Grid) bool {
	return p.fitsAt(g, p.Point)
}

func (p *Piece) move(g *Grid, delta Point) bool {
	loc := p.Point.Add(delta)
	if !p.fitsAt(g, loc) {
		return false
	}

	p.Point = loc
	p.lockTime = 0
	p.grounded = false

	return true
}

// TryMove translates the piece by delta when the destination is free. A
// failed downward move marks the piece as grounded.
func (p *Piece) TryMove(g *Grid, delta Point) bool {
	if p.move(g, delta) {
		return true
	}

	if delta == Down {
		p.grounded = true
	}

	return false
}

// TryRotate turns the piece a quarter turn (CW or CCW), trying each wall kick
// in order. The piece is left untouched when no kick fits.
func (p *Piece) TryRotate(g *Grid, direction int) bool {
	if direction == 0 {
		return false
	} else if direction > 0 {
		direction = CW
	} else {
		direction = CCW
	}

	from := p.Rotation
	original := p.Cells

	p.Rotation = wrap(from+direction, RotationStates)
	for i := range p.Cells {
		p.Cells[i] = rotateCell(p.Kind, p.Cells[i], direction)
	}

	for _, kick := range KickOffsets(p.Kind, from, direction) {
		if p.move(g, kick) {
			return true
		}
	}

	p.Rotation = from
	p.Cells = original

	return false
}

// HardDrop lowers the piece as far as it goes and returns the rows travelled.
// The piece is grounded afterwards and must be locked by the caller.
func (p *Piece) HardDrop(g *Grid) int {
	rows := 0
	for p.TryMove(g, Down) {
		rows++
	}

	return rows
}

// Ghost returns the cells the piece would occupy after a hard drop.
func (p *Piece) Ghost(g *Grid) []Point {
	loc := p.Point
	for p.fitsAt(g, loc.Add(Down)) {
		loc = loc.Add(Down)
	}

	return p.cellsAt(loc)
}

// AdvanceTimers adds elapsed time to the gravity and lock timers and reports
// whether a gravity step is due. The caller attempts the step before asking
// LockReady, since only a failed step grounds the piece.
func (p *Piece) AdvanceTimers(elapsed time.Duration) bool {
	p.stepTime += elapsed
	p.lockTime += elapsed

	if p.stepTime >= p.StepDelay {
		p.stepTime = 0
		return true
	}

	return false
}

// LockReady reports whether the piece is grounded and the lock delay has
// passed since it last moved.
func (p *Piece) LockReady() bool {
	return p.grounded && p.lockTime >= p.LockDelay
}

func (p *Piece) Grounded() bool {
	return p.grounded
}

// rotateCell turns c a quarter turn. I and O pieces turn about the centre of
// a cell rather than a cell, so their offsets are shifted by half a cell and
// rounded up.
func rotateCell(k Kind, c Point, direction int) Point {
	d := float64(direction)
	x, y := float64(c.X), float64(c.Y)

	switch k {
	case KindI, KindO:
		x -= 0.5
		y -= 0.5

		return Point{int(math.Ceil(y * d)), int(math.Ceil(-x * d))}
	default:
		return Point{int(math.Round(y * d)), int(math.Round(-x * d))}
	}
}

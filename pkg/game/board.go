package game

import (
	"time"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

// Board runs the spawn, fall, lock and clear cycle of a single grid.
type Board struct {
	Grid  *mino.Grid
	Piece *mino.Piece
	Spawn mino.Point

	Randomizer mino.Randomizer
	Event      *event.Dispatcher

	Active   bool // A piece is falling
	Enabled  bool
	GameOver bool

	onLock     func(lines int)
	onGameOver func()
}

func NewBoard(c Config, r mino.Randomizer, ev *event.Dispatcher) *Board {
	return &Board{
		Grid:       mino.NewGrid(c.Width, c.Height),
		Piece:      mino.NewPiece(c.StepDelay, c.LockDelay),
		Spawn:      c.Spawn,
		Randomizer: r,
		Event:      ev,
	}
}

// Reset clears the grid and re-enables the board without spawning.
func (b *Board) Reset() {
	b.Grid.Reset()

	b.Active = false
	b.GameOver = false
	b.Enabled = true
}

func (b *Board) Disable() {
	b.Enabled = false
}

// SpawnPiece brings in the next piece at the spawn point. When it does not
// fit the board is disabled and reports game over.
func (b *Board) SpawnPiece() bool {
	if !b.Enabled {
		return false
	}

	k := b.Randomizer.Take()
	b.Piece.Initialize(k, b.Spawn, mino.ColorOf(k))
	b.Active = true

	if !b.Piece.Fits(b.Grid) {
		b.Enabled = false
		b.GameOver = true

		if b.onGameOver != nil {
			b.onGameOver()
		}
		return false
	}

	b.Event.Emit(event.PieceSpawnedEvent{Kind: k, Next: b.Randomizer.Next()})

	return true
}

func (b *Board) playable() bool {
	return b.Enabled && b.Active
}

// Tick advances gravity by elapsed. The piece locks when a gravity step
// finds it resting and the lock delay has passed since it last moved.
func (b *Board) Tick(elapsed time.Duration) {
	if !b.playable() {
		return
	}

	if !b.Piece.AdvanceTimers(elapsed) {
		return
	}

	if b.Piece.TryMove(b.Grid, mino.Down) {
		b.Event.Emit(event.PieceMovedEvent{At: b.Piece.Point})
		return
	}

	if b.Piece.LockReady() {
		b.lock()
	}
}

func (b *Board) move(delta mino.Point) bool {
	if !b.playable() || !b.Piece.TryMove(b.Grid, delta) {
		return false
	}

	b.Event.Emit(event.PieceMovedEvent{At: b.Piece.Point})

	return true
}

func (b *Board) MoveLeft() bool {
	return b.move(mino.Left)
}

func (b *Board) MoveRight() bool {
	return b.move(mino.Right)
}

func (b *Board) SoftDrop() bool {
	return b.move(mino.Down)
}

func (b *Board) rotate(direction int) bool {
	if !b.playable() || !b.Piece.TryRotate(b.Grid, direction) {
		return false
	}

	b.Event.Emit(event.PieceRotatedEvent{Rotation: b.Piece.Rotation})

	return true
}

func (b *Board) RotateCW() bool {
	return b.rotate(mino.CW)
}

func (b *Board) RotateCCW() bool {
	return b.rotate(mino.CCW)
}

// HardDrop drops the piece to its landing row and locks it at once.
func (b *Board) HardDrop() bool {
	if !b.playable() {
		return false
	}

	if b.Piece.HardDrop(b.Grid) > 0 {
		b.Event.Emit(event.PieceMovedEvent{At: b.Piece.Point})
	}

	b.lock()

	return true
}

func (b *Board) lock() {
	p := b.Piece
	cells := p.Absolute()

	b.Grid.Place(cells, p.Color)
	b.Active = false

	b.Event.Emit(event.PieceLockedEvent{Kind: p.Kind, Cells: cells, Color: p.Color})

	cleared := b.Grid.ClearFullRows()
	if cleared > 0 {
		b.Event.Emit(event.LinesClearedEvent{Lines: cleared})
	}

	if b.onLock != nil {
		b.onLock(cleared)
	}

	b.SpawnPiece()
}

// ActiveCells returns the falling piece cells, or nil between pieces.
func (b *Board) ActiveCells() []mino.Point {
	if !b.Active {
		return nil
	}

	return b.Piece.Absolute()
}

// GhostCells returns where the falling piece would land, or nil when the
// board is not in play.
func (b *Board) GhostCells() []mino.Point {
	if !b.playable() {
		return nil
	}

	return b.Piece.Ghost(b.Grid)
}

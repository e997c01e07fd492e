package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

func newTestSession(t *testing.T, kinds ...mino.Kind) *Session {
	t.Helper()

	s, err := NewSession(DefaultConfig(), mino.NewSequence(kinds...), NewRanking(MemoryStore{}, DefaultMaxScores))
	require.NoError(t, err)

	return s
}

func collect(s *Session) *[]interface{} {
	var got []interface{}
	s.Event.Subscribe(func(e interface{}) {
		got = append(got, e)
	})

	return &got
}

// fillRowsExcept fills rows [0, rows) leaving column hole empty.
func fillRowsExcept(g *mino.Grid, rows int, hole int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < g.W; x++ {
			if x != hole {
				g.Place([]mino.Point{{X: x, Y: y}}, mino.BlockSolidGreen)
			}
		}
	}
}

func TestSessionStartsInMenu(t *testing.T) {
	s := newTestSession(t, mino.KindO)

	assert.Equal(t, StateMenu, s.State)
	assert.False(t, s.Board.Active)

	s.Tick(10 * time.Second)
	assert.False(t, s.MoveLeft())
	assert.False(t, s.HardDrop())
	assert.True(t, s.Board.Grid.Empty())
}

func TestSessionStartGame(t *testing.T) {
	s := newTestSession(t, mino.KindT)
	got := collect(s)

	s.StartGame()

	assert.Equal(t, StatePlaying, s.State)
	assert.True(t, s.Board.Active)
	assert.Equal(t, DefaultSpawn, s.Board.Piece.Point)
	assert.Equal(t, mino.KindT, s.Board.Piece.Kind)
	assert.Equal(t, mino.BlockSolidMagenta, s.Board.Piece.Color)
	assert.Equal(t, []interface{}{
		event.GameStartedEvent{},
		event.PieceSpawnedEvent{Kind: mino.KindT, Next: mino.KindT},
	}, *got)
}

func TestSessionGravity(t *testing.T) {
	s := newTestSession(t, mino.KindO)
	s.StartGame()

	s.Tick(999 * time.Millisecond)
	assert.Equal(t, 18, s.Board.Piece.Y)

	s.Tick(time.Millisecond)
	assert.Equal(t, 17, s.Board.Piece.Y)
}

func TestSessionLocksAfterGravity(t *testing.T) {
	s := newTestSession(t, mino.KindO)
	s.StartGame()

	for i := 0; i < 18; i++ {
		s.Tick(time.Second)
	}
	assert.Equal(t, mino.Point{X: 4, Y: 0}, s.Board.Piece.Point)
	assert.True(t, s.Board.Grid.Empty())

	s.Tick(time.Second)

	assert.Equal(t, mino.BlockSolidYellow, s.Board.Grid.Block(4, 0))
	assert.Equal(t, mino.BlockSolidYellow, s.Board.Grid.Block(5, 1))
	assert.Equal(t, DefaultSpawn, s.Board.Piece.Point)
	assert.Equal(t, StatePlaying, s.State)
}

func TestSessionMoveResetsLockDelay(t *testing.T) {
	s := newTestSession(t, mino.KindO)
	s.StartGame()

	for i := 0; i < 18; i++ {
		s.Tick(time.Second)
	}

	s.Tick(999 * time.Millisecond)
	require.True(t, s.MoveLeft())

	s.Tick(time.Millisecond)
	assert.True(t, s.Board.Grid.Empty(), "piece locked before the lock delay passed")
	assert.True(t, s.Board.Piece.Grounded())

	s.Tick(time.Second)
	assert.Equal(t, mino.BlockSolidYellow, s.Board.Grid.Block(3, 0))
	assert.Equal(t, mino.BlockNone, s.Board.Grid.Block(5, 0))
}

func TestSessionRotateResetsLockDelay(t *testing.T) {
	s := newTestSession(t, mino.KindT)
	s.StartGame()

	for i := 0; i < 18; i++ {
		s.Tick(time.Second)
	}
	require.Equal(t, mino.Point{X: 4, Y: 0}, s.Board.Piece.Point)

	s.Tick(999 * time.Millisecond)
	require.True(t, s.RotateClockwise())

	s.Tick(time.Millisecond)
	assert.True(t, s.Board.Grid.Empty(), "piece locked before the lock delay passed")
	assert.True(t, s.Board.Piece.Grounded())

	s.Tick(time.Second)
	assert.Equal(t, mino.BlockSolidMagenta, s.Board.Grid.Block(3, 0))
	assert.Equal(t, mino.BlockSolidMagenta, s.Board.Grid.Block(3, 2))
}

func TestSessionHardDropLocksImmediately(t *testing.T) {
	s := newTestSession(t, mino.KindO)
	s.StartGame()

	require.True(t, s.HardDrop())

	assert.Equal(t, mino.BlockSolidYellow, s.Board.Grid.Block(4, 0))
	assert.Equal(t, mino.BlockSolidYellow, s.Board.Grid.Block(5, 1))
	assert.Equal(t, DefaultSpawn, s.Board.Piece.Point)
	assert.Equal(t, 0, s.Score)
}

func TestSessionLockEvents(t *testing.T) {
	s := newTestSession(t, mino.KindO)
	s.StartGame()

	g := s.Board.Grid
	for x := 0; x < g.W; x++ {
		if x != 4 && x != 5 {
			g.Place([]mino.Point{{X: x, Y: 0}}, mino.BlockSolidGreen)
		}
	}

	got := collect(s)
	require.True(t, s.HardDrop())

	require.Len(t, *got, 5)
	assert.IsType(t, event.PieceMovedEvent{}, (*got)[0])
	assert.Equal(t, event.PieceLockedEvent{
		Kind:  mino.KindO,
		Cells: []mino.Point{{X: 4, Y: 1}, {X: 5, Y: 1}, {X: 4, Y: 0}, {X: 5, Y: 0}},
		Color: mino.BlockSolidYellow,
	}, (*got)[1])
	assert.Equal(t, event.LinesClearedEvent{Lines: 1}, (*got)[2])
	assert.Equal(t, event.ScoreEvent{Points: 100, Score: 100}, (*got)[3])
	assert.IsType(t, event.PieceSpawnedEvent{}, (*got)[4])

	assert.Equal(t, mino.BlockSolidYellow, g.Block(4, 0))
	assert.Equal(t, mino.BlockNone, g.Block(0, 0))
	assert.Equal(t, mino.BlockNone, g.Block(4, 1))
}

func TestSessionScoring(t *testing.T) {
	for lines, want := range map[int]int{0: 0, 1: 100, 2: 300, 3: 500, 4: 800} {
		s := newTestSession(t, mino.KindI)
		s.StartGame()

		fillRowsExcept(s.Board.Grid, lines, 5)

		require.True(t, s.RotateClockwise())
		require.True(t, s.HardDrop())

		assert.Equal(t, want, s.Score, "%d lines", lines)
		assert.Equal(t, lines, s.Lines)
	}
}

func TestSessionScoresEachLockSeparately(t *testing.T) {
	s := newTestSession(t, mino.KindI)
	s.StartGame()
	g := s.Board.Grid

	fillRowsExcept(g, 1, 5)
	require.True(t, s.RotateClockwise())
	require.True(t, s.HardDrop())
	assert.Equal(t, 100, s.Score)

	for x := 0; x < g.W; x++ {
		if x != 5 {
			g.Place([]mino.Point{{X: x, Y: 3}}, mino.BlockSolidGreen)
		}
	}
	require.True(t, s.RotateClockwise())
	require.True(t, s.HardDrop())

	assert.Equal(t, 200, s.Score)
	assert.Equal(t, 2, s.Lines)
}

func towerGameOver(t *testing.T, s *Session) {
	t.Helper()

	for y := 0; y < DefaultSpawn.Y; y++ {
		s.Board.Grid.Place([]mino.Point{{X: DefaultSpawn.X, Y: y}}, mino.BlockSolidGreen)
	}

	require.True(t, s.HardDrop())
}

func TestSessionSpawnCollisionEndsGame(t *testing.T) {
	s := newTestSession(t, mino.KindT)
	s.StartGame()
	got := collect(s)

	towerGameOver(t, s)

	assert.Equal(t, StateGameOver, s.State)
	assert.False(t, s.Board.Enabled)
	assert.True(t, s.Board.GameOver)
	assert.Equal(t, event.GameOverEvent{}, (*got)[len(*got)-1])

	grid := append([]mino.Block(nil), s.Board.Grid.M...)
	piece := *s.Board.Piece

	s.Tick(10 * time.Second)
	assert.False(t, s.MoveLeft())
	assert.False(t, s.RotateClockwise())
	assert.False(t, s.HardDrop())
	s.Board.Tick(10 * time.Second)

	assert.Equal(t, grid, s.Board.Grid.M)
	assert.Equal(t, piece, *s.Board.Piece)
	assert.Nil(t, s.Board.GhostCells())
}

func TestSessionRestartAfterGameOver(t *testing.T) {
	s := newTestSession(t, mino.KindT)
	s.StartGame()
	s.Score = 1234

	towerGameOver(t, s)
	require.Equal(t, StateGameOver, s.State)
	assert.Equal(t, []int{1234}, s.Ranking.Scores)

	s.Tick(time.Minute)
	assert.Equal(t, StateGameOver, s.State)

	s.ProcessAction(event.ActionStart)

	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Lines)
	assert.True(t, s.Board.Grid.Empty())
	assert.True(t, s.Board.Enabled)
	assert.Equal(t, DefaultSpawn, s.Board.Piece.Point)
}

func TestSessionStartGameWhilePlaying(t *testing.T) {
	s := newTestSession(t, mino.KindT)
	s.StartGame()
	s.Score = 300

	s.StartGame()

	assert.Equal(t, 300, s.Score)
}

func TestSessionProcessAction(t *testing.T) {
	s := newTestSession(t, mino.KindT)
	s.ProcessAction(event.ActionStart)

	s.ProcessAction(event.ActionMoveLeft)
	assert.Equal(t, 3, s.Board.Piece.X)
	s.ProcessAction(event.ActionMoveRight)
	s.ProcessAction(event.ActionMoveRight)
	assert.Equal(t, 5, s.Board.Piece.X)
	s.ProcessAction(event.ActionSoftDrop)
	assert.Equal(t, 17, s.Board.Piece.Y)
	s.ProcessAction(event.ActionRotateCW)
	assert.Equal(t, mino.RotationR, s.Board.Piece.Rotation)
	s.ProcessAction(event.ActionRotateCCW)
	s.ProcessAction(event.ActionRotateCCW)
	assert.Equal(t, mino.RotationL, s.Board.Piece.Rotation)
	s.ProcessAction(event.ActionHardDrop)
	assert.False(t, s.Board.Grid.Empty())
	s.ProcessAction(event.ActionUnknown)
}

func TestSessionGhostAndNext(t *testing.T) {
	s := newTestSession(t, mino.KindO, mino.KindI)
	s.StartGame()

	assert.Equal(t, mino.KindI, s.Next())
	assert.Equal(t, []mino.Point{{X: 4, Y: 1}, {X: 5, Y: 1}, {X: 4, Y: 0}, {X: 5, Y: 0}}, s.Board.GhostCells())
	assert.Len(t, s.Board.ActiveCells(), 4)
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 0

	_, err := NewSession(c, nil, nil)
	assert.Error(t, err)
}

func TestNewSessionBuildsRandomizer(t *testing.T) {
	c := DefaultConfig()
	c.Randomizer = RandomizerBag
	c.Seed = 3

	s, err := NewSession(c, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &mino.Bag{}, s.Board.Randomizer)

	s.StartGame()
	assert.True(t, s.Board.Active)
}

func TestPoints(t *testing.T) {
	assert.Equal(t, []int{0, 100, 300, 500, 800, 0}, []int{Points(0), Points(1), Points(2), Points(3), Points(4), Points(5)})
}

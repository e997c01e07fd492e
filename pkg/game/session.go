package game

import (
	"time"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Session owns a board and its score and sequences menu, play and game over.
// It is not safe for concurrent use; the host calls it from one goroutine.
type Session struct {
	State State
	Score int
	Lines int

	Player string

	Board   *Board
	Ranking *Ranking
	Event   *event.Dispatcher

	LogLevel int
}

// NewSession validates c and builds a session in the menu state. ranking may
// be nil.
func NewSession(c Config, r mino.Randomizer, ranking *Ranking) (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if r == nil {
		var err error
		r, err = c.NewRandomizer()
		if err != nil {
			return nil, err
		}
	}

	s := &Session{
		State:    StateMenu,
		Ranking:  ranking,
		Event:    &event.Dispatcher{},
		LogLevel: c.LogLevel,
	}

	s.Board = NewBoard(c, r, s.Event)
	s.Board.onLock = s.addLines
	s.Board.onGameOver = s.gameOver

	s.Event.Subscribe(s.logEvent)

	return s, nil
}

// StartGame begins a new round from the menu or after a game over.
func (s *Session) StartGame() {
	if s.State == StatePlaying {
		return
	}

	s.State = StatePlaying
	s.Score = 0
	s.Lines = 0

	s.Board.Reset()

	s.Log(LogStandard, "Starting game for ", s.Player)
	s.Event.Emit(event.GameStartedEvent{})

	s.Board.SpawnPiece()
}

func (s *Session) addLines(lines int) {
	if s.State != StatePlaying {
		return
	}

	points := Points(lines)
	s.Score += points
	s.Lines += lines

	s.Logf(LogDebug, "Locked piece: %d lines, %d points", lines, points)

	if points > 0 {
		s.Event.Emit(event.ScoreEvent{Points: points, Score: s.Score})
	}
}

func (s *Session) gameOver() {
	if s.State != StatePlaying {
		return
	}

	s.State = StateGameOver
	s.Board.Disable()

	s.Logf(LogStandard, "Game over - %s scored %d with %d lines", s.Player, s.Score, s.Lines)

	if s.Ranking != nil {
		ranked, err := s.Ranking.AddScore(s.Score)
		if err != nil {
			s.Logf(LogStandard, "failed to save score: %s", err)
		} else if ranked {
			s.Logf(LogStandard, "New high score: %d", s.Score)
		}
	}

	s.Event.Emit(event.GameOverEvent{Score: s.Score, Lines: s.Lines})
}

func (s *Session) logEvent(e interface{}) {
	if e, ok := e.(event.PieceSpawnedEvent); ok {
		s.Logf(LogVerbose, "Spawned %s, next %s", e.Kind, e.Next)
	}
}

// Tick advances the board by the time elapsed since the previous frame.
func (s *Session) Tick(elapsed time.Duration) {
	if s.State != StatePlaying {
		return
	}

	s.Board.Tick(elapsed)
}

func (s *Session) playing() bool {
	return s.State == StatePlaying
}

func (s *Session) MoveLeft() bool {
	return s.playing() && s.Board.MoveLeft()
}

func (s *Session) MoveRight() bool {
	return s.playing() && s.Board.MoveRight()
}

func (s *Session) SoftDrop() bool {
	return s.playing() && s.Board.SoftDrop()
}

func (s *Session) RotateClockwise() bool {
	return s.playing() && s.Board.RotateCW()
}

func (s *Session) RotateCounterClockwise() bool {
	return s.playing() && s.Board.RotateCCW()
}

func (s *Session) HardDrop() bool {
	return s.playing() && s.Board.HardDrop()
}

// ProcessAction applies an input command.
func (s *Session) ProcessAction(a event.GameAction) {
	switch a {
	case event.ActionStart:
		s.StartGame()
	case event.ActionRotateCCW:
		s.RotateCounterClockwise()
	case event.ActionRotateCW:
		s.RotateClockwise()
	case event.ActionMoveLeft:
		s.MoveLeft()
	case event.ActionMoveRight:
		s.MoveRight()
	case event.ActionSoftDrop:
		s.SoftDrop()
	case event.ActionHardDrop:
		s.HardDrop()
	}
}

// Next returns the kind of the piece that spawns after the current one.
func (s *Session) Next() mino.Kind {
	return s.Board.Randomizer.Next()
}

package event

import (
	"github.com/qnkhuat/blockfall/pkg/mino"
)

type PieceMovedEvent struct {
	At mino.Point
}

type PieceRotatedEvent struct {
	Rotation int
}

type PieceSpawnedEvent struct {
	Kind mino.Kind
	Next mino.Kind
}

type PieceLockedEvent struct {
	Kind  mino.Kind
	Cells []mino.Point
	Color mino.Block
}

type LinesClearedEvent struct {
	Lines int
}

type ScoreEvent struct {
	Points int
	Score  int
}

type GameStartedEvent struct{}

type GameOverEvent struct {
	Score int
	Lines int
}

// Handler receives events by value. A type switch selects the ones it wants.
type Handler func(e interface{})

// Dispatcher delivers events synchronously to every subscribed handler, in
// subscription order. The zero value has no subscribers and drops events.
type Dispatcher struct {
	handlers []Handler
}

func (d *Dispatcher) Subscribe(h Handler) {
	d.handlers = append(d.handlers, h)
}

func (d *Dispatcher) Emit(e interface{}) {
	if d == nil {
		return
	}

	for _, h := range d.handlers {
		h(e)
	}
}

// Chan returns a handler that forwards events to c, dropping them when c is
// full so the simulation never waits on a slow consumer.
func Chan(c chan<- interface{}) Handler {
	return func(e interface{}) {
		select {
		case c <- e:
		default:
		}
	}
}

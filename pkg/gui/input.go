package gui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockfall/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var DefaultKeybindings = []Keybinding{
	{r: 'z', a: event.ActionRotateCCW},
	{r: 'Z', a: event.ActionRotateCCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionHardDrop},
	{r: 'k', a: event.ActionHardDrop},
	{r: 'K', a: event.ActionHardDrop},
	{r: ' ', a: event.ActionHardDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyEnter, a: event.ActionStart},
}

// lookupAction returns the action bound to ev, or ActionUnknown
func lookupAction(binds []Keybinding, ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range binds {
		if bind.k != 0 && bind.k == k {
			return bind.a
		}
		if bind.r != 0 && k == tcell.KeyRune && bind.r == r {
			return bind.a
		}
	}

	return event.ActionUnknown
}

// Input queues actions between frames. Terminals repeat held keys, so an
// action queued more than once within a frame is applied once.
type Input struct {
	sync.Mutex

	pending []event.GameAction
	queued  map[event.GameAction]bool
}

func NewInput() *Input {
	return &Input{queued: make(map[event.GameAction]bool)}
}

// Press queues a and reports whether it was not already queued this frame.
func (in *Input) Press(a event.GameAction) bool {
	if a == event.ActionUnknown {
		return false
	}

	in.Lock()
	defer in.Unlock()

	if in.queued[a] {
		return false
	}

	in.queued[a] = true
	in.pending = append(in.pending, a)

	return true
}

// Drain returns the queued actions in press order and starts a new frame.
func (in *Input) Drain() []event.GameAction {
	in.Lock()
	defer in.Unlock()

	actions := in.pending
	in.pending = nil
	for a := range in.queued {
		delete(in.queued, a)
	}

	return actions
}

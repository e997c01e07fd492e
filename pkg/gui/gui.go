package gui

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/game"
)

const (
	EventQueueSize = 64
	recentLines    = 5
)

// GUI hosts a session in the terminal. All session calls happen on the tview
// event loop.
type GUI struct {
	App     *tview.Application
	Session *game.Session
	Theme   Theme

	Keybindings []Keybinding
	Input       *Input
	Clock       *Clock

	board  *tview.Box
	side   *tview.TextView
	recent *tview.TextView
	modal  *tview.Modal
	pages  *tview.Pages

	events   chan interface{}
	messages []string
	done     chan struct{}
	stopOnce sync.Once
}

func New(s *game.Session, t Theme) *GUI {
	g := &GUI{
		App:         tview.NewApplication(),
		Session:     s,
		Theme:       t,
		Keybindings: DefaultKeybindings,
		Input:       NewInput(),
		Clock:       NewClock(FrameInterval),
		events:      make(chan interface{}, EventQueueSize),
		done:        make(chan struct{}),
	}

	s.Event.Subscribe(event.Chan(g.events))

	g.board = tview.NewBox()
	g.board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		drawBoard(screen, x, y, g.Session.Board, g.Theme)
		return x, y, width, height
	})

	g.side = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)
	g.side.SetDynamicColors(true)

	g.recent = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(true).
		SetWordWrap(true)

	boardW, boardH := boardSize(s.Board.Grid.W, s.Board.Grid.H)

	layout := tview.NewGrid().
		SetRows(1, boardH, recentLines, -1).
		SetColumns(1, boardW, 2, 16, -1).
		AddItem(g.board, 1, 1, 1, 1, 0, 0, false).
		AddItem(g.side, 1, 3, 1, 1, 0, 0, false).
		AddItem(g.recent, 2, 1, 1, 3, 0, 0, false)

	g.modal = tview.NewModal()

	g.pages = tview.NewPages().
		AddPage("game", layout, true, true).
		AddPage("modal", g.modal, true, true)

	g.App.SetInputCapture(g.handleKeypress)
	g.App.SetRoot(g.pages, true)

	g.update()

	return g
}

// Run blocks until the player quits.
func (g *GUI) Run() error {
	go g.Clock.Run(g.done, func(now time.Time) {
		g.App.QueueUpdateDraw(func() {
			g.frame(now)
		})
	})

	err := g.App.Run()
	g.stopClock()

	return err
}

func (g *GUI) Stop() {
	g.stopClock()
	g.App.Stop()
}

func (g *GUI) stopClock() {
	g.stopOnce.Do(func() {
		close(g.done)
	})
}

func (g *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	k := ev.Key()

	if k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
		g.Stop()
		return nil
	}

	if k == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P') {
		g.togglePause()
		return nil
	}

	g.Input.Press(lookupAction(g.Keybindings, ev))

	return nil
}

func (g *GUI) togglePause() {
	if g.Clock.Paused {
		g.Clock.Resume()
		g.addMessage("Resumed")
	} else if g.Session.State == game.StatePlaying {
		g.Clock.Pause()
		g.addMessage("Paused")
	}
}

// frame applies queued input, then advances the session by the time since
// the previous frame. Input is discarded while paused.
func (g *GUI) frame(now time.Time) {
	actions := g.Input.Drain()
	if !g.Clock.Paused {
		for _, a := range actions {
			g.Session.ProcessAction(a)
		}
	}

	g.Session.Tick(g.Clock.Elapsed(now))

	g.update()
}

func (g *GUI) update() {
	g.drainEvents()

	g.side.SetText(sideText(g.Session, g.Theme))
	g.recent.SetText(strings.Join(g.messages, "\n"))

	if g.Session.State == game.StatePlaying {
		g.pages.HidePage("modal")
		return
	}

	g.modal.SetText(modalText(g.Session))
	g.pages.ShowPage("modal")
}

func (g *GUI) drainEvents() {
	for {
		select {
		case e := <-g.events:
			if msg := eventMessage(e); msg != "" {
				g.addMessage(msg)
			}
		default:
			return
		}
	}
}

func (g *GUI) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > recentLines {
		g.messages = g.messages[len(g.messages)-recentLines:]
	}

	log.Println(msg)
}

// eventMessage describes the events worth showing to the player
func eventMessage(e interface{}) string {
	switch e := e.(type) {
	case event.GameStartedEvent:
		return "New game"
	case event.LinesClearedEvent:
		if e.Lines == 1 {
			return "Cleared 1 line"
		}
		return fmt.Sprintf("Cleared %d lines", e.Lines)
	case event.ScoreEvent:
		return fmt.Sprintf("+%d points", e.Points)
	case event.GameOverEvent:
		return fmt.Sprintf("Game over with %d points", e.Score)
	default:
		return ""
	}
}

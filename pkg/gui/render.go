package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

// Each grid cell is drawn two columns wide so it looks square
const blockWidth = 2

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawBlock fills one grid cell at screen position (x, y)
func drawBlock(s tcell.Screen, x, y int, b mino.Block, t Theme) {
	style := DefStyle.Foreground(t.Color(b))
	for i := 0; i < blockWidth; i++ {
		s.SetContent(x+i, y, b.Rune(), nil, style)
	}
}

// boardSize returns the screen size of a framed w x h grid
func boardSize(w, h int) (int, int) {
	return w*blockWidth + 2, h + 2
}

func drawFrame(s tcell.Screen, x, y, w, h int, t Theme) {
	style := DefStyle.Foreground(t.Border)

	for i := x + 1; i < x+w-1; i++ {
		s.SetContent(i, y, tcell.RuneHLine, nil, style)
		s.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetContent(x, j, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}

	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

// drawBoard draws the framed grid with its top-left corner at (x, y). Grid
// row 0 is the bottom line of the frame.
func drawBoard(s tcell.Screen, x, y int, b *game.Board, t Theme) {
	g := b.Grid
	w, h := boardSize(g.W, g.H)
	drawFrame(s, x, y, w, h, t)

	cell := func(p mino.Point, block mino.Block) {
		if p.X < 0 || p.X >= g.W || p.Y < 0 || p.Y >= g.H {
			return
		}

		drawBlock(s, x+1+p.X*blockWidth, y+g.H-p.Y, block, t)
	}

	for gy := 0; gy < g.H; gy++ {
		for gx := 0; gx < g.W; gx++ {
			cell(mino.Point{X: gx, Y: gy}, g.Block(gx, gy))
		}
	}

	for _, p := range b.GhostCells() {
		if !g.IsOccupied(p.X, p.Y) {
			cell(p, mino.BlockGhost)
		}
	}

	for _, p := range b.ActiveCells() {
		cell(p, b.Piece.Color)
	}
}

// previewText renders a kind as two lines of colored blocks
func previewText(k mino.Kind, t Theme) string {
	var rows [2][4]bool
	for _, c := range mino.ShapeOf(k) {
		if c.Y >= 0 && c.Y <= 1 && c.X >= -1 && c.X <= 2 {
			rows[1-c.Y][c.X+1] = true
		}
	}

	block := strings.Repeat(string(mino.BlockSolidBlue.Rune()), blockWidth)
	blank := strings.Repeat(" ", blockWidth)

	var b strings.Builder
	b.WriteString(colorTag(t.Color(mino.ColorOf(k))))
	for i, row := range rows {
		if i > 0 {
			b.WriteRune('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteString(block)
			} else {
				b.WriteString(blank)
			}
		}
	}
	b.WriteString("[-]")

	return b.String()
}

// sideText is the status panel next to the board
func sideText(s *game.Session, t Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s[-]\n\n", colorTag(t.Text), s.Player)
	fmt.Fprintf(&b, "Score\n%s%d[-]\n\n", colorTag(t.Score), s.Score)
	fmt.Fprintf(&b, "Lines\n%d\n\n", s.Lines)

	if s.State == game.StatePlaying {
		fmt.Fprintf(&b, "Next\n%s\n\n", previewText(s.Next(), t))
	}

	b.WriteString(s.State.String())

	return b.String()
}

// modalText is shown over the board outside of play
func modalText(s *game.Session) string {
	scores := "No Scores Yet"
	if s.Ranking != nil {
		scores = strings.TrimRight(s.Ranking.Text(), "\n")
	}

	switch s.State {
	case game.StateGameOver:
		return fmt.Sprintf("Game Over\n\nScore: %d  Lines: %d\n\nHigh Scores\n%s\n\nPress Enter to play again, Escape to quit", s.Score, s.Lines, scores)
	default:
		return fmt.Sprintf("Blockfall\n\nHigh Scores\n%s\n\nPress Enter to start, Escape to quit", scores)
	}
}

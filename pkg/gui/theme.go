package gui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockfall/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name    string
	Border  tcell.Color
	Text    tcell.Color
	Score   tcell.Color
	Ghost   tcell.Color
	Blue    tcell.Color
	Cyan    tcell.Color
	Red     tcell.Color
	Yellow  tcell.Color
	Magenta tcell.Color
	Green   tcell.Color
	Orange  tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color247,     // Border
	tcell.ColorDefault, // Text
	tcell.Color226,     // Score
	tcell.Color240,     // Ghost
	tcell.Color27,      // Blue
	tcell.Color51,      // Cyan
	tcell.Color160,     // Red
	tcell.Color184,     // Yellow
	tcell.Color164,     // Magenta
	tcell.Color40,      // Green
	tcell.Color208,     // Orange
}

// ThemeBright uses true colors
var ThemeBright = Theme{
	"bright",
	tcell.NewHexColor(0xbbbbbb),
	tcell.NewHexColor(0xffffff),
	tcell.NewHexColor(0xdddd00),
	tcell.NewHexColor(0x666666),
	tcell.NewHexColor(0x2864ff),
	tcell.NewHexColor(0x00eeee),
	tcell.NewHexColor(0xee0000),
	tcell.NewHexColor(0xdddd00),
	tcell.NewHexColor(0xc000cc),
	tcell.NewHexColor(0x00e900),
	tcell.NewHexColor(0xff7308),
}

var themes = map[string]Theme{
	ThemeBasic.Name:  ThemeBasic,
	ThemeBright.Name: ThemeBright,
}

// ThemeNames lists the built-in themes in name order
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ImportTheme returns the built-in theme called want
func ImportTheme(want string) (Theme, error) {
	if t, ok := themes[want]; ok {
		return t, nil
	}

	return Theme{}, fmt.Errorf("theme: no theme named %q", want)
}

// Color returns the theme color of a block
func (t Theme) Color(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockGhost:
		return t.Ghost
	case mino.BlockSolidBlue:
		return t.Blue
	case mino.BlockSolidCyan:
		return t.Cyan
	case mino.BlockSolidRed:
		return t.Red
	case mino.BlockSolidYellow:
		return t.Yellow
	case mino.BlockSolidMagenta:
		return t.Magenta
	case mino.BlockSolidGreen:
		return t.Green
	case mino.BlockSolidOrange:
		return t.Orange
	default:
		return tcell.ColorDefault
	}
}

// colorTag formats c as a tview dynamic color tag
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}

	return fmt.Sprintf("[#%06x]", c.Hex())
}

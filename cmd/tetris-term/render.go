package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var kindColors = [...]tcell.Color{
	tetris.KindI: tcell.ColorAqua,
	tetris.KindO: tcell.ColorYellow,
	tetris.KindT: tcell.ColorPurple,
	tetris.KindS: tcell.ColorGreen,
	tetris.KindZ: tcell.ColorRed,
	tetris.KindJ: tcell.ColorBlue,
	tetris.KindL: tcell.ColorOrange,
}

const (
	glyphFilled = "[]"
	glyphGhost  = "::"
	glyphFree   = " ."
)

// frameLines renders the board two columns per cell, framed, with the
// status panel to the right of the top rows.
func frameLines(snap *tetris.Snapshot) []string {
	status := []string{
		"",
		fmt.Sprintf("  Score %d", snap.Score),
		fmt.Sprintf("  Lines %d", snap.Lines),
		fmt.Sprintf("  Level %d", snap.Level),
		"",
	}
	if !snap.Running {
		status = append(status, "  GAME OVER", "  r restart, q quit")
	}

	edge := "+" + strings.Repeat("-", snap.Columns*2) + "+"
	lines := make([]string, 0, snap.Rows+2)
	lines = append(lines, edge)

	var b strings.Builder
	for r := range snap.Rows {
		b.Reset()
		b.WriteByte('|')
		for c := range snap.Columns {
			b.WriteString(glyph(snap, r, c))
		}
		b.WriteByte('|')
		if r < len(status) {
			b.WriteString(status[r])
		}
		lines = append(lines, b.String())
	}
	return append(lines, edge)
}

func glyph(snap *tetris.Snapshot, r, c int) string {
	switch {
	case snap.Cells[r][c].State == tetris.Filled:
		return glyphFilled
	case snap.HasActive && snap.Ghost.Contains(tetris.Coord{Row: r, Col: c}):
		return glyphGhost
	}
	return glyphFree
}

// styleAt returns the style of the screen position x, y of a frame.
func styleAt(snap *tetris.Snapshot, x, y int) tcell.Style {
	r, c := y-1, (x-1)/2
	if x < 1 || y < 1 || r >= snap.Rows || c >= snap.Columns {
		return tcell.StyleDefault
	}

	cell := snap.Cells[r][c]
	switch {
	case cell.State == tetris.Filled:
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(kindColors[cell.Kind])
	case snap.HasActive && snap.Ghost.Contains(tetris.Coord{Row: r, Col: c}):
		return tcell.StyleDefault.Foreground(kindColors[snap.Active.Kind])
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

func draw(s tcell.Screen, snap *tetris.Snapshot) {
	s.Clear()
	for y, line := range frameLines(snap) {
		for x, r := range []rune(line) {
			s.SetContent(x, y, r, nil, styleAt(snap, x, y))
		}
	}
	s.Show()
}

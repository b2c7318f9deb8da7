package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onlyO struct{}

func (onlyO) Next() tetris.Kind { return tetris.KindO }

func startedSnapshot(t *testing.T) tetris.Snapshot {
	t.Helper()
	game, err := tetris.NewGame(tetris.DefaultConfig(),
		tetris.WithClock(tetris.NewManualClock(time.Unix(0, 0))),
		tetris.WithRandomizer(onlyO{}),
	)
	require.NoError(t, err)
	game.Start()
	game.Tick()
	return game.Snapshot()
}

func TestFrameLines(t *testing.T) {
	snap := startedSnapshot(t)
	lines := frameLines(&snap)

	require.Len(t, lines, 26)
	assert.Equal(t, "+"+strings.Repeat("-", 20)+"+", lines[0])
	assert.Equal(t, lines[0], lines[25])

	assert.Equal(t, "| . . . .[][] . . . .|", lines[1])
	assert.Equal(t, "| . . . .[][] . . . .|  Score 0", lines[2])
	assert.Equal(t, "| . . . . . . . . . .|  Lines 0", lines[3])
	assert.Equal(t, "| . . . .:::: . . . .|", lines[23])
	assert.Equal(t, "| . . . .:::: . . . .|", lines[24])
	assert.NotContains(t, strings.Join(lines, "\n"), "GAME OVER")
}

func TestFrameLinesGameOver(t *testing.T) {
	snap := startedSnapshot(t)
	snap.Running = false

	lines := frameLines(&snap)
	assert.Equal(t, "| . . . . . . . . . .|  GAME OVER", lines[6])
}

func TestStyleAt(t *testing.T) {
	snap := startedSnapshot(t)

	assert.Equal(t, tcell.StyleDefault, styleAt(&snap, 0, 1), "frame")
	assert.Equal(t, tcell.StyleDefault, styleAt(&snap, 21, 1), "status panel")

	filled := styleAt(&snap, 9, 1)
	_, bg, _ := filled.Decompose()
	assert.Equal(t, tcell.ColorYellow, bg)

	ghost := styleAt(&snap, 9, 23)
	fg, _, _ := ghost.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{tcell.KeyLeft, 0, "ArrowLeft"},
		{tcell.KeyRight, 0, "ArrowRight"},
		{tcell.KeyDown, 0, "ArrowDown"},
		{tcell.KeyUp, 0, "ArrowUp"},
		{tcell.KeyRune, ' ', "Space"},
		{tcell.KeyRune, 'a', "KeyA"},
		{tcell.KeyRune, 'W', "KeyW"},
		{tcell.KeyRune, 'x', ""},
		{tcell.KeyEnter, 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keyCode(tt.key, tt.r), "%v %q", tt.key, tt.r)
	}
}

func TestAction(t *testing.T) {
	assert.Equal(t, actionQuit, action(tcell.KeyEscape, 0))
	assert.Equal(t, actionQuit, action(tcell.KeyRune, 'q'))
	assert.Equal(t, actionRestart, action(tcell.KeyRune, 'R'))
	assert.Equal(t, actionMove, action(tcell.KeyLeft, 0))
	assert.Equal(t, actionNone, action(tcell.KeyRune, 'x'))
}

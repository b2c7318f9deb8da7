package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

type keyAction int

const (
	actionNone keyAction = iota
	actionMove
	actionRestart
	actionQuit
)

// keyCode translates a terminal key into the codes understood by
// tetris.DefaultKeyMap. Unknown keys give "".
func keyCode(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyRune:
		switch r = unicode.ToUpper(r); r {
		case ' ':
			return "Space"
		case 'A', 'S', 'D', 'W':
			return "Key" + string(r)
		}
	}
	return ""
}

func action(key tcell.Key, r rune) keyAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'q':
			return actionQuit
		case 'r':
			return actionRestart
		}
	}
	if keyCode(key, r) != "" {
		return actionMove
	}
	return actionNone
}

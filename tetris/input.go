package tetris

//go:generate go tool stringer -type=Intent -trimprefix=Move

// Intent is a requested movement of the active piece.
type Intent uint8

const (
	MoveLeft Intent = iota
	MoveRight
	MoveDown
	MoveGround // hard drop
	MoveRotate
)

// InputMap translates an opaque input code into a movement intent.
// Unknown codes report false.
type InputMap interface {
	Intent(code string) (Intent, bool)
}

// KeyMap is an InputMap backed by a lookup table.
type KeyMap map[string]Intent

// Intent implements InputMap.
func (m KeyMap) Intent(code string) (Intent, bool) {
	intent, ok := m[code]
	return intent, ok
}

// DefaultKeyMap binds browser-style key codes: the arrow keys, WASD and
// space for a hard drop.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"ArrowLeft":  MoveLeft,
		"ArrowRight": MoveRight,
		"ArrowDown":  MoveDown,
		"ArrowUp":    MoveRotate,
		"Space":      MoveGround,
		"KeyA":       MoveLeft,
		"KeyD":       MoveRight,
		"KeyS":       MoveDown,
		"KeyW":       MoveRotate,
	}
}

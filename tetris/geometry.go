package tetris

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every shape in declaration order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Coord addresses a single grid cell. Rows grow downwards.
type Coord struct {
	Row, Col int
}

// Position is the set of cells covered by a piece. The array length keeps
// the four-cell invariant in the type.
type Position [4]Coord

// Canonical layouts inside a four column box. Index 1 is the rotation pivot.
var layouts = [...]Position{
	KindI: {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	KindO: {{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	KindT: {{1, 0}, {1, 1}, {1, 2}, {0, 1}},
	KindS: {{1, 0}, {1, 1}, {0, 1}, {0, 2}},
	KindZ: {{0, 0}, {1, 1}, {0, 1}, {1, 2}},
	KindJ: {{0, 0}, {1, 1}, {1, 0}, {1, 2}},
	KindL: {{0, 2}, {1, 1}, {1, 0}, {1, 2}},
}

const pivot = 1

// Valid reports whether k is one of the seven shapes.
func (k Kind) Valid() bool {
	return int(k) < len(layouts)
}

// SpawnPosition returns the canonical position of k, centred horizontally
// on a grid with the given number of columns.
func SpawnPosition(k Kind, columns int) Position {
	offset := (columns - 4) / 2
	pos := layouts[k]
	for i := range pos {
		pos[i].Col += offset
	}
	return pos
}

func (p Position) translate(dRow, dCol int) Position {
	for i := range p {
		p[i].Row += dRow
		p[i].Col += dCol
	}
	return p
}

// Left shifts every cell one column to the left.
func (p Position) Left() Position { return p.translate(0, -1) }

// Right shifts every cell one column to the right.
func (p Position) Right() Position { return p.translate(0, 1) }

// Down shifts every cell one row down.
func (p Position) Down() Position { return p.translate(1, 0) }

// Rotate turns the position 90 degrees clockwise about the pivot cell.
// The result may fall outside the grid; callers validate it against the
// cells they can actually look up.
func (k Kind) Rotate(p Position) Position {
	if k == KindO {
		return p
	}

	c := p[pivot]
	for i := range p {
		dRow, dCol := p[i].Row-c.Row, p[i].Col-c.Col
		p[i] = Coord{Row: c.Row + dCol, Col: c.Col - dRow}
	}
	return p
}

// Next computes the candidate position for a geometric intent. MoveGround
// depends on grid occupancy and is resolved by Grid.GroundPosition instead,
// so it reports false here along with any unknown intent.
func (k Kind) Next(p Position, intent Intent) (Position, bool) {
	switch intent {
	case MoveLeft:
		return p.Left(), true
	case MoveRight:
		return p.Right(), true
	case MoveDown:
		return p.Down(), true
	case MoveRotate:
		return k.Rotate(p), true
	default:
		return p, false
	}
}

// Contains reports whether c is one of the cells of p.
func (p Position) Contains(c Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

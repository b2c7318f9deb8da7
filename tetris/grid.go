package tetris

import "github.com/kamstrup/intmap"

// CellState is the occupancy of a cell.
type CellState uint8

const (
	Free CellState = iota
	Filled
)

// Cell is a fixed slot of the grid. A cell is Filled exactly when Occupant
// names a piece.
type Cell struct {
	Row, Col int
	State    CellState
	Occupant PieceID
}

// pieceRef counts how many cells still reference a piece so the registry
// can forget it once everything it covered has been cleared.
type pieceRef struct {
	piece *Piece
	cells int
}

// Grid owns every cell of the board plus a registry resolving occupant IDs
// back to pieces.
type Grid struct {
	rows    int
	columns int
	cells   []Cell
	refs    *intmap.Map[PieceID, *pieceRef]
	nextID  PieceID
}

// NewGrid creates an empty grid.
func NewGrid(rows, columns int) *Grid {
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
		refs:    intmap.New[PieceID, *pieceRef](64),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			g.cells[r*columns+c] = Cell{Row: r, Col: c}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Cell returns the cell at (row, col), or false when out of bounds.
func (g *Grid) Cell(row, col int) (*Cell, bool) {
	if !g.inBounds(row, col) {
		return nil, false
	}
	return &g.cells[row*g.columns+col], true
}

// CellsAt returns the in-bounds cells of pos. Fewer than four cells means
// part of the position lies outside the grid.
func (g *Grid) CellsAt(pos Position) []*Cell {
	cells := make([]*Cell, 0, len(pos))
	for _, c := range pos {
		if cell, ok := g.Cell(c.Row, c.Col); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Row returns the cells of a row ordered by column, or nil when out of range.
func (g *Grid) Row(index int) []*Cell {
	if index < 0 || index >= g.rows {
		return nil
	}
	row := make([]*Cell, g.columns)
	for c := range row {
		row[c] = &g.cells[index*g.columns+c]
	}
	return row
}

func (g *Grid) rowFull(index int) bool {
	for c := 0; c < g.columns; c++ {
		if g.cells[index*g.columns+c].State != Filled {
			return false
		}
	}
	return true
}

// FullRows scans bottom-up and returns the indexes of completely filled rows.
func (g *Grid) FullRows() []int {
	var full []int
	for r := g.rows - 1; r >= 0; r-- {
		if g.rowFull(r) {
			full = append(full, r)
		}
	}
	return full
}

// Eliminate discards the given rows and drops everything above them by the
// number of eliminated rows below. The exposed top rows become free.
// Duplicate and out-of-range indexes are ignored.
func (g *Grid) Eliminate(rows []int) {
	drop := make([]bool, g.rows)
	count := 0
	for _, r := range rows {
		if r < 0 || r >= g.rows || drop[r] {
			continue
		}
		drop[r] = true
		count++
	}
	if count == 0 {
		return
	}

	for r := range drop {
		if !drop[r] {
			continue
		}
		for c := 0; c < g.columns; c++ {
			g.release(&g.cells[r*g.columns+c])
		}
	}

	dst := g.rows - 1
	for src := g.rows - 1; src >= 0; src-- {
		if drop[src] {
			continue
		}
		if dst != src {
			for c := 0; c < g.columns; c++ {
				from := &g.cells[src*g.columns+c]
				to := &g.cells[dst*g.columns+c]
				to.State, to.Occupant = from.State, from.Occupant
			}
		}
		dst--
	}

	for r := dst; r >= 0; r-- {
		for c := 0; c < g.columns; c++ {
			cell := &g.cells[r*g.columns+c]
			cell.State, cell.Occupant = Free, 0
		}
	}
}

// Clear frees every cell and forgets every piece.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Free
		g.cells[i].Occupant = 0
	}
	g.refs.Clear()
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].State == Filled {
			n++
		}
	}
	return n
}

// PieceAt resolves the piece occupying (row, col).
func (g *Grid) PieceAt(row, col int) (*Piece, bool) {
	cell, ok := g.Cell(row, col)
	if !ok || cell.State != Filled {
		return nil, false
	}
	ref, ok := g.refs.Get(cell.Occupant)
	if !ok {
		return nil, false
	}
	return ref.piece, true
}

// Pieces returns the number of pieces that still occupy at least one cell.
func (g *Grid) Pieces() int {
	return g.refs.Len()
}

// Occupied lists the filled cells as coordinates, top to bottom.
func (g *Grid) Occupied() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].State == Filled {
			out = append(out, Coord{Row: g.cells[i].Row, Col: g.cells[i].Col})
		}
	}
	return out
}

func (g *Grid) occupy(cell *Cell, p *Piece) {
	if cell.Occupant == p.ID {
		return
	}
	if cell.State == Filled {
		g.release(cell)
	}

	cell.State = Filled
	cell.Occupant = p.ID

	ref, ok := g.refs.Get(p.ID)
	if !ok {
		ref = &pieceRef{piece: p}
		g.refs.Put(p.ID, ref)
	}
	ref.cells++
}

func (g *Grid) release(cell *Cell) {
	if cell.State != Filled {
		return
	}
	if ref, ok := g.refs.Get(cell.Occupant); ok {
		ref.cells--
		if ref.cells <= 0 {
			g.refs.Del(cell.Occupant)
		}
	}
	cell.State = Free
	cell.Occupant = 0
}

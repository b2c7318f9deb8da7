package tetris

import "time"

// CellView is the rendered state of a single cell.
type CellView struct {
	State CellState
	Kind  Kind
}

// Snapshot is an immutable copy of everything a renderer needs.
type Snapshot struct {
	Rows, Columns int
	Cells         [][]CellView // indexed [row][col]

	Active    Piece
	HasActive bool
	Ghost     Position // hard drop target of Active

	Score    int
	Lines    int
	Level    int
	Interval time.Duration
	Running  bool
}

// Snapshot copies the current state of the game.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Rows:     g.grid.Rows(),
		Columns:  g.grid.Columns(),
		Cells:    make([][]CellView, g.grid.Rows()),
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level.Level(),
		Interval: g.interval,
		Running:  g.running,
	}

	for r := range snap.Cells {
		row := make([]CellView, snap.Columns)
		for c, cell := range g.grid.Row(r) {
			row[c].State = cell.State
			if p, ok := g.grid.PieceAt(r, c); ok {
				row[c].Kind = p.Kind
			}
		}
		snap.Cells[r] = row
	}

	if g.active != nil {
		snap.Active = *g.active
		snap.HasActive = true
		snap.Ghost = g.grid.GroundPosition(g.active)
	}
	return snap
}

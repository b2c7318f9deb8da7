package tetris

// IsFreeFor reports whether cell may receive p: it is empty or p already
// holds it. A nil piece only accepts empty cells.
func (g *Grid) IsFreeFor(cell *Cell, p *Piece) bool {
	if cell.State == Free {
		return true
	}
	return p != nil && cell.Occupant == p.ID
}

// freeCells returns the cells of pos that are in bounds and free for p.
func (g *Grid) freeCells(pos Position, p *Piece) []*Cell {
	cells := g.CellsAt(pos)
	free := cells[:0]
	for _, cell := range cells {
		if g.IsFreeFor(cell, p) {
			free = append(free, cell)
		}
	}
	return free
}

// Fits reports whether all four cells of pos are free for p.
func (g *Grid) Fits(pos Position, p *Piece) bool {
	return len(g.freeCells(pos, p)) == len(pos)
}

// Apply moves p to pos when every target cell is free for it. The piece's
// previous cells are released and the targets occupied in one step. A
// rejected position leaves grid and piece untouched.
func (g *Grid) Apply(p *Piece, pos Position) bool {
	targets := g.freeCells(pos, p)
	if len(targets) != len(pos) {
		return false
	}

	if p.placed {
		g.lift(p)
	}
	for _, cell := range targets {
		g.occupy(cell, p)
	}
	p.SetPosition(pos)
	p.placed = true
	return true
}

// lift releases the cells p holds without moving it.
func (g *Grid) lift(p *Piece) {
	for _, cell := range g.CellsAt(p.pos) {
		if cell.Occupant == p.ID {
			g.release(cell)
		}
	}
	p.placed = false
}

// Move applies intent to p and reports whether the piece moved. Blocked
// moves are normal game feedback and simply return false.
func (g *Grid) Move(p *Piece, intent Intent) bool {
	if p == nil || !p.placed {
		return false
	}

	var next Position
	if intent == MoveGround {
		next = g.GroundPosition(p)
	} else {
		var ok bool
		if next, ok = p.Kind.Next(p.pos, intent); !ok {
			return false
		}
	}

	if next == p.pos {
		return false
	}
	return g.Apply(p, next)
}

// Landed reports whether p can no longer move down. It never mutates state.
// An unplaced piece cannot fall and counts as landed.
func (g *Grid) Landed(p *Piece) bool {
	if p == nil {
		return false
	}
	if !p.placed {
		return true
	}
	return !g.Fits(p.pos.Down(), p)
}

// GroundPosition returns the lowest position p can reach by falling
// straight down from where it is.
func (g *Grid) GroundPosition(p *Piece) Position {
	cur := p.pos
	if !p.placed {
		return cur
	}
	for {
		next := cur.Down()
		if !g.Fits(next, p) {
			return cur
		}
		cur = next
	}
}

// Spawn creates a piece of kind k at its spawn position and places it when
// the spawn cells are free. Otherwise the piece is returned unplaced, which
// the game treats as the board having topped out.
func (g *Grid) Spawn(k Kind) *Piece {
	g.nextID++
	p := NewPiece(g.nextID, k, SpawnPosition(k, g.columns))
	g.Apply(p, p.pos)
	return p
}

package tetris

// PieceID identifies a piece for the lifetime of a grid. Zero means no piece.
type PieceID uint64

// Piece is a shape with a position. It knows nothing about the grid; all
// occupancy changes go through Grid.
type Piece struct {
	ID   PieceID
	Kind Kind

	pos    Position
	placed bool
}

// NewPiece creates an unplaced piece at pos.
func NewPiece(id PieceID, kind Kind, pos Position) *Piece {
	return &Piece{ID: id, Kind: kind, pos: pos}
}

// Position returns the cells the piece covers.
func (p *Piece) Position() Position {
	return p.pos
}

// SetPosition replaces the whole position.
func (p *Piece) SetPosition(pos Position) {
	p.pos = pos
}

// Placed reports whether the piece holds its cells on a grid. A piece
// spawned onto occupied cells stays unplaced.
func (p *Piece) Placed() bool {
	return p.placed
}

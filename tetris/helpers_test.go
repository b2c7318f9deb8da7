package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// fill occupies coords on g using throwaway pieces numbered from id.
func fill(t *testing.T, g *tetris.Grid, id tetris.PieceID, coords ...tetris.Coord) {
	t.Helper()
	for len(coords) > 0 {
		n := min(len(coords), 4)
		var pos tetris.Position
		for i := range pos {
			pos[i] = coords[min(i, n-1)]
		}
		require.True(t, g.Apply(tetris.NewPiece(id, tetris.KindO, pos), pos), "fill %v", pos)
		coords = coords[n:]
		id++
	}
}

// cols returns the coordinates of the given columns in one row, or of the
// whole row when no columns are given.
func cols(g *tetris.Grid, row int, columns ...int) []tetris.Coord {
	if len(columns) == 0 {
		for c := 0; c < g.Columns(); c++ {
			columns = append(columns, c)
		}
	}
	out := make([]tetris.Coord, 0, len(columns))
	for _, c := range columns {
		out = append(out, tetris.Coord{Row: row, Col: c})
	}
	return out
}

// except returns the columns of a row minus the skipped ones.
func except(g *tetris.Grid, row int, skip ...int) []tetris.Coord {
	var out []tetris.Coord
next:
	for c := 0; c < g.Columns(); c++ {
		for _, s := range skip {
			if s == c {
				continue next
			}
		}
		out = append(out, tetris.Coord{Row: row, Col: c})
	}
	return out
}

func occupancy(g *tetris.Grid) map[tetris.Coord]tetris.PieceID {
	out := make(map[tetris.Coord]tetris.PieceID)
	for _, c := range g.Occupied() {
		cell, _ := g.Cell(c.Row, c.Col)
		out[c] = cell.Occupant
	}
	return out
}

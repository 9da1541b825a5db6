package domain

import (
	"encoding/json"
	"fmt"
)

// Grid is a square board of cells over a fixed Geometry. Cells hold
// either the geometry's unknown sentinel or a value in 1..Size.
// A Grid is not safe for concurrent mutation; the solver takes
// exclusive ownership of its working copy for the duration of a solve.
type Grid struct {
	geo   Geometry
	cells []uint8
}

// NewGrid creates an empty grid (all cells unknown).
func NewGrid(geo Geometry) *Grid {
	return &Grid{geo: geo, cells: make([]uint8, geo.Size*geo.Size)}
}

// GridFromRows builds a grid from row-major cell values, deriving the
// geometry from the row count. Returns an error if the shape is not a
// supported square or any value is outside {unknown} ∪ {1..Size}.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	geo, err := NewGeometry(len(rows))
	if err != nil {
		return nil, err
	}
	g := NewGrid(geo)
	for r, row := range rows {
		if len(row) != geo.Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPosition, r, len(row), geo.Size)
		}
		for c, v := range row {
			if err := g.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Geometry returns the grid's shape description.
func (g *Grid) Geometry() Geometry { return g.geo }

// Size returns the edge length.
func (g *Grid) Size() int { return g.geo.Size }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.geo.Size && c >= 0 && c < g.geo.Size
}

// At returns the value at (r, c). The position must be in bounds.
func (g *Grid) At(r, c int) uint8 {
	return g.cells[r*g.geo.Size+c]
}

// Set places v at (r, c) after bounds and range checks. v may be the
// unknown sentinel to clear the cell.
func (g *Grid) Set(r, c int, v uint8) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, r, c)
	}
	if v != g.geo.Unknown && !g.geo.ValidValue(v) {
		return fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidValue, v, r, c)
	}
	g.cells[r*g.geo.Size+c] = v
	return nil
}

// SetForce places v without validation. Callers must know the position
// is in bounds and the value legal for the geometry.
func (g *Grid) SetForce(r, c int, v uint8) {
	g.cells[r*g.geo.Size+c] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	out := &Grid{geo: g.geo, cells: make([]uint8, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether two grids have the same geometry and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.geo != o.geo {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of unknown cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, v := range g.cells {
		if v == g.geo.Unknown {
			n++
		}
	}
	return n
}

// Rows returns the cells as row-major slices. The result is a copy.
func (g *Grid) Rows() [][]uint8 {
	out := make([][]uint8, g.geo.Size)
	for r := 0; r < g.geo.Size; r++ {
		row := make([]uint8, g.geo.Size)
		copy(row, g.cells[r*g.geo.Size:(r+1)*g.geo.Size])
		out[r] = row
	}
	return out
}

// MarshalJSON encodes the grid as an array of rows.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes an array of rows, deriving the geometry from
// the row count.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]uint8
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := GridFromRows(rows)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

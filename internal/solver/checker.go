package solver

import "svw.info/gridsolver/internal/domain"

// The three duplicate predicates compare other cells against the value
// currently at (r, c). They are only meaningful when (r, c) holds a
// playable value; the unknown sentinel is outside 1..Size, so sentinel
// cells can never match a placed value.

// rowHasDuplicate reports whether another column in row r holds the
// same value as (r, c).
func rowHasDuplicate(g *domain.Grid, r, c int) bool {
	v := g.At(r, c)
	for i := 0; i < g.Size(); i++ {
		if i != c && g.At(r, i) == v {
			return true
		}
	}
	return false
}

// colHasDuplicate reports whether another row in column c holds the
// same value as (r, c).
func colHasDuplicate(g *domain.Grid, r, c int) bool {
	v := g.At(r, c)
	for i := 0; i < g.Size(); i++ {
		if i != r && g.At(i, c) == v {
			return true
		}
	}
	return false
}

// subgridHasDuplicate reports whether the box containing (r, c) holds
// the same value in a cell sharing neither the row nor the column of
// (r, c). Same-row and same-column box mates are already covered by
// the row and column predicates; skipping them also keeps the cell
// from matching itself.
func subgridHasDuplicate(g *domain.Grid, r, c int) bool {
	v := g.At(r, c)
	box := g.Geometry().Box
	br, bc := (r/box)*box, (c/box)*box
	for row := br; row < br+box; row++ {
		for col := bc; col < bc+box; col++ {
			if row != r && col != c && g.At(row, col) == v {
				return true
			}
		}
	}
	return false
}

// cellValid reports whether the value at (r, c) satisfies row, column,
// and box uniqueness against the rest of the grid. This is the sole
// validity gate used after every trial placement.
func cellValid(g *domain.Grid, r, c int) bool {
	return !(rowHasDuplicate(g, r, c) ||
		colHasDuplicate(g, r, c) ||
		subgridHasDuplicate(g, r, c))
}

package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
)

var (
	// ErrNoSolution is the normal outcome for an unsatisfiable board,
	// not a fault. Callers print the original grid unchanged.
	ErrNoSolution = errors.New("puzzle has no solution")
	// ErrInvalidPuzzle marks givens that already violate uniqueness.
	ErrInvalidPuzzle = errors.New("puzzle givens violate uniqueness")
)

// BacktrackingSolver walks the grid in row-major order and tries
// candidates in ascending order at each unknown cell, so any solvable
// board yields the lexicographically first of its solutions and
// repeated solves are deterministic.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Solve returns a solved copy of g, leaving the input untouched.
// Trial placements on the working copy are undone on every failed
// branch, so a failed solve leaves no partial state behind. ctx is
// checked at each cell; cancellation surfaces as ErrNoSolution wrapped
// with the ctx error.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	work := g.Clone()
	size := work.Size()
	unknown := work.Geometry().Unknown
	nodes := 0

	// Givens are assumed well-formed in {unknown} ∪ {1..size}; the
	// uniqueness pre-check below rejects conflicting givens before
	// the search mutates anything.
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if work.At(r, c) != unknown && !cellValid(work, r, c) {
				return nil, ports.Stats{Duration: time.Since(start)}, ErrInvalidPuzzle
			}
		}
	}

	var attempt func(r, c int) bool
	attempt = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if !work.InBounds(r, c) {
			// Past the last cell: every position has been visited.
			// Re-validate the final cell as the overall success check.
			return cellValid(work, size-1, size-1)
		}
		if work.At(r, c) != unknown {
			nr, nc := advance(r, c, size)
			return attempt(nr, nc)
		}
		for v := uint8(1); int(v) <= size; v++ {
			nodes++
			work.SetForce(r, c, v)
			if cellValid(work, r, c) {
				nr, nc := advance(r, c, size)
				if attempt(nr, nc) {
					return true
				}
				r, c = retreat(nr, nc, size)
			}
		}
		work.SetForce(r, c, unknown)
		return false
	}

	if !attempt(0, 0) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, errors.Join(ErrNoSolution, err)
		}
		return nil, st, ErrNoSolution
	}
	return work, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

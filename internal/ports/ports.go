package ports

import (
	"context"
	"time"

	"svw.info/gridsolver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills a board, returning the solved copy. The input grid is
// never mutated; an unsolvable board is reported via error with the
// input left exactly as supplied.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Validator performs whole-board constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

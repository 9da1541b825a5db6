package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/validator"
)

// A classic, solvable Sudoku (0 = empty) and its unique solution.
var sample = [][]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = [][]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func mustGrid(t *testing.T, rows [][]uint8) *domain.Grid {
	t.Helper()
	g, err := domain.GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	return g
}

func TestSolveClassicPuzzle(t *testing.T) {
	in := mustGrid(t, sample)
	before := in.Clone()
	s := NewBacktrackingSolver()

	out, st, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	want := mustGrid(t, sampleSolution)
	if !out.Equal(want) {
		t.Fatalf("wrong solution:\ngot  %v\nwant %v", out.Rows(), want.Rows())
	}
	if !in.Equal(before) {
		t.Fatal("input grid was mutated")
	}
	ok, conf, err := validator.New().Validate(context.Background(), out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
}

func TestSolvePreSolvedGridUnchanged(t *testing.T) {
	in := mustGrid(t, sampleSolution)
	out, st, err := NewBacktrackingSolver().Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !out.Equal(in) {
		t.Fatal("pre-solved grid changed")
	}
	if st.Nodes != 0 {
		t.Fatalf("expected no candidate trials on a full grid, got %d", st.Nodes)
	}
}

func TestSolveConflictingGivensFails(t *testing.T) {
	rows := make([][]uint8, 9)
	for i := range rows {
		rows[i] = make([]uint8, 9)
	}
	rows[0][0] = 5
	rows[0][8] = 5 // same row, twice
	in := mustGrid(t, rows)
	before := in.Clone()

	out, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	if !errors.Is(err, ErrInvalidPuzzle) {
		t.Fatalf("want ErrInvalidPuzzle, got out=%v err=%v", out, err)
	}
	if !in.Equal(before) {
		t.Fatal("failed solve mutated the input grid")
	}
}

func TestSolveEmptyGridLexicographicallyFirst(t *testing.T) {
	// With candidates tried in ascending order on a row-major scan,
	// the empty board always yields this exact completion.
	want := mustGrid(t, [][]uint8{
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{4, 5, 6, 7, 8, 9, 1, 2, 3},
		{7, 8, 9, 1, 2, 3, 4, 5, 6},
		{2, 1, 4, 3, 6, 5, 8, 9, 7},
		{3, 6, 5, 8, 9, 7, 2, 1, 4},
		{8, 9, 7, 2, 1, 4, 3, 6, 5},
		{5, 3, 1, 6, 4, 2, 9, 7, 8},
		{6, 4, 2, 9, 7, 8, 5, 3, 1},
		{9, 7, 8, 5, 3, 1, 6, 4, 2},
	})
	empty := domain.NewGrid(domain.StandardGeometry())
	out, _, err := NewBacktrackingSolver().Solve(context.Background(), empty)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !out.Equal(want) {
		t.Fatalf("unexpected completion:\ngot  %v\nwant %v", out.Rows(), want.Rows())
	}
}

func TestSolveDeterministic(t *testing.T) {
	s := NewBacktrackingSolver()
	first, _, err := s.Solve(context.Background(), mustGrid(t, sample))
	if err != nil {
		t.Fatalf("first solve: %v", err)
	}
	second, _, err := s.Solve(context.Background(), mustGrid(t, sample))
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if !first.Equal(second) {
		t.Fatal("repeated solves produced different grids")
	}
}

func TestSolveUnsatisfiableLeavesInputIntact(t *testing.T) {
	// Valid givens that admit no completion: the open cell at (0, 8)
	// sees all nine values across its row, column, and box.
	rows := [][]uint8{
		{1, 2, 3, 4, 5, 6, 7, 8, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 9},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	in := mustGrid(t, rows)
	before := in.Clone()
	_, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
	if !in.Equal(before) {
		t.Fatal("failed solve mutated the input grid")
	}
}

func TestSolveFourByFour(t *testing.T) {
	geo, err := domain.NewGeometry(4)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := NewBacktrackingSolver().Solve(context.Background(), domain.NewGrid(geo))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := mustGrid(t, [][]uint8{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	if !out.Equal(want) {
		t.Fatalf("unexpected 4x4 completion: %v", out.Rows())
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktrackingSolver().Solve(ctx, domain.NewGrid(domain.StandardGeometry()))
	if !errors.Is(err, ErrNoSolution) || !errors.Is(err, context.Canceled) {
		t.Fatalf("want ErrNoSolution wrapping context.Canceled, got %v", err)
	}
}

func TestSolveSampleUnderOneSecond(t *testing.T) {
	_, st, err := NewBacktrackingSolver().Solve(context.Background(), mustGrid(t, sample))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
}

// Package gridio reads and writes the text form of a puzzle: one row
// per line, one numeric cell per field, fields separated by a fixed
// delimiter. The solver itself never touches this format; it only
// sees grids this package has fully populated.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"svw.info/gridsolver/internal/domain"
)

// ErrMalformedPuzzle marks any shape or content problem in the input:
// wrong line count, wrong cell count, non-numeric cells, or values
// outside {unknown} ∪ {1..Size}.
var ErrMalformedPuzzle = errors.New("malformed puzzle")

// DefaultSeparator matches the reference file format of one space
// between cells.
const DefaultSeparator = " "

// Read parses a grid of the given geometry from r. sep is the cell
// delimiter; an empty sep means DefaultSeparator. The grid is either
// fully populated or the first problem is reported, so the solver can
// assume well-formed input.
func Read(r io.Reader, geo domain.Geometry, sep string) (*domain.Grid, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	g := domain.NewGrid(geo)
	sc := bufio.NewScanner(r)
	for row := 0; row < geo.Size; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d lines, got %d", ErrMalformedPuzzle, geo.Size, row)
		}
		fields := splitCells(sc.Text(), sep)
		if len(fields) != geo.Size {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedPuzzle, row+1, len(fields), geo.Size)
		}
		for col, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d cell %d: %q is not a number", ErrMalformedPuzzle, row+1, col+1, f)
			}
			if v != int(geo.Unknown) && (v < 1 || v > geo.Size) {
				return nil, fmt.Errorf("%w: line %d cell %d: value %d out of range", ErrMalformedPuzzle, row+1, col+1, v)
			}
			g.SetForce(row, col, uint8(v))
		}
	}
	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, geo domain.Geometry, sep string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, geo, sep)
}

// Write renders g to w: each cell followed by sep, one row per line,
// matching the input format.
func Write(w io.Writer, g *domain.Grid, sep string) error {
	if sep == "" {
		sep = DefaultSeparator
	}
	bw := bufio.NewWriter(w)
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			bw.WriteString(strconv.Itoa(int(g.At(r, c))))
			bw.WriteString(sep)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// splitCells tolerates trailing separators and surrounding whitespace
// so files written by Write round-trip through Read.
func splitCells(line, sep string) []string {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return nil
	}
	return strings.Split(line, sep)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBadGeometry     = errors.New("grid size must be a perfect square")
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value out of range")
)

// Geometry describes the shape of a board: edge length, subgrid edge
// length, and the sentinel marking an unassigned cell. Box*Box == Size
// always holds; the sentinel never collides with a playable value.
type Geometry struct {
	Size    int   `json:"size"`
	Box     int   `json:"box"`
	Unknown uint8 `json:"-"`
}

// MaxSize bounds the supported edge length. Cell values are stored as
// uint8 and unit masks as uint64, so 25 (box 5) is the practical limit.
const MaxSize = 25

// NewGeometry derives a Geometry from the given edge length.
// The size must be a perfect square no larger than MaxSize.
func NewGeometry(size int) (Geometry, error) {
	if size < 1 || size > MaxSize {
		return Geometry{}, fmt.Errorf("%w: size %d not in [1, %d]", ErrBadGeometry, size, MaxSize)
	}
	box := 1
	for box*box < size {
		box++
	}
	if box*box != size {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrBadGeometry, size)
	}
	return Geometry{Size: size, Box: box, Unknown: 0}, nil
}

// StandardGeometry returns the classic 9x9 board with 3x3 boxes.
func StandardGeometry() Geometry {
	return Geometry{Size: 9, Box: 3, Unknown: 0}
}

// ValidValue reports whether v is a playable value for this geometry.
func (g Geometry) ValidValue(v uint8) bool {
	return v >= 1 && int(v) <= g.Size
}

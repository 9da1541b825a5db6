package validator

import (
	"context"

	"svw.info/gridsolver/internal/domain"
)

// FastValidator scans every unit once with presence masks and reports
// each cell whose value repeats an earlier one in its unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	geo := g.Geometry()
	n, box := geo.Size, geo.Box
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < n; r++ {
		var m uint64
		for c := 0; c < n; c++ {
			val := g.At(r, c)
			if val == geo.Unknown {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < n; c++ {
		var m uint64
		for r := 0; r < n; r++ {
			val := g.At(r, c)
			if val == geo.Unknown {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < box; br++ {
		for bc := 0; bc < box; bc++ {
			var m uint64
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					r := br*box + dr
					c := bc*box + dc
					val := g.At(r, c)
					if val == geo.Unknown {
						continue
					}
					bit := uint64(1) << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

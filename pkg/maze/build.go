package maze

import (
	"fmt"
	"image"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

// Border is the number of non-playable cells on each side of the image.
type Border struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Layout describes how an image is sliced into cells.
type Layout struct {
	CellSize int    `json:"cell_size"` // Cell side in pixels
	Border   Border `json:"border"`    // Trimmed cells, in cell units
}

// DefaultLayout slices 64-pixel cells and trims one cell on every side.
var DefaultLayout = Layout{
	CellSize: DefaultCellSize,
	Border:   Border{Top: 1, Right: 1, Bottom: 1, Left: 1},
}

// Validate checks that the layout keeps every probe inside the image.
// The end marker is read in the row above the first playable row and the
// start marker in the row below the last one, so the top and bottom borders
// must be at least one cell.
func (l Layout) Validate() error {
	if l.CellSize < DefaultCellSize {
		return verrors.New(verrors.ErrCodeInvalidConfig, "cell size must be at least %d pixels, got %d", DefaultCellSize, l.CellSize)
	}
	b := l.Border
	if b.Top < 1 || b.Bottom < 1 {
		return verrors.New(verrors.ErrCodeInvalidConfig, "top and bottom borders must be at least 1 cell (marker probes), got %d and %d", b.Top, b.Bottom)
	}
	if b.Left < 0 || b.Right < 0 {
		return verrors.New(verrors.ErrCodeInvalidConfig, "borders cannot be negative")
	}
	return nil
}

// Build slices the image into cells according to l, trims the border and
// classifies every playable cell, rows in increasing y and columns in
// increasing x.
//
// Build fails with a *errors.MalformedImageError when the image is not an
// exact multiple of the cell size, when the border leaves no playable cell,
// or when no cell carries a wall (the wall colour was never found).
func Build(s Sampler, l Layout) (*Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	bounds := s.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	size := l.CellSize

	if w%size != 0 || h%size != 0 {
		return nil, &verrors.MalformedImageError{
			Width: w, Height: h,
			Reason: fmt.Sprintf("dimensions are not a multiple of the %d-pixel cell size", size),
		}
	}

	cols := w/size - l.Border.Left - l.Border.Right
	rows := h/size - l.Border.Top - l.Border.Bottom
	if cols <= 0 || rows <= 0 {
		return nil, &verrors.MalformedImageError{
			Width: w, Height: h,
			Reason: fmt.Sprintf("border leaves no playable cell (%dx%d)", max(cols, 0), max(rows, 0)),
		}
	}

	probes := ProbesFor(size)
	cells := make([][]Cell, rows)
	for y := range rows {
		cells[y] = make([]Cell, cols)
		for x := range cols {
			origin := image.Pt(
				bounds.Min.X+(x+l.Border.Left)*size,
				bounds.Min.Y+(y+l.Border.Top)*size,
			)
			cells[y][x] = ClassifyWith(s, origin, probes)
		}
	}

	g, err := NewGrid(cells)
	if err != nil {
		return nil, err
	}
	if g.WallCount() == 0 {
		return nil, &verrors.MalformedImageError{
			Width: w, Height: h,
			Reason: fmt.Sprintf("wall colour %s not found in any cell", WallColor),
		}
	}
	return g, nil
}

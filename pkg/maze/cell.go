package maze

import "strings"

// Cell is one classified grid unit. It is a plain value: two cells with the
// same flags at different coordinates are still different cells, identity
// comes from the [Coord] they are stored at.
type Cell struct {
	Top    bool `json:"top,omitempty"`    // Wall on the top edge
	Right  bool `json:"right,omitempty"`  // Wall on the right edge
	Bottom bool `json:"bottom,omitempty"` // Wall on the bottom edge
	Left   bool `json:"left,omitempty"`   // Wall on the left edge
	Start  bool `json:"start,omitempty"`  // Start marker below the cell
	End    bool `json:"end,omitempty"`    // End marker above the cell
}

// HasWall reports whether at least one of the four walls is present.
// Cells without walls never start a slide.
func (c Cell) HasWall() bool {
	return c.Top || c.Right || c.Bottom || c.Left
}

// WallCount returns the number of walls around the cell.
func (c Cell) WallCount() int {
	n := 0
	for _, w := range []bool{c.Top, c.Right, c.Bottom, c.Left} {
		if w {
			n++
		}
	}
	return n
}

// String returns the text-format token of the cell ("." when empty).
func (c Cell) String() string {
	var b strings.Builder
	for _, f := range []struct {
		set    bool
		letter byte
	}{
		{c.Top, 'T'}, {c.Right, 'R'}, {c.Bottom, 'B'}, {c.Left, 'L'},
		{c.Start, 'S'}, {c.End, 'E'},
	} {
		if f.set {
			b.WriteByte(f.letter)
		}
	}
	if b.Len() == 0 {
		return "."
	}
	return b.String()
}

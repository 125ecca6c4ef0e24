package maze

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Coord is a grid coordinate. X grows to the right, Y grows downward, and
// (0, 0) is the top-left playable cell.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Grid is a rectangular grid of classified cells stored row by row.
//
// The zero value is an empty grid. Use [NewGrid] to build one from rows.
type Grid struct {
	Width  int      // Number of columns
	Height int      // Number of rows
	cells  [][]Cell // cells[y][x]
}

// NewGrid creates a grid from rows of cells. All rows must have the same
// length.
func NewGrid(rows [][]Cell) (*Grid, error) {
	g := &Grid{Height: len(rows)}
	if len(rows) > 0 {
		g.Width = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), g.Width)
		}
	}
	g.cells = rows
	return g, nil
}

// At returns the cell at c. It panics when c is out of bounds, like an
// index expression would.
func (g *Grid) At(c Coord) Cell { return g.cells[c.Y][c.X] }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Rows returns a copy of the cells, row by row.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for y := range g.cells {
		rows[y] = append([]Cell(nil), g.cells[y]...)
	}
	return rows
}

// Find returns the coordinates of every cell matching pred, in row-major
// order.
func (g *Grid) Find(pred func(Cell) bool) []Coord {
	var found []Coord
	for y, row := range g.cells {
		for x, cell := range row {
			if pred(cell) {
				found = append(found, Coord{X: x, Y: y})
			}
		}
	}
	return found
}

// WallCount returns the number of wall-bearing cells.
func (g *Grid) WallCount() int {
	return len(g.Find(Cell.HasWall))
}

// String provides an ASCII drawing of the grid. Only right and bottom walls
// are drawn between cells, plus the top wall of the first row and the left
// wall of the first column; S and E mark the start and end cells.
func (g *Grid) String() string {
	if g.Width == 0 || g.Height == 0 {
		return ""
	}
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < g.Width; x++ {
		if g.cells[0][x].Top {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.Height; y++ {
		// Cell rows
		if g.cells[y][0].Left {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.Width; x++ {
			cell := g.cells[y][x]
			switch {
			case cell.Start && cell.End:
				b.WriteString(" * ")
			case cell.Start:
				b.WriteString(" S ")
			case cell.End:
				b.WriteString(" E ")
			default:
				b.WriteString("   ")
			}
			if cell.Right {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x].Bottom {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

type gridJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]Cell `json:"cells"`
}

// MarshalJSON encodes the grid with its dimensions and cells.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Width: g.Width, Height: g.Height, Cells: g.cells})
}

// UnmarshalJSON decodes a grid written by MarshalJSON.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewGrid(raw.Cells)
	if err != nil {
		return err
	}
	if decoded.Width != raw.Width || decoded.Height != raw.Height {
		return fmt.Errorf("grid is %dx%d, header says %dx%d", decoded.Width, decoded.Height, raw.Width, raw.Height)
	}
	*g = *decoded
	return nil
}

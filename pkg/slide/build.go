package slide

import "github.com/matzehuels/ventriglisse/pkg/maze"

// Destinations are the cells a ball resting in a cell comes to rest in when
// pushed in each direction.
type Destinations struct {
	Down  maze.Coord
	Left  maze.Coord
	Up    maze.Coord
	Right maze.Coord
}

// Slides computes the four slide destinations of the cell at c. Each scan
// starts at c itself and stops at the first cell carrying the wall it is
// looking for; when no such wall exists the scan stops on the grid edge.
func Slides(g *maze.Grid, c maze.Coord) Destinations {
	d := Destinations{Down: c, Left: c, Up: c, Right: c}

	for y := c.Y; y < g.Height; y++ {
		d.Down.Y = y
		if g.At(maze.Coord{X: c.X, Y: y}).Bottom {
			break
		}
	}
	for x := c.X; x >= 0; x-- {
		d.Left.X = x
		if g.At(maze.Coord{X: x, Y: c.Y}).Left {
			break
		}
	}
	for y := c.Y; y >= 0; y-- {
		d.Up.Y = y
		if g.At(maze.Coord{X: c.X, Y: y}).Top {
			break
		}
	}
	for x := c.X; x < g.Width; x++ {
		d.Right.X = x
		if g.At(maze.Coord{X: x, Y: c.Y}).Right {
			break
		}
	}
	return d
}

// Build constructs the slide graph of g.
//
// Cells are visited in row-major order. A wall-bearing cell adds an edge to
// each of its down, left, up and right destinations, in that order, skipping
// destinations equal to the cell itself. When it also carries the start
// marker, Start is linked to its upward destination, even when the ball
// cannot move up. Every cell carrying the end marker is linked to End,
// walls or not.
func Build(g *maze.Grid) *Graph {
	out := New()
	for y := range g.Height {
		for x := range g.Width {
			c := maze.Coord{X: x, Y: y}
			cell := g.At(c)
			from := At(c)

			if cell.HasWall() {
				d := Slides(g, c)
				for _, to := range []maze.Coord{d.Down, d.Left, d.Up, d.Right} {
					if to != c {
						out.AddEdge(Edge{From: from, To: At(to)})
					}
				}
				if cell.Start {
					out.AddEdge(Edge{From: Start, To: At(d.Up)})
				}
			}

			if cell.End {
				out.AddEdge(Edge{From: from, To: End})
			}
		}
	}
	return out
}

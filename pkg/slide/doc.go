// Package slide turns a classified maze grid into a directed graph of slide
// moves and finds the shortest route through it.
//
// # Overview
//
// The ball in a ventriglisse maze never stops between walls: once pushed in
// a direction it slides until a wall of the current cell blocks it. This
// package models every such slide as an edge from the cell the ball rests in
// to the cell it comes to rest in, and adds two sentinel nodes, [Start] and
// [End], so the whole puzzle becomes a single-source single-target search.
//
// # Building the Graph
//
// [Build] visits the cells of a [maze.Grid] in row-major order. Every cell
// with at least one wall computes its four slide [Destinations] and adds an
// edge to each destination that differs from the cell itself:
//
//	g := slide.Build(grid)
//	fmt.Println(g.NodeCount(), g.EdgeCount())
//
// Cells without walls are transit-only: they can be the destination of a
// slide but never originate one. A wall-bearing cell carrying the start
// marker also links [Start] to its upward destination, and any cell carrying
// the end marker links to [End].
//
// Adding an edge twice is a no-op, so building the same grid twice yields
// the same edge list in the same order.
//
// # Finding a Path
//
// [ShortestPath] runs a breadth-first search visiting children in edge
// insertion order and returns the first shortest [Path] it finds:
//
//	path, err := slide.ShortestPath(g, slide.Start, slide.End)
//	if err != nil {
//	    // *errors.PathNotFoundError
//	}
//	fmt.Println(path.Coords())
//
// # Concurrency
//
// Graph instances are not safe for concurrent modification. A built graph
// can be searched from several goroutines at once.
package slide

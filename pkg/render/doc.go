// Package render groups the output renderers of ventriglisse.
//
// Maze images are drawn by maze.Render, next to the code that reads them,
// so that the two cannot drift apart. This tree holds the renderers that
// draw derived structures:
//
//   - [nodelink]: slide graphs as Graphviz diagrams (DOT, SVG, PNG)
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: path})
//	svg, err := nodelink.RenderSVG(ctx, dot)
package render

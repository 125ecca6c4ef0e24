// Package nodelink renders slide graphs as node-link diagrams.
//
// # Overview
//
// Every cell that takes part in a slide becomes a box labelled with its
// coordinate, every slide an arrow. The two sentinels are drawn as circles.
// When a solved path is supplied its edges are drawn thick and red, which
// makes it easy to see why a maze produced the move string it did, or why
// it produced none.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: path})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering,
// so no Graphviz installation is needed.
package nodelink

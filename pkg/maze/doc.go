// Package maze decodes maze images into grids of classified cells.
//
// # Overview
//
// A maze arrives as a bitmap tiled into square cells (64 pixels by default).
// Walls are drawn in [WallColor] along the inside edges of a cell, and the
// start and end of the puzzle are marked with [MarkerColor] just outside the
// cell: below it for the start, above it for the end. The artwork reserves a
// border of cells around the playable area, which is what keeps the marker
// probes in bounds.
//
// Decoding is two steps:
//
//  1. [Classify] samples a handful of fixed pixels of one cell and returns a
//     [Cell] with its four wall flags and two marker flags.
//  2. [Build] slices the whole image according to a [Layout], classifies
//     every playable cell and returns a rectangular [Grid].
//
// Pixel access goes through the [Sampler] interface, which returns a
// fixed-width [RGB] value; [NewImageSampler] adapts any [image.Image].
//
// # Probe Offsets
//
// Offsets are relative to the top-left pixel of the cell:
//
//	top wall     (10, 0)
//	right wall   (63, 10)
//	bottom wall  (10, 63)
//	left wall    (0, 10)
//	start marker (30, 64+25)  below the cell
//	end marker   (30, -15)    above the cell
//
// Any renderer producing maze images must honour them. [Render] does, and
// is used to produce test images and fixtures from the text format read by
// [ParseGrid].
//
// # Text Format
//
// Grids can be written as text, one line per row and one token per cell.
// A token is made of the letters T, R, B, L (walls) and S, E (markers), or a
// single "." for an empty cell:
//
//	TLRS  TB   TBR
//	LR    .    .
//	LB    TB   TBRE
package maze

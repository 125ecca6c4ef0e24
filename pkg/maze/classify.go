package maze

import "image"

// DefaultCellSize is the side of a cell in pixels.
const DefaultCellSize = 64

// Probes holds the sampling offsets of one cell, relative to its top-left
// pixel.
type Probes struct {
	Top, Right, Bottom, Left image.Point // wall probes
	Start                    image.Point // start marker, below the cell
	End                      image.Point // end marker, above the cell
}

// ProbesFor returns the probe offsets for square cells of the given size.
// Wall probes sit on the cell edges, 10 pixels from a corner; marker probes
// sit 25 pixels below and 15 pixels above the cell.
func ProbesFor(size int) Probes {
	return Probes{
		Top:    image.Pt(10, 0),
		Right:  image.Pt(size-1, 10),
		Bottom: image.Pt(10, size-1),
		Left:   image.Pt(0, 10),
		Start:  image.Pt(30, size+25),
		End:    image.Pt(30, -15),
	}
}

// DefaultProbes are the probe offsets for 64-pixel cells.
var DefaultProbes = ProbesFor(DefaultCellSize)

// Classify reads the cell whose top-left pixel is origin using the default
// probes. All probes must be inside the image; callers trim a border of
// cells around the playable area to guarantee it.
func Classify(s Sampler, origin image.Point) Cell {
	return ClassifyWith(s, origin, DefaultProbes)
}

// ClassifyWith reads the cell whose top-left pixel is origin using p.
func ClassifyWith(s Sampler, origin image.Point, p Probes) Cell {
	at := func(off image.Point) RGB {
		pt := origin.Add(off)
		return s.RGBAt(pt.X, pt.Y)
	}
	return Cell{
		Top:    at(p.Top).IsWall(),
		Right:  at(p.Right).IsWall(),
		Bottom: at(p.Bottom).IsWall(),
		Left:   at(p.Left).IsWall(),
		Start:  at(p.Start).IsMarker(),
		End:    at(p.End).IsMarker(),
	}
}

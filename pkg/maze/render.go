package maze

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	wallThickness = 3  // pixels, drawn inside the cell
	markerSide    = 12 // pixels, centred on the marker probe
)

// Render draws g as a maze image laid out according to l. Border cells are
// left white. Walls are drawn along the inside edges of each cell and
// markers as small squares centred on the marker probes, so that
// Build(NewImageSampler(Render(g, l)), l) classifies every cell back to
// the same flags as long as g has at least one wall.
func Render(g *Grid, l Layout) *image.RGBA {
	size := l.CellSize
	b := l.Border
	img := image.NewRGBA(image.Rect(0, 0,
		(g.Width+b.Left+b.Right)*size,
		(g.Height+b.Top+b.Bottom)*size,
	))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	wall := &image.Uniform{C: WallColor.RGBA()}
	marker := &image.Uniform{C: MarkerColor.RGBA()}
	probes := ProbesFor(size)

	for y, row := range g.cells {
		for x, cell := range row {
			origin := image.Pt((x+b.Left)*size, (y+b.Top)*size)
			cellRect := func(x0, y0, x1, y1 int) image.Rectangle {
				return image.Rect(x0, y0, x1, y1).Add(origin)
			}

			if cell.Top {
				draw.Draw(img, cellRect(0, 0, size, wallThickness), wall, image.Point{}, draw.Src)
			}
			if cell.Bottom {
				draw.Draw(img, cellRect(0, size-wallThickness, size, size), wall, image.Point{}, draw.Src)
			}
			if cell.Left {
				draw.Draw(img, cellRect(0, 0, wallThickness, size), wall, image.Point{}, draw.Src)
			}
			if cell.Right {
				draw.Draw(img, cellRect(size-wallThickness, 0, size, size), wall, image.Point{}, draw.Src)
			}
			if cell.Start {
				draw.Draw(img, markerRect(origin.Add(probes.Start)), marker, image.Point{}, draw.Src)
			}
			if cell.End {
				draw.Draw(img, markerRect(origin.Add(probes.End)), marker, image.Point{}, draw.Src)
			}
		}
	}
	return img
}

func markerRect(center image.Point) image.Rectangle {
	half := markerSide / 2
	return image.Rect(center.X-half, center.Y-half, center.X+half, center.Y+half)
}

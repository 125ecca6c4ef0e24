package maze

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is an 8-bit-per-channel colour without alpha.
type RGB struct {
	R, G, B uint8
}

// Reference colours of the maze artwork.
var (
	// WallColor is the pure blue used to draw walls.
	WallColor = RGB{R: 0, G: 0, B: 255}

	// MarkerColor is the red used to draw start and end markers.
	MarkerColor = RGB{R: 229, G: 20, B: 0}
)

// IsWall reports whether c is exactly the wall colour.
func (c RGB) IsWall() bool { return c == WallColor }

// IsMarker reports whether c is exactly the marker colour.
func (c RGB) IsMarker() bool { return c == MarkerColor }

// RGBA converts c to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff} }

func (c RGB) String() string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }

// Sampler provides typed pixel access to a decoded image.
type Sampler interface {
	// Bounds returns the pixel bounds of the image.
	Bounds() image.Rectangle
	// RGBAt returns the colour at (x, y). Coordinates are absolute, as for
	// image.Image.At.
	RGBAt(x, y int) RGB
}

// ImageSampler adapts an image.Image to the Sampler interface.
type ImageSampler struct {
	img image.Image
}

// NewImageSampler wraps img.
func NewImageSampler(img image.Image) *ImageSampler {
	return &ImageSampler{img: img}
}

// Bounds returns the bounds of the wrapped image.
func (s *ImageSampler) Bounds() image.Rectangle { return s.img.Bounds() }

// RGBAt returns the colour at (x, y) with the alpha channel dropped.
// Palette and RGBA images are read without going through the generic
// color.Color conversion.
func (s *ImageSampler) RGBAt(x, y int) RGB {
	switch img := s.img.(type) {
	case *image.RGBA:
		c := img.RGBAAt(x, y)
		return RGB{R: c.R, G: c.G, B: c.B}
	case *image.NRGBA:
		c := img.NRGBAAt(x, y)
		return RGB{R: c.R, G: c.G, B: c.B}
	}
	r, g, b, _ := s.img.At(x, y).RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

var _ Sampler = (*ImageSampler)(nil)

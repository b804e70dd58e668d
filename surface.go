package bgi

import (
	"image"
	"image/color"
)

// Surface is a fixed-size, row-major buffer of Colors: pixel (x, y) is stored
// at index y*Width()+x. It owns the pixel memory of a render target; Drawers
// only reference it.
//
// A Surface is not safe for concurrent use. Drawers writing to disjoint
// regions do not touch the same memory, but nothing enforces that.
type Surface struct {
	width  int
	height int
	pixels []Color
}

// NewSurface creates a surface of the given size with every pixel zero
// (transparent black). Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// NewSurfaceSize creates a surface of the given size.
func NewSurfaceSize(size Size) *Surface {
	return NewSurface(size.W, size.H)
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Size returns the size of the surface.
func (s *Surface) Size() Size {
	return Size{W: s.width, H: s.height}
}

// Pixels returns the backing pixel slice. Writes to it modify the surface.
func (s *Surface) Pixels() []Color {
	return s.pixels
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	fillColors(s.pixels, c)
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color(0)
	}
	return s.pixels[y*s.width+x]
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return ColorModel
}

// fillColors sets every element of dst to c, doubling the copied prefix each
// round.
func fillColors(dst []Color, c Color) {
	if len(dst) == 0 {
		return
	}
	dst[0] = c
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}

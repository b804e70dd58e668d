// Package raster provides the integer pixel-emission kernels used by the
// bgi Drawer: lines, horizontal spans, rectangles, scanline polygon fill and
// ellipses.
//
// Kernels work in absolute surface coordinates and know nothing about
// colors, patterns or viewports. For every candidate pixel that lies inside
// the surface they call a sink with the pixel position and its linear index
// y*width+x, leaving the decision of what to write to the caller.
package raster

import "errors"

// PixelFunc receives a pixel position inside the surface together with its
// row-major index y*width+x.
type PixelFunc func(x, y, i int)

// LineFunc is like PixelFunc but also receives n, the position of the pixel
// along the line (0 for the first endpoint). Clipped pixels still advance n,
// so line styles stay anchored to the line's start point.
type LineFunc func(x, y, i, n int)

// Point is an integer vertex in surface coordinates.
type Point struct {
	X, Y int
}

var (
	// ErrTooFewPoints is returned by FillPolygon for polygons with fewer
	// than three vertices. No pixels are emitted.
	ErrTooFewPoints = errors.New("raster: polygon needs at least 3 points")

	// ErrOddNodes is returned by FillPolygon when a scanline produced an odd
	// number of edge intersections. This means the even-odd pairing cannot
	// be applied and the input polygon violated the fill's assumptions.
	ErrOddNodes = errors.New("raster: odd number of scanline nodes")
)

// inside reports whether (x, y) lies within a w×h surface.
func inside(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

// Package bgi is a software rasterizer in the style of the Borland Graphics
// Interface.
//
// # Overview
//
// bgi draws lines, rectangles, rounded rectangles, ellipses, arcs,
// polygons and 8×8 bitmap text directly into an in-memory pixel buffer.
// There is no anti-aliasing and no blending: every operation writes whole
// pixels of a single color.
//
// # Quick Start
//
//	import "github.com/gogpu/bgi"
//
//	s := bgi.NewSurface(320, 200)
//	d := bgi.NewDrawer(s)
//
//	d.Clear(bgi.Blue)
//	d.SetFillPattern(bgi.CrossHatchFill, bgi.Blue, bgi.Yellow)
//	d.FillRect(10, 10, 100, 60)
//	d.SetWriteStyle(bgi.White, 2, 2)
//	d.Write(20, 120, "Hello")
//
//	s.SavePNG("hello.png")
//
// # Architecture
//
//   - Surface: a fixed-size, row-major buffer of Colors
//   - Drawer: a viewport onto a Surface plus draw, fill and write styles
//   - Geometry: Polygon, Transform, mirroring and elliptical arcs
//   - Internal: raster (integer kernels), cp437 (the glyph table)
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the Drawer's viewport
//   - X increases right, Y increases down
//   - Angles in degrees, 0 is right, increasing counter-clockwise on screen
//
// Writes are clipped to the Surface; the viewport size is informational.
//
// # Errors
//
// Harmless misuse, such as filling a polygon with fewer than three points,
// logs a warning (see SetLogger) and does nothing. A scanline with an odd
// number of polygon edge crossings is treated as a broken invariant: it is
// logged and the process exits.
package bgi

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

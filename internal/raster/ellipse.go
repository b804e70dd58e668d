// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Ellipses are rasterized with the two-region integer algorithm from
// J. Kennedy, "A Fast Bresenham Type Algorithm For Drawing Ellipses".
//
// The first region starts at (rx, 0) and steps y every iteration while the
// tangent slope is above -1; the second starts at (0, ry) and steps x. Each
// visited (x, y) stands for the four symmetric points (±x, ±y).

// ellipseQuadrant walks one quadrant of the ellipse with radii rx, ry and
// calls plot for every (x, y) offset from the center.
func ellipseQuadrant(rx, ry int, plot func(x, y int)) {
	twoASquare := 2 * rx * rx
	twoBSquare := 2 * ry * ry

	x, y := rx, 0
	xchange := ry * ry * (1 - 2*rx)
	ychange := rx * rx
	e := 0
	stopX := twoBSquare * rx
	stopY := 0

	for stopX >= stopY {
		plot(x, y)

		y++
		stopY += twoASquare
		e += ychange
		ychange += twoASquare

		if 2*e+xchange > 0 {
			x--
			stopX -= twoBSquare
			e += xchange
			xchange += twoBSquare
		}
	}

	x, y = 0, ry
	xchange = ry * ry
	ychange = rx * rx * (1 - 2*ry)
	e = 0
	stopX = 0
	stopY = twoASquare * ry

	for stopX <= stopY {
		plot(x, y)

		x++
		stopX += twoBSquare
		e += xchange
		xchange += twoBSquare

		if 2*e+ychange > 0 {
			y--
			stopY -= twoASquare
			e += ychange
			ychange += twoASquare
		}
	}
}

// StrokeEllipse emits the outline of the ellipse centered at (cx, cy) with
// radii rx, ry. Zero radii emit nothing.
func StrokeEllipse(cx, cy, rx, ry, w, h int, emit PixelFunc) {
	if rx == 0 && ry == 0 {
		return
	}
	put := func(x, y int) {
		if inside(x, y, w, h) {
			emit(x, y, y*w+x)
		}
	}
	ellipseQuadrant(rx, ry, func(x, y int) {
		put(cx+x, cy-y)
		put(cx-x, cy-y)
		put(cx-x, cy+y)
		put(cx+x, cy+y)
	})
}

// FillEllipse emits the interior of the ellipse centered at (cx, cy) as
// horizontal spans between the ±x extents of every visited row. Zero radii
// emit nothing.
func FillEllipse(cx, cy, rx, ry, w, h int, emit PixelFunc) {
	if rx == 0 && ry == 0 {
		return
	}
	ellipseQuadrant(rx, ry, func(x, y int) {
		HLine(cx-x, cx+x, cy-y, w, h, emit)
		HLine(cx-x, cx+x, cy+y, w, h, emit)
	})
}

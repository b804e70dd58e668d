// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Line emits the pixels of the segment (x1, y1)-(x2, y2) using integer
// Bresenham stepping. Both endpoints are included; a degenerate segment
// emits a single pixel. Pixels outside the w×h surface are skipped but
// still counted.
func Line(x1, y1, x2, y2, w, h int, emit LineFunc) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}

	e := -dy
	if dx > dy {
		e = dx
	}
	e /= 2

	for n := 0; ; n++ {
		if inside(x1, y1, w, h) {
			emit(x1, y1, y1*w+x1, n)
		}
		if x1 == x2 && y1 == y2 {
			return
		}

		// Both axes are decided against the error before this step.
		last := e
		if last > -dx {
			e -= dy
			x1 += sx
		}
		if last < dy {
			e += dx
			y1 += sy
		}
	}
}

// HLine emits the half-open span [x1, x2) on row y, after ordering the
// endpoints and clipping them to [0, w). Nothing is emitted when y is
// outside [0, h) or the span misses the surface.
func HLine(x1, x2, y, w, h int, emit PixelFunc) {
	if y < 0 || y >= h {
		return
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if x2 < 0 || x1 >= w {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, w)

	i := y*w + x1
	for x := x1; x < x2; x++ {
		emit(x, y, i)
		i++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

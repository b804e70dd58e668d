// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"slices"
)

// FillPolygon fills a closed polygon with the even-odd rule.
//
// Every integer scanline between the polygon's lowest and highest vertex
// (clamped to the surface) is intersected with all edges, the edge from the
// last vertex back to the first included:
//   - an edge that strictly crosses the scanline contributes a node at the
//     (truncated) intersection x;
//   - a vertex lying on the scanline whose edge continues to larger y emits
//     that single pixel directly, so shared vertices are not counted twice;
//   - a horizontal edge lying on the scanline is emitted as a span.
//
// Sorted nodes are then filled pairwise with HLine.
//
// FillPolygon returns ErrTooFewPoints (wrapped) for fewer than three
// vertices and ErrOddNodes (wrapped) if a scanline yields an odd node count;
// in the latter case rows above the failing one have already been emitted.
func FillPolygon(poly []Point, w, h int, emit PixelFunc) error {
	if len(poly) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(poly))
	}

	ymin, ymax := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		ymin = min(ymin, p.Y)
		ymax = max(ymax, p.Y)
	}
	ymin = max(ymin, 0)
	ymax = min(ymax, h-1)

	nodes := make([]int, 0, len(poly))
	for py := ymin; py <= ymax; py++ {
		nodes = nodes[:0]
		y := float64(py)

		p := poly[len(poly)-1]
		for _, q := range poly {
			x1, y1 := float64(p.X), float64(p.Y)
			x2, y2 := float64(q.X), float64(q.Y)

			switch {
			case (y1 < y && y2 >= y) || (y2 < y && y1 >= y):
				nodes = append(nodes, int(x1+(y-y1)/(y2-y1)*(x2-x1)))
			case (y1 == y && y2 > y) || (y2 == y && y1 > y):
				x := int(x1 + (y-y1)/(y2-y1)*(x2-x1))
				if inside(x, py, w, h) {
					emit(x, py, py*w+x)
				}
			case y1 == y && y2 == y:
				HLine(p.X, q.X, py, w, h, emit)
			}
			p = q
		}

		if err := fillNodes(nodes, py, w, h, emit); err != nil {
			return err
		}
	}
	return nil
}

// fillNodes sorts the scanline nodes and emits the spans between
// consecutive pairs (0-1, 2-3, ...).
func fillNodes(nodes []int, y, w, h int, emit PixelFunc) error {
	if len(nodes)%2 != 0 {
		return fmt.Errorf("%w: %d on scanline %d", ErrOddNodes, len(nodes), y)
	}
	slices.Sort(nodes)
	for i := 0; i < len(nodes); i += 2 {
		HLine(nodes[i], nodes[i+1], y, w, h, emit)
	}
	return nil
}

package bgi

import "github.com/gogpu/bgi/internal/raster"

// DrawRect draws the outline of the w×h rectangle at (x, y); the right and
// bottom edges lie at x+w-1 and y+h-1. Empty rectangles draw nothing.
func (d *Drawer) DrawRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x2, y2 := x+w-1, y+h-1
	d.DrawPoly(Polygon{{x, y}, {x2, y}, {x2, y2}, {x, y2}})
}

// clampRadii limits corner radii to half the shorter side.
func clampRadii(w, h, rx, ry int) (int, int) {
	m := min(w, h) / 2
	return min(rx, m), min(ry, m)
}

// DrawRoundedRect draws the outline of a rectangle whose corners are
// quarter ellipses with radii rx, ry, clamped to min(w, h)/2.
func (d *Drawer) DrawRoundedRect(x, y, w, h, rx, ry int) {
	rx, ry = clampRadii(w, h, rx, ry)
	x2, y2 := x+w-1, y+h-1

	d.DrawArc(x+rx, y+ry, rx, ry, 90, 180)
	d.DrawArc(x+rx, y2-ry, rx, ry, 180, 270)
	d.DrawArc(x2-rx, y+ry, rx, ry, 0, 90)
	d.DrawArc(x2-rx, y2-ry, rx, ry, 270, 360)

	d.DrawLine(x+rx, y, x2-rx, y)
	d.DrawLine(x+rx, y2, x2-rx, y2)
	d.DrawLine(x, y+ry, x, y2-ry)
	d.DrawLine(x2, y+ry, x2, y2-ry)
}

// FillRoundedRect fills a rectangle with rounded corners using the current
// fill style. The corners are whole filled ellipses covered by three
// rectangles: top band, middle and bottom band.
func (d *Drawer) FillRoundedRect(x, y, w, h, rx, ry int) {
	rx, ry = clampRadii(w, h, rx, ry)
	x2, y2 := x+w-1, y+h-1

	d.FillEllipse(x+rx, y+ry, rx, ry)
	d.FillEllipse(x+rx, y2-ry, rx, ry)
	d.FillEllipse(x2-rx, y+ry, rx, ry)
	d.FillEllipse(x2-rx, y2-ry, rx, ry)

	d.FillRect(x+rx, y, w-2*rx, ry)
	d.FillRect(x, y+ry, w, h-2*ry)
	d.FillRect(x+rx, y2-ry+1, w-2*rx, ry)
}

// DrawEllipse draws the outline of the ellipse centered at (cx, cy) with
// radii rx, ry in the draw color. Zero radii draw nothing.
func (d *Drawer) DrawEllipse(cx, cy, rx, ry int) {
	px := d.surface.pixels
	c := d.st.drawColor
	raster.StrokeEllipse(cx+d.viewport.X, cy+d.viewport.Y, rx, ry,
		d.surface.width, d.surface.height,
		func(_, _, i int) { px[i] = c })
}

// FillEllipse fills the ellipse centered at (cx, cy) with radii rx, ry
// using the current fill style.
func (d *Drawer) FillEllipse(cx, cy, rx, ry int) {
	raster.FillEllipse(cx+d.viewport.X, cy+d.viewport.Y, rx, ry,
		d.surface.width, d.surface.height, d.fillPixel())
}

// DrawArc draws the elliptical arc from angle1 to angle2 degrees, measured
// counter-clockwise from the positive x axis as seen on screen. The range
// 0..360 draws the full ellipse with DrawEllipse; any other range is
// approximated by an open polygon.
func (d *Drawer) DrawArc(cx, cy, rx, ry, angle1, angle2 int) {
	if angle1 == 0 && angle2 == 360 {
		d.DrawEllipse(cx, cy, rx, ry)
		return
	}
	d.DrawOpenPoly(MakeEllipticalArc(cx, cy, rx, ry, angle1, angle2))
}

// FillPieSlice fills the sector of the ellipse between angle1 and angle2
// degrees. The range 0..360 fills the full ellipse with FillEllipse; any
// other range fills the arc polygon closed through the center.
func (d *Drawer) FillPieSlice(cx, cy, rx, ry, angle1, angle2 int) {
	if angle1 == 0 && angle2 == 360 {
		d.FillEllipse(cx, cy, rx, ry)
		return
	}
	p := MakeEllipticalArc(cx, cy, rx, ry, angle1, angle2)
	d.FillPoly(append(p, Point{X: cx, Y: cy}))
}

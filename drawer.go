package bgi

import (
	"errors"

	"github.com/gogpu/bgi/internal/raster"
)

// Drawer is a stateful view onto a Surface. It holds a viewport, whose
// origin is the Drawer's (0, 0), and the current draw, fill and write
// styles. All drawing goes through the Drawer; the Surface itself has no
// drawing logic.
//
// Drawers never own pixels. Copies, including those returned by Viewport,
// share the Surface but have independent viewports and styles.
// Writes are always clipped to the Surface, never to the viewport.
type Drawer struct {
	surface  *Surface
	viewport Rect
	st       drawState
}

// drawState is the style part of a Drawer, changed only by its setters.
type drawState struct {
	drawColor   Color
	lineStyle   LineStyle
	fillBg      Color
	fillFg      Color
	fillPattern FillPattern
	writeColor  Color
	writeScaleX int
	writeScaleY int
}

// NewDrawer returns a Drawer bound to s. By default the viewport is the
// whole surface, every color is White, lines are solid, the fill pattern is
// SolidBg and text is drawn at 1×1 scale.
func NewDrawer(s *Surface, opts ...DrawerOption) *Drawer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Drawer{
		surface:  s,
		viewport: Rect{W: s.Width(), H: s.Height()},
		st: drawState{
			drawColor:   White,
			lineStyle:   SolidLine,
			fillBg:      White,
			fillFg:      White,
			fillPattern: SolidBg,
			writeColor:  White,
			writeScaleX: o.writeScaleX,
			writeScaleY: o.writeScaleY,
		},
	}
	if o.viewport != nil {
		d.viewport = *o.viewport
	}
	if o.drawColor != nil {
		d.st.drawColor = *o.drawColor
	}
	if o.lineStyle != nil {
		d.st.lineStyle = *o.lineStyle
	}
	return d
}

// Viewport returns a copy of d whose origin is moved by (dx, dy) and whose
// reported size is w×h. The copy starts with d's styles; changing them on
// either Drawer does not affect the other.
func (d *Drawer) Viewport(dx, dy, w, h int) *Drawer {
	v := *d
	v.viewport.X += dx
	v.viewport.Y += dy
	v.viewport.W = w
	v.viewport.H = h
	return &v
}

// Surface returns the surface d draws on.
func (d *Drawer) Surface() *Surface { return d.surface }

// Width returns the viewport width.
func (d *Drawer) Width() int { return d.viewport.W }

// Height returns the viewport height.
func (d *Drawer) Height() int { return d.viewport.H }

// Size returns the viewport size.
func (d *Drawer) Size() Size { return d.viewport.Size() }

// Origin returns the viewport origin in surface coordinates.
func (d *Drawer) Origin() Point { return Point{X: d.viewport.X, Y: d.viewport.Y} }

// SetDrawStyle sets the color used for lines, outlines and single pixels
// drawn by shape outlines.
func (d *Drawer) SetDrawStyle(c Color) {
	d.st.drawColor = c
}

// SetLineStyle sets the on/off mask applied to lines and outlines.
func (d *Drawer) SetLineStyle(s LineStyle) {
	d.st.lineStyle = s
}

// SetFillStyle selects a solid fill with color c.
func (d *Drawer) SetFillStyle(c Color) {
	d.st.fillBg = c
	d.st.fillFg = c
	d.st.fillPattern = SolidBg
}

// SetFillPattern selects a patterned fill: set bits of p use fg, clear bits
// use bg.
func (d *Drawer) SetFillPattern(p FillPattern, bg, fg Color) {
	d.st.fillBg = bg
	d.st.fillFg = fg
	d.st.fillPattern = p
}

// SetWriteStyle sets the text color and the glyph scale factors. Each 8×8
// glyph covers an (8*scaleX)×(8*scaleY) cell. Scales below 1 are raised
// to 1.
func (d *Drawer) SetWriteStyle(c Color, scaleX, scaleY int) {
	d.st.writeColor = c
	d.st.writeScaleX = max(scaleX, 1)
	d.st.writeScaleY = max(scaleY, 1)
}

// Clear fills the viewport with c, ignoring the current fill style.
func (d *Drawer) Clear(c Color) {
	cd := *d
	cd.SetFillStyle(c)
	cd.FillRect(0, 0, d.viewport.W, d.viewport.H)
}

// GetPixel returns the pixel at viewport position (x, y), or Black when it
// lies outside the surface.
func (d *Drawer) GetPixel(x, y int) Color {
	if i, ok := d.index(x, y); ok {
		return d.surface.pixels[i]
	}
	return Black
}

// SetPixel sets the pixel at viewport position (x, y) to c. Positions
// outside the surface are ignored.
func (d *Drawer) SetPixel(x, y int, c Color) {
	if i, ok := d.index(x, y); ok {
		d.surface.pixels[i] = c
	}
}

// index maps a viewport position to a pixel index.
func (d *Drawer) index(x, y int) (int, bool) {
	x += d.viewport.X
	y += d.viewport.Y
	s := d.surface
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// fillPixel returns the sink that writes the active fill at surface
// position (x, y). Patterns are anchored to the viewport origin.
func (d *Drawer) fillPixel() raster.PixelFunc {
	px := d.surface.pixels
	if d.st.fillPattern == SolidBg {
		bg := d.st.fillBg
		return func(_, _, i int) { px[i] = bg }
	}
	p, fg, bg := d.st.fillPattern, d.st.fillFg, d.st.fillBg
	vx, vy := d.viewport.X, d.viewport.Y
	return func(x, y, i int) {
		if p.IsFg(x-vx, y-vy) {
			px[i] = fg
		} else {
			px[i] = bg
		}
	}
}

// linePixel returns the sink that writes the draw color for every pixel the
// line style switches on.
func (d *Drawer) linePixel() raster.LineFunc {
	px := d.surface.pixels
	c := d.st.drawColor
	if d.st.lineStyle == SolidLine {
		return func(_, _, i, _ int) { px[i] = c }
	}
	style := d.st.lineStyle
	return func(_, _, i, n int) {
		if style.On(n) {
			px[i] = c
		}
	}
}

// DrawLine draws the segment (x1, y1)-(x2, y2), both endpoints included.
func (d *Drawer) DrawLine(x1, y1, x2, y2 int) {
	vx, vy := d.viewport.X, d.viewport.Y
	raster.Line(x1+vx, y1+vy, x2+vx, y2+vy, d.surface.width, d.surface.height, d.linePixel())
}

// FillRect fills the w×h rectangle at (x, y) with the current fill style.
// The part outside the surface is skipped.
func (d *Drawer) FillRect(x, y, w, h int) {
	x += d.viewport.X
	y += d.viewport.Y
	s := d.surface

	if d.st.fillPattern != SolidBg {
		raster.FillRect(x, y, w, h, s.width, s.height, d.fillPixel())
		return
	}

	if x == 0 && y == 0 && w == s.width && h == s.height {
		fillColors(s.pixels, d.st.fillBg)
		return
	}
	x, y, w, h = raster.Crop(x, y, w, h, s.width, s.height)
	for row := y; row < y+h; row++ {
		i := row*s.width + x
		fillColors(s.pixels[i:i+w], d.st.fillBg)
	}
}

// FillRectR is FillRect for a Rect.
func (d *Drawer) FillRectR(r Rect) {
	d.FillRect(r.X, r.Y, r.W, r.H)
}

// DrawOpenPoly draws the edges between consecutive points of p without the
// closing edge. A single point is drawn as one pixel; an empty polygon
// draws nothing.
func (d *Drawer) DrawOpenPoly(p Polygon) {
	switch len(p) {
	case 0:
		return
	case 1:
		d.DrawLine(p[0].X, p[0].Y, p[0].X, p[0].Y)
		return
	}
	for i := 0; i < len(p)-1; i++ {
		d.DrawLine(p[i].X, p[i].Y, p[i+1].X, p[i+1].Y)
	}
}

// DrawPoly draws the closed outline of p. An empty polygon logs a warning
// and draws nothing.
func (d *Drawer) DrawPoly(p Polygon) {
	if len(p) == 0 {
		warn("bgi: DrawPoly called with an empty polygon")
		return
	}
	prev := p[len(p)-1]
	for _, q := range p {
		d.DrawLine(prev.X, prev.Y, q.X, q.Y)
		prev = q
	}
}

// DrawPolyXY is DrawPoly(MakePolygon(coords...)).
func (d *Drawer) DrawPolyXY(coords ...int) {
	d.DrawPoly(MakePolygon(coords...))
}

// FillPoly fills p with the current fill style using the even-odd rule.
//
// A polygon with fewer than three points logs a warning and draws nothing.
// A scanline with an odd number of edge crossings means the fill's core
// assumption is broken; it is logged at error level and the process exits.
func (d *Drawer) FillPoly(p Polygon) {
	pts := make([]raster.Point, len(p))
	for i, q := range p {
		pts[i] = raster.Point{X: q.X + d.viewport.X, Y: q.Y + d.viewport.Y}
	}

	err := raster.FillPolygon(pts, d.surface.width, d.surface.height, d.fillPixel())
	switch {
	case err == nil:
	case errors.Is(err, raster.ErrTooFewPoints):
		warn("bgi: FillPoly needs at least 3 points", "points", len(p))
	default:
		fatal("FillPoly", err, "points", len(p))
	}
}

// FillPolyXY is FillPoly(MakePolygon(coords...)).
func (d *Drawer) FillPolyXY(coords ...int) {
	d.FillPoly(MakePolygon(coords...))
}

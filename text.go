package bgi

import (
	"github.com/gogpu/bgi/internal/cp437"
	"github.com/gogpu/bgi/internal/raster"
)

// GlyphSize is the width and height of a glyph at 1×1 scale.
const GlyphSize = 8

// Padding is the space between text and the outline drawn by WriteEx.
type Padding struct {
	Left, Right, Top, Bottom int
}

// Margin is the space between the outline drawn by WriteEx and the outer
// edge of its filled backdrop.
type Margin struct {
	Left, Right, Top, Bottom int
}

// TextRect returns the rectangle Write would cover when drawing text at
// (x, y): one (8*scaleX)×(8*scaleY) cell per byte, left to right.
func (d *Drawer) TextRect(x, y int, text string) Rect {
	return Rect{
		X: x,
		Y: y,
		W: d.st.writeScaleX * GlyphSize * len(text),
		H: d.st.writeScaleY * GlyphSize,
	}
}

// Write draws text with its top-left corner at (x, y) in the write color.
// Each byte selects one of the 256 code page 437 glyphs; only set glyph
// bits are drawn, so the background shows through.
func (d *Drawer) Write(x, y int, text string) {
	step := d.st.writeScaleX * GlyphSize
	for i := 0; i < len(text); i++ {
		d.drawGlyph(x+i*step, y, text[i])
	}
}

// WriteText is Write for UTF-8 text: runes are mapped onto code page 437
// first, see EncodeCP437.
func (d *Drawer) WriteText(x, y int, text string) {
	d.Write(x, y, EncodeCP437(text))
}

// WriteEx draws text on a rounded backdrop. The backdrop is filled with the
// current fill style and extends padding plus margin (and one pixel) around
// the text rectangle; the outline, in the draw color, extends padding plus
// one pixel. The text is then written on top.
func (d *Drawer) WriteEx(x, y int, text string, pad Padding, mar Margin, rx, ry int) {
	r := d.TextRect(x, y, text)
	d.FillRoundedRect(
		r.X-pad.Left-mar.Left-1,
		r.Y-pad.Top-mar.Top-1,
		r.W+pad.Left+pad.Right+mar.Left+mar.Right+2,
		r.H+pad.Top+pad.Bottom+mar.Top+mar.Bottom+2,
		rx, ry)
	d.DrawRoundedRect(
		r.X-pad.Left-1,
		r.Y-pad.Top-1,
		r.W+pad.Left+pad.Right+2,
		r.H+pad.Top+pad.Bottom+2,
		rx, ry)
	d.Write(x, y, text)
}

// drawGlyph draws glyph c at viewport position (x, y). Glyph bits are
// looked up relative to the glyph origin.
func (d *Drawer) drawGlyph(x, y int, c byte) {
	g := FillPattern(cp437.Glyph(c))
	if g == SolidBg {
		return
	}

	sx, sy := d.st.writeScaleX, d.st.writeScaleY
	if sx == 1 && sy == 1 {
		x0, y0 := x+d.viewport.X, y+d.viewport.Y
		px := d.surface.pixels
		fg := d.st.writeColor
		raster.FillRect(x0, y0, GlyphSize, GlyphSize, d.surface.width, d.surface.height,
			func(x, y, i int) {
				if g.IsFg(x-x0, y-y0) {
					px[i] = fg
				}
			})
		return
	}

	gd := *d
	gd.SetFillStyle(d.st.writeColor)
	for row := 0; row < GlyphSize; row++ {
		for col := 0; col < GlyphSize; col++ {
			if g.IsFg(col, row) {
				gd.FillRect(x+col*sx, y+row*sy, sx, sy)
			}
		}
	}
}

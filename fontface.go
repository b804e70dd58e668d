package bgi

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/bgi/internal/cp437"
)

// face is a font.Face over the bitmap font. All 256 glyphs are rendered
// once into a single alpha atlas, one cell per glyph.
type face struct {
	sx, sy int
	atlas  *image.Alpha
}

// NewFace returns the bitmap font as a font.Face, each glyph scaled to an
// (8*scaleX)×(8*scaleY) cell. It lets the font be drawn with font.Drawer on
// any draw.Image. Runes outside code page 437 are drawn as '?'.
//
// Example:
//
//	fd := font.Drawer{
//	    Dst:  img,
//	    Src:  image.NewUniform(color.White),
//	    Face: bgi.NewFace(2, 2),
//	    Dot:  fixed.P(10, 24),
//	}
//	fd.DrawString("Hello")
func NewFace(scaleX, scaleY int) font.Face {
	sx, sy := max(scaleX, 1), max(scaleY, 1)
	cw, ch := GlyphSize*sx, GlyphSize*sy
	atlas := image.NewAlpha(image.Rect(0, 0, 256*cw, ch))

	for c := 0; c < 256; c++ {
		g := FillPattern(cp437.Glyph(byte(c)))
		for y := 0; y < ch; y++ {
			for x := 0; x < cw; x++ {
				if g.IsFg(x/sx, y/sy) {
					atlas.Pix[y*atlas.Stride+c*cw+x] = 0xff
				}
			}
		}
	}
	return &face{sx: sx, sy: sy, atlas: atlas}
}

func (f *face) Close() error { return nil }

// glyphIndex maps r onto a code page 437 byte.
func glyphIndex(r rune) int {
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok {
		return '?'
	}
	return int(b)
}

func (f *face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	cw, ch := GlyphSize*f.sx, GlyphSize*f.sy
	x := dot.X.Floor()
	y := dot.Y.Floor() - 7*f.sy
	dr = image.Rect(x, y, x+cw, y+ch)
	maskp = image.Pt(glyphIndex(r)*cw, 0)
	return dr, f.atlas, maskp, fixed.I(cw), true
}

func (f *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	cw := GlyphSize * f.sx
	return fixed.R(0, -7*f.sy, cw, f.sy), fixed.I(cw), true
}

func (f *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return fixed.I(GlyphSize * f.sx), true
}

func (f *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(GlyphSize * f.sy),
		Ascent:     fixed.I(7 * f.sy),
		Descent:    fixed.I(f.sy),
		XHeight:    fixed.I(5 * f.sy),
		CapHeight:  fixed.I(7 * f.sy),
		CaretSlope: image.Pt(0, 1),
	}
}

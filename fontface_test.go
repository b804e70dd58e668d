package bgi

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func drawFace(face font.Face, w, h, baseline int, text string) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	fd := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, baseline),
	}
	fd.DrawString(text)
	return dst
}

func TestFaceMatchesWrite(t *testing.T) {
	for _, scale := range [][2]int{{1, 1}, {2, 3}} {
		sx, sy := scale[0], scale[1]
		face := NewFace(sx, sy)
		t.Cleanup(func() { _ = face.Close() })

		w, h := 3*8*sx, 8*sy
		img := drawFace(face, w, h, 7*sy, "Hi!")

		s := NewSurface(w, h)
		d := NewDrawer(s)
		d.Clear(Black)
		d.SetWriteStyle(White, sx, sy)
		d.Write(0, 0, "Hi!")

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				got := img.NRGBAAt(x, y).A != 0
				want := s.Pixels()[y*w+x] == White
				if got != want {
					t.Fatalf("scale %dx%d: pixel (%d, %d) = %v, want %v", sx, sy, x, y, got, want)
				}
			}
		}
	}
}

func TestFaceMetrics(t *testing.T) {
	face := NewFace(2, 3)
	m := face.Metrics()
	if m.Height != fixed.I(24) || m.Ascent != fixed.I(21) || m.Descent != fixed.I(3) {
		t.Errorf("Metrics = %+v", m)
	}
	if adv := font.MeasureString(face, "abcd"); adv != fixed.I(64) {
		t.Errorf("MeasureString = %v, want 64", adv)
	}
	if k := face.Kern('A', 'V'); k != 0 {
		t.Errorf("Kern = %v, want 0", k)
	}
	b, adv, ok := face.GlyphBounds('x')
	if !ok || adv != fixed.I(16) || b.Min.Y != fixed.I(-21) || b.Max.Y != fixed.I(3) {
		t.Errorf("GlyphBounds = %v, %v, %v", b, adv, ok)
	}
}

func TestFaceUnmappableRune(t *testing.T) {
	face := NewFace(1, 1)
	euro := drawFace(face, 8, 8, 7, "€")
	question := drawFace(face, 8, 8, 7, "?")
	if !bytes.Equal(euro.Pix, question.Pix) {
		t.Error("unmappable rune not drawn as '?'")
	}

	// Runes from the upper half of code page 437 map onto their glyphs.
	shade := drawFace(face, 8, 8, 7, "█")
	for i := 3; i < len(shade.Pix); i += 4 {
		if shade.Pix[i] != 0xff {
			t.Fatal("full block glyph is not solid")
		}
	}
}

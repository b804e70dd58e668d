package bgi

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{800, 600, 800, 600},
		{1, 1, 1, 1},
		{0, 10, 0, 10},
		{-5, 3, 0, 3},
	}
	for _, tt := range tests {
		s := NewSurface(tt.w, tt.h)
		if s.Width() != tt.wantW || s.Height() != tt.wantH {
			t.Errorf("NewSurface(%d, %d) size = %dx%d, want %dx%d",
				tt.w, tt.h, s.Width(), s.Height(), tt.wantW, tt.wantH)
		}
		if len(s.Pixels()) != tt.wantW*tt.wantH {
			t.Errorf("NewSurface(%d, %d) has %d pixels", tt.w, tt.h, len(s.Pixels()))
		}
	}

	s := NewSurfaceSize(Size{W: 4, H: 2})
	if s.Size() != (Size{W: 4, H: 2}) {
		t.Errorf("NewSurfaceSize size = %v", s.Size())
	}
	for i, c := range s.Pixels() {
		if c != 0 {
			t.Fatalf("pixel %d = %v, want zero", i, c)
		}
	}
}

func TestSurfaceFill(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 1000} {
		s := NewSurface(n, 1)
		s.Fill(Cyan)
		for i, c := range s.Pixels() {
			if c != Cyan {
				t.Fatalf("width %d: pixel %d = %v, want Cyan", n, i, c)
			}
		}
	}
}

func TestSurfaceImage(t *testing.T) {
	s := NewSurface(3, 2)
	s.Pixels()[1*3+2] = Argb(0x80, 1, 2, 3)

	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if got := img.At(2, 1); got != Argb(0x80, 1, 2, 3) {
		t.Errorf("At(2, 1) = %v", got)
	}
	if got := img.At(3, 0); got != Color(0) {
		t.Errorf("At outside = %v, want 0", got)
	}
	if got := img.ColorModel().Convert(color.White); got != White {
		t.Errorf("ColorModel().Convert(white) = %v, want White", got)
	}

	nrgba := s.ToImage()
	if got := nrgba.NRGBAAt(2, 1); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 0x80}) {
		t.Errorf("ToImage pixel = %v", got)
	}
}

func TestSurfaceARGB(t *testing.T) {
	s := NewSurface(2, 1)
	s.Pixels()[0] = 0x11223344
	s.Pixels()[1] = LightBlue

	got := s.ARGB()
	want := []byte{0x44, 0x33, 0x22, 0x11, 0xff, 0x55, 0x55, 0xff}
	if !bytes.Equal(got, want) {
		t.Errorf("ARGB() = % x, want % x", got, want)
	}
}

func TestSurfaceScaled(t *testing.T) {
	s := NewSurface(2, 2)
	s.Pixels()[0] = Red
	s.Pixels()[3] = Green

	img := s.Scaled(3)
	if img.Bounds() != image.Rect(0, 0, 6, 6) {
		t.Fatalf("Scaled(3) bounds = %v", img.Bounds())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := s.Pixels()[(y/3)*2+x/3]
			if got := FromColor(img.At(x, y)); got != want {
				t.Errorf("Scaled pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if s.Scaled(0).Bounds() != s.Bounds() {
		t.Error("Scaled(0) should keep the surface size")
	}
}

func TestSurfacePNG(t *testing.T) {
	s := NewSurface(4, 3)
	NewDrawer(s).Clear(Magenta)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf, 2); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("decoded size = %v, want 8x6", img.Bounds())
	}
	if got := FromColor(img.At(7, 5)); got != Magenta {
		t.Errorf("decoded pixel = %v, want Magenta", got)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

package bgi

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// ToImage copies the surface into a new image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	for i, c := range s.pixels {
		j := i * 4
		img.Pix[j+0] = c.Red()
		img.Pix[j+1] = c.Green()
		img.Pix[j+2] = c.Blue()
		img.Pix[j+3] = c.Alpha()
	}
	return img
}

// ARGB returns the pixels as ARGB8888 in native little-endian byte order
// (B, G, R, A in memory), the layout streaming display textures expect.
func (s *Surface) ARGB() []byte {
	buf := make([]byte, 4*len(s.pixels))
	for i, c := range s.pixels {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(c))
	}
	return buf
}

// Scaled returns the surface enlarged by an integer factor with
// nearest-neighbor sampling, so every pixel becomes a factor×factor block.
// Factors below 1 are treated as 1.
func (s *Surface) Scaled(factor int) *image.NRGBA {
	src := s.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.width*factor, s.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the surface, scaled by factor, to w as PNG.
func (s *Surface) EncodePNG(w io.Writer, factor int) error {
	if err := png.Encode(w, s.Scaled(factor)); err != nil {
		return fmt.Errorf("bgi: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f, 1); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package bgi

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a 32-bit color packed as 0xAARRGGBB.
//
// Colors are plain values: they are written to the surface verbatim, alpha
// included, and never blended.
type Color uint32

// Argb creates a color from its alpha, red, green and blue components.
func Argb(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Rgb creates an opaque color.
func Rgb(r, g, b uint8) Color {
	return Argb(0xff, r, g, b)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red component.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green component.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue component.
func (c Color) Blue() uint8 { return uint8(c) }

// NRGBA converts c to a non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGBA implements color.Color. The components of c are treated as
// non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the palette name of c, or its hex form "#aarrggbb".
func (c Color) String() string {
	for i, p := range AllColors {
		if p == c {
			return colorNames[i]
		}
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	if bc, ok := c.(Color); ok {
		return bc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Argb(n.A, n.R, n.G, n.B)
}

// ColorModel converts colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// The sixteen colors of the classic Borland BGI palette.
const (
	// Dark palette.
	Black     Color = 0xff000000
	Blue      Color = 0xff0000aa
	Green     Color = 0xff00aa00
	Cyan      Color = 0xff00aaaa
	Red       Color = 0xffaa0000
	Magenta   Color = 0xffaa00aa
	Brown     Color = 0xffaa5500
	LightGray Color = 0xffaaaaaa

	// Light palette.
	DarkGray     Color = 0xff555555
	LightBlue    Color = 0xff5555ff
	LightGreen   Color = 0xff55ff55
	LightCyan    Color = 0xff55ffff
	LightRed     Color = 0xffff5555
	LightMagenta Color = 0xffdb7093
	Yellow       Color = 0xffffff55
	White        Color = 0xffffffff
)

// AllColors lists the palette in BGI color index order.
var AllColors = [16]Color{
	Black, Blue, Green, Cyan, Red, Magenta, Brown, LightGray,
	DarkGray, LightBlue, LightGreen, LightCyan, LightRed, LightMagenta, Yellow, White,
}

var colorNames = [16]string{
	"Black", "Blue", "Green", "Cyan", "Red", "Magenta", "Brown", "LightGray",
	"DarkGray", "LightBlue", "LightGreen", "LightCyan", "LightRed", "LightMagenta", "Yellow", "White",
}

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("bgi: invalid color")

// ParseColor parses a palette name (case-insensitive, e.g. "LightBlue") or a
// hex color. Hex colors may be prefixed with "#" or "0x" and use one of the
// forms RGB, RRGGBB (opaque) or AARRGGBB.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return AllColors[i], nil
		}
	}

	hex := s
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	switch len(hex) {
	case 3:
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return Rgb(r*17, g*17, b*17), nil
	case 6:
		return Color(v) | 0xff000000, nil
	case 8:
		return Color(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

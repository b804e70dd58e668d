package bgi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FillPattern is an 8×8 bit tile. Row y is byte 7-y of the value (row 0 is
// the most significant byte) and column x is bit 7-x of its row. A set bit
// selects the fill foreground color, a clear bit the background color.
//
// Patterns tile the plane: the bit used for a pixel is chosen by its
// position modulo 8 relative to an anchor (the viewport origin for shape
// fills, the glyph origin for text).
type FillPattern uint64

// MakeFillPattern builds a pattern from its eight rows, top to bottom.
func MakeFillPattern(r0, r1, r2, r3, r4, r5, r6, r7 uint8) FillPattern {
	var p FillPattern
	for _, row := range [8]uint8{r0, r1, r2, r3, r4, r5, r6, r7} {
		p = p<<8 | FillPattern(row)
	}
	return p
}

// IsFg reports whether the pattern selects the foreground color at (x, y).
// Coordinates are taken modulo 8, negative ones included.
func (p FillPattern) IsFg(x, y int) bool {
	const top = FillPattern(1) << 63
	return p&(top>>((y&7)<<3)>>(x&7)) != 0
}

// Row returns row y (0..7) of the pattern.
func (p FillPattern) Row(y int) uint8 {
	return uint8(p >> (8 * (7 - (y & 7))))
}

// RotateLeft shifts every row cyclically left by r columns, so that
// p.RotateLeft(r).IsFg(x, y) == p.IsFg(x+r, y).
func (p FillPattern) RotateLeft(r int) FillPattern {
	r = mod8(r)
	var out FillPattern
	for y := 0; y < 8; y++ {
		row := p.Row(y)
		out = out<<8 | FillPattern(row<<r|row>>(8-r))
	}
	return out
}

// RotateRight shifts every row cyclically right by r columns.
func (p FillPattern) RotateRight(r int) FillPattern {
	r = mod8(r)
	var out FillPattern
	for y := 0; y < 8; y++ {
		row := p.Row(y)
		out = out<<8 | FillPattern(row>>r|row<<(8-r))
	}
	return out
}

func mod8(v int) int {
	return ((v % 8) + 8) % 8
}

// Fill patterns of the classic Borland BGI, plus VerticalLineFill.
const (
	// SolidBg fills with the background color only. Drawers treat it as the
	// solid-color fast path.
	SolidBg FillPattern = 0
	// SolidFg fills with the foreground color only.
	SolidFg FillPattern = ^SolidBg

	LineFill           FillPattern = 0xffff0000ffff0000 // ---
	LightSlashFill     FillPattern = 0x0102040810204080 // thin ///
	SlashFill          FillPattern = 0xe0c183070e1c3870 // thick ///
	BackslashFill      FillPattern = 0xf0783c1e0f87c3e1 // thick \\\
	LightBackslashFill FillPattern = 0xd269b45a2d964ba5 // thin \\\
	HatchFill          FillPattern = 0xff888888ff888888
	CrossHatchFill     FillPattern = 0x8181422418182442
	InterleaveFill     FillPattern = 0xcc33cc33cc33cc33 // brick wall
	WideDotFill        FillPattern = 0x0100100001001000
	CloseDotFill       FillPattern = 0x8800220088002200
	VerticalLineFill   FillPattern = 0xcccccccccccccccc // ||
)

var patternNames = map[string]FillPattern{
	"solidbg":        SolidBg,
	"solidfg":        SolidFg,
	"line":           LineFill,
	"lightslash":     LightSlashFill,
	"slash":          SlashFill,
	"backslash":      BackslashFill,
	"lightbackslash": LightBackslashFill,
	"hatch":          HatchFill,
	"crosshatch":     CrossHatchFill,
	"interleave":     InterleaveFill,
	"widedot":        WideDotFill,
	"closedot":       CloseDotFill,
	"verticalline":   VerticalLineFill,
}

// ErrInvalidPattern is returned by ParseFillPattern for unrecognized input.
var ErrInvalidPattern = errors.New("bgi: invalid fill pattern")

// ParseFillPattern parses a pattern name ("CrossHatch", "WideDot", with or
// without a "Fill" suffix, case-insensitive) or a 64-bit hex literal such
// as "0x8181422418182442".
func ParseFillPattern(s string) (FillPattern, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, "fill")
	key = strings.ReplaceAll(key, "_", "")
	if p, ok := patternNames[key]; ok {
		return p, nil
	}
	if hex, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(s)), "0x"); ok {
		if v, err := strconv.ParseUint(hex, 16, 64); err == nil {
			return FillPattern(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}

// LineStyle is a 16-bit on/off mask repeated along lines: bit 15-(n mod 16)
// decides whether the n-th pixel of a line is drawn.
type LineStyle uint16

// Line styles of the classic Borland BGI.
const (
	SolidLine  LineStyle = 0xffff
	DottedLine LineStyle = 0xcccc
	CenterLine LineStyle = 0xf1f8
	DashedLine LineStyle = 0xf8f8
)

// On reports whether the n-th pixel of a line is drawn.
func (s LineStyle) On(n int) bool {
	return s&(0x8000>>(n&15)) != 0
}

var lineStyleNames = map[string]LineStyle{
	"solid":  SolidLine,
	"dotted": DottedLine,
	"center": CenterLine,
	"dashed": DashedLine,
}

// ParseLineStyle parses a style name ("Dotted", "DashedLine", ...) or a
// 16-bit hex literal such as "0xf0f0".
func ParseLineStyle(s string) (LineStyle, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if st, ok := lineStyleNames[strings.TrimSuffix(key, "line")]; ok {
		return st, nil
	}
	if hex, ok := strings.CutPrefix(key, "0x"); ok {
		if v, err := strconv.ParseUint(hex, 16, 16); err == nil {
			return LineStyle(v), nil
		}
	}
	return 0, fmt.Errorf("bgi: invalid line style %q", s)
}

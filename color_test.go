package bgi

import (
	"errors"
	"image/color"
	"testing"
)

func TestColorComponents(t *testing.T) {
	c := Argb(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Fatalf("Argb = %#08x, want 0x12345678", uint32(c))
	}
	if c.Alpha() != 0x12 || c.Red() != 0x34 || c.Green() != 0x56 || c.Blue() != 0x78 {
		t.Errorf("components = %#x %#x %#x %#x", c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
	if got := Rgb(0xaa, 0x55, 0x00); got != Brown {
		t.Errorf("Rgb(aa, 55, 00) = %v, want Brown", got)
	}
}

func TestColorNRGBA(t *testing.T) {
	got := LightMagenta.NRGBA()
	want := color.NRGBA{R: 0xdb, G: 0x70, B: 0x93, A: 0xff}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}

	// Translucent colors are not premultiplied on the way in.
	c := Argb(0x80, 0xff, 0, 0)
	if FromColor(c.NRGBA()) != c {
		t.Errorf("FromColor(NRGBA()) round trip changed %v", c)
	}
	if FromColor(color.Black) != Black {
		t.Errorf("FromColor(color.Black) = %v, want Black", FromColor(color.Black))
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "Black"},
		{LightCyan, "LightCyan"},
		{White, "White"},
		{0x80102030, "#80102030"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%#08x.String() = %q, want %q", uint32(tt.c), got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"LightBlue", LightBlue},
		{"lightblue", LightBlue},
		{"  YELLOW ", Yellow},
		{"#fff", White},
		{"#f00", 0xffff0000},
		{"#123456", 0xff123456},
		{"0x80112233", 0x80112233},
		{"00ff00", 0xff00ff00},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#zzz", "#12345", "purple", "0x1234567890"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestAllColorsDistinct(t *testing.T) {
	seen := make(map[Color]bool)
	for _, c := range AllColors {
		if seen[c] {
			t.Errorf("duplicate palette color %v", c)
		}
		seen[c] = true
		if c.Alpha() != 0xff {
			t.Errorf("palette color %v is not opaque", c)
		}
	}
}

package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/bgi"
)

// Color is a bgi.Color decoded from a palette name or a hex string.
type Color bgi.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	v, err := bgi.ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(v)
	return nil
}

// Pattern is a bgi.FillPattern decoded from a pattern name or hex literal.
type Pattern bgi.FillPattern

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	v, err := bgi.ParseFillPattern(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = Pattern(v)
	return nil
}

// LineStyle is a bgi.LineStyle decoded from a style name or hex literal.
type LineStyle bgi.LineStyle

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *LineStyle) UnmarshalYAML(value *yaml.Node) error {
	v, err := bgi.ParseLineStyle(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = LineStyle(v)
	return nil
}

// FillStyle selects a solid fill (Color) or a patterned one (Pattern, Bg,
// Fg).
type FillStyle struct {
	Color   *Color  `yaml:"color,omitempty"`
	Pattern Pattern `yaml:"pattern,omitempty"`
	Bg      Color   `yaml:"bg,omitempty"`
	Fg      Color   `yaml:"fg,omitempty"`
}

// WriteStyle is the text color and glyph scale.
type WriteStyle struct {
	Color  Color `yaml:"color"`
	ScaleX int   `yaml:"scale_x,omitempty"`
	ScaleY int   `yaml:"scale_y,omitempty"`
}

// Pixel sets a single pixel.
type Pixel struct {
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	Color Color `yaml:"color"`
}

// Transform mirrors bgi.Transformation. Scale and Translate are [x, y]
// pairs; a missing scale means 1.
type Transform struct {
	Rotate    float64   `yaml:"rotate,omitempty"`
	Scale     []float64 `yaml:"scale,omitempty"`
	Translate []int     `yaml:"translate,omitempty"`
}

// Shape is a polygon given as a flat coordinate list, optionally generated
// from an elliptical arc, then transformed and mirrored in that order.
type Shape struct {
	Points []int `yaml:"points,omitempty"`
	// Arc is cx, cy, rx, ry, angle1, angle2; its points are appended to
	// Points.
	Arc          []int      `yaml:"arc,omitempty"`
	Transform    *Transform `yaml:"transform,omitempty"`
	MirrorHoriz  *int       `yaml:"mirror_horiz,omitempty"`
	MirrorVert   *int       `yaml:"mirror_vert,omitempty"`
	MirrorConcat *int       `yaml:"mirror_concat,omitempty"`
}

// Text is a UTF-8 string written at (X, Y) through the code page 437
// mapping. Padding, Margin and Radius are used by write_ex only:
// [left, right, top, bottom] and [rx, ry].
type Text struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Text    string `yaml:"text"`
	Padding []int  `yaml:"padding,omitempty"`
	Margin  []int  `yaml:"margin,omitempty"`
	Radius  []int  `yaml:"radius,omitempty"`
}

// Viewport runs Ops in a derived Drawer whose origin is moved by (X, Y).
type Viewport struct {
	X   int  `yaml:"x"`
	Y   int  `yaml:"y"`
	W   int  `yaml:"w"`
	H   int  `yaml:"h"`
	Ops []Op `yaml:"ops"`
}

// Package scene loads drawing scripts from YAML and renders them with bgi.
//
// A scene names the canvas size and an ordered list of operations, each a
// single-key mapping:
//
//	width: 320
//	height: 200
//	background: Blue
//	ops:
//	  - fill_style: {pattern: CrossHatch, bg: Blue, fg: Yellow}
//	  - fill_rect: [10, 10, 100, 60]
//	  - write_style: {color: White, scale_x: 2, scale_y: 2}
//	  - write: {x: 20, y: 120, text: Hello}
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is a decoded scene document.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Scale      int    `yaml:"scale"`
	Background *Color `yaml:"background,omitempty"`
	Ops        []Op   `yaml:"ops"`
}

// Op is one drawing operation. Exactly one field must be set.
type Op struct {
	Clear      *Color      `yaml:"clear,omitempty"`
	DrawStyle  *Color      `yaml:"draw_style,omitempty"`
	LineStyle  *LineStyle  `yaml:"line_style,omitempty"`
	FillStyle  *FillStyle  `yaml:"fill_style,omitempty"`
	WriteStyle *WriteStyle `yaml:"write_style,omitempty"`

	Pixel           *Pixel `yaml:"pixel,omitempty"`
	Line            []int  `yaml:"line,omitempty"`
	Rect            []int  `yaml:"rect,omitempty"`
	FillRect        []int  `yaml:"fill_rect,omitempty"`
	RoundedRect     []int  `yaml:"rounded_rect,omitempty"`
	FillRoundedRect []int  `yaml:"fill_rounded_rect,omitempty"`
	Ellipse         []int  `yaml:"ellipse,omitempty"`
	FillEllipse     []int  `yaml:"fill_ellipse,omitempty"`

	Poly     *Shape `yaml:"poly,omitempty"`
	OpenPoly *Shape `yaml:"open_poly,omitempty"`
	FillPoly *Shape `yaml:"fill_poly,omitempty"`

	Write   *Text `yaml:"write,omitempty"`
	WriteEx *Text `yaml:"write_ex,omitempty"`

	Viewport *Viewport `yaml:"viewport,omitempty"`
}

var (
	// ErrInvalid is wrapped by every validation error.
	ErrInvalid = errors.New("scene: invalid scene")

	// ErrEmpty is returned when the document contains no scene.
	ErrEmpty = errors.New("scene: empty document")
)

// Defaults returns a Scene with default values.
func Defaults() Scene {
	return Scene{
		Width:  640,
		Height: 480,
		Scale:  1,
	}
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene document, applying Defaults for missing fields, and
// validates it. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	sc := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("scene: decode: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the canvas size and every operation's arguments.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, sc.Width, sc.Height)
	}
	if sc.Scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, sc.Scale)
	}
	return validateOps(sc.Ops, "ops")
}

func validateOps(ops []Op, path string) error {
	for i := range ops {
		if err := ops[i].validate(fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Kind returns the YAML key of the operation, or "" if none is set.
func (op *Op) Kind() string {
	kinds := op.kinds()
	if len(kinds) == 0 {
		return ""
	}
	return kinds[0]
}

func (op *Op) kinds() []string {
	set := []struct {
		name string
		ok   bool
	}{
		{"clear", op.Clear != nil},
		{"draw_style", op.DrawStyle != nil},
		{"line_style", op.LineStyle != nil},
		{"fill_style", op.FillStyle != nil},
		{"write_style", op.WriteStyle != nil},
		{"pixel", op.Pixel != nil},
		{"line", op.Line != nil},
		{"rect", op.Rect != nil},
		{"fill_rect", op.FillRect != nil},
		{"rounded_rect", op.RoundedRect != nil},
		{"fill_rounded_rect", op.FillRoundedRect != nil},
		{"ellipse", op.Ellipse != nil},
		{"fill_ellipse", op.FillEllipse != nil},
		{"poly", op.Poly != nil},
		{"open_poly", op.OpenPoly != nil},
		{"fill_poly", op.FillPoly != nil},
		{"write", op.Write != nil},
		{"write_ex", op.WriteEx != nil},
		{"viewport", op.Viewport != nil},
	}
	var out []string
	for _, k := range set {
		if k.ok {
			out = append(out, k.name)
		}
	}
	return out
}

func (op *Op) validate(path string) error {
	kinds := op.kinds()
	if len(kinds) != 1 {
		return fmt.Errorf("%w: %s: want exactly one operation, got %v", ErrInvalid, path, kinds)
	}
	path += "." + kinds[0]

	args := func(v []int, counts ...int) error {
		for _, n := range counts {
			if len(v) == n {
				return nil
			}
		}
		return fmt.Errorf("%w: %s: want %v numbers, got %d", ErrInvalid, path, counts, len(v))
	}

	switch {
	case op.FillStyle != nil:
		fs := op.FillStyle
		if fs.Color != nil && (fs.Pattern != 0 || fs.Bg != 0 || fs.Fg != 0) {
			return fmt.Errorf("%w: %s: color excludes pattern, bg and fg", ErrInvalid, path)
		}
	case op.WriteStyle != nil:
		if op.WriteStyle.ScaleX < 0 || op.WriteStyle.ScaleY < 0 {
			return fmt.Errorf("%w: %s: negative scale", ErrInvalid, path)
		}
	case op.Line != nil:
		return args(op.Line, 4)
	case op.Rect != nil:
		return args(op.Rect, 4)
	case op.FillRect != nil:
		return args(op.FillRect, 4)
	case op.RoundedRect != nil:
		return args(op.RoundedRect, 6)
	case op.FillRoundedRect != nil:
		return args(op.FillRoundedRect, 6)
	case op.Ellipse != nil:
		return args(op.Ellipse, 4, 6)
	case op.FillEllipse != nil:
		return args(op.FillEllipse, 4, 6)
	case op.Poly != nil:
		return op.Poly.validate(path)
	case op.OpenPoly != nil:
		return op.OpenPoly.validate(path)
	case op.FillPoly != nil:
		return op.FillPoly.validate(path)
	case op.WriteEx != nil:
		t := op.WriteEx
		if err := args(t.Padding, 0, 4); err != nil {
			return fmt.Errorf("padding: %w", err)
		}
		if err := args(t.Margin, 0, 4); err != nil {
			return fmt.Errorf("margin: %w", err)
		}
		if err := args(t.Radius, 0, 2); err != nil {
			return fmt.Errorf("radius: %w", err)
		}
	case op.Viewport != nil:
		return validateOps(op.Viewport.Ops, path+".ops")
	}
	return nil
}

func (s *Shape) validate(path string) error {
	if len(s.Points)%2 != 0 {
		return fmt.Errorf("%w: %s: odd number of coordinates (%d)", ErrInvalid, path, len(s.Points))
	}
	if s.Arc != nil && len(s.Arc) != 6 {
		return fmt.Errorf("%w: %s: arc wants 6 numbers, got %d", ErrInvalid, path, len(s.Arc))
	}
	if t := s.Transform; t != nil {
		if t.Scale != nil && len(t.Scale) != 2 {
			return fmt.Errorf("%w: %s: scale wants [x, y]", ErrInvalid, path)
		}
		if t.Translate != nil && len(t.Translate) != 2 {
			return fmt.Errorf("%w: %s: translate wants [x, y]", ErrInvalid, path)
		}
	}
	return nil
}

package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/bgi"
)

const sample = `
width: 64
height: 48
scale: 2
background: Blue
ops:
  - fill_style: {color: LightBlue}
  - fill_rect: [10, 10, 5, 4]
  - draw_style: "#ff0000"
  - line: [0, 0, 9, 0]
  - pixel: {x: 63, y: 47, color: Yellow}
  - viewport:
      x: 32
      y: 0
      w: 32
      h: 48
      ops:
        - fill_style: {pattern: Line, bg: Black, fg: White}
        - fill_rect: [0, 0, 8, 8]
  - fill_poly:
      points: [0, 0, 4, 0, 4, 4, 0, 4]
      transform: {translate: [20, 30]}
`

func TestParseAndRender(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Width != 64 || sc.Height != 48 || sc.Scale != 2 || len(sc.Ops) != 7 {
		t.Fatalf("decoded scene = %+v", sc)
	}
	if k := sc.Ops[5].Kind(); k != "viewport" {
		t.Errorf("Kind() = %q, want viewport", k)
	}

	s := sc.Render()
	d := bgi.NewDrawer(s)
	tests := []struct {
		x, y int
		want bgi.Color
	}{
		{0, 47, bgi.Blue},
		{10, 10, bgi.LightBlue},
		{14, 13, bgi.LightBlue},
		{15, 13, bgi.Blue},
		{9, 0, 0xffff0000},
		{63, 47, bgi.Yellow},
		{32, 0, bgi.White}, // LineFill rows 0-1 are set
		{32, 2, bgi.Black},
		{20, 30, bgi.LightBlue},
	}
	for _, tt := range tests {
		if got := d.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	sc, err := Parse([]byte("ops: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Defaults()
	if sc.Width != def.Width || sc.Height != def.Height || sc.Scale != 1 || sc.Background != nil {
		t.Errorf("defaults not applied: %+v", sc)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"size", "width: 0\n", ErrInvalid},
		{"scale", "scale: 0\n", ErrInvalid},
		{"no op", "ops: [{}]\n", ErrInvalid},
		{"two ops", "ops: [{clear: Red, draw_style: Blue}]\n", ErrInvalid},
		{"line args", "ops: [{line: [1, 2, 3]}]\n", ErrInvalid},
		{"ellipse args", "ops: [{ellipse: [1, 2, 3, 4, 5]}]\n", ErrInvalid},
		{"odd points", "ops: [{fill_poly: {points: [1, 2, 3]}}]\n", ErrInvalid},
		{"arc args", "ops: [{poly: {arc: [1, 2, 3]}}]\n", ErrInvalid},
		{"fill style", "ops: [{fill_style: {color: Red, pattern: Hatch}}]\n", ErrInvalid},
		{"padding", "ops: [{write_ex: {text: a, padding: [1]}}]\n", ErrInvalid},
		{"nested", "ops: [{viewport: {ops: [{rect: []}]}}]\n", ErrInvalid},
		{"color", "background: purple\n", bgi.ErrInvalidColor},
		{"pattern", "ops: [{fill_style: {pattern: zigzag}}]\n", bgi.ErrInvalidPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("widht: 10\n"))
	if err == nil || !strings.Contains(err.Error(), "widht") {
		t.Errorf("Parse error = %v, want unknown field", err)
	}
}

func TestNestedPath(t *testing.T) {
	_, err := Parse([]byte("ops: [{clear: Red}, {viewport: {ops: [{line: [1]}]}}]\n"))
	if err == nil || !strings.Contains(err.Error(), "ops[1].viewport.ops[0].line") {
		t.Errorf("error %v does not name the failing operation", err)
	}
}

func TestShapePolygon(t *testing.T) {
	axis := 10
	tests := []struct {
		name  string
		shape Shape
		want  bgi.Polygon
	}{
		{
			name:  "points",
			shape: Shape{Points: []int{1, 2, 3, 4}},
			want:  bgi.MakePolygon(1, 2, 3, 4),
		},
		{
			name: "transform",
			shape: Shape{
				Points:    []int{1, 2},
				Transform: &Transform{Scale: []float64{2, 2}, Translate: []int{10, 0}},
			},
			want: bgi.MakePolygon(12, 4),
		},
		{
			name:  "mirror concat",
			shape: Shape{Points: []int{0, 0, 2, 3}, MirrorConcat: &axis},
			want:  bgi.MakePolygon(0, 0, 2, 3, 18, 3, 20, 0),
		},
		{
			name:  "arc",
			shape: Shape{Points: []int{0, 0}, Arc: []int{0, 0, 5, 5, 0, 0}},
			want:  bgi.MakePolygon(0, 0, 5, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.Polygon()
			if len(got) != len(tt.want) {
				t.Fatalf("Polygon() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Polygon() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sc.Ops) != 7 {
		t.Errorf("Load decoded %d ops, want 7", len(sc.Ops))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestRenderText(t *testing.T) {
	sc, err := Parse([]byte(`
width: 80
height: 40
background: Black
ops:
  - fill_style: {color: Blue}
  - draw_style: White
  - write_style: {color: Yellow}
  - write_ex: {x: 20, y: 10, text: "Hi", padding: [2, 2, 2, 2], margin: [3, 3, 3, 3]}
  - write: {x: 0, y: 30, text: "é"}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := bgi.NewDrawer(sc.Render())
	if d.GetPixel(14, 4) != bgi.Blue || d.GetPixel(17, 7) != bgi.White || d.GetPixel(20, 10) != bgi.Yellow {
		t.Error("write_ex rendered incorrectly")
	}

	want := bgi.NewSurface(8, 8)
	wd := bgi.NewDrawer(want)
	wd.Clear(bgi.Black)
	wd.SetWriteStyle(bgi.Yellow, 1, 1)
	wd.Write(0, 0, "\x82")
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if d.GetPixel(x, 30+y) != wd.GetPixel(x, y) {
				t.Fatalf("write of é differs at (%d, %d)", x, y)
			}
		}
	}
}

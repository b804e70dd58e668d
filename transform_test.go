package bgi

import (
	"slices"
	"testing"
)

func TestMakePolygon(t *testing.T) {
	got := MakePolygon(1, 2, 3, 4, 5, 6)
	want := Polygon{{1, 2}, {3, 4}, {5, 6}}
	if !slices.Equal(got, want) {
		t.Errorf("MakePolygon = %v, want %v", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("MakePolygon with an odd argument count should panic")
		}
	}()
	MakePolygon(1, 2, 3)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name        string
		in          Polygon
		rot, sx, sy float64
		tx, ty      int
		want        Polygon
	}{
		{"identity", Polygon{{3, 4}}, 0, 1, 1, 0, 0, Polygon{{3, 4}}},
		{"translate", Polygon{{3, 4}}, 0, 1, 1, 1, -2, Polygon{{4, 2}}},
		{"scale then translate", Polygon{{3, 4}}, 0, 2, 3, 1, 1, Polygon{{7, 13}}},
		{"scale rounds half away from zero", Polygon{{1, -1}}, 0, 0.5, 0.5, 0, 0, Polygon{{1, -1}}},
		{"rotate 90", Polygon{{10, 0}, {0, 10}}, 90, 1, 1, 0, 0, Polygon{{0, 10}, {-10, 0}}},
		// Translation is not scaled: rotate, scale, then translate.
		{"rotate scale translate", Polygon{{10, 0}}, 90, 2, 1, 5, 5, Polygon{{5, 15}}},
		{"rotate 180", Polygon{{3, 4}}, 180, 1, 1, 0, 0, Polygon{{-3, -4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.in, tt.rot, tt.sx, tt.sy, tt.tx, tt.ty)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Transform = %v, want %v", got, tt.want)
			}
			tr := Transformation{RotateDeg: tt.rot, ScaleX: tt.sx, ScaleY: tt.sy, TranslateX: tt.tx, TranslateY: tt.ty}
			if applied := tr.Apply(tt.in); !slices.Equal(applied, got) {
				t.Errorf("Apply = %v, want %v", applied, got)
			}
		})
	}
}

func TestTransformCopies(t *testing.T) {
	in := MakePolygon(1, 1, 2, 2, 3, 1)
	out := Identity.Apply(in)
	out[0].X = 99
	if in[0].X != 1 {
		t.Error("Transform modified its input")
	}
}

func TestMirror(t *testing.T) {
	p := MakePolygon(1, 2)
	if got := MirrorHoriz(p, 5); !slices.Equal(got, Polygon{{9, 2}}) {
		t.Errorf("MirrorHoriz = %v, want [(9,2)]", got)
	}
	if got := MirrorVert(p, 5); !slices.Equal(got, Polygon{{1, 8}}) {
		t.Errorf("MirrorVert = %v, want [(1,8)]", got)
	}
}

func TestMirrorRoundTrip(t *testing.T) {
	polys := []Polygon{
		MakePolygon(0, 0, 10, 0, 5, 8),
		MakePolygon(-7, 3, 12, -40, 300, 17, 2, 2),
		MakePolygon(400, 200),
	}
	for _, p := range polys {
		for _, axis := range []int{-13, 0, 1, 7, 400} {
			if got := MirrorHoriz(MirrorHoriz(p, axis), axis); !slices.Equal(got, p) {
				t.Errorf("MirrorHoriz twice about %d: got %v, want %v", axis, got, p)
			}
			if got := MirrorVert(MirrorVert(p, axis), axis); !slices.Equal(got, p) {
				t.Errorf("MirrorVert twice about %d: got %v, want %v", axis, got, p)
			}
		}
	}
}

func TestMirrorHorizConcat(t *testing.T) {
	got := MirrorHorizConcat(MakePolygon(0, 0, 2, 3), 5)
	want := MakePolygon(0, 0, 2, 3, 8, 3, 10, 0)
	if !slices.Equal(got, want) {
		t.Errorf("MirrorHorizConcat = %v, want %v", got, want)
	}
}

func TestMakeEllipticalArc(t *testing.T) {
	tests := []struct {
		name        string
		a1, a2      int
		first, last Point
	}{
		{"quarter", 0, 90, Pt(10, 0), Pt(0, -10)},
		{"reverse", 90, 0, Pt(0, -10), Pt(10, 0)},
		{"lower half", 180, 360, Pt(-10, 0), Pt(10, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc := MakeEllipticalArc(0, 0, 10, 10, tt.a1, tt.a2)
			if arc[0] != tt.first || arc[len(arc)-1] != tt.last {
				t.Errorf("endpoints = %v, %v; want %v, %v", arc[0], arc[len(arc)-1], tt.first, tt.last)
			}
			for i, p := range arc {
				if i > 0 && p == arc[i-1] {
					t.Errorf("duplicate consecutive point %v at %d", p, i)
				}
				if d2 := p.X*p.X + p.Y*p.Y; d2 < 81 || d2 > 121 {
					t.Errorf("point %v is off the circle", p)
				}
			}
		})
	}
}

func TestMakeEllipticalArcScreenConvention(t *testing.T) {
	// 0..180 is the upper half on screen: y never exceeds the center.
	for _, p := range MakeEllipticalArc(50, 50, 20, 10, 0, 180) {
		if p.Y > 50 {
			t.Fatalf("point %v below the center", p)
		}
	}
}

func TestMakeEllipticalArcDegenerate(t *testing.T) {
	if got := MakeEllipticalArc(5, 5, 0, 0, 0, 90); !slices.Equal(got, Polygon{{5, 5}}) {
		t.Errorf("zero radius arc = %v, want [(5,5)]", got)
	}
	if got := MakeEllipticalArc(0, 0, 10, 10, 30, 30); len(got) != 1 {
		t.Errorf("empty angle range produced %d points, want 1", len(got))
	}
}

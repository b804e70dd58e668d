package bgi

import "math"

// Transformation describes the affine change applied by Transform: a
// rotation about the origin in degrees (clockwise on screen, since y grows
// downward), per-axis scaling and an integer translation.
//
// The zero value is not the identity; use Identity.
type Transformation struct {
	RotateDeg  float64
	ScaleX     float64
	ScaleY     float64
	TranslateX int
	TranslateY int
}

// Identity is the transformation that leaves polygons unchanged.
var Identity = Transformation{ScaleX: 1, ScaleY: 1}

// Apply transforms p. See Transform for the exact composition order.
func (t Transformation) Apply(p Polygon) Polygon {
	return Transform(p, t.RotateDeg, t.ScaleX, t.ScaleY, t.TranslateX, t.TranslateY)
}

// Transform returns a transformed copy of p.
//
// With a non-zero rotation every point is rotated about the origin, scaled
// and rounded to the nearest integer, then translated, all in one pass.
// Without rotation, a non-identity scale is applied (rounded) together with
// the translation; failing that only the translation is applied. Callers
// depend on this order: rotate → scale → translate.
func Transform(p Polygon, rotateDeg, scaleX, scaleY float64, translateX, translateY int) Polygon {
	out := p.Clone()

	if rotateDeg != 0 {
		rad := rotateDeg * math.Pi / 180
		sin, cos := math.Sincos(rad)
		for i, q := range out {
			x, y := float64(q.X), float64(q.Y)
			out[i] = Point{
				X: round((x*cos-y*sin)*scaleX) + translateX,
				Y: round((x*sin+y*cos)*scaleY) + translateY,
			}
		}
		return out
	}

	if scaleX != 1 || scaleY != 1 {
		for i, q := range out {
			out[i] = Point{
				X: round(float64(q.X)*scaleX) + translateX,
				Y: round(float64(q.Y)*scaleY) + translateY,
			}
		}
		return out
	}

	if translateX != 0 || translateY != 0 {
		for i := range out {
			out[i].X += translateX
			out[i].Y += translateY
		}
	}
	return out
}

// Translate returns p moved by (dx, dy).
func Translate(p Polygon, dx, dy int) Polygon {
	return Transform(p, 0, 1, 1, dx, dy)
}

// MirrorHoriz reflects p about the vertical line x = axis.
func MirrorHoriz(p Polygon, axis int) Polygon {
	return Transform(p, 0, -1, 1, 2*axis, 0)
}

// MirrorVert reflects p about the horizontal line y = axis.
func MirrorVert(p Polygon, axis int) Polygon {
	return Transform(p, 0, 1, -1, 0, 2*axis)
}

// MirrorHorizConcat returns p followed by its mirror image about x = axis in
// reverse order, which closes a symmetric shape into a single outline.
func MirrorHorizConcat(p Polygon, axis int) Polygon {
	m := MirrorHoriz(p, axis)
	out := make(Polygon, 0, 2*len(p))
	out = append(out, p...)
	for i := len(m) - 1; i >= 0; i-- {
		out = append(out, m[i])
	}
	return out
}

// MakeEllipticalArc approximates the arc of the ellipse centered at
// (cx, cy) with radii rx, ry from angle1 to angle2 (degrees, counter-clockwise
// on screen, 0 pointing right) as an open polygon.
//
// The number of samples grows with the arc length so that consecutive
// points are roughly one pixel apart. Consecutive duplicates produced by
// rounding are dropped. The first point lies at angle1 and the last at
// angle2.
func MakeEllipticalArc(cx, cy, rx, ry, angle1, angle2 int) Polygon {
	span := angle2 - angle1
	steps := max(1, round(float64(max(rx, ry))*2*math.Pi*float64(abs(span)+1)/360))
	step := float64(span) / float64(steps)

	at := func(deg float64) Point {
		sin, cos := math.Sincos(deg * math.Pi / 180)
		return Point{
			X: cx + round(float64(rx)*cos),
			Y: cy - round(float64(ry)*sin),
		}
	}

	poly := Polygon{at(float64(angle1))}
	for i := 1; i <= steps; i++ {
		q := at(float64(angle1) + float64(i)*step)
		if q != poly[len(poly)-1] {
			poly = append(poly, q)
		}
	}
	return poly
}

// round rounds half away from zero.
func round(f float64) int {
	return int(math.Round(f))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

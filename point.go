package bgi

import (
	"fmt"
	"image"
)

// Point is an integer position.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String returns a string representation of p like "(3,4)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Rect is an integer rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Polygon is an ordered list of vertices. The edge from the last vertex back
// to the first is implied wherever the polygon is closed.
type Polygon []Point

// MakePolygon builds a polygon from a flat list of coordinates
// x0, y0, x1, y1, ... It panics if the number of coordinates is odd.
func MakePolygon(coords ...int) Polygon {
	if len(coords)%2 != 0 {
		panic(fmt.Sprintf("bgi: MakePolygon needs an even number of coordinates, got %d", len(coords)))
	}
	p := make(Polygon, len(coords)/2)
	for i := range p {
		p[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return p
}

// Clone returns a copy of p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	return append(Polygon(nil), p...)
}

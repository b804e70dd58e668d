package scene

import (
	"github.com/gogpu/bgi"
)

// Render draws the scene onto a new surface of the scene's size. Scale is
// not applied; pass it to bgi.Surface.EncodePNG or Scaled when exporting.
func (sc *Scene) Render() *bgi.Surface {
	s := bgi.NewSurface(sc.Width, sc.Height)
	d := bgi.NewDrawer(s)
	if sc.Background != nil {
		d.Clear(bgi.Color(*sc.Background))
	}
	run(d, sc.Ops, 0)
	return s
}

func run(d *bgi.Drawer, ops []Op, depth int) {
	log := bgi.Logger()
	for i := range ops {
		op := &ops[i]
		log.Debug("scene: op", "index", i, "kind", op.Kind(), "depth", depth)
		apply(d, op, depth)
	}
}

func apply(d *bgi.Drawer, op *Op, depth int) {
	switch {
	case op.Clear != nil:
		d.Clear(bgi.Color(*op.Clear))
	case op.DrawStyle != nil:
		d.SetDrawStyle(bgi.Color(*op.DrawStyle))
	case op.LineStyle != nil:
		d.SetLineStyle(bgi.LineStyle(*op.LineStyle))
	case op.FillStyle != nil:
		fs := op.FillStyle
		if fs.Color != nil {
			d.SetFillStyle(bgi.Color(*fs.Color))
		} else {
			d.SetFillPattern(bgi.FillPattern(fs.Pattern), bgi.Color(fs.Bg), bgi.Color(fs.Fg))
		}
	case op.WriteStyle != nil:
		ws := op.WriteStyle
		d.SetWriteStyle(bgi.Color(ws.Color), ws.ScaleX, ws.ScaleY)

	case op.Pixel != nil:
		d.SetPixel(op.Pixel.X, op.Pixel.Y, bgi.Color(op.Pixel.Color))
	case op.Line != nil:
		a := op.Line
		d.DrawLine(a[0], a[1], a[2], a[3])
	case op.Rect != nil:
		a := op.Rect
		d.DrawRect(a[0], a[1], a[2], a[3])
	case op.FillRect != nil:
		a := op.FillRect
		d.FillRect(a[0], a[1], a[2], a[3])
	case op.RoundedRect != nil:
		a := op.RoundedRect
		d.DrawRoundedRect(a[0], a[1], a[2], a[3], a[4], a[5])
	case op.FillRoundedRect != nil:
		a := op.FillRoundedRect
		d.FillRoundedRect(a[0], a[1], a[2], a[3], a[4], a[5])
	case op.Ellipse != nil:
		a1, a2 := angles(op.Ellipse)
		a := op.Ellipse
		d.DrawArc(a[0], a[1], a[2], a[3], a1, a2)
	case op.FillEllipse != nil:
		a1, a2 := angles(op.FillEllipse)
		a := op.FillEllipse
		d.FillPieSlice(a[0], a[1], a[2], a[3], a1, a2)

	case op.Poly != nil:
		d.DrawPoly(op.Poly.Polygon())
	case op.OpenPoly != nil:
		d.DrawOpenPoly(op.OpenPoly.Polygon())
	case op.FillPoly != nil:
		d.FillPoly(op.FillPoly.Polygon())

	case op.Write != nil:
		d.WriteText(op.Write.X, op.Write.Y, op.Write.Text)
	case op.WriteEx != nil:
		t := op.WriteEx
		p, m, r := quad(t.Padding), quad(t.Margin), pair(t.Radius)
		d.WriteEx(t.X, t.Y, bgi.EncodeCP437(t.Text),
			bgi.Padding{Left: p[0], Right: p[1], Top: p[2], Bottom: p[3]},
			bgi.Margin{Left: m[0], Right: m[1], Top: m[2], Bottom: m[3]},
			r[0], r[1])

	case op.Viewport != nil:
		v := op.Viewport
		run(d.Viewport(v.X, v.Y, v.W, v.H), v.Ops, depth+1)
	}
}

// angles returns the optional angle pair of an ellipse argument list,
// defaulting to the full ellipse.
func angles(a []int) (int, int) {
	if len(a) == 6 {
		return a[4], a[5]
	}
	return 0, 360
}

func quad(v []int) [4]int {
	var q [4]int
	copy(q[:], v)
	return q
}

func pair(v []int) [2]int {
	var p [2]int
	copy(p[:], v)
	return p
}

// Polygon builds the shape's polygon: points, then arc points, then the
// transform, then mirroring.
func (s *Shape) Polygon() bgi.Polygon {
	p := bgi.MakePolygon(s.Points...)
	if a := s.Arc; len(a) == 6 {
		p = append(p, bgi.MakeEllipticalArc(a[0], a[1], a[2], a[3], a[4], a[5])...)
	}
	if t := s.Transform; t != nil {
		p = t.transformation().Apply(p)
	}
	if s.MirrorHoriz != nil {
		p = bgi.MirrorHoriz(p, *s.MirrorHoriz)
	}
	if s.MirrorVert != nil {
		p = bgi.MirrorVert(p, *s.MirrorVert)
	}
	if s.MirrorConcat != nil {
		p = bgi.MirrorHorizConcat(p, *s.MirrorConcat)
	}
	return p
}

func (t *Transform) transformation() bgi.Transformation {
	tr := bgi.Identity
	tr.RotateDeg = t.Rotate
	if len(t.Scale) == 2 {
		tr.ScaleX, tr.ScaleY = t.Scale[0], t.Scale[1]
	}
	if len(t.Translate) == 2 {
		tr.TranslateX, tr.TranslateY = t.Translate[0], t.Translate[1]
	}
	return tr
}

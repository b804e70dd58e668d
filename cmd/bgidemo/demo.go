package main

import (
	"github.com/gogpu/bgi"
)

const (
	demoWidth  = 800
	demoHeight = 600
)

var (
	grillBg    bgi.Color = 0xffbbbbbb
	grillBlack bgi.Color = 0xff161616

	grillPattern = bgi.MakeFillPattern(
		0b11001100,
		0b11111111,
		0b11001100,
		0b11001100,
		0b11001100,
		0b11001100,
		0b11001100,
		0b11001100)

	demoPatterns = []bgi.FillPattern{
		bgi.LineFill, bgi.LightSlashFill, bgi.SlashFill, bgi.BackslashFill,
		bgi.LightBackslashFill, bgi.HatchFill, bgi.CrossHatchFill, bgi.InterleaveFill,
		bgi.WideDotFill, bgi.CloseDotFill, bgi.VerticalLineFill, grillPattern,
	}
)

// renderDemo draws the built-in picture: a welcome panel with the palette,
// the fill patterns and the basic shapes, and a gas grill built from
// transformed and mirrored polygons.
func renderDemo() *bgi.Surface {
	s := bgi.NewSurface(demoWidth, demoHeight)
	d := bgi.NewDrawer(s)
	d.Clear(grillBg)

	drawWelcome(d.Viewport(0, 0, 300, demoHeight))
	drawGrill(d.Viewport(300, 0, 500, demoHeight), 70, 220)
	return s
}

func drawWelcome(d *bgi.Drawer) {
	d.SetFillStyle(bgi.Blue)
	d.FillRect(0, 0, d.Width(), d.Height())

	d.SetWriteStyle(bgi.Brown, 1, 2)
	d.Write(10, 10, "Welcome to BGI!")
	d.SetWriteStyle(bgi.Yellow, 1, 1)
	d.WriteText(10, 30, "Café ½ ░▒▓█")

	// Palette
	for i, c := range bgi.AllColors {
		d.SetFillStyle(c)
		d.FillRect(10+(i%8)*35, 50+(i/8)*20, 30, 15)
	}

	// Fill patterns, anchored to each swatch's own viewport
	for i, p := range demoPatterns {
		v := d.Viewport(10+(i%4)*70, 100+(i/4)*50, 60, 40)
		v.SetFillPattern(p, bgi.Black, bgi.LightGray)
		v.FillRect(0, 0, v.Width(), v.Height())
		v.SetDrawStyle(bgi.White)
		v.DrawRect(0, 0, v.Width(), v.Height())
	}

	// Line styles
	for i, ls := range []bgi.LineStyle{bgi.SolidLine, bgi.DottedLine, bgi.CenterLine, bgi.DashedLine} {
		d.SetLineStyle(ls)
		d.SetDrawStyle(bgi.LightCyan)
		d.DrawLine(10, 260+i*8, 290, 260+i*8)
	}
	d.SetLineStyle(bgi.SolidLine)

	// Shapes
	d.SetDrawStyle(bgi.White)
	d.SetFillStyle(bgi.LightBlue)
	d.FillRect(10, 300, 100, 100)
	d.DrawRect(10, 300, 100, 100)
	d.SetFillPattern(bgi.CrossHatchFill, bgi.Green, bgi.LightGreen)
	d.FillEllipse(200, 350, 80, 45)
	d.DrawEllipse(200, 350, 80, 45)
	d.SetFillStyle(bgi.LightRed)
	d.FillPieSlice(60, 470, 50, 50, 30, 300)
	d.SetDrawStyle(bgi.Yellow)
	d.DrawArc(60, 470, 55, 55, 300, 390)
	d.SetFillStyle(bgi.Magenta)
	d.FillRoundedRect(130, 430, 150, 80, 12, 12)
	d.SetDrawStyle(bgi.LightMagenta)
	d.DrawRoundedRect(130, 430, 150, 80, 12, 12)

	star := bgi.MakePolygon(0, -30, 9, -9, 30, -9, 13, 5, 19, 28, 0, 14, -19, 28, -13, 5, -30, -9, -9, -9)
	d.SetFillStyle(bgi.Yellow)
	d.FillPoly(bgi.Translate(star, 205, 470))

	d.SetFillStyle(bgi.DarkGray)
	d.SetDrawStyle(bgi.White)
	d.SetWriteStyle(bgi.White, 1, 1)
	d.WriteEx(20, 560, "bgidemo "+bgi.Version, bgi.Padding{Left: 3, Right: 3, Top: 2, Bottom: 2}, bgi.Margin{Left: 2, Right: 2, Top: 2, Bottom: 2}, 4, 4)
}

// drawGrill draws the closed grill with its gas knobs turned to the given
// angles in degrees. The grill is symmetric around x = 250.
func drawGrill(d *bgi.Drawer, leftKnob, rightKnob int) {
	const axis = 250

	var (
		matteLeft   = bgi.MakePolygon(160, 100, 155, 110, 150, 185, 160, 200, 165, 200, 170, 195, 180, 195, 180, 185, 170, 185, 165, 175, 165, 110, 170, 100)
		matteRight  = bgi.MirrorHoriz(matteLeft, axis)
		cupboard    = bgi.Transformation{ScaleX: 0.85, ScaleY: 0.85, TranslateX: axis, TranslateY: 200}
		trayLeft    = cupboard.Apply(bgi.MakePolygon(-223, 2, -101, 2, -101, 33, -233, 33, -233, 10))
		trayRight   = bgi.MirrorHoriz(trayLeft, axis)
		dashboard   = cupboard.Apply(bgi.MakePolygon(-95, 2, -95, 62, 95, 62, 95, 2))
		dashTop     = cupboard.Apply(bgi.MakePolygon(-95, 2, -95, 10, 95, 10, 95, 2))
		dashBottom  = cupboard.Apply(bgi.MakePolygon(-95, 57, -95, 62, 95, 62, 95, 57))
		dashMatte   = cupboard.Apply(bgi.MakePolygon(-102, 0, -102, 62, -100, 64, -90, 64, -95, 0))
		handleShade = bgi.MirrorHorizConcat(bgi.MakePolygon(184, 102, 187, 112, 187, 124, 184, 156), axis)
		clockHand   = bgi.MakePolygon(-2, 2, 2, 2, 0, -9)
		knobSign    = bgi.MakePolygon(-2, -1, 2, -1, 0, -7)
	)

	// Lid
	d.SetFillStyle(grillBlack)
	d.FillPolyXY(160, 100, 155, 110, 150, 185, 160, 200, 340, 200, 350, 185, 345, 110, 340, 100, 330, 100, 330, 102, 170, 102, 170, 100)
	d.SetFillPattern(bgi.CloseDotFill, bgi.DarkGray, grillBlack)
	d.FillPolyXY(168, 107, 332, 107, 329, 103, 171, 103)
	d.SetFillPattern(bgi.CloseDotFill, grillBlack, bgi.DarkGray)
	d.FillPolyXY(168, 109, 332, 109, 332, 115, 168, 115)
	d.SetFillPattern(bgi.CloseDotFill, bgi.DarkGray, grillBlack)
	d.FillPoly(matteLeft)
	d.FillPoly(matteRight)
	d.SetFillPattern(bgi.WideDotFill, bgi.DarkGray, grillBlack)
	d.FillPoly(handleShade)

	// Branding
	d.SetFillStyle(bgi.LightGray)
	d.SetDrawStyle(bgi.Black)
	d.SetWriteStyle(bgi.Black, 1, 2)
	d.WriteEx(180, 163, "weeburn", bgi.Padding{Left: 3, Right: 2, Bottom: -1}, bgi.Margin{Left: 1, Right: 1, Top: 1, Bottom: 1}, 3, 3)

	// Handle
	d.SetFillPattern(bgi.LineFill, bgi.LightGray, bgi.DarkGray)
	d.FillPolyXY(181, 187, 319, 187, 319, 193, 181, 193)

	// Lid thermometer
	d.SetFillStyle(bgi.LightGray)
	d.FillEllipse(axis, 136, 12, 12)
	d.SetFillStyle(bgi.White)
	d.FillEllipse(axis, 136, 9, 9)
	d.SetFillStyle(grillBlack)
	d.FillPoly(bgi.Transform(clockHand, 180+200*360/400, 1, 1, axis, 136))
	d.SetPixel(axis, 136, bgi.Yellow)

	// Wheels
	d.SetFillStyle(bgi.DarkGray)
	d.FillEllipse(174, 465, 10, 10)
	d.FillEllipse(326, 465, 10, 10)
	d.SetDrawStyle(grillBlack)
	for _, cx := range []int{174, 326} {
		d.DrawArc(cx, 465, 10, 10, 0, 90)
		d.DrawArc(cx, 465, 9, 9, 0, 90)
	}
	d.SetFillStyle(bgi.Black)
	d.FillRoundedRect(155, 422, 190, 38, 10, 20)

	// Cupboard
	d.SetFillStyle(grillBlack)
	d.FillPoly(cupboard.Apply(bgi.MakePolygon(-100, 0, -100, 300, 100, 300, 100, 0)))
	d.SetFillStyle(bgi.LightGray)
	d.FillPoly(trayLeft)
	d.FillPoly(trayRight)
	d.SetDrawStyle(bgi.DarkGray)
	d.DrawPoly(trayLeft)
	d.DrawPoly(trayRight)

	d.SetFillStyle(bgi.LightGray)
	d.FillPoly(dashboard)
	d.SetFillStyle(bgi.DarkGray)
	d.FillPoly(dashTop)
	d.FillPoly(dashBottom)
	d.SetFillPattern(bgi.CloseDotFill, bgi.DarkGray, grillBlack)
	d.FillPoly(dashMatte)
	d.FillPoly(bgi.MirrorHoriz(dashMatte, axis))

	d.SetWriteStyle(grillBlack, 1, 1)
	d.Write(286, 215, "SPORT")

	// Knobs
	for _, k := range []struct{ x, angle int }{{212, leftKnob}, {288, rightKnob}} {
		d.SetFillPattern(bgi.VerticalLineFill.RotateRight(k.angle/10), bgi.LightGray, bgi.DarkGray)
		d.FillEllipse(k.x, 236, 10, 10)
		d.SetDrawStyle(bgi.DarkGray)
		d.DrawEllipse(k.x, 236, 10, 10)
		d.SetFillStyle(bgi.LightGray)
		d.FillEllipse(k.x, 232, 10, 9)
		d.DrawEllipse(k.x, 232, 10, 9)
		d.DrawPoly(bgi.Transform(knobSign, float64(-k.angle), 1, 1, k.x, 232))

		d.SetDrawStyle(grillBlack)
		d.SetFillStyle(grillBlack)
		d.DrawEllipse(k.x+15, 236, 2, 2)
		d.FillPieSlice(k.x+16, 236, 1, 1, 0, 90)
		d.DrawEllipse(k.x+10, 245, 2, 2)
		d.FillPieSlice(k.x+11, 245, 1, 1, -90, 90)
		d.FillEllipse(k.x-15, 236, 2, 2)
	}

	// Door
	d.SetFillStyle(bgi.Black)
	d.FillRect(183, 272, 134, 168)
	d.SetFillStyle(grillBlack)
	d.FillRect(185, 274, 130, 164)
	d.SetFillStyle(bgi.DarkGray)
	d.FillRect(284, 316, 8, 65)
	d.SetFillStyle(bgi.LightGray)
	d.FillRect(287, 318, 5, 61)
}

// renderFontSheet draws all 256 glyphs in a 16×16 grid with one pixel of
// spacing and the row and column numbers in hex.
func renderFontSheet() *bgi.Surface {
	const cell = bgi.GlyphSize + 2
	const hex = "0123456789ABCDEF"

	s := bgi.NewSurface(cell*17, cell*17)
	d := bgi.NewDrawer(s)
	d.Clear(bgi.Black)

	d.SetWriteStyle(bgi.LightGray, 1, 1)
	for i := 0; i < 16; i++ {
		d.Write(cell*(i+1)+1, 1, hex[i:i+1])
		d.Write(1, cell*(i+1)+1, hex[i:i+1])
	}

	d.SetWriteStyle(bgi.White, 1, 1)
	for c := 0; c < 256; c++ {
		d.Write(cell*(c%16+1)+1, cell*(c/16+1)+1, string([]byte{byte(c)}))
	}
	return s
}

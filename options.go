package bgi

// DrawerOption configures a Drawer during creation.
//
// Example:
//
//	// Drawer covering the whole surface
//	d := bgi.NewDrawer(s)
//
//	// Drawer whose origin is (100, 50)
//	d := bgi.NewDrawer(s, bgi.WithViewport(bgi.Rect{X: 100, Y: 50, W: 200, H: 100}))
type DrawerOption func(*drawerOptions)

// drawerOptions holds optional configuration for Drawer creation.
type drawerOptions struct {
	viewport    *Rect
	drawColor   *Color
	lineStyle   *LineStyle
	writeScaleX int
	writeScaleY int
}

func defaultOptions() drawerOptions {
	return drawerOptions{
		writeScaleX: 1,
		writeScaleY: 1,
	}
}

// WithViewport sets the Drawer's viewport. Its origin becomes the Drawer's
// (0, 0); its size is reported by Width and Height but does not clip.
func WithViewport(r Rect) DrawerOption {
	return func(o *drawerOptions) {
		o.viewport = &r
	}
}

// WithDrawColor sets the initial outline color.
func WithDrawColor(c Color) DrawerOption {
	return func(o *drawerOptions) {
		o.drawColor = &c
	}
}

// WithLineStyle sets the initial line style.
func WithLineStyle(s LineStyle) DrawerOption {
	return func(o *drawerOptions) {
		o.lineStyle = &s
	}
}

// WithWriteScale sets the initial text scale. Values below 1 are ignored.
func WithWriteScale(sx, sy int) DrawerOption {
	return func(o *drawerOptions) {
		if sx >= 1 && sy >= 1 {
			o.writeScaleX = sx
			o.writeScaleY = sy
		}
	}
}

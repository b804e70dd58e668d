package raster

// Crop clips the rectangle (x, y, w, h) to a sw×sh surface. A rectangle
// that ends up empty is returned with zero width and height.
func Crop(x, y, w, h, sw, sh int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > sw {
		w = sw - x
	}
	if y+h > sh {
		h = sh - y
	}
	if w <= 0 || h <= 0 {
		return x, y, 0, 0
	}
	return x, y, w, h
}

// FillRect crops (x, y, w, h) to the sw×sh surface and emits every pixel of
// the remainder, row by row.
func FillRect(x, y, w, h, sw, sh int, emit PixelFunc) {
	x, y, w, h = Crop(x, y, w, h, sw, sh)
	for row := y; row < y+h; row++ {
		i := row*sw + x
		for col := x; col < x+w; col++ {
			emit(col, row, i)
			i++
		}
	}
}

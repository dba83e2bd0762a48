package escape

import "errors"

var ErrEmptyViewport = errors.New("viewport must have positive width and height")

// Viewport is the rectangle of the complex plane sampled by a Width x Height
// grid of pixels.
type Viewport struct {
	Width, Height int

	XMin, XMax float64
	YMin, YMax float64
}

func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return ErrEmptyViewport
	}
	return nil
}

// Pixels is the number of pixels in the viewport.
func (v Viewport) Pixels() int {
	return v.Width * v.Height
}

// Point returns the complex coordinate of pixel (x, y).
//
// Pixel indices are normalized by Width and Height rather than Width-1 and
// Height-1, so sampling is half-open: XMin is hit by column 0 but XMax is
// never reached. Degenerate ranges (min == max) map every pixel to min.
func (v Viewport) Point(x, y int) complex128 {
	zx := v.XMin + (v.XMax-v.XMin)*(float64(x)/float64(v.Width))
	zy := v.YMin + (v.YMax-v.YMin)*(float64(y)/float64(v.Height))
	return complex(zx, zy)
}

package bmpedit

import (
	"fmt"
	"image"
)

// FormatError reports that the input is not a BMP this package can handle.
type FormatError string

func (e FormatError) Error() string { return "bmp: invalid format: " + string(e) }

// BoundsError reports a pixel or region that does not fit in the image.
// A single pixel is reported as a 1x1 region.
type BoundsError struct {
	X, Y, W, H    int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bmp: region %v is outside %dx%d image",
		image.Rect(e.X, e.Y, e.X+e.W, e.Y+e.H), e.Width, e.Height)
}

// InvalidDimensionError reports an unusable width or height.
type InvalidDimensionError struct {
	Width, Height int
	Reason        string
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("bmp: invalid dimension %dx%d: %s", e.Width, e.Height, e.Reason)
}

// IOError reports that an image file could not be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return "bmp: " + e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

func checkRegion(x0, y0, w, h, width, height int) error {
	if x0 < 0 || y0 < 0 || w < 0 || h < 0 || w > width-x0 || h > height-y0 {
		return &BoundsError{X: x0, Y: y0, W: w, H: h, Width: width, Height: height}
	}
	return nil
}

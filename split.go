package bmpedit

import (
	"errors"
	"image"
)

// SplitMode defines the mode in which the image will be split
type SplitMode int

const (
	// SplitHorizontalMode splits the image horizontally
	SplitHorizontalMode SplitMode = iota
	// SplitVerticalMode splits the image vertically
	SplitVerticalMode
)

// split returns n equal rectangles covering base, in storage coordinates.
func split(base image.Rectangle, n int, mode SplitMode) (rects []image.Rectangle) {
	var width, height int
	if mode == SplitHorizontalMode {
		width = base.Dx() / n
		height = base.Dy()
	} else {
		width = base.Dx()
		height = base.Dy() / n
	}
	if width == 0 || height == 0 {
		return
	}
	for i := range n {
		var r image.Rectangle
		if mode == SplitHorizontalMode {
			r = image.Rect(
				base.Min.X+width*i, base.Min.Y,
				base.Min.X+width*(i+1), base.Min.Y+height,
			)
		} else {
			r = image.Rect(
				base.Min.X, base.Min.Y+height*i,
				base.Min.X+width, base.Min.Y+height*(i+1),
			)
		}
		rects = append(rects, r)
	}
	return
}

// Split splits an image into n smaller images based on the specified split mode.
// Vertical parts are returned bottom first, matching the storage order.
// If n is less than 1, or the image cannot be split, it returns an error.
func Split(base *Image, n int, mode SplitMode) (imgs []*Image, err error) {
	if n < 1 {
		return nil, errors.New("invalid number of parts: must be at least 1")
	}
	rects := split(base.Bounds(), n, mode)
	if len(rects) == 0 {
		return nil, errors.New("failed to split the image: invalid dimensions or n is too large")
	}
	for _, rect := range rects {
		img := base.Clone()
		if err = img.Crop(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()); err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return
}

// SplitHorizontal splits an image into n parts horizontally.
func SplitHorizontal(base *Image, n int) ([]*Image, error) {
	return Split(base, n, SplitHorizontalMode)
}

// SplitVertical splits an image into n parts vertically.
func SplitVertical(base *Image, n int) ([]*Image, error) {
	return Split(base, n, SplitVerticalMode)
}

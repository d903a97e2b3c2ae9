package bmpedit

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// ResizeOption is resize option for Resample.
// If one of Width or Height is 0, the image aspect ratio is preserved.
// Percent is used only when both Width and Height are 0.
type ResizeOption struct {
	Width   int
	Height  int
	Percent float64
}

func (r *ResizeOption) do(base image.Image) *image.NRGBA {
	if r.Width == 0 && r.Height == 0 {
		return imaging.Resize(base, int(float64(base.Bounds().Dx())*r.Percent/100), 0, imaging.Lanczos)
	}
	return imaging.Resize(base, r.Width, r.Height, imaging.Lanczos)
}

// Resample resizes the image to any size with Lanczos interpolation.
// Unlike Resize it can enlarge the image and accepts any target size.
func (img *Image) Resample(option *ResizeOption) error {
	if option.Width < 0 || option.Height < 0 || option.Percent < 0 {
		return &InvalidDimensionError{option.Width, option.Height, "negative resize option"}
	}
	dst := option.do(img)
	if dst.Rect.Empty() {
		return &InvalidDimensionError{option.Width, option.Height, "resize result is empty"}
	}
	return img.replaceWith(dst)
}

// Thumbnail downscales the image to fit in maxWidth x maxHeight, preserving the
// aspect ratio. Images that already fit are left unchanged.
func (img *Image) Thumbnail(maxWidth, maxHeight int) error {
	if maxWidth <= 0 || maxHeight <= 0 {
		return &InvalidDimensionError{maxWidth, maxHeight, "thumbnail bounds must be positive"}
	}
	if img.width <= maxWidth && img.height <= maxHeight {
		return nil
	}
	return img.replaceWith(resize.Thumbnail(uint(maxWidth), uint(maxHeight), img.toNRGBA(), resize.Lanczos3))
}

// replaceWith takes pixels and dimensions from a top-down image, keeping the bit depth.
func (img *Image) replaceWith(src image.Image) error {
	r, err := fromNRGBA(imaging.FlipV(src), img.HasAlpha())
	if err != nil {
		return err
	}
	img.replace(r.pix, r.width, r.height)
	return nil
}

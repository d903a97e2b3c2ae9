package bmpedit

import (
	"image"
	"image/color"
	"image/draw"
)

// WatermarkOption is watermark option
type WatermarkOption struct {
	Mark    image.Image
	Opacity uint8
	// Offset moves the mark from the image centre, in top-down coordinates.
	Offset image.Point
}

// Watermark blends option.Mark over img at the centre plus option.Offset.
func Watermark(img *Image, option *WatermarkOption) error {
	return option.do(img)
}

// SetOffset sets the offset of the mark from the image centre.
func (w *WatermarkOption) SetOffset(offset image.Point) *WatermarkOption {
	w.Offset = offset
	return w
}

func (w *WatermarkOption) do(base *Image) error {
	dst := base.toNRGBA()
	mb := w.Mark.Bounds()
	draw.DrawMask(
		dst,
		image.Rectangle{Max: mb.Size()}.Add(w.offset(dst.Bounds())),
		w.Mark,
		mb.Min,
		image.NewUniform(color.Alpha{w.Opacity}),
		image.Point{},
		draw.Over,
	)
	return base.replaceWith(dst)
}

func (w *WatermarkOption) offset(base image.Rectangle) image.Point {
	return image.Pt(
		base.Dx()/2-w.Mark.Bounds().Dx()/2+w.Offset.X,
		base.Dy()/2-w.Mark.Bounds().Dy()/2+w.Offset.Y,
	)
}

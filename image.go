// Package bmpedit decodes, encodes and filters uncompressed 24-bit and 32-bit BMP images.
//
// Pixels are kept exactly as stored on disk: rows run bottom-to-top and every
// pixel is B, G, R and, for 32-bit images, A. Row padding exists only in the
// file and is stripped by Decode and restored by Encode.
package bmpedit

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Image is an in-memory BMP image.
//
// Coordinates passed to the pixel and region methods are storage coordinates:
// y = 0 is the bottom row. The image.Image methods (At, Bounds) use the usual
// top-down coordinates instead.
//
// An Image is not safe for concurrent use.
type Image struct {
	width, height int
	bitDepth      int
	pix           []uint8

	xPixelsPerMeter int32
	yPixelsPerMeter int32
}

// New returns a zero-filled image. A 32-bit image is created when hasAlpha is true,
// a 24-bit one otherwise.
func New(width, height int, hasAlpha bool) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidDimensionError{width, height, "width and height must be positive"}
	}
	bitDepth := 24
	if hasAlpha {
		bitDepth = 32
	}
	return &Image{
		width:    width,
		height:   height,
		bitDepth: bitDepth,
		pix:      make([]uint8, width*height*bitDepth/8),
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// BitDepth returns 24 or 32.
func (img *Image) BitDepth() int { return img.bitDepth }

// Channels returns the number of bytes per pixel, 3 or 4.
func (img *Image) Channels() int { return img.bitDepth / 8 }

// HasAlpha reports whether pixels carry an alpha channel.
func (img *Image) HasAlpha() bool { return img.bitDepth == 32 }

// Pix returns the pixel buffer. It is shared with the image and stays valid
// until an operation that changes the dimensions replaces it.
func (img *Image) Pix() []uint8 { return img.pix }

// Resolution returns the horizontal and vertical resolution in pixels per meter.
func (img *Image) Resolution() (x, y int32) { return img.xPixelsPerMeter, img.yPixelsPerMeter }

// SetResolution sets the resolution written by Encode.
func (img *Image) SetResolution(x, y int32) {
	img.xPixelsPerMeter, img.yPixelsPerMeter = x, y
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	c := *img
	c.pix = append([]uint8(nil), img.pix...)
	return &c
}

func (img *Image) stride() int { return img.width * img.Channels() }

func (img *Image) offset(x, y int) int { return (y*img.width + x) * img.Channels() }

// replace swaps in a buffer computed for the given dimensions.
func (img *Image) replace(pix []uint8, width, height int) {
	img.pix, img.width, img.height = pix, width, height
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image. y = 0 is the top row.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return color.NRGBA{}
	}
	s := img.pix[img.offset(x, img.height-1-y):]
	c := color.NRGBA{R: s[2], G: s[1], B: s[0], A: 0xff}
	if img.HasAlpha() {
		c.A = s[3]
	}
	return c
}

// FromImage converts src to an Image. The result is 24-bit when src is opaque
// and 32-bit otherwise.
func FromImage(src image.Image) (*Image, error) {
	nrgba := imaging.FlipV(src)
	return fromNRGBA(nrgba, !nrgba.Opaque())
}

// fromNRGBA converts a bottom-up NRGBA image.
func fromNRGBA(src *image.NRGBA, hasAlpha bool) (*Image, error) {
	img, err := New(src.Rect.Dx(), src.Rect.Dy(), hasAlpha)
	if err != nil {
		return nil, err
	}
	ch := img.Channels()
	for y := 0; y < img.height; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+img.width*4]
		d := img.pix[y*img.stride() : (y+1)*img.stride()]
		for i, j := 0, 0; i < len(s); i, j = i+4, j+ch {
			d[j+0] = s[i+2]
			d[j+1] = s[i+1]
			d[j+2] = s[i+0]
			if ch == 4 {
				d[j+3] = s[i+3]
			}
		}
	}
	return img, nil
}

// toNRGBA returns img as a top-down NRGBA image.
func (img *Image) toNRGBA() *image.NRGBA {
	return imaging.Clone(img)
}

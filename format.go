package bmpedit

import (
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Format is an image file format.
type Format imaging.Format

// Image file formats.
const (
	JPEG Format = Format(imaging.JPEG)
	PNG  Format = Format(imaging.PNG)
	GIF  Format = Format(imaging.GIF)
	TIFF Format = Format(imaging.TIFF)
	BMP  Format = Format(imaging.BMP)
)

var formatExts = map[Format]string{
	JPEG: "jpg",
	PNG:  "png",
	GIF:  "gif",
	TIFF: "tif",
	BMP:  "bmp",
}

func (f Format) String() string {
	if ext, ok := formatExts[f]; ok {
		return ext
	}
	return "unknown"
}

// FormatFromExtension parses image format from filename extension:
// "jpg" (or "jpeg"), "png", "gif", "tif" (or "tiff") and "bmp" are supported.
func FormatFromExtension(ext string) (Format, error) {
	f, err := imaging.FormatFromExtension(strings.TrimPrefix(ext, "."))
	return Format(f), err
}

// EncodeOption sets an optional parameter for the non-BMP encoders.
type EncodeOption imaging.EncodeOption

// JPEGQuality returns an EncodeOption that sets the output JPEG quality.
// Quality ranges from 1 to 100 inclusive, higher is better.
func JPEGQuality(quality int) EncodeOption {
	return EncodeOption(imaging.JPEGQuality(quality))
}

// GIFNumColors returns an EncodeOption that sets the maximum number of colors
// used in the GIF-encoded image. It ranges from 1 to 256.  Default is 256.
func GIFNumColors(numColors int) EncodeOption {
	return EncodeOption(imaging.GIFNumColors(numColors))
}

// GIFDrawer returns an EncodeOption that sets the drawer that is used to convert
// the source image to the desired palette of the GIF-encoded image.
func GIFDrawer(drawer draw.Drawer) EncodeOption {
	return EncodeOption(imaging.GIFDrawer(drawer))
}

// PNGCompressionLevel returns an EncodeOption that sets the compression level
// of the PNG-encoded image. Default is png.DefaultCompression.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return EncodeOption(imaging.PNGCompressionLevel(level))
}

// FormatOption is format option
type FormatOption struct {
	Format       Format
	EncodeOption []EncodeOption
}

func setFormat(f string, options ...EncodeOption) (fo FormatOption, err error) {
	if fo.Format, err = FormatFromExtension(f); err != nil {
		return
	}
	fo.EncodeOption = options
	return
}

// Encode writes img in the chosen format. BMP output uses the native encoder,
// so 24-bit and 32-bit images keep their layout.
func (f *FormatOption) Encode(w io.Writer, img *Image) error {
	if f.Format == BMP {
		return Encode(w, img)
	}
	var opts []imaging.EncodeOption
	for _, i := range f.EncodeOption {
		opts = append(opts, imaging.EncodeOption(i))
	}
	return imaging.Encode(w, img, imaging.Format(f.Format), opts...)
}

// Write writes img to w according to the format option.
func Write(w io.Writer, img *Image, option *FormatOption) error {
	return option.Encode(w, img)
}

// Export saves img to file according to the format option.
func Export(file string, img *Image, option *FormatOption) error {
	return save(file, func(w io.Writer) error { return option.Encode(w, img) })
}

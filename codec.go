package bmpedit

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

type decodeConfig struct {
	maxPixels int
}

var defaultDecodeConfig = decodeConfig{
	maxPixels: 1 << 28,
}

// DecodeOption sets an optional parameter for the Decode and Open functions.
type DecodeOption func(*decodeConfig)

// MaxPixels returns a DecodeOption that limits width*height of decoded images.
// Larger images are rejected with a FormatError before any pixel memory is
// allocated. By default the limit is 1<<28.
func MaxPixels(n int) DecodeOption {
	return func(c *decodeConfig) {
		c.maxPixels = n
	}
}

type header struct {
	file fileHeader
	info infoHeader
	// bytes consumed from the reader
	read int64
}

func readErr(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.WithStack(FormatError("unexpected end of " + what))
	}
	return errors.Wrap(err, "bmp: read "+what)
}

func readHeader(r io.Reader) (*header, error) {
	h := new(header)
	if err := binary.Read(r, binary.LittleEndian, &h.file); err != nil {
		return nil, readErr(err, "file header")
	}
	if h.file.Type != magic {
		return nil, errors.WithStack(FormatError("not a BMP file"))
	}
	if err := binary.Read(r, binary.LittleEndian, &h.info); err != nil {
		return nil, readErr(err, "info header")
	}
	h.read = fileHeaderLen + infoHeaderLen

	switch h.info.BitCount {
	case 24:
		if h.info.Compression != biRGB {
			return nil, errors.WithStack(FormatError("unsupported compression " + strconv.FormatUint(uint64(h.info.Compression), 10)))
		}
	case 32:
		if h.info.Size < v5InfoHeaderLen {
			return nil, errors.WithStack(FormatError("32-bit image without color mask header"))
		}
		var c colorHeader
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return nil, readErr(err, "color header")
		}
		h.read += colorHeaderLen
		if err := c.check(); err != nil {
			return nil, errors.WithStack(err)
		}
		if h.info.Compression != biRGB && h.info.Compression != biBitFields {
			return nil, errors.WithStack(FormatError("unsupported compression " + strconv.FormatUint(uint64(h.info.Compression), 10)))
		}
	default:
		return nil, errors.WithStack(FormatError("unsupported bit depth " + strconv.FormatUint(uint64(h.info.BitCount), 10)))
	}

	if h.info.Planes != 1 {
		return nil, errors.WithStack(FormatError("planes " + strconv.FormatUint(uint64(h.info.Planes), 10)))
	}
	if h.info.Height < 0 {
		return nil, errors.WithStack(FormatError("top-down images are not supported"))
	}
	if h.info.Width <= 0 || h.info.Height == 0 {
		return nil, errors.WithStack(FormatError("non-positive dimension"))
	}
	if int64(h.file.Offset) < h.read {
		return nil, errors.WithStack(FormatError("bitmap offset inside headers"))
	}
	return h, nil
}

// DecodeConfig returns the dimensions and colour model of a BMP image without
// decoding its pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.info.Width),
		Height:     int(h.info.Height),
	}, nil
}

// Decode reads a 24-bit or 32-bit bottom-up BMP image from r.
func Decode(r io.Reader, opts ...DecodeOption) (*Image, error) {
	cfg := defaultDecodeConfig
	for _, option := range opts {
		option(&cfg)
	}

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	width, height := int(h.info.Width), int(h.info.Height)
	if int64(width)*int64(height) > int64(cfg.maxPixels) {
		return nil, errors.WithStack(FormatError("image too large: " + strconv.Itoa(width) + "x" + strconv.Itoa(height)))
	}

	if _, err := io.CopyN(io.Discard, r, int64(h.file.Offset)-h.read); err != nil {
		return nil, readErr(err, "gap before pixel data")
	}

	img := &Image{
		width:           width,
		height:          height,
		bitDepth:        int(h.info.BitCount),
		xPixelsPerMeter: h.info.XPixelsPerMeter,
		yPixelsPerMeter: h.info.YPixelsPerMeter,
	}
	img.pix = make([]uint8, width*height*img.Channels())

	stride := img.stride()
	if stride%4 == 0 {
		if _, err := io.ReadFull(r, img.pix); err != nil {
			return nil, readErr(err, "pixel data")
		}
		return img, nil
	}

	var padding [3]byte
	pad := padding[:alignedStride(stride)-stride]
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, img.pix[y*stride:(y+1)*stride]); err != nil {
			return nil, readErr(err, "pixel data")
		}
		if _, err := io.ReadFull(r, pad); err != nil {
			return nil, readErr(err, "row padding")
		}
	}
	return img, nil
}

// headers returns the canonical headers for img. The size and offset fields
// always describe exactly what Encode writes.
func (img *Image) headers() (fileHeader, infoHeader) {
	headerLen := fileHeaderLen + infoHeaderLen
	info := infoHeader{
		Size:            infoHeaderLen,
		Width:           int32(img.width),
		Height:          int32(img.height),
		Planes:          1,
		BitCount:        uint16(img.bitDepth),
		Compression:     biRGB,
		SizeImage:       uint32(alignedStride(img.stride()) * img.height),
		XPixelsPerMeter: img.xPixelsPerMeter,
		YPixelsPerMeter: img.yPixelsPerMeter,
	}
	if img.bitDepth == 32 {
		info.Size = v5InfoHeaderLen
		info.Compression = biBitFields
		headerLen += colorHeaderLen
	}
	file := fileHeader{
		Type:   magic,
		Size:   uint32(headerLen) + info.SizeImage,
		Offset: uint32(headerLen),
	}
	return file, info
}

// Encode writes img to w in BMP format.
func Encode(w io.Writer, img *Image) error {
	if img.bitDepth != 24 && img.bitDepth != 32 {
		return errors.WithStack(FormatError("unsupported bit depth " + strconv.Itoa(img.bitDepth)))
	}
	if img.width <= 0 || img.height <= 0 || len(img.pix) != img.width*img.height*img.Channels() {
		return errors.WithStack(FormatError("pixel buffer does not match image dimensions"))
	}

	file, info := img.headers()
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, file); err != nil {
		return errors.Wrap(err, "bmp: write file header")
	}
	if err := binary.Write(bw, binary.LittleEndian, info); err != nil {
		return errors.Wrap(err, "bmp: write info header")
	}
	if img.bitDepth == 32 {
		if err := binary.Write(bw, binary.LittleEndian, defaultColorHeader); err != nil {
			return errors.Wrap(err, "bmp: write color header")
		}
	}

	stride := img.stride()
	if padded := alignedStride(stride); padded == stride {
		if _, err := bw.Write(img.pix); err != nil {
			return errors.Wrap(err, "bmp: write pixel data")
		}
	} else {
		var padding [3]byte
		pad := padding[:padded-stride]
		for y := 0; y < img.height; y++ {
			if _, err := bw.Write(img.pix[y*stride : (y+1)*stride]); err != nil {
				return errors.Wrap(err, "bmp: write pixel data")
			}
			if _, err := bw.Write(pad); err != nil {
				return errors.Wrap(err, "bmp: write row padding")
			}
		}
	}
	return errors.Wrap(bw.Flush(), "bmp: flush")
}

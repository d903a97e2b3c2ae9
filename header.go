package bmpedit

// On-disk header layout. All fields are little-endian.

const (
	fileHeaderLen  = 14
	infoHeaderLen  = 40
	colorHeaderLen = 84

	// BITMAPV5HEADER: info header followed by the colour header.
	v5InfoHeaderLen = infoHeaderLen + colorHeaderLen
)

const (
	magic = 0x4D42 // "BM"

	biRGB       = 0
	biBitFields = 3

	lcsSRGB = 0x73524742 // "sRGB"
)

type fileHeader struct {
	Type      uint16
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	Offset    uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

type colorHeader struct {
	RedMask        uint32
	GreenMask      uint32
	BlueMask       uint32
	AlphaMask      uint32
	ColorSpaceType uint32
	Unused         [16]uint32
}

// defaultColorHeader is the only colour layout accepted for 32-bit images: BGRA in sRGB.
var defaultColorHeader = colorHeader{
	RedMask:        0x00ff0000,
	GreenMask:      0x0000ff00,
	BlueMask:       0x000000ff,
	AlphaMask:      0xff000000,
	ColorSpaceType: lcsSRGB,
}

func (h *colorHeader) check() error {
	if h.RedMask != defaultColorHeader.RedMask ||
		h.GreenMask != defaultColorHeader.GreenMask ||
		h.BlueMask != defaultColorHeader.BlueMask ||
		h.AlphaMask != defaultColorHeader.AlphaMask {
		return FormatError("unexpected color mask, want BGRA")
	}
	if h.ColorSpaceType != defaultColorHeader.ColorSpaceType {
		return FormatError("unexpected color space, want sRGB")
	}
	return nil
}

// alignedStride rounds stride up to the next multiple of 4.
func alignedStride(stride int) int {
	return (stride + 3) &^ 3
}

package bmpedit

import (
	"bufio"
	"bytes"
	"errors"
	_ "image/gif"  // decode gif format
	_ "image/jpeg" // decode jpeg format
	_ "image/png"  // decode png format
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/sunshineplan/tiff"
	_ "golang.org/x/image/bmp"  // decode bmp variants the native decoder rejects
	_ "golang.org/x/image/webp" // decode webp format
)

// Open loads a BMP image from file.
func Open(file string, opts ...DecodeOption) (*Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, &IOError{"open", file, err}
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, ioErr("read", file, err)
	}
	return img, nil
}

// Save writes img to file in BMP format. The image is written to a temporary
// file next to the destination, which is then renamed into place.
func Save(file string, img *Image) error {
	return save(file, func(w io.Writer) error { return Encode(w, img) })
}

func save(file string, encode func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(file), "*.tmp")
	if err != nil {
		return &IOError{"create", file, err}
	}
	defer os.Remove(f.Name())

	if err := encode(f); err != nil {
		f.Close()
		return ioErr("write", file, err)
	}
	if err := f.Close(); err != nil {
		return &IOError{"write", file, err}
	}
	if err := os.Rename(f.Name(), file); err != nil {
		return &IOError{"rename", file, err}
	}
	return nil
}

// ioErr keeps format errors as they are and reports anything else as an IOError.
func ioErr(op, file string, err error) error {
	var fe FormatError
	if errors.As(err, &fe) {
		return err
	}
	return &IOError{op, file, err}
}

// Import reads an image in any registered format (BMP, JPEG, PNG, GIF, TIFF, WebP).
// BMP files the native decoder supports are decoded directly; everything else is
// decoded by the image package, rotated according to its EXIF orientation tag
// and converted with FromImage. TIFF files the image package rejects are retried
// with github.com/sunshineplan/tiff.
func Import(r io.Reader) (*Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var bmpErr error
	if bytes.HasPrefix(b, []byte("BM")) {
		var img *Image
		if img, bmpErr = Decode(bytes.NewReader(b)); bmpErr == nil {
			return img, nil
		}
	}
	src, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil && isTIFF(b) {
		src, err = tiff.Decode(bytes.NewReader(b))
	}
	if err != nil {
		if bmpErr != nil {
			return nil, bmpErr
		}
		return nil, err
	}
	return FromImage(src)
}

func isTIFF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("II*\x00")) || bytes.HasPrefix(b, []byte("MM\x00*"))
}

// OpenAny loads an image in any registered format from file.
func OpenAny(file string) (*Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, &IOError{"open", file, err}
	}
	defer f.Close()

	return Import(f)
}

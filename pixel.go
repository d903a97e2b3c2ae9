package bmpedit

// Pixel is a single colour value. Alpha tells whether A is meaningful:
// it is set for pixels read from 32-bit images.
type Pixel struct {
	R, G, B, A uint8
	Alpha      bool
}

// RGB returns an opaque pixel without an alpha channel.
func RGB(r, g, b uint8) Pixel { return Pixel{R: r, G: g, B: b, A: 0xff} }

// RGBA returns a pixel with an alpha channel.
func RGBA(r, g, b, a uint8) Pixel { return Pixel{R: r, G: g, B: b, A: a, Alpha: true} }

// GetPixel returns the pixel at (x, y).
func (img *Image) GetPixel(x, y int) (Pixel, error) {
	if err := checkRegion(x, y, 1, 1, img.width, img.height); err != nil {
		return Pixel{}, err
	}
	return img.pixel(img.offset(x, y)), nil
}

// SetPixel writes B, G and R at (x, y), and A when the image has an alpha channel.
func (img *Image) SetPixel(x, y int, p Pixel) error {
	if err := checkRegion(x, y, 1, 1, img.width, img.height); err != nil {
		return err
	}
	img.setPixel(img.offset(x, y), p)
	return nil
}

// CheckPixel reports whether the pixel at (x, y) equals p.
// Alpha is compared only on 32-bit images.
func (img *Image) CheckPixel(x, y int, p Pixel) (bool, error) {
	if err := checkRegion(x, y, 1, 1, img.width, img.height); err != nil {
		return false, err
	}
	return img.match(img.offset(x, y), p), nil
}

// FillRegion fills the w x h rectangle whose bottom-left corner is (x0, y0).
func (img *Image) FillRegion(x0, y0, w, h int, p Pixel) error {
	if err := checkRegion(x0, y0, w, h, img.width, img.height); err != nil {
		return err
	}
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			img.setPixel(img.offset(x, y), p)
		}
	}
	return nil
}

func (img *Image) pixel(i int) Pixel {
	s := img.pix[i : i+img.Channels() : i+img.Channels()]
	p := Pixel{B: s[0], G: s[1], R: s[2], A: 0xff}
	if len(s) == 4 {
		p.A, p.Alpha = s[3], true
	}
	return p
}

func (img *Image) setPixel(i int, p Pixel) {
	s := img.pix[i : i+img.Channels() : i+img.Channels()]
	s[0], s[1], s[2] = p.B, p.G, p.R
	if len(s) == 4 {
		s[3] = p.A
	}
}

func (img *Image) match(i int, p Pixel) bool {
	s := img.pix[i : i+img.Channels() : i+img.Channels()]
	if s[0] != p.B || s[1] != p.G || s[2] != p.R {
		return false
	}
	return len(s) == 3 || s[3] == p.A
}

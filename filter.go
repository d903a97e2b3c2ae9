package bmpedit

// Negative inverts B, G and R of every pixel. Alpha is left untouched.
func (img *Image) Negative() {
	ch := img.Channels()
	for i := 0; i < len(img.pix); i += ch {
		s := img.pix[i : i+3 : i+3]
		s[0] = 255 - s[0]
		s[1] = 255 - s[1]
		s[2] = 255 - s[2]
	}
}

// Grayscale replaces B, G and R of every pixel with their truncated average.
func (img *Image) Grayscale() {
	ch := img.Channels()
	for i := 0; i < len(img.pix); i += ch {
		s := img.pix[i : i+3 : i+3]
		v := uint8((int(s[0]) + int(s[1]) + int(s[2])) / 3)
		s[0], s[1], s[2] = v, v, v
	}
}

// ReplaceColor overwrites every pixel equal to from with to and returns the
// number of pixels whose value changed. Alpha takes part only on 32-bit images.
func (img *Image) ReplaceColor(from, to Pixel) int {
	var n int
	ch := img.Channels()
	for i := 0; i < len(img.pix); i += ch {
		if img.match(i, from) && !img.match(i, to) {
			img.setPixel(i, to)
			n++
		}
	}
	return n
}

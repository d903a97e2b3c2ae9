package bmpedit

import "math"

const (
	// DefaultVignetteRadius and DefaultVignettePower are the usual Vignette parameters.
	DefaultVignetteRadius = 1.0
	DefaultVignettePower  = 0.8
)

type vignetteConfig struct {
	preserveAlpha bool
}

// VignetteOption sets an optional parameter for Vignette.
type VignetteOption func(*vignetteConfig)

// PreserveAlpha returns a VignetteOption that controls whether the alpha channel
// of 32-bit images is left untouched. By default alpha is darkened like the
// colour channels.
func PreserveAlpha(enabled bool) VignetteOption {
	return func(c *vignetteConfig) {
		c.preserveAlpha = enabled
	}
}

// Vignette darkens the image towards its corners. Every channel is multiplied by
// cos(d/(radius·dmax)·power)⁴, where d is the distance from the centre pixel
// (width/2, height/2) and dmax the distance from the centre to the origin.
// A non-positive radius means DefaultVignetteRadius.
func (img *Image) Vignette(radius, power float64, opts ...VignetteOption) {
	var cfg vignetteConfig
	for _, option := range opts {
		option(&cfg)
	}
	if radius <= 0 {
		radius = DefaultVignetteRadius
	}
	ch := img.Channels()
	if cfg.preserveAlpha {
		ch = 3
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			f := img.vignetteFactor(x, y, radius, power)
			s := img.pix[img.offset(x, y):]
			for k := 0; k < ch; k++ {
				s[k] = clamp(float64(s[k]) * f)
			}
		}
	}
}

func (img *Image) vignetteFactor(x, y int, radius, power float64) float64 {
	cx, cy := img.width>>1, img.height>>1
	maxRadius := math.Hypot(float64(cx), float64(cy)) * radius
	if maxRadius == 0 {
		return 1
	}
	d := math.Hypot(float64(x-cx), float64(y-cy))
	return math.Pow(math.Cos(d/maxRadius*power), 4)
}

// Crop keeps the w x h rectangle whose bottom-left corner is (x0, y0).
func (img *Image) Crop(x0, y0, w, h int) error {
	if w <= 0 || h <= 0 {
		return &InvalidDimensionError{w, h, "crop size must be positive"}
	}
	if err := checkRegion(x0, y0, w, h, img.width, img.height); err != nil {
		return err
	}
	stride := w * img.Channels()
	pix := make([]uint8, stride*h)
	for y := 0; y < h; y++ {
		i := img.offset(x0, y0+y)
		copy(pix[y*stride:(y+1)*stride], img.pix[i:i+stride])
	}
	img.replace(pix, w, h)
	return nil
}

// Resize shrinks the image by an integer factor on each axis, keeping every
// (old/new)-th pixel. Both new dimensions must be positive, no larger than the
// current ones and divide them exactly.
func (img *Image) Resize(width, height int) error {
	switch {
	case width <= 0 || height <= 0:
		return &InvalidDimensionError{width, height, "width and height must be positive"}
	case width > img.width || height > img.height:
		return &InvalidDimensionError{width, height, "cannot enlarge a nearest-neighbor resize"}
	case img.width%width != 0 || img.height%height != 0:
		return &InvalidDimensionError{width, height, "must evenly divide the current size"}
	}
	rx, ry := img.width/width, img.height/height
	ch := img.Channels()
	pix := make([]uint8, width*height*ch)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := img.offset(x*rx, y*ry)
			j := (y*width + x) * ch
			copy(pix[j:j+ch], img.pix[i:i+ch])
		}
	}
	img.replace(pix, width, height)
	return nil
}

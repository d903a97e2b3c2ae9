package bmpedit

import (
	"math"
	"slices"
)

// Every filter in this file reads from the current buffer and writes a new one,
// which replaces the old buffer once all pixels are computed.

// GaussianBlur smooths the image with a fixed 5x5 Gaussian kernel.
func (img *Image) GaussianBlur(opts ...FilterOption) {
	cfg := newFilterConfig(opts)
	ch := img.Channels()
	dst := make([]uint8, len(img.pix))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			var sum [4]float64
			var weight float64
			img.window(x, y, gaussianRadius, cfg.edge, func(dx, dy int, s []uint8) {
				w := gaussianKernel[gaussianRadius+dy][gaussianRadius+dx]
				weight += w
				for k, v := range s {
					sum[k] += float64(v) * w
				}
			})
			d := dst[img.offset(x, y):]
			for k := 0; k < ch; k++ {
				if cfg.edge == EdgeClamp {
					sum[k] /= weight
				}
				d[k] = clamp(sum[k])
			}
		}
	}
	img.pix = dst
}

// Sharpen boosts each channel by its centre weight and subtracts the 3x3 ring
// of neighbours, all scaled by 1/strength. A non-positive strength means
// DefaultSharpenStrength.
//
// With EdgeTruncate the centre weight drops by 3 for each axis on which the
// pixel touches the border (8 inside, 5 on an edge, 2 in a corner).
//
// A channel whose running sum is ever exceeded by the next neighbour value
// keeps its original value, and so does a channel whose sum ends at exactly
// zero, so pixels next to brighter neighbours are left unsharpened.
func (img *Image) Sharpen(strength float64, opts ...FilterOption) {
	if strength <= 0 {
		strength = DefaultSharpenStrength
	}
	cfg := newFilterConfig(opts)
	ch := img.Channels()
	dst := make([]uint8, len(img.pix))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			center := float64(sharpenCenter)
			if cfg.edge == EdgeTruncate {
				center = img.sharpenCenter(x, y)
			}
			i := img.offset(x, y)
			src := img.pix[i : i+ch]

			var acc [4]float64
			var stop [4]bool
			for k, v := range src {
				acc[k] = float64(v) + float64(v)*center/strength
			}
			img.window(x, y, 1, cfg.edge, func(dx, dy int, s []uint8) {
				if dx == 0 && dy == 0 {
					return
				}
				for k, v := range s {
					if stop[k] {
						continue
					}
					if float64(v) > acc[k] {
						stop[k] = true
						continue
					}
					acc[k] += float64(v) * sharpenKernel[1+dy][1+dx] / strength
				}
			})

			d := dst[i : i+ch]
			for k := range d {
				if stop[k] || acc[k] == 0 {
					d[k] = src[k]
				} else {
					d[k] = clamp(acc[k])
				}
			}
		}
	}
	img.pix = dst
}

func (img *Image) sharpenCenter(x, y int) float64 {
	c := sharpenCenter
	if x == 0 || x == img.width-1 {
		c -= sharpenEdgePenalty
	}
	if y == 0 || y == img.height-1 {
		c -= sharpenEdgePenalty
	}
	return float64(c)
}

// SobelEdges replaces every channel with its gradient magnitude
// sqrt(gx²+gy²), truncated and saturated to 255.
func (img *Image) SobelEdges(opts ...FilterOption) {
	cfg := newFilterConfig(opts)
	ch := img.Channels()
	dst := make([]uint8, len(img.pix))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			var gx, gy [4]int
			img.window(x, y, 1, cfg.edge, func(dx, dy int, s []uint8) {
				for k, v := range s {
					gx[k] += int(v) * sobelX[1+dy][1+dx]
					gy[k] += int(v) * sobelY[1+dy][1+dx]
				}
			})
			d := dst[img.offset(x, y):]
			for k := 0; k < ch; k++ {
				m := int(math.Sqrt(float64(gx[k]*gx[k] + gy[k]*gy[k])))
				d[k] = uint8(min(m, 255))
			}
		}
	}
	img.pix = dst
}

// Median replaces every channel with the median of its (2·radius+1)² window.
// With EdgeTruncate the window shrinks at the border; for an even number of
// samples the lower of the two middle values is used. A non-positive radius
// means 1.
func (img *Image) Median(radius int, opts ...FilterOption) {
	if radius <= 0 {
		radius = 1
	}
	cfg := newFilterConfig(opts)
	ch := img.Channels()
	dst := make([]uint8, len(img.pix))
	var buf [4][]uint8
	for k := range buf {
		buf[k] = make([]uint8, 0, (2*radius+1)*(2*radius+1))
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			for k := range buf {
				buf[k] = buf[k][:0]
			}
			img.window(x, y, radius, cfg.edge, func(_, _ int, s []uint8) {
				for k, v := range s {
					buf[k] = append(buf[k], v)
				}
			})
			d := dst[img.offset(x, y):]
			for k := 0; k < ch; k++ {
				slices.Sort(buf[k])
				d[k] = buf[k][(len(buf[k])-1)/2]
			}
		}
	}
	img.pix = dst
}

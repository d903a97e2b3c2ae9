package bmpedit

// EdgeMode defines how neighbourhood filters sample around the image border.
type EdgeMode int

const (
	// EdgeTruncate drops the part of the window that falls outside the image
	// and does not renormalise the remaining weights, so blurred border pixels
	// come out darker than interior ones.
	EdgeTruncate EdgeMode = iota
	// EdgeClamp repeats edge pixels so every window is complete, and
	// renormalises weights where they do not sum to one.
	EdgeClamp
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeTruncate:
		return "truncate"
	case EdgeClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

type filterConfig struct {
	edge EdgeMode
}

// FilterOption sets an optional parameter for the neighbourhood filters.
type FilterOption func(*filterConfig)

// WithEdgeMode returns a FilterOption that sets the border policy.
// By default it's EdgeTruncate.
func WithEdgeMode(mode EdgeMode) FilterOption {
	return func(c *filterConfig) {
		c.edge = mode
	}
}

func newFilterConfig(opts []FilterOption) filterConfig {
	var cfg filterConfig
	for _, option := range opts {
		option(&cfg)
	}
	return cfg
}

const gaussianRadius = 2

// gaussianKernel is a 5x5 Gaussian with weights summing to one.
var gaussianKernel = [2*gaussianRadius + 1][2*gaussianRadius + 1]float64{
	{0.000789, 0.006581, 0.013347, 0.006581, 0.000789},
	{0.006581, 0.054901, 0.111345, 0.054901, 0.006581},
	{0.013347, 0.111345, 0.225821, 0.111345, 0.013347},
	{0.006581, 0.054901, 0.111345, 0.054901, 0.006581},
	{0.000789, 0.006581, 0.013347, 0.006581, 0.000789},
}

const (
	// DefaultSharpenStrength is the divisor applied to the sharpen weights.
	DefaultSharpenStrength = 8

	// sharpenCenter is the centre weight used when all eight neighbours exist.
	sharpenCenter = 8
	// sharpenEdgePenalty is subtracted from the centre weight for every axis
	// on which the pixel touches the border.
	sharpenEdgePenalty = 3
)

// sharpenKernel holds the ring weights. The centre contribution comes from
// sharpenCenter, which depends on the border.
var sharpenKernel = [3][3]float64{
	{-1, -1, -1},
	{-1, 0, -1},
	{-1, -1, -1},
}

var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}
)

// window calls fn for every pixel in the (2r+1)x(2r+1) neighbourhood of (x, y),
// row by row from y+r down to y-r and left to right within a row. dx and dy are
// the kernel offsets of the sample and s holds its channels.
//
// With EdgeTruncate samples outside the image are skipped; with EdgeClamp their
// coordinates are clamped to the nearest edge.
func (img *Image) window(x, y, r int, mode EdgeMode, fn func(dx, dy int, s []uint8)) {
	ch := img.Channels()
	if mode == EdgeClamp {
		for dy := r; dy >= -r; dy-- {
			sy := clampCoord(y+dy, img.height)
			for dx := -r; dx <= r; dx++ {
				i := img.offset(clampCoord(x+dx, img.width), sy)
				fn(dx, dy, img.pix[i:i+ch:i+ch])
			}
		}
		return
	}
	x0, x1 := max(x-r, 0), min(x+r, img.width-1)
	for sy := min(y+r, img.height-1); sy >= max(y-r, 0); sy-- {
		for sx := x0; sx <= x1; sx++ {
			i := img.offset(sx, sy)
			fn(sx-x, sy-y, img.pix[i:i+ch:i+ch])
		}
	}
}

func clampCoord(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// clamp truncates float64 value toward zero and clamps it to fit into uint8.
// Values within 1e-9 below an integer count as that integer.
func clamp(x float64) uint8 {
	v := int64(x + 1e-9)
	if v > 255 {
		return 255
	}
	if v > 0 {
		return uint8(v)
	}
	return 0
}

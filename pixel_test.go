package bmpedit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixel(t *testing.T) {
	img, err := New(3, 2, false)
	require.NoError(t, err)

	require.NoError(t, img.SetPixel(2, 1, RGB(10, 20, 30)))
	// Stored as B, G, R.
	assert.Equal(t, []uint8{30, 20, 10}, img.Pix()[img.offset(2, 1):][:3])

	p, err := img.GetPixel(2, 1)
	require.NoError(t, err)
	assert.Equal(t, RGB(10, 20, 30), p)

	ok, err := img.CheckPixel(2, 1, RGB(10, 20, 30))
	require.NoError(t, err)
	assert.True(t, ok)
	// Alpha is ignored on 24-bit images.
	ok, err = img.CheckPixel(2, 1, RGBA(10, 20, 30, 0))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = img.CheckPixel(0, 0, RGB(10, 20, 30))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPixelAlpha(t *testing.T) {
	img, err := New(2, 2, true)
	require.NoError(t, err)
	require.NoError(t, img.SetPixel(1, 0, RGBA(1, 2, 3, 4)))
	assert.Equal(t, []uint8{3, 2, 1, 4}, img.Pix()[4:8])

	p, err := img.GetPixel(1, 0)
	require.NoError(t, err)
	assert.Equal(t, RGBA(1, 2, 3, 4), p)

	ok, err := img.CheckPixel(1, 0, RGBA(1, 2, 3, 5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFillRegion(t *testing.T) {
	img, err := New(4, 3, false)
	require.NoError(t, err)
	require.NoError(t, img.FillRegion(1, 1, 2, 2, RGB(9, 9, 9)))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := RGB(0, 0, 0)
			if x >= 1 && x <= 2 && y >= 1 {
				want = RGB(9, 9, 9)
			}
			ok, err := img.CheckPixel(x, y, want)
			require.NoError(t, err)
			assert.True(t, ok, "(%d, %d)", x, y)
		}
	}
	require.NoError(t, img.FillRegion(0, 0, 0, 0, RGB(1, 1, 1)))
}

func TestPixelBounds(t *testing.T) {
	img := newFilled(t, 3, 2, false, RGB(7, 7, 7))
	before := img.Clone()

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}, {math.MaxInt, 0}, {0, math.MaxInt}} {
		var be *BoundsError
		_, err := img.GetPixel(pt[0], pt[1])
		assert.ErrorAs(t, err, &be, "get %v", pt)
		assert.ErrorAs(t, img.SetPixel(pt[0], pt[1], RGB(1, 1, 1)), &be, "set %v", pt)
		_, err = img.CheckPixel(pt[0], pt[1], RGB(7, 7, 7))
		assert.ErrorAs(t, err, &be, "check %v", pt)
	}
	for _, r := range [][4]int{
		{2, 0, 2, 1}, {0, 1, 1, 2}, {-1, 0, 1, 1}, {0, 0, -1, 1},
		{1, 0, math.MaxInt, 1}, {0, 1, 1, math.MaxInt}, {math.MaxInt, math.MaxInt, 1, 1},
	} {
		var be *BoundsError
		assert.ErrorAs(t, img.FillRegion(r[0], r[1], r[2], r[3], RGB(1, 1, 1)), &be, "fill %v", r)
	}
	assert.Equal(t, before, img)

	err := img.SetPixel(3, 0, RGB(1, 1, 1))
	assert.EqualError(t, err, "bmp: region (3,0)-(4,1) is outside 3x2 image")
}

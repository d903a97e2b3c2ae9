package bmpedit

import (
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRects(t *testing.T) {
	for i, testcase := range []struct {
		base image.Rectangle
		n    int
		mode SplitMode
		want []image.Rectangle
	}{
		{image.Rect(0, 0, 100, 100), 4, SplitHorizontalMode, []image.Rectangle{
			image.Rect(0, 0, 25, 100),
			image.Rect(25, 0, 50, 100),
			image.Rect(50, 0, 75, 100),
			image.Rect(75, 0, 100, 100),
		}},
		{image.Rect(0, 0, 100, 100), 4, SplitVerticalMode, []image.Rectangle{
			image.Rect(0, 0, 100, 25),
			image.Rect(0, 25, 100, 50),
			image.Rect(0, 50, 100, 75),
			image.Rect(0, 75, 100, 100),
		}},
		{image.Rect(0, 0, 10, 3), 3, SplitHorizontalMode, []image.Rectangle{
			image.Rect(0, 0, 3, 3),
			image.Rect(3, 0, 6, 3),
			image.Rect(6, 0, 9, 3),
		}},
	} {
		if rects := split(testcase.base, testcase.n, testcase.mode); !slices.Equal(rects, testcase.want) {
			t.Errorf("#%d wrong split results: want %v, got %v", i, testcase.want, rects)
		}
	}
}

func TestSplit(t *testing.T) {
	img := gradient(t, 6, 4, false)

	parts, err := SplitHorizontal(img, 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for i, part := range parts {
		assert.Equal(t, 2, part.Width())
		assert.Equal(t, 4, part.Height())
		want, err := img.GetPixel(2*i+1, 3)
		require.NoError(t, err)
		got, err := part.GetPixel(1, 3)
		require.NoError(t, err)
		assert.Equal(t, want, got, "part %d", i)
	}

	parts, err = SplitVertical(img, 2)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	// Bottom half first.
	want, err := img.GetPixel(5, 2)
	require.NoError(t, err)
	got, err := parts[1].GetPixel(5, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The source is not modified.
	assert.Equal(t, gradient(t, 6, 4, false), img)
}

func TestSplitError(t *testing.T) {
	img := gradient(t, 10, 10, false)
	_, err := Split(img, 10, SplitHorizontalMode)
	require.NoError(t, err)
	for i, n := range []int{0, -1, 11} {
		if _, err := Split(img, n, SplitHorizontalMode); err == nil {
			t.Errorf("#%d want error, got nil", i)
		}
	}
}

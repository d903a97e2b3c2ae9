package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunshineplan/bmpedit"
)

func TestParseEdgeMode(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want bmpedit.EdgeMode
	}{
		{"", bmpedit.EdgeTruncate},
		{"Truncate", bmpedit.EdgeTruncate},
		{"clamp", bmpedit.EdgeClamp},
	} {
		mode, err := parseEdgeMode(tc.s)
		require.NoError(t, err, tc.s)
		assert.Equal(t, tc.want, mode, tc.s)
	}
	_, err := parseEdgeMode("wrap")
	assert.Error(t, err)
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters("", bmpedit.EdgeTruncate)
	require.NoError(t, err)
	assert.Empty(t, filters)

	filters, err = parseFilters(
		"negative, gray,blur,sharpen,sharpen=4,sobel,median,median=2,vignette,vignette=1:0.5,"+
			"crop=0:0:4:4,resize=2:2,resample=4:4,thumbnail=2:2,replace=0:0:0/1:2:3",
		bmpedit.EdgeClamp,
	)
	require.NoError(t, err)
	assert.Len(t, filters, 15)

	for _, s := range []string{
		"unknown",
		"crop=1:2:3",
		"crop",
		"resize=a:b",
		"sharpen=1:2",
		"vignette=x",
		"replace=1:2:3",
		"replace=1:2/3:4:5",
		"replace=1:2:300/3:4:5",
		"median=1:2",
	} {
		_, err := parseFilters(s, bmpedit.EdgeTruncate)
		assert.Error(t, err, s)
	}
}

func TestFiltersRun(t *testing.T) {
	img, err := bmpedit.New(4, 4, false)
	require.NoError(t, err)
	require.NoError(t, img.FillRegion(0, 0, 4, 4, bmpedit.RGB(10, 20, 30)))

	filters, err := parseFilters("gray,replace=20:20:20/1:2:3,crop=1:1:2:2,resize=1:1", bmpedit.EdgeTruncate)
	require.NoError(t, err)
	for _, f := range filters {
		require.NoError(t, f(img))
	}
	assert.Equal(t, 1, img.Width())
	p, err := img.GetPixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, bmpedit.RGB(1, 2, 3), p)

	filters, err = parseFilters("crop=3:3:2:2", bmpedit.EdgeTruncate)
	require.NoError(t, err)
	var be *bmpedit.BoundsError
	assert.ErrorAs(t, filters[0](img), &be)
}

func TestParsePixel(t *testing.T) {
	p, err := parsePixel("1:2:3")
	require.NoError(t, err)
	assert.Equal(t, bmpedit.RGB(1, 2, 3), p)

	p, err = parsePixel("1:2:3:4")
	require.NoError(t, err)
	assert.Equal(t, bmpedit.RGBA(1, 2, 3, 4), p)

	_, err = parsePixel("1:2:-3")
	assert.Error(t, err)
}

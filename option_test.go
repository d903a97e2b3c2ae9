package bmpedit

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, BMP, o.Format.Format)
	assert.Empty(t, o.Filters)

	o.AddFilter(
		func(img *Image) error { img.Negative(); return nil },
		func(img *Image) error { return img.Crop(0, 0, 2, 2) },
	)
	assert.Len(t, o.Filters, 2)

	base := newFilled(t, 4, 4, false, RGB(0, 0, 0))
	var buf bytes.Buffer
	require.NoError(t, o.Convert(&buf, base))

	// base is left untouched.
	assert.Equal(t, 4, base.Width())
	ok, err := base.CheckPixel(0, 0, RGB(0, 0, 0))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, newFilled(t, 2, 2, false, RGB(255, 255, 255)), got)
}

func TestConvert(t *testing.T) {
	base := gradient(t, 4, 4, false)
	var buf1, buf2 bytes.Buffer
	o := NewOptions()
	require.NoError(t, o.Convert(&buf1, base))
	o = Options{Format: FormatOption{Format: BMP}}
	require.NoError(t, o.Convert(&buf2, base))
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())

	failed := errors.New("failed")
	o.AddFilter(func(*Image) error { return failed })
	assert.ErrorIs(t, o.Convert(io.Discard, base), failed)

	o = NewOptions()
	require.NoError(t, o.SetFormat("png"))
	o.AddFilter(func(img *Image) error { return img.Resize(2, 2) })
	buf1.Reset()
	require.NoError(t, o.Convert(&buf1, base))
	got, err := Import(&buf1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Width())
}

func TestConvertExt(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, "testdata/video-001.bmp", o.ConvertExt("testdata/video-001.png"))
	require.NoError(t, o.SetFormat("tif"))
	assert.Equal(t, "testdata/video-001.tif", o.ConvertExt("testdata/video-001.png"))
	assert.Error(t, o.SetFormat("txt"))
}

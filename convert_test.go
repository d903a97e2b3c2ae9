package bmpedit

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.bmp"))
	var ioe *IOError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "open", ioe.Op)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	txt := filepath.Join(dir, "image.txt")
	require.NoError(t, os.WriteFile(txt, []byte("Hello"), 0644))
	_, err = Open(txt)
	var fe FormatError
	assert.ErrorAs(t, err, &fe)

	img := gradient(t, 3, 3, true)
	file := filepath.Join(dir, "image.bmp")
	require.NoError(t, Save(file, img))
	got, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, img, got)

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	err = Save(filepath.Join(dir, "missing", "image.bmp"), img)
	assert.ErrorAs(t, err, &ioe)
}

func TestSaveInvalidImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "image.bmp")
	err := Save(file, &Image{width: 2, height: 2, bitDepth: 24})
	var fe FormatError
	assert.ErrorAs(t, err, &fe)
	_, err = os.Stat(file)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImport(t *testing.T) {
	_, err := Import(bytes.NewBufferString("Hello"))
	assert.Error(t, err)

	// Broken BMP headers report the native decoder error.
	_, err = Import(bytes.NewBufferString("BMHello"))
	var fe FormatError
	assert.ErrorAs(t, err, &fe)

	dir := t.TempDir()
	img := gradient(t, 4, 2, false)
	file := filepath.Join(dir, "image.png")
	require.NoError(t, Export(file, img, &FormatOption{Format: PNG}))
	got, err := OpenAny(file)
	require.NoError(t, err)
	assert.Equal(t, img.Pix(), got.Pix())

	_, err = OpenAny(filepath.Join(dir, "missing.png"))
	var ioe *IOError
	assert.ErrorAs(t, err, &ioe)
}

package qr

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, imaging.PNG, f)

	f, err = ParseFormat(".JPG")
	require.NoError(t, err)
	assert.Equal(t, imaging.JPEG, f)

	_, err = ParseFormat("svg")
	assert.ErrorIs(t, err, ErrImageGeneration)
}

func TestBytes(t *testing.T) {
	img := imaging.New(16, 16, opaqueRed)

	data, err := Bytes(img, imaging.PNG)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())

	data, err = Bytes(img, imaging.JPEG)
	require.NoError(t, err)
	_, err = jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(16, 16, opaqueRed)

	path := filepath.Join(dir, "out.png")
	require.NoError(t, Save(img, path))
	loaded, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 16, loaded.Bounds().Dy())

	err = Save(img, filepath.Join(dir, "out.xyz"))
	assert.ErrorIs(t, err, ErrImageGeneration)

	err = Save(img, filepath.Join(dir, "missing", "out.png"))
	assert.ErrorIs(t, err, ErrImageGeneration)
}

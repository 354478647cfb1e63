package qr

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func writeLogo(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func countColor(img *image.NRGBA, c color.Color) int {
	want := color.NRGBAModel.Convert(c).(color.NRGBA)
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func mustGrid(t *testing.T, rows ...string) *ModuleGrid {
	t.Helper()
	modules := make([][]bool, len(rows))
	for r, row := range rows {
		modules[r] = make([]bool, len(row))
		for c, ch := range row {
			modules[r][c] = ch == '#'
		}
	}
	g, err := NewModuleGrid(modules)
	require.NoError(t, err)
	return g
}

var (
	opaqueBlack = color.NRGBA{A: 0xff}
	opaqueWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	opaqueRed   = color.NRGBA{R: 0xff, A: 0xff}
)

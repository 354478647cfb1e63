package qr

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// MaskSpec is a uniform translucent colour laid over the whole image.
type MaskSpec struct {
	Color   color.Color
	Opacity float64 // 0 leaves the image untouched, 1 replaces it with Color
}

// ApplyMask composites a full-canvas layer of spec.Color over a copy of base.
func ApplyMask(base image.Image, spec MaskSpec) *image.NRGBA {
	opacity := math.Min(math.Max(spec.Opacity, 0), 1)
	var c color.NRGBA
	if spec.Color != nil {
		c = color.NRGBAModel.Convert(spec.Color).(color.NRGBA)
	}
	c.A = uint8(math.Round(255 * opacity))

	b := base.Bounds()
	layer := imaging.New(b.Dx(), b.Dy(), c)
	return imaging.Overlay(base, layer, b.Min, 1.0)
}

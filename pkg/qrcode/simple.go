package qr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

// MakeQRCode renders data with the given colours and dot shape.
func MakeQRCode(data, outputPath string, size int, fill, back string, shape DotShape) (*image.NRGBA, error) {
	cfg := DefaultConfig(data)
	cfg.OutputPath = outputPath
	cfg.Size = size
	cfg.FillColor = fill
	cfg.BackColor = back
	cfg.DotShape = shape
	return Make(cfg)
}

// MakeColorful is MakeQRCode with blue on light blue as the default pairing.
func MakeColorful(data, fill, back string) (*image.NRGBA, error) {
	if fill == "" {
		fill = "blue"
	}
	if back == "" {
		back = "lightblue"
	}
	return MakeQRCode(data, "", DefaultSize, fill, back, Square)
}

// MakeWithLogo renders data with a logo at the centre.
func MakeWithLogo(data, logoPath string, circular bool) (*image.NRGBA, error) {
	cfg := DefaultConfig(data)
	cfg.LogoPath = logoPath
	cfg.LogoCircular = circular
	return Make(cfg)
}

// MakeWithMask renders data under a translucent colour layer.
func MakeWithMask(data, maskColor string, opacity float64) (*image.NRGBA, error) {
	cfg := DefaultConfig(data)
	cfg.MaskColor = maskColor
	cfg.MaskOpacity = opacity
	return Make(cfg)
}

// MakePretty renders data with a colour preset and circular dots.
func MakePretty(data, style string) (*image.NRGBA, error) {
	cfg := DefaultConfig(data)
	if style == "" {
		style = DefaultPreset
	}
	cfg.Style = style
	cfg.DotShape = Circle
	return Make(cfg)
}

const sampleLogoSize = 120

// CreateSampleLogo writes a small "QR" badge to path and returns path.
func CreateSampleLogo(path string) (string, error) {
	dc := gg.NewContext(sampleLogoSize, sampleLogoSize)
	dc.DrawCircle(sampleLogoSize/2, sampleLogoSize/2, sampleLogoSize/2-10)
	dc.SetColor(color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff})
	dc.Fill()

	font, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return "", fmt.Errorf("%w: parse font: %w", ErrImageGeneration, err)
	}
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 48}))
	dc.SetColor(color.White)
	dc.DrawStringAnchored("QR", sampleLogoSize/2, sampleLogoSize/2, 0.5, 0.35)

	if err = dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("%w: save sample logo: %w", ErrImageGeneration, err)
	}
	return path, nil
}

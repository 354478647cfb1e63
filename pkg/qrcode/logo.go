package qr

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// LogoSpec describes how a logo is placed at the centre of a code.
type LogoSpec struct {
	SizeRatio float64 // Logo side relative to the canvas side, in (0, 1]
	Circular  bool    // Crop the logo to its inscribed circle
	Border    int     // White margin in pixels around the logo
}

var logoBorderColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// LoadLogo decodes the image at path.
func LoadLogo(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLogoNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrLogoNotFound, path)
	}
	logo, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: decode logo %s: %w", ErrImageGeneration, path, err)
	}
	return logo, nil
}

// OverlayLogo loads the logo at path and centres it on base.
func OverlayLogo(base image.Image, path string, spec LogoSpec) (*image.NRGBA, error) {
	logo, err := LoadLogo(path)
	if err != nil {
		return nil, err
	}
	return OverlayLogoImage(base, logo, spec)
}

// OverlayLogoImage centres logo on a copy of base. Only the logo's opaque pixels
// replace base pixels.
func OverlayLogoImage(base, logo image.Image, spec LogoSpec) (*image.NRGBA, error) {
	if base == nil || logo == nil {
		return nil, fmt.Errorf("%w: nil image", ErrImageGeneration)
	}
	if logo.Bounds().Empty() {
		return nil, fmt.Errorf("%w: logo has no pixels", ErrImageGeneration)
	}
	if spec.SizeRatio <= 0 {
		spec.SizeRatio = DefaultLogoSizeRatio
	}
	spec.SizeRatio = math.Min(spec.SizeRatio, 1)

	b := base.Bounds()
	side := min(b.Dx(), b.Dy())
	logoSize := max(int(math.Round(float64(side)*spec.SizeRatio)), 1)

	prepared := imaging.Clone(resize.Resize(uint(logoSize), uint(logoSize), logo, resize.Lanczos3))
	if spec.Circular {
		applyCircleMask(prepared)
	}
	if spec.Border > 0 {
		prepared = addBorder(prepared, spec.Border, spec.Circular)
	}

	l := prepared.Bounds().Dx()
	pos := image.Pt(b.Min.X+floorDiv(b.Dx()-l, 2), b.Min.Y+floorDiv(b.Dy()-l, 2))
	return imaging.Overlay(base, prepared, pos, 1.0), nil
}

// applyCircleMask multiplies the logo alpha by an anti-aliased disc inscribed in it.
func applyCircleMask(logo *image.NRGBA) {
	w, h := logo.Bounds().Dx(), logo.Bounds().Dy()
	mc := gg.NewContext(w, h)
	mc.DrawCircle(float64(w)/2, float64(h)/2, float64(min(w, h))/2)
	mc.SetColor(color.White)
	mc.Fill()
	mask := mc.AsMask()

	for y := 0; y < h; y++ {
		row := logo.Pix[y*logo.Stride : y*logo.Stride+w*4]
		for x := 0; x < w; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			a := uint32(row[x*4+3])
			row[x*4+3] = uint8((a*m + 127) / 255)
		}
	}
}

// addBorder pastes logo at the centre of a white square or disc border pixels wider.
func addBorder(logo *image.NRGBA, border int, circular bool) *image.NRGBA {
	size := logo.Bounds().Dx() + 2*border

	var canvas *image.NRGBA
	if circular {
		dc := gg.NewContext(size, size)
		dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
		dc.SetColor(logoBorderColor)
		dc.Fill()
		canvas = imaging.Clone(dc.Image())
	} else {
		canvas = imaging.New(size, size, logoBorderColor)
	}
	return imaging.Overlay(canvas, logo, image.Pt(border, border), 1.0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

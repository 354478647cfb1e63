package qr

import (
	"image"

	"github.com/disintegration/imaging"
)

// Options configures a QRCode builder.
type Options struct {
	Version   int
	Level     RecoveryLevel // The zero value is Low; DefaultOptions uses Medium
	BoxSize   int // Pixels per module for MakeImage
	Border    int // Quiet zone in modules for MakeImage
	FillColor string
	BackColor string
}

// DefaultOptions returns fit mode, medium recovery, 10px modules, a 4 module
// border and black on white.
func DefaultOptions() Options {
	return Options{
		Level:     Medium,
		BoxSize:   10,
		Border:    4,
		FillColor: DefaultFillColor,
		BackColor: DefaultBackColor,
	}
}

// QRCode accumulates data and renders it in several ways. It is not safe for
// concurrent use.
type QRCode struct {
	opts Options
	data string
	grid *ModuleGrid
}

// New returns an empty builder. Empty colours fall back to black on white.
func New(opts Options) *QRCode {
	if opts.BoxSize <= 0 {
		opts.BoxSize = 10
	}
	if opts.Border < 0 {
		opts.Border = 0
	}
	if opts.FillColor == "" {
		opts.FillColor = DefaultFillColor
	}
	if opts.BackColor == "" {
		opts.BackColor = DefaultBackColor
	}
	return &QRCode{opts: opts}
}

// AddData appends data to the payload and re-encodes it.
func (q *QRCode) AddData(data string) error {
	if data == "" {
		return ErrEmptyData
	}
	grid, err := Encode(q.data+data, EncodeOptions{Version: q.opts.Version, Level: q.opts.Level})
	if err != nil {
		return err
	}
	q.data += data
	q.grid = grid
	return nil
}

// Clear drops the payload.
func (q *QRCode) Clear() {
	q.data = ""
	q.grid = nil
}

// Grid returns the encoded modules without quiet zone.
func (q *QRCode) Grid() (*ModuleGrid, error) {
	if q.grid == nil {
		return nil, ErrRender
	}
	return q.grid, nil
}

func (q *QRCode) style(shape DotShape, size int) Style {
	return Style{Shape: shape, Fill: ParseColor(q.opts.FillColor), Back: ParseColor(q.opts.BackColor), Size: size}
}

// MakeImage renders square modules at BoxSize pixels each, surrounded by Border
// light modules.
func (q *QRCode) MakeImage() (*image.NRGBA, error) {
	grid, err := q.Grid()
	if err != nil {
		return nil, err
	}
	padded, err := NewModuleGrid(pad(grid.modules, q.opts.Border))
	if err != nil {
		return nil, err
	}
	return Render(padded, q.style(Square, padded.Size()*q.opts.BoxSize))
}

// MakeCustomImage renders the bare modules on a size x size canvas.
func (q *QRCode) MakeCustomImage(size int, shape DotShape) (*image.NRGBA, error) {
	grid, err := q.Grid()
	if err != nil {
		return nil, err
	}
	return Render(grid, q.style(shape, size))
}

// AddLogo places the logo at path on the MakeImage rendering.
func (q *QRCode) AddLogo(path string, spec LogoSpec) (*image.NRGBA, error) {
	img, err := q.MakeImage()
	if err != nil {
		return nil, err
	}
	return OverlayLogo(img, path, spec)
}

// AddLogoToCustom places the logo at path, without border, on a custom rendering.
func (q *QRCode) AddLogoToCustom(path string, size int, shape DotShape, ratio float64, circular bool) (*image.NRGBA, error) {
	img, err := q.MakeCustomImage(size, shape)
	if err != nil {
		return nil, err
	}
	return OverlayLogo(img, path, LogoSpec{SizeRatio: ratio, Circular: circular})
}

// Save writes the MakeImage rendering to path.
func (q *QRCode) Save(path string) error {
	img, err := q.MakeImage()
	if err != nil {
		return err
	}
	return Save(img, path)
}

// Bytes returns the MakeImage rendering encoded in format.
func (q *QRCode) Bytes(format imaging.Format) ([]byte, error) {
	img, err := q.MakeImage()
	if err != nil {
		return nil, err
	}
	return Bytes(img, format)
}

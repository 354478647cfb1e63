package qr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	DefaultSize          = 500
	DefaultFillColor     = "black"
	DefaultBackColor     = "white"
	DefaultDotShape      = Square
	DefaultLevel         = Medium
	DefaultLogoSizeRatio = 0.2
	DefaultLogoBorder    = 2
	DefaultMaskOpacity   = 0.3
)

// Config holds everything needed to turn data into a styled QR image.
// Start from DefaultConfig; a zero Size, LogoSizeRatio, colour or shape falls back
// to its default.
type Config struct {
	Data       string `json:"data"`
	OutputPath string `json:"output_path,omitempty"` // Persist the result here when set

	Size      int      `json:"size"`
	FillColor string   `json:"fill_color"`
	BackColor string   `json:"back_color"`
	Style     string   `json:"style,omitempty"` // Preset name, overrides FillColor and BackColor
	DotShape  DotShape `json:"dot_shape"`

	Version   int           `json:"version,omitempty"`
	Level     RecoveryLevel `json:"level"`
	QuietZone int           `json:"quiet_zone,omitempty"`

	LogoPath      string  `json:"logo_path,omitempty"`
	LogoCircular  bool    `json:"logo_circular"`
	LogoSizeRatio float64 `json:"logo_size_ratio"`
	LogoBorder    int     `json:"logo_border"`

	MaskColor   string  `json:"mask_color,omitempty"` // No mask when empty
	MaskOpacity float64 `json:"mask_opacity"`

	Logger *zap.SugaredLogger `json:"-"`
}

// DefaultConfig returns the documented defaults for data.
func DefaultConfig(data string) Config {
	return Config{
		Data:          data,
		Size:          DefaultSize,
		FillColor:     DefaultFillColor,
		BackColor:     DefaultBackColor,
		DotShape:      DefaultDotShape,
		Level:         DefaultLevel,
		LogoCircular:  true,
		LogoSizeRatio: DefaultLogoSizeRatio,
		LogoBorder:    DefaultLogoBorder,
		MaskOpacity:   DefaultMaskOpacity,
	}
}

func (c Config) withDefaults() Config {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.FillColor == "" {
		c.FillColor = DefaultFillColor
	}
	if c.BackColor == "" {
		c.BackColor = DefaultBackColor
	}
	if c.DotShape == "" {
		c.DotShape = DefaultDotShape
	}
	if c.LogoSizeRatio == 0 {
		c.LogoSizeRatio = DefaultLogoSizeRatio
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop().Sugar()
	}
	return c
}

// Render runs the pipeline: colours, encoding, dots, logo, mask and, when
// OutputPath is set, saving.
func (c Config) Render() (*image.NRGBA, error) {
	c = c.withDefaults()

	style := c.style()

	grid, err := Encode(c.Data, EncodeOptions{Version: c.Version, Level: c.Level, QuietZone: c.QuietZone})
	if err != nil {
		return nil, err
	}

	img, err := Render(grid, style)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugw("rendered qr code", "modules", grid.Size(), "size", c.Size, "shape", c.DotShape)

	if c.LogoPath != "" {
		img, err = OverlayLogo(img, c.LogoPath, LogoSpec{
			SizeRatio: c.LogoSizeRatio,
			Circular:  c.LogoCircular,
			Border:    c.LogoBorder,
		})
		if err != nil {
			return nil, err
		}
	}

	if c.MaskColor != "" {
		img = ApplyMask(img, MaskSpec{Color: ParseColor(c.MaskColor), Opacity: c.MaskOpacity})
	}

	if c.OutputPath != "" {
		if err = Save(img, c.OutputPath); err != nil {
			return nil, err
		}
		c.Logger.Infof("qr code saved to %s", c.OutputPath)
	}

	return img, nil
}

// Generate renders the code and returns it as PNG bytes.
func (c Config) Generate() ([]byte, error) {
	img, err := c.Render()
	if err != nil {
		return nil, err
	}
	return Bytes(img, imaging.PNG)
}

// Make renders cfg. It is shorthand for cfg.Render().
func Make(cfg Config) (*image.NRGBA, error) {
	return cfg.Render()
}

// Colors resolves the fill and background colours. A preset wins over the
// explicit colours; an unknown preset falls back to DefaultPreset with a warning.
func (c Config) Colors() (fill, back color.RGBA) {
	if c.Style == "" {
		return ParseColor(c.FillColor), ParseColor(c.BackColor)
	}
	fill, back, ok := ResolvePreset(c.Style)
	if !ok && c.Logger != nil {
		c.Logger.Warnf("style %q does not exist, using %q", c.Style, DefaultPreset)
	}
	return fill, back
}

func (c Config) style() Style {
	fill, back := c.Colors()
	return Style{Shape: c.DotShape, Fill: fill, Back: back, Size: c.Size}
}

package qr

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigRender(t *testing.T) {
	cfg := DefaultConfig("Hello World!")
	img, err := cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
	assert.Equal(t, opaqueBlack, img.NRGBAAt(0, 0), "finder pattern in the corner")
}

func TestConfigRenderZeroValueUsesDefaults(t *testing.T) {
	img, err := Make(Config{Data: "Hello World!"})
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestConfigRenderErrors(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		_, err := DefaultConfig("").Render()
		assert.ErrorIs(t, err, ErrEmptyData)
	})

	t.Run("missing logo", func(t *testing.T) {
		cfg := DefaultConfig("Hello World!")
		cfg.LogoPath = filepath.Join(t.TempDir(), "nope.png")
		_, err := cfg.Render()
		assert.ErrorIs(t, err, ErrLogoNotFound)
	})

	t.Run("negative size", func(t *testing.T) {
		cfg := DefaultConfig("Hello World!")
		cfg.Size = -1
		_, err := cfg.Render()
		assert.ErrorIs(t, err, ErrImageGeneration)
	})

	t.Run("unsupported output", func(t *testing.T) {
		cfg := DefaultConfig("Hello World!")
		cfg.OutputPath = filepath.Join(t.TempDir(), "qr.xyz")
		_, err := cfg.Render()
		assert.ErrorIs(t, err, ErrImageGeneration)
	})
}

func TestConfigColors(t *testing.T) {
	cfg := DefaultConfig("x")
	cfg.FillColor = "red"
	cfg.BackColor = "#00FF00"
	fill, back := cfg.Colors()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, fill)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, back)

	cfg.Style = "berry"
	fill, back = cfg.Colors()
	assert.Equal(t, ParseColor("purple"), fill, "preset wins over explicit colours")
	assert.Equal(t, ParseColor("lavender"), back)
}

func TestConfigUnknownStyleWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	cfg := DefaultConfig("Hello World!")
	cfg.Style = "no-such-style"
	cfg.Size = 100
	cfg.Logger = zap.New(core).Sugar()

	img, err := cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "no-such-style")

	darkblue := color.NRGBAModel.Convert(ParseColor("darkblue")).(color.NRGBA)
	assert.Equal(t, darkblue, img.NRGBAAt(0, 0))
}

func TestConfigRenderShapes(t *testing.T) {
	square := DefaultConfig("Hello World!")
	circle := square
	circle.DotShape = Circle

	s, err := square.Render()
	require.NoError(t, err)
	c, err := circle.Render()
	require.NoError(t, err)

	assert.Equal(t, s.Bounds(), c.Bounds())
	assert.Less(t, countColor(c, opaqueBlack), countColor(s, opaqueBlack))
}

func TestConfigRenderMask(t *testing.T) {
	cfg := DefaultConfig("Hello World!")
	cfg.Size = 120
	cfg.MaskColor = "navy"

	cfg.MaskOpacity = 1
	img, err := cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, 120*120, countColor(img, color.NRGBA{B: 128, A: 255}))

	cfg.MaskOpacity = 0
	masked, err := cfg.Render()
	require.NoError(t, err)
	cfg.MaskColor = ""
	plain, err := cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, plain.Pix, masked.Pix)
}

func TestConfigRenderLogo(t *testing.T) {
	cfg := DefaultConfig("https://example.com/with/a/longer/path")
	cfg.LogoPath = writeLogo(t, imaging.New(64, 64, opaqueRed))
	cfg.LogoBorder = 0

	img, err := cfg.Render()
	require.NoError(t, err)

	// 100px logo centred on a 500px canvas.
	assert.Equal(t, opaqueRed, img.NRGBAAt(250, 250))
	assert.NotEqual(t, opaqueRed, img.NRGBAAt(200, 200), "corner outside the circle")

	cfg.LogoCircular = false
	img, err = cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, opaqueRed, img.NRGBAAt(200, 200))
}

func TestConfigRenderSaves(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"qr.png", "qr.jpg"} {
		cfg := DefaultConfig("Hello World!")
		cfg.Size = 300
		cfg.OutputPath = filepath.Join(dir, name)

		_, err := cfg.Render()
		require.NoError(t, err)

		saved, err := imaging.Open(cfg.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, 300, saved.Bounds().Dx())
	}
}

func TestConfigGenerate(t *testing.T) {
	cfg := DefaultConfig("Hello World!")
	cfg.Size = 256
	data, err := cfg.Generate()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestConfigJSONSkipsLogger(t *testing.T) {
	cfg := DefaultConfig("Hello World!")
	cfg.Logger = zap.NewNop().Sugar()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Logger")
	assert.Contains(t, string(data), `"dot_shape":"square"`)
}

package qr

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		token string
		want  color.RGBA
	}{
		{"black", color.RGBA{A: 255}},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"green", color.RGBA{G: 255, A: 255}},
		{"GREEN", color.RGBA{G: 255, A: 255}},
		{"LightBlue", color.RGBA{R: 173, G: 216, B: 230, A: 255}},
		{"darkorange", color.RGBA{R: 255, G: 140, A: 255}},
		{"wheat", color.RGBA{R: 245, G: 222, B: 179, A: 255}},
		{"#FF5733", color.RGBA{R: 0xff, G: 0x57, B: 0x33, A: 255}},
		{"#f8f9fa", color.RGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 255}},
		{"not-a-color", color.RGBA{A: 255}},
		{"#ZZZ", color.RGBA{A: 255}},
		{"#FFF", color.RGBA{A: 255}},
		{"#GG0000", color.RGBA{A: 255}},
		{"FF5733", color.RGBA{A: 255}},
		{"#FF57331", color.RGBA{A: 255}},
		{"#12345g", color.RGBA{A: 255}},
		{"#1234 5", color.RGBA{A: 255}},
		{"#0000F-", color.RGBA{A: 255}},
		{"", color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.token))
		})
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	assert.Len(t, names, len(namedColors))
	assert.Contains(t, names, "lavender")
}

func TestResolvePreset(t *testing.T) {
	for name, p := range Presets {
		fill, back, ok := ResolvePreset(name)
		assert.True(t, ok, name)
		assert.Equal(t, ParseColor(p.Fill), fill, name)
		assert.Equal(t, ParseColor(p.Back), back, name)
		assert.NotEqual(t, fill, back, name)
	}

	fill, back, ok := ResolvePreset("no-such-style")
	assert.False(t, ok)
	assert.Equal(t, ParseColor("darkblue"), fill)
	assert.Equal(t, ParseColor("lightblue"), back)
}

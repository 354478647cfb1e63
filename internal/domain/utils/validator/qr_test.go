package validator

import (
	"errors"
	"testing"

	"github.com/Badsnus/coolqr/internal/domain/common/errorz"
	qr "github.com/Badsnus/coolqr/pkg/qrcode"
	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	valid := qr.DefaultConfig("Hello World!")

	tests := []struct {
		name    string
		mutate  func(*qr.Config)
		wantErr bool
	}{
		{"defaults", func(*qr.Config) {}, false},
		{"empty data", func(c *qr.Config) { c.Data = "" }, true},
		{"zero size", func(c *qr.Config) { c.Size = 0 }, true},
		{"version too high", func(c *qr.Config) { c.Version = 41 }, true},
		{"forced version", func(c *qr.Config) { c.Version = 10 }, false},
		{"bad level", func(c *qr.Config) { c.Level = 7 }, true},
		{"negative quiet zone", func(c *qr.Config) { c.QuietZone = -1 }, true},
		{"ratio ignored without logo", func(c *qr.Config) { c.LogoSizeRatio = 5 }, false},
		{"logo ratio too big", func(c *qr.Config) { c.LogoPath = "logo.png"; c.LogoSizeRatio = 1.5 }, true},
		{"logo ratio one", func(c *qr.Config) { c.LogoPath = "logo.png"; c.LogoSizeRatio = 1 }, false},
		{"negative border", func(c *qr.Config) { c.LogoPath = "logo.png"; c.LogoBorder = -2 }, true},
		{"opacity ignored without mask", func(c *qr.Config) { c.MaskOpacity = 2 }, false},
		{"opacity too high", func(c *qr.Config) { c.MaskColor = "red"; c.MaskOpacity = 1.1 }, true},
		{"unknown colour is fine", func(c *qr.Config) { c.FillColor = "not-a-color" }, false},
		{"unknown shape is fine", func(c *qr.Config) { c.DotShape = "star" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Config(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, errorz.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestEmptyDataKeepsKind(t *testing.T) {
	err := Config(qr.Config{Size: 10})
	assert.ErrorIs(t, err, qr.ErrEmptyData)
}

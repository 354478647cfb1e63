package validator

import (
	"fmt"

	"github.com/Badsnus/coolqr/internal/domain/common/errorz"
	qr "github.com/Badsnus/coolqr/pkg/qrcode"
)

func Size(size int) bool {
	return size > 0
}

func LogoSizeRatio(ratio float64) bool {
	return ratio > 0 && ratio <= 1
}

func Opacity(opacity float64) bool {
	return opacity >= 0 && opacity <= 1
}

func LogoBorder(border int) bool {
	return border >= 0
}

func Version(version int) bool {
	return version >= 0 && version <= qr.MaxVersion
}

func Level(level qr.RecoveryLevel) bool {
	return level >= qr.Low && level <= qr.Highest
}

// Config checks user supplied options before anything is rendered.
// Unknown colours, dot shapes and presets are accepted: the renderer falls back for them.
func Config(cfg qr.Config) error {
	switch {
	case cfg.Data == "":
		return fmt.Errorf("%w: %w", errorz.ErrInvalidConfig, qr.ErrEmptyData)
	case !Size(cfg.Size):
		return fmt.Errorf("%w: size must be positive, got %d", errorz.ErrInvalidConfig, cfg.Size)
	case !Version(cfg.Version):
		return fmt.Errorf("%w: version must be within 0..%d, got %d", errorz.ErrInvalidConfig, qr.MaxVersion, cfg.Version)
	case !Level(cfg.Level):
		return fmt.Errorf("%w: unknown recovery level %d", errorz.ErrInvalidConfig, cfg.Level)
	case cfg.QuietZone < 0:
		return fmt.Errorf("%w: quiet zone must not be negative, got %d", errorz.ErrInvalidConfig, cfg.QuietZone)
	}
	if cfg.LogoPath != "" {
		if !LogoSizeRatio(cfg.LogoSizeRatio) {
			return fmt.Errorf("%w: logo size ratio must be within (0, 1], got %g", errorz.ErrInvalidConfig, cfg.LogoSizeRatio)
		}
		if !LogoBorder(cfg.LogoBorder) {
			return fmt.Errorf("%w: logo border must not be negative, got %d", errorz.ErrInvalidConfig, cfg.LogoBorder)
		}
	}
	if cfg.MaskColor != "" && !Opacity(cfg.MaskOpacity) {
		return fmt.Errorf("%w: mask opacity must be within [0, 1], got %g", errorz.ErrInvalidConfig, cfg.MaskOpacity)
	}
	return nil
}

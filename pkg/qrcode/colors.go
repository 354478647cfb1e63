package qr

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Names of the colours ParseColor understands. Lookups are case-insensitive.
// "green" is the full-intensity green, not the CSS one.
var namedColors = map[string]color.RGBA{
	"red":    colornames.Red,
	"green":  colornames.Lime,
	"blue":   colornames.Blue,
	"yellow": colornames.Yellow,
	"purple": colornames.Purple,
	"orange": colornames.Orange,
	"pink":   colornames.Pink,
	"cyan":   colornames.Cyan,
	"black":  colornames.Black,
	"white":  colornames.White,
	"gray":   colornames.Gray,
	"grey":   colornames.Grey,

	"aqua":    colornames.Aqua,
	"fuchsia": colornames.Fuchsia,
	"lime":    colornames.Lime,
	"maroon":  colornames.Maroon,
	"navy":    colornames.Navy,
	"olive":   colornames.Olive,
	"silver":  colornames.Silver,
	"teal":    colornames.Teal,

	"lightblue":   colornames.Lightblue,
	"lightgreen":  colornames.Lightgreen,
	"lightcyan":   colornames.Lightcyan,
	"lightyellow": colornames.Lightyellow,
	"lavender":    colornames.Lavender,
	"lightgray":   colornames.Lightgray,
	"lightpink":   colornames.Lightpink,
	"darkblue":    colornames.Darkblue,
	"darkgreen":   colornames.Darkgreen,
	"darkorange":  colornames.Darkorange,
	"darkred":     colornames.Darkred,
	"brown":       colornames.Brown,
	"wheat":       colornames.Wheat,
}

var black = color.RGBA{A: 0xff}

const hexDigits = "0123456789abcdefABCDEF"

// ParseColor resolves a colour name or a #RRGGBB string to an opaque colour.
// Anything it does not recognise resolves to black.
func ParseColor(token string) color.RGBA {
	if c, ok := namedColors[strings.ToLower(token)]; ok {
		return c
	}
	if len(token) != 7 || token[0] != '#' || strings.Trim(token[1:], hexDigits) != "" {
		return black
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return black
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ColorNames returns the recognised colour names.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	return names
}

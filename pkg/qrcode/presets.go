package qr

import "image/color"

// Preset is a named foreground/background colour pair.
type Preset struct {
	Fill string
	Back string
}

// DefaultPreset is used when an unknown preset name is requested.
const DefaultPreset = "ocean"

// Presets maps style names to their colour pairs. Colour names go through ParseColor.
var Presets = map[string]Preset{
	"ocean":     {Fill: "darkblue", Back: "lightblue"},
	"forest":    {Fill: "darkgreen", Back: "lightgreen"},
	"sunset":    {Fill: "darkorange", Back: "lightyellow"},
	"berry":     {Fill: "purple", Back: "lavender"},
	"fire":      {Fill: "red", Back: "pink"},
	"mint":      {Fill: "teal", Back: "lightcyan"},
	"chocolate": {Fill: "brown", Back: "wheat"},
	"night":     {Fill: "navy", Back: "lightgray"},
}

// ResolvePreset returns the colours of the named preset. Unknown names resolve to
// DefaultPreset and ok is false.
func ResolvePreset(name string) (fill, back color.RGBA, ok bool) {
	p, ok := Presets[name]
	if !ok {
		p = Presets[DefaultPreset]
	}
	return ParseColor(p.Fill), ParseColor(p.Back), ok
}

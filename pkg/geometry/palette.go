package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette holds the colors used across all layers. BG, Ink, and Muted are
// always present after normalization, and Layers always has exactly
// [LayerCount] entries.
type Palette struct {
	BG     string   // background fill
	Ink    string   // text and high-contrast accents
	Muted  string   // secondary fills (notice strip, labels)
	Layers []string // per-layer stroke/fill colors, in draw order
}

// PalettePatch is a partial palette supplied by the caller. Empty string
// fields and a nil or short Layers slice fall back to the defaults.
type PalettePatch struct {
	BG     string
	Ink    string
	Muted  string
	Layers []string
}

// LayerCount is the fixed number of layer colors in a normalized palette.
const LayerCount = 6

// defaultPalette is the built-in visionary fallback. The layer sequence
// runs deep indigo through pure light, matching the shared palette JSON
// the lore documents reference. Never handed out directly; use
// [DefaultPalette] or [NormalizePalette], which copy.
var defaultPalette = Palette{
	BG:    "#0e0d0d",
	Ink:   "#f5f5f5",
	Muted: "#9370db",
	Layers: []string{
		"#280050", // deep indigo, vesica field
		"#460082", // electric violet, tree paths
		"#0080FF", // luminous blue, tree nodes
		"#00FF80", // auric green, spiral
		"#FFC800", // golden amber, helix strands
		"#FFFFFF", // pure light, helix rungs
	},
}

// DefaultPalette returns an independent copy of the built-in palette.
func DefaultPalette() Palette {
	return ClonePalette(defaultPalette)
}

// NormalizePalette builds a complete palette from an optional partial one.
// BG, Ink, and Muted default individually when empty. Layers takes as many
// caller entries as exist, in order, then fills the remainder from the
// fallback list, so the result always has exactly [LayerCount] entries
// (extra caller entries are truncated).
func NormalizePalette(patch *PalettePatch) Palette {
	p := Palette{
		BG:     defaultPalette.BG,
		Ink:    defaultPalette.Ink,
		Muted:  defaultPalette.Muted,
		Layers: make([]string, LayerCount),
	}
	copy(p.Layers, defaultPalette.Layers)
	if patch == nil {
		return p
	}
	if patch.BG != "" {
		p.BG = patch.BG
	}
	if patch.Ink != "" {
		p.Ink = patch.Ink
	}
	if patch.Muted != "" {
		p.Muted = patch.Muted
	}
	for i := 0; i < LayerCount && i < len(patch.Layers); i++ {
		if patch.Layers[i] != "" {
			p.Layers[i] = patch.Layers[i]
		}
	}
	return p
}

// ClonePalette returns a deep copy of p: the result and its Layers slice
// are independently allocated, so callers may mutate the clone freely.
func ClonePalette(p Palette) Palette {
	layers := make([]string, len(p.Layers))
	copy(layers, p.Layers)
	p.Layers = layers
	return p
}

// ColorWithAlpha expands a hex color ("#RGB" or "#RRGGBB") into an
// rgba(...) string with the given alpha. Alpha is clamped into [0, 1] and
// rendered verbatim (no trailing zeros). Non-hex input is returned
// unchanged so already-resolved colors (rgba strings, named colors) pass
// through without special-casing.
func ColorWithAlpha(color string, alpha float64) string {
	r, g, b, ok := hexChannels(color)
	if !ok {
		return color
	}
	a := clampUnit(alpha)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(a, 'g', -1, 64))
}

// hexChannels parses "#RGB" or "#RRGGBB" into 8-bit channels. Any other
// shape reports ok=false.
func hexChannels(color string) (r, g, b int, ok bool) {
	if !strings.HasPrefix(color, "#") {
		return 0, 0, 0, false
	}
	hex := color[1:]
	switch len(hex) {
	case 3:
		// Shorthand: each digit doubles ("#abc" → "#aabbcc").
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// brighten mixes a hex color toward white by amount in [0, 1], returning a
// hex string. Non-hex input is returned unchanged. Used to derive the
// center-bright tone of the background gradient from the background color.
func brighten(color string, amount float64) string {
	r, g, b, ok := hexChannels(color)
	if !ok {
		return color
	}
	t := clampUnit(amount)
	mix := func(c int) int { return c + int(t*float64(255-c)) }
	return fmt.Sprintf("#%02x%02x%02x", mix(r), mix(g), mix(b))
}

package geometry

import (
	"reflect"
	"testing"
)

func TestNormalizePaletteDefaults(t *testing.T) {
	p := NormalizePalette(nil)
	if p.BG != defaultPalette.BG || p.Ink != defaultPalette.Ink || p.Muted != defaultPalette.Muted {
		t.Errorf("NormalizePalette(nil) = %+v, want defaults", p)
	}
	if len(p.Layers) != LayerCount {
		t.Fatalf("len(Layers) = %d, want %d", len(p.Layers), LayerCount)
	}
	if !reflect.DeepEqual(p.Layers, defaultPalette.Layers) {
		t.Errorf("Layers = %v, want fallback layers", p.Layers)
	}
}

func TestNormalizePalettePartialLayers(t *testing.T) {
	p := NormalizePalette(&PalettePatch{
		BG:     "#101010",
		Layers: []string{"#111", "#222", "#333"},
	})

	if p.BG != "#101010" {
		t.Errorf("BG = %q, want #101010", p.BG)
	}
	if p.Ink != defaultPalette.Ink {
		t.Errorf("Ink = %q, want default %q", p.Ink, defaultPalette.Ink)
	}
	if len(p.Layers) != LayerCount {
		t.Fatalf("len(Layers) = %d, want %d", len(p.Layers), LayerCount)
	}
	for i, want := range []string{"#111", "#222", "#333"} {
		if p.Layers[i] != want {
			t.Errorf("Layers[%d] = %q, want %q", i, p.Layers[i], want)
		}
	}
	for i := 3; i < LayerCount; i++ {
		if p.Layers[i] != defaultPalette.Layers[i] {
			t.Errorf("Layers[%d] = %q, want fallback %q", i, p.Layers[i], defaultPalette.Layers[i])
		}
	}
}

func TestNormalizePaletteTruncatesExtraLayers(t *testing.T) {
	extra := make([]string, LayerCount+3)
	for i := range extra {
		extra[i] = "#abc"
	}
	p := NormalizePalette(&PalettePatch{Layers: extra})
	if len(p.Layers) != LayerCount {
		t.Errorf("len(Layers) = %d, want %d", len(p.Layers), LayerCount)
	}
}

func TestClonePaletteIsIndependent(t *testing.T) {
	p := DefaultPalette()
	clone := ClonePalette(p)

	if !reflect.DeepEqual(clone, p) {
		t.Fatalf("clone = %+v, want deep-equal to %+v", clone, p)
	}
	if &clone.Layers[0] == &p.Layers[0] {
		t.Error("clone shares Layers storage with original")
	}

	clone.Layers[0] = "#000000"
	if p.Layers[0] == "#000000" {
		t.Error("mutating clone affected original")
	}
}

func TestDefaultPaletteDoesNotExposeFallback(t *testing.T) {
	p := DefaultPalette()
	p.Layers[0] = "#mutated"
	if defaultPalette.Layers[0] == "#mutated" {
		t.Error("DefaultPalette exposed shared fallback storage")
	}
}

func TestColorWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		color string
		alpha float64
		want  string
	}{
		{name: "six digit hex", color: "#AABBCC", alpha: 0.75, want: "rgba(170, 187, 204, 0.75)"},
		{name: "three digit hex expands", color: "#abc", alpha: 0.75, want: "rgba(170, 187, 204, 0.75)"},
		{name: "alpha below range clamps to zero", color: "#ffffff", alpha: -1, want: "rgba(255, 255, 255, 0)"},
		{name: "alpha above range clamps to one", color: "#ffffff", alpha: 2, want: "rgba(255, 255, 255, 1)"},
		{name: "rgb passthrough", color: "rgb(1, 2, 3)", alpha: 0.5, want: "rgb(1, 2, 3)"},
		{name: "named color passthrough", color: "rebeccapurple", alpha: 0.5, want: "rebeccapurple"},
		{name: "malformed hex passthrough", color: "#12345", alpha: 0.5, want: "#12345"},
		{name: "non hex digits passthrough", color: "#zzzzzz", alpha: 0.5, want: "#zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorWithAlpha(tt.color, tt.alpha); got != tt.want {
				t.Errorf("ColorWithAlpha(%q, %v) = %q, want %q", tt.color, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestBrighten(t *testing.T) {
	if got := brighten("#000000", 1); got != "#ffffff" {
		t.Errorf("brighten(#000000, 1) = %q, want #ffffff", got)
	}
	if got := brighten("#808080", 0); got != "#808080" {
		t.Errorf("brighten(#808080, 0) = %q, want #808080", got)
	}
	if got := brighten("rgb(0, 0, 0)", 0.5); got != "rgb(0, 0, 0)" {
		t.Errorf("brighten passthrough = %q, want unchanged", got)
	}
}

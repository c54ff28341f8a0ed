package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.Color
	}{
		{name: "long hex", in: "#0e0d0d", want: color.NRGBA{R: 0x0e, G: 0x0d, B: 0x0d, A: 255}},
		{name: "short hex expands", in: "#abc", want: color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}},
		{name: "uppercase hex", in: "#FFC800", want: color.NRGBA{R: 0xff, G: 0xc8, B: 0x00, A: 255}},
		{name: "rgba", in: "rgba(147, 112, 219, 0.5)", want: color.NRGBA{R: 147, G: 112, B: 219, A: 128}},
		{name: "rgba alpha clamped", in: "rgba(10, 20, 30, 7)", want: color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{name: "rgb", in: "rgb(0, 128, 255)", want: color.NRGBA{R: 0, G: 128, B: 255, A: 255}},
		{name: "surrounding space", in: "  #FFFFFF ", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "named color falls back to black", in: "rebeccapurple", want: color.Black},
		{name: "truncated hex falls back to black", in: "#ab", want: color.Black},
		{name: "empty falls back to black", in: "", want: color.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseColor(tt.in); got != tt.want {
				t.Errorf("parseColor(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetSizeResetsContext(t *testing.T) {
	s := New(100, 100)
	s.FillRect(0, 0, 100, 100)
	s.SetSize(320, 240)

	w, h := s.Size()
	if w != 320 || h != 240 {
		t.Fatalf("Size() = %d×%d, want 320×240", w, h)
	}
	dc := s.ctx()
	if dc.Width() != 320 || dc.Height() != 240 {
		t.Errorf("context size = %d×%d, want 320×240", dc.Width(), dc.Height())
	}
}

func TestEncodePNGProducesSignature(t *testing.T) {
	s := New(0, 0)
	w, h := 64.0, 48.0
	res := geometry.Render(s, geometry.Options{Width: &w, Height: &h})
	if !res.OK {
		t.Fatalf("Render failed: %q", res.Reason)
	}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Errorf("output does not start with the PNG signature: % x", buf.Bytes()[:8])
	}
}

func TestBackgroundFillCoversCanvas(t *testing.T) {
	s := New(32, 32)
	s.SetFill("#280050")
	s.FillRect(0, 0, 32, 32)

	img := s.ctx().Image()
	r, g, b, _ := img.At(16, 16).RGBA()
	if r>>8 != 0x28 || g>>8 != 0x00 || b>>8 != 0x50 {
		t.Errorf("center pixel = #%02x%02x%02x, want #280050", r>>8, g>>8, b>>8)
	}
}

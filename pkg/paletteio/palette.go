package paletteio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

// paletteDoc is the JSON shape of a palette document.
type paletteDoc struct {
	BG     string   `json:"bg,omitempty"`
	Ink    string   `json:"ink,omitempty"`
	Muted  string   `json:"muted,omitempty"`
	Layers []string `json:"layers,omitempty"`
}

// ReadPalette decodes a palette document from r into a partial palette
// override. Present fields are validated as hex colors; absent fields
// stay empty and fall back to the built-in palette at render time.
func ReadPalette(r io.Reader) (*geometry.PalettePatch, error) {
	var doc paletteDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "decode palette")
	}

	for _, c := range []struct {
		field string
		value string
	}{
		{"bg", doc.BG},
		{"ink", doc.Ink},
		{"muted", doc.Muted},
	} {
		if c.value == "" {
			continue
		}
		if err := errors.ValidateHexColor(c.value); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "field %s", c.field)
		}
	}
	for i, layer := range doc.Layers {
		if err := errors.ValidateHexColor(layer); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "layer %d", i)
		}
	}

	return &geometry.PalettePatch{
		BG:     doc.BG,
		Ink:    doc.Ink,
		Muted:  doc.Muted,
		Layers: doc.Layers,
	}, nil
}

// ImportPalette reads a palette document from a file at path.
func ImportPalette(path string) (*geometry.PalettePatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadPalette(f)
}

// LoadPaletteWithFallback loads a palette file and never fails: a
// missing or malformed document yields a nil override and a notice
// describing the fallback. An empty path yields the defaults silently.
func LoadPaletteWithFallback(path string) (patch *geometry.PalettePatch, notice string) {
	if path == "" {
		return nil, ""
	}
	patch, err := ImportPalette(path)
	if err != nil {
		return nil, fmt.Sprintf("palette %s unavailable, using built-in colors", path)
	}
	return patch, ""
}

// WritePalette encodes a complete palette as an indented JSON document.
// The output can be re-imported with [ReadPalette].
func WritePalette(p geometry.Palette, w io.Writer) error {
	doc := paletteDoc{
		BG:     p.BG,
		Ink:    p.Ink,
		Muted:  p.Muted,
		Layers: append([]string(nil), p.Layers...),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportPalette writes a palette document to a file at path.
func ExportPalette(p geometry.Palette, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePalette(p, f)
}

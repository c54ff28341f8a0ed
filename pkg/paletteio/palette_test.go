package paletteio

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

func TestReadPalette(t *testing.T) {
	in := `{
  "bg": "#101010",
  "layers": ["#111", "#222222"]
}`
	patch, err := ReadPalette(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPalette: %v", err)
	}
	if patch.BG != "#101010" {
		t.Errorf("BG = %q, want #101010", patch.BG)
	}
	if patch.Ink != "" || patch.Muted != "" {
		t.Errorf("absent fields should stay empty: ink=%q muted=%q", patch.Ink, patch.Muted)
	}
	if !reflect.DeepEqual(patch.Layers, []string{"#111", "#222222"}) {
		t.Errorf("Layers = %v", patch.Layers)
	}
}

func TestReadPaletteRejectsBadColors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "malformed json", in: `{"bg": `},
		{name: "bad bg", in: `{"bg": "indigo"}`},
		{name: "bad layer", in: `{"layers": ["#280050", "nope"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPalette(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidPalette) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPalette)
			}
		})
	}
}

func TestPaletteRoundTrip(t *testing.T) {
	p := geometry.DefaultPalette()

	var buf bytes.Buffer
	if err := WritePalette(p, &buf); err != nil {
		t.Fatalf("WritePalette: %v", err)
	}
	patch, err := ReadPalette(&buf)
	if err != nil {
		t.Fatalf("ReadPalette: %v", err)
	}

	got := geometry.NormalizePalette(patch)
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip changed the palette:\ngot  %+v\nwant %+v", got, p)
	}
}

func TestLoadPaletteWithFallback(t *testing.T) {
	t.Run("empty path is silent", func(t *testing.T) {
		patch, notice := LoadPaletteWithFallback("")
		if patch != nil || notice != "" {
			t.Errorf("got patch=%v notice=%q, want nil and empty", patch, notice)
		}
	})

	t.Run("missing file produces a notice", func(t *testing.T) {
		patch, notice := LoadPaletteWithFallback(filepath.Join(t.TempDir(), "absent.json"))
		if patch != nil {
			t.Errorf("patch = %v, want nil", patch)
		}
		if !strings.Contains(notice, "using built-in colors") {
			t.Errorf("notice = %q, want fallback wording", notice)
		}
	})

	t.Run("malformed file produces a notice", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		patch, notice := LoadPaletteWithFallback(path)
		if patch != nil || notice == "" {
			t.Errorf("got patch=%v notice=%q, want nil and a notice", patch, notice)
		}
	})

	t.Run("valid file loads without a notice", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "palette.json")
		if err := os.WriteFile(path, []byte(`{"bg": "#123456"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		patch, notice := LoadPaletteWithFallback(path)
		if patch == nil || patch.BG != "#123456" {
			t.Errorf("patch = %+v, want bg #123456", patch)
		}
		if notice != "" {
			t.Errorf("notice = %q, want empty", notice)
		}
	})
}

func TestExportImportPaletteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	if err := ExportPalette(geometry.DefaultPalette(), path); err != nil {
		t.Fatalf("ExportPalette: %v", err)
	}
	patch, err := ImportPalette(path)
	if err != nil {
		t.Fatalf("ImportPalette: %v", err)
	}
	if patch.BG != "#0e0d0d" {
		t.Errorf("BG = %q, want #0e0d0d", patch.BG)
	}
	if len(patch.Layers) != geometry.LayerCount {
		t.Errorf("layer count = %d, want %d", len(patch.Layers), geometry.LayerCount)
	}
}

func TestImportPaletteMissingFile(t *testing.T) {
	_, err := ImportPalette(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

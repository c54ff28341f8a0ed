package errors

import (
	"testing"
)

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"long form", "#280050", false},
		{"short form", "#abc", false},
		{"uppercase", "#FFC800", false},

		{"empty", "", true},
		{"missing hash", "280050", true},
		{"wrong length", "#abcd", true},
		{"non-hex digits", "#zzzzzz", true},
		{"rgba syntax", "rgba(1, 2, 3, 0.5)", true},
		{"named color", "indigo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPalette) {
				t.Errorf("ValidateHexColor(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPalette)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"pdf", "pdf", false},
		{"case insensitive", "SVG", false},

		{"empty", "", true},
		{"unknown", "webp", true},
		{"extension dot", ".svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/render.svg", false},
		{"absolute", "/tmp/render.svg", false},
		{"with spaces", "my renders/final.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "render\x00.svg", true},
		{"control char", "render\x01.svg", true},
		{"newline", "render\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateScaffoldID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "keter", false},
		{"hyphenated", "tiferet-beauty", false},
		{"underscored", "da_at", false},
		{"trailing digit", "sphere9", false},

		{"empty", "", true},
		{"uppercase", "Keter", true},
		{"leading digit", "9sphere", true},
		{"spaces", "the crown", true},
		{"too long", string(make([]byte, 80)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScaffoldID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScaffoldID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

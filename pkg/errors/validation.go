package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches #RGB and #RRGGBB color literals.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color literal of the form #RGB or
// #RRGGBB. Other CSS color syntaxes are deliberately rejected here:
// palette files are the interchange format and keep to plain hex.
func ValidateHexColor(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidPalette, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(raw) {
		return New(ErrCodeInvalidPalette, "not a hex color: %q", raw)
	}
	return nil
}

// renderFormats lists the output formats the render pipeline can produce.
var renderFormats = map[string]bool{
	"svg": true,
	"png": true,
	"pdf": true,
}

// ValidateFormat validates a render output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !renderFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "unknown format: %q (expected svg, png, or pdf)", format)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// scaffoldIDRegex matches scaffold node identifiers: lowercase words
// joined by hyphens or underscores.
var scaffoldIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateScaffoldID validates a scaffold node identifier.
func ValidateScaffoldID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGeometry, "scaffold node id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidGeometry, "scaffold node id too long (max 64 characters)")
	}
	if !scaffoldIDRegex.MatchString(id) {
		return New(ErrCodeInvalidGeometry, "invalid scaffold node id: %q", id)
	}
	return nil
}

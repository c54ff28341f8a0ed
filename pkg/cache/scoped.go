package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// server uses it to keep per-gallery artifacts separate from the shared
// render cache.
//
// Example usage:
//
//	// Gallery-specific keys
//	galleryKeyer := NewScopedKeyer(NewDefaultKeyer(), "gallery:abc123:")
//
//	// Shared keys
//	sharedKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(format string, width, height int, opts any) string {
	return k.prefix + k.inner.RenderKey(format, width, height, opts)
}

// PaletteKey generates a prefixed key for a resolved palette document.
func (k *ScopedKeyer) PaletteKey(source string) string {
	return k.prefix + k.inner.PaletteKey(source)
}

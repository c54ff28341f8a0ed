// Package cache provides pluggable byte caches for rendered artifacts.
//
// # Overview
//
// Rendering a composition is deterministic: the same options and format
// always produce the same bytes. That makes rendered output an ideal
// cache payload: the key is a hash of the render options, and the value
// is the finished SVG or PNG. Three backends are provided:
//
//   - [FileCache]: on-disk cache for CLI usage
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching entirely
//
// Keys are built through a [Keyer] so every caller hashes options the
// same way; [NewScopedKeyer] prefixes keys for namespace isolation.
// [Instrumented] wraps any backend with hit/miss/store reporting.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/lumenarts/cosmoglyph/pkg/observability"
)

// Cache stores opaque byte payloads under string keys with optional
// expiry. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys so all callers hash identically.
type Keyer interface {
	// RenderKey builds a key for a rendered artifact from the output
	// format, the resolved dimensions, and the full option set.
	RenderKey(format string, width, height int, opts any) string

	// PaletteKey builds a key for a resolved palette document.
	PaletteKey(source string) string
}

// DefaultKeyer is the standard key builder.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key builder.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey hashes the format, dimensions, and options into a
// "render:" key.
func (k *DefaultKeyer) RenderKey(format string, width, height int, opts any) string {
	return hashKey("render", format, width, height, opts)
}

// PaletteKey hashes a palette source identifier into a "palette:" key.
func (k *DefaultKeyer) PaletteKey(source string) string {
	return hashKey("palette", source)
}

// Instrumented wraps a cache with hit/miss/store reporting through the
// observability hooks. The key's prefix (the text before the first
// colon) is reported as the key type.
func Instrumented(c Cache) Cache {
	return &instrumented{inner: c}
}

type instrumented struct {
	inner Cache
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(keyType(key))
		} else {
			observability.Cache().OnCacheMiss(keyType(key))
		}
	}
	return data, ok, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.inner.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(keyType(key), len(data))
	}
	return err
}

func (c *instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *instrumented) Close() error {
	return c.inner.Close()
}

// keyType extracts the key's namespace prefix.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}

// Ensure the wrapper implements Cache.
var _ Cache = (*instrumented)(nil)

package cache

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lumenarts/cosmoglyph/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "render:abc")
	if err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v", hit, err)
	}

	// Round trip
	payload := []byte("<svg/>")
	if err := c.Set(ctx, "render:abc", payload, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "render:abc")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Get = %q, want %q", data, payload)
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "render:expired", payload, time.Nanosecond); err != nil {
		t.Fatalf("Set expired: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "render:expired"); hit {
		t.Error("expired entry should be a miss")
	}

	// Delete removes the entry; deleting again is fine
	if err := c.Delete(ctx, "render:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "render:abc"); hit {
		t.Error("entry present after Delete")
	}
	if err := c.Delete(ctx, "render:abc"); err != nil {
		t.Errorf("second Delete errored: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	type renderOpts struct {
		Notice string
	}

	// RenderKey is deterministic and namespaced
	rk1 := k.RenderKey("svg", 800, 600, renderOpts{Notice: "a"})
	rk2 := k.RenderKey("svg", 800, 600, renderOpts{Notice: "a"})
	if rk1 != rk2 {
		t.Error("identical inputs should produce identical keys")
	}
	if !strings.HasPrefix(rk1, "render:") {
		t.Errorf("RenderKey should be namespaced: %s", rk1)
	}

	// Any input difference changes the key
	if k.RenderKey("png", 800, 600, renderOpts{Notice: "a"}) == rk1 {
		t.Error("different format should produce a different key")
	}
	if k.RenderKey("svg", 800, 601, renderOpts{Notice: "a"}) == rk1 {
		t.Error("different dimensions should produce a different key")
	}
	if k.RenderKey("svg", 800, 600, renderOpts{Notice: "b"}) == rk1 {
		t.Error("different options should produce a different key")
	}

	// PaletteKey
	pk := k.PaletteKey("palettes/visionary.json")
	if !strings.HasPrefix(pk, "palette:") {
		t.Errorf("PaletteKey should be namespaced: %s", pk)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "gallery:123:")

	// All keys should be prefixed
	rk := scoped.RenderKey("svg", 800, 600, nil)
	if !strings.HasPrefix(rk, "gallery:123:render:") {
		t.Errorf("ScopedKeyer RenderKey should be prefixed: %s", rk)
	}

	pk := scoped.PaletteKey("visionary")
	if !strings.HasPrefix(pk, "gallery:123:palette:") {
		t.Errorf("ScopedKeyer PaletteKey should be prefixed: %s", pk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.PaletteKey("visionary")
	if !strings.HasPrefix(key, "prefix:palette:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

// countingCacheHooks records cache events for the instrumentation test.
type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
	lastType           string
}

func (h *countingCacheHooks) OnCacheHit(keyType string)  { h.hits++; h.lastType = keyType }
func (h *countingCacheHooks) OnCacheMiss(keyType string) { h.misses++; h.lastType = keyType }
func (h *countingCacheHooks) OnCacheSet(keyType string, size int) {
	h.sets++
	h.lastType = keyType
}

func TestInstrumentedReportsEvents(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	base, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := Instrumented(base)
	defer c.Close()

	if _, _, err := c.Get(ctx, "render:k"); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "render:k", []byte("data"), 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Get(ctx, "render:k"); err != nil {
		t.Fatal(err)
	}

	if hooks.misses != 1 || hooks.hits != 1 || hooks.sets != 1 {
		t.Errorf("events = %d miss / %d hit / %d set, want 1 each", hooks.misses, hooks.hits, hooks.sets)
	}
	if hooks.lastType != "render" {
		t.Errorf("key type = %q, want render", hooks.lastType)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	base := errors.New("connection refused")
	err := Retryable(base)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != base.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrCacheMiss) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrCacheMiss
	})
	if err != ErrCacheMiss {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errors.New("transient"))
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

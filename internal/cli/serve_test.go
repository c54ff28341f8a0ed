package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lumenarts/cosmoglyph/pkg/cache"
	"github.com/lumenarts/cosmoglyph/pkg/gallery"
)

// newTestServer builds a render server backed by the in-memory gallery
// and a file cache rooted in a test temp directory.
func newTestServer(t *testing.T) *renderServer {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	return &renderServer{
		logger:  newLogger(io.Discard, log.InfoLevel),
		cache:   fc,
		keyer:   cache.NewDefaultKeyer(),
		records: gallery.NewMemoryStore(),
		ttl:     time.Hour,
		limit:   10,
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleQuickRender(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/render?width=320&height=240&notice=hello", nil)

	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<svg") {
		t.Error("body should be an SVG document")
	}
	if !strings.Contains(body, "hello") {
		t.Error("notice text should appear in the document")
	}

	// The render shows up in the gallery.
	list := httptest.NewRecorder()
	srv.routes().ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/renders", nil))
	var records []gallery.Record
	if err := json.Unmarshal(list.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("gallery length = %d, want 1", len(records))
	}
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		raw      string
		fallback int
		want     int
	}{
		{"", 800, 800},
		{"320", 800, 320},
		{"abc", 800, 800},
		{"-5", 800, 800},
		{"0", 800, 800},
	}

	for _, tt := range tests {
		if got := intParam(tt.raw, tt.fallback); got != tt.want {
			t.Errorf("intParam(%q, %d) = %d, want %d", tt.raw, tt.fallback, got, tt.want)
		}
	}
}

func TestHandleCreateDefaults(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/renders", strings.NewReader(`{}`))

	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var got gallery.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == "" {
		t.Error("record should have an ID")
	}
	if got.Width != 800 || got.Height != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", got.Width, got.Height)
	}
	if got.Format != "svg" {
		t.Errorf("format = %q, want svg", got.Format)
	}
	want := "Vesica 99 circles · Paths 22 / Nodes 10 · Spiral 144 samples · Helix 22 ties"
	if got.Summary != want {
		t.Errorf("summary = %q, want %q", got.Summary, want)
	}
}

func TestHandleCreateInvalidFormat(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/renders", strings.NewReader(`{"format":"bmp"}`))

	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCreateBadPalette(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	body := `{"palette":{"bg":"not-a-color"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/renders", strings.NewReader(body))

	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestHandleGetMissing(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/renders/no-such-id", nil)

	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleArtifactRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.routes()

	create := httptest.NewRecorder()
	handler.ServeHTTP(create, httptest.NewRequest(http.MethodPost, "/api/renders", strings.NewReader(`{"width":200,"height":150}`)))
	if create.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", create.Code, create.Body.String())
	}

	var record gallery.Record
	if err := json.Unmarshal(create.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	artifact := httptest.NewRecorder()
	handler.ServeHTTP(artifact, httptest.NewRequest(http.MethodGet, "/api/renders/"+record.ID+"/artifact", nil))

	if artifact.Code != http.StatusOK {
		t.Fatalf("artifact status = %d: %s", artifact.Code, artifact.Body.String())
	}
	if ct := artifact.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}
	if !strings.HasPrefix(artifact.Body.String(), "<svg") {
		t.Error("artifact body should be an SVG document")
	}
}

func TestHandleArtifactExpired(t *testing.T) {
	srv := newTestServer(t)
	srv.cache = cache.NewNullCache() // never retains anything
	handler := srv.routes()

	create := httptest.NewRecorder()
	handler.ServeHTTP(create, httptest.NewRequest(http.MethodPost, "/api/renders", strings.NewReader(`{}`)))

	var record gallery.Record
	if err := json.Unmarshal(create.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	artifact := httptest.NewRecorder()
	handler.ServeHTTP(artifact, httptest.NewRequest(http.MethodGet, "/api/renders/"+record.ID+"/artifact", nil))

	if artifact.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", artifact.Code, http.StatusNotFound)
	}
}

func TestHandleListAndDelete(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.routes()

	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/renders", strings.NewReader(`{}`)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d", rec.Code)
		}
	}

	list := httptest.NewRecorder()
	handler.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/renders", nil))
	if list.Code != http.StatusOK {
		t.Fatalf("list status = %d", list.Code)
	}

	var records []gallery.Record
	if err := json.Unmarshal(list.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("list length = %d, want 3", len(records))
	}

	del := httptest.NewRecorder()
	handler.ServeHTTP(del, httptest.NewRequest(http.MethodDelete, "/api/renders/"+records[0].ID, nil))
	if del.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", del.Code, http.StatusNoContent)
	}

	missing := httptest.NewRecorder()
	handler.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/api/renders/"+records[0].ID, nil))
	if missing.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", missing.Code, http.StatusNotFound)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"svg", "image/svg+xml"},
		{"png", "image/png"},
		{"pdf", "application/pdf"},
		{"", "image/svg+xml"},
	}

	for _, tt := range tests {
		if got := contentType(tt.format); got != tt.want {
			t.Errorf("contentType(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

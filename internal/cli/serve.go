package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/lumenarts/cosmoglyph/pkg/cache"
	"github.com/lumenarts/cosmoglyph/pkg/config"
	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/gallery"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
	"github.com/lumenarts/cosmoglyph/pkg/paletteio"
)

// serveCommand creates the HTTP render service command. Rendered
// artifacts are cached (Redis when configured, files otherwise) and
// render metadata is kept in the gallery store (MongoDB when configured,
// in-memory otherwise).
func (c *CLI) serveCommand() *cobra.Command {
	var addr, configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8322", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file (TOML)")
	return cmd
}

// runServe wires the cache and gallery backends from configuration and
// serves until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	store, err := c.newServeCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := c.newGalleryStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer records.Close(context.Background())

	srv := &renderServer{
		logger:  c.Logger,
		cache:   store,
		keyer:   cache.NewDefaultKeyer(),
		records: records,
		ttl:     cfg.CacheTTL(),
		limit:   cfg.Serve.GalleryLimit,
	}

	httpSrv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", cfg.Serve.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// newServeCache selects the shared Redis cache when configured, falling
// back to the local file cache.
func (c *CLI) newServeCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if cfg.Serve.Redis != "" {
		c.Logger.Infof("Using Redis artifact cache at %s", cfg.Serve.Redis)
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cfg.Serve.Redis})
		if err != nil {
			return nil, err
		}
		return cache.Instrumented(rc), nil
	}
	return newArtifactCache(false, cfg.Cache.Dir), nil
}

// newGalleryStore selects the MongoDB gallery when configured, falling
// back to the in-memory store.
func (c *CLI) newGalleryStore(ctx context.Context, cfg config.Config) (gallery.Store, error) {
	if cfg.Serve.Mongo != "" {
		c.Logger.Infof("Using MongoDB gallery at %s", cfg.Serve.Mongo)
		return gallery.NewMongoStore(ctx, gallery.MongoOptions{URI: cfg.Serve.Mongo})
	}
	return gallery.NewMemoryStore(), nil
}

// =============================================================================
// HTTP Handlers
// =============================================================================

// renderServer holds the HTTP handler dependencies.
type renderServer struct {
	logger  *log.Logger
	cache   cache.Cache
	keyer   cache.Keyer
	records gallery.Store
	ttl     time.Duration
	limit   int
}

// renderRequest is the POST /api/renders payload. Palette and scaffold
// use the same document shapes as the CLI file flags.
type renderRequest struct {
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Format   string          `json:"format"`
	Notice   string          `json:"notice"`
	Palette  json.RawMessage `json:"palette,omitempty"`
	Scaffold json.RawMessage `json:"scaffold,omitempty"`
}

func (s *renderServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/render", s.handleQuickRender)
	r.Route("/api/renders", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/artifact", s.handleArtifact)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

func (s *renderServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleQuickRender renders directly from query parameters and returns
// the artifact bytes. The render is still recorded in the gallery.
func (s *renderServer) handleQuickRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := renderRequest{
		Width:  intParam(q.Get("width"), 800),
		Height: intParam(q.Get("height"), 600),
		Format: strings.ToLower(q.Get("format")),
		Notice: q.Get("notice"),
	}
	if req.Format == "" {
		req.Format = "svg"
	}
	if err := errors.ValidateFormat(req.Format); err != nil {
		writeError(w, err)
		return
	}

	ropts, err := s.geometryOptions(req)
	if err != nil {
		writeError(w, err)
		return
	}
	data, res, err := encodeArtifact(req.Format, req.Width, req.Height, ropts)
	if err != nil {
		writeError(w, err)
		return
	}
	if !res.OK {
		writeError(w, renderFailure(res.Reason, req.Width, req.Height))
		return
	}

	key := s.keyer.RenderKey(req.Format, req.Width, req.Height, renderKeyFields{Notice: req.Notice})
	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Infof("Artifact cache store failed: %v", err)
	}
	if err := s.records.Put(r.Context(), gallery.NewRecord(req.Width, req.Height, req.Format, key, res)); err != nil {
		s.logger.Infof("Gallery store failed: %v", err)
	}

	w.Header().Set("Content-Type", contentType(req.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// intParam parses a positive integer query parameter, falling back on
// absent or malformed input.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s *renderServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}
	if req.Width <= 0 {
		req.Width = 800
	}
	if req.Height <= 0 {
		req.Height = 600
	}
	req.Format = strings.ToLower(req.Format)
	if req.Format == "" {
		req.Format = "svg"
	}
	if err := errors.ValidateFormat(req.Format); err != nil {
		writeError(w, err)
		return
	}

	ropts, err := s.geometryOptions(req)
	if err != nil {
		writeError(w, err)
		return
	}

	key := s.keyer.RenderKey(req.Format, req.Width, req.Height, renderKeyFields{
		Notice:   ropts.Notice,
		Palette:  ropts.Palette,
		Scaffold: ropts.Geometry.TreeOfLife,
	})

	data, res, err := encodeArtifact(req.Format, req.Width, req.Height, ropts)
	if err != nil {
		writeError(w, err)
		return
	}
	if !res.OK {
		writeError(w, renderFailure(res.Reason, req.Width, req.Height))
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Infof("Artifact cache store failed: %v", err)
	}

	rec := gallery.NewRecord(req.Width, req.Height, req.Format, key, res)
	if err := s.records.Put(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// geometryOptions converts a render request into geometry options,
// decoding the embedded palette and scaffold documents.
func (s *renderServer) geometryOptions(req renderRequest) (geometry.Options, error) {
	width := float64(req.Width)
	height := float64(req.Height)
	opts := geometry.Options{
		Width:  &width,
		Height: &height,
		Notice: req.Notice,
	}
	if len(req.Palette) > 0 {
		patch, err := paletteio.ReadPalette(bytes.NewReader(req.Palette))
		if err != nil {
			return geometry.Options{}, err
		}
		opts.Palette = patch
	}
	if len(req.Scaffold) > 0 {
		patch, err := paletteio.ReadScaffold(bytes.NewReader(req.Scaffold))
		if err != nil {
			return geometry.Options{}, err
		}
		opts.Geometry.TreeOfLife = patch
	}
	return opts, nil
}

func (s *renderServer) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.records.List(r.Context(), s.limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *renderServer) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *renderServer) handleArtifact(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	data, ok, err := s.cache.Get(r.Context(), rec.CacheKey)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeError(w, errors.New(errors.ErrCodeRenderNotFound, "artifact for render %s has expired", rec.ID))
		return
	}
	w.Header().Set("Content-Type", contentType(rec.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *renderServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = s.cache.Delete(r.Context(), rec.CacheKey)
	if err := s.records.Delete(r.Context(), rec.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// contentType maps an artifact format to its MIME type.
func contentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "pdf":
		return "application/pdf"
	default:
		return "image/svg+xml"
	}
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPalette, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidDimensions, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeRenderNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

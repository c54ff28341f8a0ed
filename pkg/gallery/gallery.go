// Package gallery persists render records for the HTTP server.
//
// # Overview
//
// Every successful render served over HTTP is recorded: its identifier,
// dimensions, summary line, and layer statistics. The gallery is the
// server's browsable history; artifacts themselves live in the cache,
// keyed by option hash, while the gallery holds the metadata needed to
// list and refetch them.
//
// Two stores are provided: [MemoryStore] for single-process use and
// tests, and [MongoStore] for deployments that need history to survive
// restarts.
package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

// Record describes one completed render.
type Record struct {
	ID        string         `json:"id" bson:"_id"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	Width     int            `json:"width" bson:"width"`
	Height    int            `json:"height" bson:"height"`
	Format    string         `json:"format" bson:"format"`
	Summary   string         `json:"summary" bson:"summary"`
	CacheKey  string         `json:"cache_key" bson:"cache_key"`
	Stats     geometry.Stats `json:"stats" bson:"stats"`
}

// NewRecord builds a record with a fresh identifier and timestamp from a
// render result.
func NewRecord(width, height int, format, cacheKey string, res geometry.Result) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Width:     width,
		Height:    height,
		Format:    format,
		Summary:   res.Summary,
		CacheKey:  cacheKey,
		Stats:     res.Stats,
	}
}

// Store persists render records. Implementations must be safe for
// concurrent use.
type Store interface {
	// Put inserts a record.
	Put(ctx context.Context, rec Record) error

	// Get fetches a record by id. A missing id yields an error with
	// code RENDER_NOT_FOUND.
	Get(ctx context.Context, id string) (Record, error)

	// List returns up to limit records, newest first. A non-positive
	// limit returns all records.
	List(ctx context.Context, limit int) ([]Record, error)

	// Delete removes a record by id. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// notFound builds the standard missing-record error.
func notFound(id string) error {
	return errors.New(errors.ErrCodeRenderNotFound, "render %s not found", id)
}

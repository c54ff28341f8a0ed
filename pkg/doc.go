// Package pkg provides the core libraries for Cosmoglyph sacred-geometry rendering.
//
// # Overview
//
// Cosmoglyph paints a layered composition onto an abstract drawing surface:
// a vesica piscis field, a Tree of Life scaffold, a logarithmic spiral, and
// a double-helix lattice, always in that order, finished with an optional
// notice banner. The pkg directory is organized into four main areas:
//
//  1. [geometry] - Domain logic (layer math, palettes, numerology, rendering)
//  2. [surface] - Drawing surface implementations (SVG, raster, recording)
//  3. Infrastructure - [cache], [config], [gallery], [observability]
//  4. Documents - [paletteio] palette and scaffold JSON, [scaffoldviz] diagrams
//
// # Architecture
//
// The typical data flow through Cosmoglyph:
//
//	Palette/Scaffold Documents
//	         ↓
//	    [geometry] package (normalize + merge configuration)
//	         ↓
//	    [geometry.Render] (background → vesica → tree → spiral → helix → notice)
//	         ↓
//	    [surface/svg] or [surface/raster]
//	         ↓
//	    SVG/PNG/PDF output
//
// # Quick Start
//
// Render the default composition to an SVG document:
//
//	import (
//	    "github.com/lumenarts/cosmoglyph/pkg/geometry"
//	    "github.com/lumenarts/cosmoglyph/pkg/surface/svg"
//	)
//
//	s := svg.New(800, 600)
//	res := geometry.Render(s, geometry.Options{})
//	if res.OK {
//	    os.WriteFile("cosmoglyph.svg", s.Document(), 0o644)
//	}
//
// # Main Packages
//
// [geometry] - The composition itself. Layer configurations derive from a
// numerology mapping (3, 7, 9, 11, 22, 33, 99, 144) and every malformed
// input is coerced to a safe default rather than rejected. Rendering is
// synchronous, bounded, and deterministic.
//
// [surface] - Surface implementations behind the [geometry.Surface]
// interface: svg builds a standalone SVG document, raster paints through
// fogleman/gg and encodes PNG, record counts drawing calls for tests.
//
// [cache] - Rendered artifact caching with file, Redis, and null backends,
// hash-based cache keys, and retry with exponential backoff.
//
// [gallery] - Render metadata storage with in-memory and MongoDB backends,
// used by the HTTP service to list past renders.
//
// [paletteio] - Reading and writing palette and scaffold JSON documents,
// including fallback loading that never fails a render.
//
// [scaffoldviz] - Tree scaffold diagrams through Graphviz, one rank per
// scaffold level.
//
// [config] - TOML configuration with defaults, search paths, and
// per-section overrides.
//
// [errors] - Structured errors with machine-readable codes and input
// validation helpers.
//
// [observability] - Process-wide render and cache hooks for tests and
// metrics collectors.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/geometry/... # Specific package
//	go test -run Example       # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/geometry
// [geometry.Surface]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/geometry#Surface
// [surface]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/surface
// [cache]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/cache
// [gallery]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/gallery
// [paletteio]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/paletteio
// [scaffoldviz]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/scaffoldviz
// [config]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/config
// [errors]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/observability
//
// [geometry.Render]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/geometry#Render
// [surface/svg]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/surface/svg
// [surface/raster]: https://pkg.go.dev/github.com/lumenarts/cosmoglyph/pkg/surface/raster
package pkg

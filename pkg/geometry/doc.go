// Package geometry renders layered sacred-geometry diagrams onto an
// abstract 2D drawing surface.
//
// # Overview
//
// A single call to [Render] turns a small numeric and palette configuration
// into four stacked diagrams painted in a fixed order:
//
//  1. Vesica field: a grid of overlapping circles (the vesica piscis motif)
//  2. Tree scaffold: a node/edge diagram positioned by levels and x-factors
//  3. Fibonacci spiral: a logarithmic spiral sampled at discrete points
//  4. Helix lattice: two offset sinusoidal strands with connecting rungs
//
// A background fill goes underneath everything and an optional notice
// banner is drawn last, on top. The ordering is a visual-layering contract:
// callers rely on the spiral crossing the tree, the helix crossing both,
// and the notice always being readable.
//
// # Configuration
//
// All configuration is optional. Caller-supplied palettes, numerology
// overrides, and per-layer geometry patches are merged against built-in
// defaults by pure, total merge functions: invalid numeric overrides keep
// the default, alpha and position factors are clamped into [0, 1], and
// malformed node/edge lists are normalized element by element. Nothing in
// the merge path can fail, so arbitrary upstream configuration (including
// hand-edited JSON) degrades to a safe render rather than an error.
//
// # Failure Modes
//
// Exactly two: a missing drawing surface ([ReasonMissingContext]) and
// dimensions that resolve to nothing positive ([ReasonInvalidDimensions]).
// Both are reported in the returned [Result] before any drawing occurs.
//
// # Determinism
//
// Rendering is fully synchronous and deterministic: identical inputs
// against a freshly-cleared surface produce identical draw calls, layer
// statistics, and summary strings. The package never clears the surface;
// accumulation across repeated calls is the caller's concern.
package geometry

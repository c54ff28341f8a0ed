// Package paletteio provides JSON import and export for palette and
// scaffold documents.
//
// # Overview
//
// This package is the renderer's interchange layer. Palettes and tree
// scaffolds are small JSON documents that users edit by hand, share, and
// pass to the CLI; paletteio turns them into the partial-override values
// the renderer consumes, and writes the built-in defaults back out as a
// starting point for customization.
//
// # Palette Format
//
// A palette document mirrors the renderer's palette shape. Every field is
// optional; anything absent falls back to the built-in visionary palette:
//
//	{
//	  "bg": "#0e0d0d",
//	  "ink": "#f5f5f5",
//	  "muted": "#9370db",
//	  "layers": ["#280050", "#460082", "#0080FF", "#00FF80", "#FFC800", "#FFFFFF"]
//	}
//
// Colors must be #RGB or #RRGGBB hex literals. The layers array may hold
// fewer or more entries than the renderer uses; normalization pads or
// truncates it.
//
// # Scaffold Format
//
// A scaffold document has two top-level arrays, nodes and edges:
//
//	{
//	  "nodes": [
//	    {"id": "keter", "title": "Crown", "level": 0, "x": 0.5},
//	    {"id": "malkuth", "title": "Kingdom", "level": 6, "x": 0.5}
//	  ],
//	  "edges": [
//	    {"from": "keter", "to": "malkuth"}
//	  ]
//	}
//
// Each node needs an id; title defaults to the id, level to 0, and x (the
// horizontal position as a fraction of the canvas width) to 0.5. Edges
// reference node ids; an edge naming an unknown id is kept in the document
// but skipped at draw time.
//
// # Fallback Loading
//
// [LoadPaletteWithFallback] never fails: a missing file or malformed
// document yields a nil override plus a human-readable notice, which the
// renderer paints into the output. This keeps a broken palette file from
// ever blocking a render.
//
// # Concurrency
//
// All functions are pure transformations over their inputs and are safe
// for concurrent use.
package paletteio

// Package scaffoldviz renders tree scaffolds as node-link diagrams.
//
// # Overview
//
// The main renderer paints the scaffold as one layer of the full
// composition, positioned by each node's level and x factor. This
// package offers a second view of the same structure: a Graphviz-laid-out
// diagram for inspecting a scaffold document on its own, with readable
// labels and automatic edge routing.
//
// # Usage
//
// Convert a scaffold to DOT format, then render to SVG:
//
//	dot := scaffoldviz.ToDOT(cfg, scaffoldviz.Options{})
//	svg, err := scaffoldviz.RenderSVG(dot)
//
// For PDF or PNG output, use the export functions:
//
//	pdf, err := scaffoldviz.RenderPDF(dot)
//	png, err := scaffoldviz.RenderPNG(dot, 2.0)  // 2x scale
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Nodes on the same level share a rank so the diagram mirrors the
// scaffold's vertical structure. Edges referencing unknown node ids are
// omitted, matching the painter's behavior.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package scaffoldviz

package scaffoldviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lumenarts/cosmoglyph/pkg/export"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

// Options configures scaffold diagram rendering.
type Options struct {
	// Detailed includes the level and x factor in node labels.
	// When false, only the node title is shown.
	Detailed bool

	// Palette supplies the diagram colors. A zero palette falls back
	// to the built-in defaults.
	Palette geometry.Palette
}

// ToDOT converts a tree scaffold to Graphviz DOT format. The resulting
// DOT string can be rendered using [RenderSVG], [RenderPDF], or
// [RenderPNG].
//
// Nodes sharing a level are pinned to the same rank, and edges naming
// unknown node ids are dropped.
func ToDOT(cfg geometry.TreeConfig, opts Options) string {
	p := opts.Palette
	if len(p.Layers) == 0 {
		p = geometry.DefaultPalette()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph scaffold {\n")
	buf.WriteString("  rankdir=TB;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", p.BG)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, fontcolor=%q, fontsize=14];\n", p.Layers[2], p.Ink)
	fmt.Fprintf(&buf, "  edge [color=%q, arrowhead=none];\n", p.Layers[1])
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	known := make(map[string]bool, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		known[n.ID] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, fmtLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, level := range levels(cfg.Nodes) {
		ids := make([]string, 0, len(cfg.Nodes))
		for _, n := range cfg.Nodes {
			if n.Level == level {
				ids = append(ids, strconv.Quote(n.ID))
			}
		}
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("\n")
	for _, e := range cfg.Edges {
		if !known[e[0]] || !known[e[1]] {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n geometry.ScaffoldNode, detailed bool) string {
	if !detailed {
		return n.Title
	}
	return fmt.Sprintf("%s\nlevel: %d\nx: %.2f", n.Title, n.Level, n.XFactor)
}

// levels lists the distinct node levels in ascending order.
func levels(nodes []geometry.ScaffoldNode) []int {
	seen := make(map[int]bool, len(nodes))
	var out []int
	for _, n := range nodes {
		if !seen[n.Level] {
			seen[n.Level] = true
			out = append(out, n.Level)
		}
	}
	sort.Ints(out)
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [export.ToPDF] or [export.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [export.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return export.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [export.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return export.ToPNG(svg, scale)
}

package geometry

import (
	"fmt"

	"github.com/lumenarts/cosmoglyph/pkg/observability"
)

// FailureReason identifies why a render could not start. These are the
// only two fatal outcomes; every other malformed input is coerced to a
// safe value during normalization.
type FailureReason string

const (
	// ReasonMissingContext means no usable drawing surface was supplied.
	ReasonMissingContext FailureReason = "missing-context"
	// ReasonInvalidDimensions means neither the options nor the surface
	// yielded a positive integer width and height.
	ReasonInvalidDimensions FailureReason = "invalid-dimensions"
)

// GeometryPatch bundles the optional per-layer configuration overrides.
// The field names mirror the layer names used in palette and lore JSON
// documents.
type GeometryPatch struct {
	Vesica     *VesicaPatch
	TreeOfLife *TreePatch
	Fibonacci  *SpiralPatch
	Helix      *HelixPatch
}

// Options is the caller-facing render configuration. Every field is
// optional; absent fields fall back to normalized defaults.
type Options struct {
	Width      *float64         // render width in pixels; nil uses the surface size
	Height     *float64         // render height in pixels; nil uses the surface size
	Notice     string           // status banner text; blank draws nothing
	Palette    *PalettePatch    // partial palette override
	Numerology *NumerologyPatch // partial numerology override
	Geometry   GeometryPatch    // per-layer configuration patches
}

// Stats aggregates the per-layer statistics of one render.
type Stats struct {
	Vesica VesicaStats
	Tree   TreeStats
	Spiral SpiralStats
	Helix  HelixStats
}

// Result is the outcome of one [Render] call: either OK with a summary
// line and layer statistics, or a failure reason. Results are created
// fresh per call and never persisted by this package.
type Result struct {
	OK      bool
	Summary string
	Reason  FailureReason
	Stats   Stats
}

// Render is the top-level entry point. It validates the surface, resolves
// dimensions (resizing the surface as a side effect), normalizes the
// palette, numerology, and geometry configuration, then paints the
// background, the four layers, and the notice overlay in that fixed
// order. The ordering is a visual-layering contract and must not change.
//
// Rendering is synchronous, bounded, and deterministic. Render never
// clears the surface; repeated calls without an intervening clear will
// accumulate paint.
func Render(s Surface, opts Options) Result {
	if s == nil {
		return Result{OK: false, Reason: ReasonMissingContext}
	}

	dims := ResolveDimensions(s, opts.Width, opts.Height)
	if dims == nil {
		return Result{OK: false, Reason: ReasonInvalidDimensions}
	}

	observability.Render().OnRenderStart(dims.Width, dims.Height)

	numerology := NormalizeNumerology(opts.Numerology)
	palette := NormalizePalette(opts.Palette)
	defaults := NormalizeGeometry(numerology)

	vesicaCfg := MergeVesica(defaults.Vesica, opts.Geometry.Vesica)
	treeCfg := MergeTree(defaults.Tree, opts.Geometry.TreeOfLife)
	spiralCfg := MergeSpiral(defaults.Fibonacci, opts.Geometry.Fibonacci)
	helixCfg := MergeHelix(defaults.Helix, opts.Geometry.Helix)

	FillBackground(s, *dims, palette.BG)
	observability.Render().OnLayerComplete("background")

	var stats Stats
	stats.Vesica = DrawVesicaField(s, *dims, palette.Layers[0], vesicaCfg)
	observability.Render().OnLayerComplete("vesica")

	stats.Tree = DrawTreeScaffold(s, *dims, palette.Layers[1], palette.Layers[2], palette.Ink, treeCfg)
	observability.Render().OnLayerComplete("tree")

	stats.Spiral = DrawSpiralCurve(s, *dims, palette.Layers[3], spiralCfg)
	observability.Render().OnLayerComplete("spiral")

	stats.Helix = DrawHelixLattice(s, *dims, palette.Layers[4], palette.Layers[5], helixCfg)
	observability.Render().OnLayerComplete("helix")

	DrawNotice(s, *dims, palette.Muted, palette.Ink, opts.Notice)
	observability.Render().OnLayerComplete("notice")

	summary := Summarize(stats)
	observability.Render().OnRenderComplete(summary)

	return Result{OK: true, Summary: summary, Stats: stats}
}

// Summarize formats the fixed single-line render summary from layer
// statistics.
func Summarize(stats Stats) string {
	return fmt.Sprintf("Vesica %d circles · Paths %d / Nodes %d · Spiral %d samples · Helix %d ties",
		stats.Vesica.Circles,
		stats.Tree.Paths, stats.Tree.Nodes,
		stats.Spiral.Samples,
		stats.Helix.CrossTies,
	)
}

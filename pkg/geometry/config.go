package geometry

import "math"

// =============================================================================
// Layer Configurations
// =============================================================================

// VesicaConfig controls the vesica field layer: a Rows × Columns grid of
// overlapping stroked circles.
type VesicaConfig struct {
	Rows           int     // grid rows (≥ 2)
	Columns        int     // grid columns (≥ 2)
	PaddingDivisor float64 // outer padding = min(w,h) / PaddingDivisor
	RadiusScale    float64 // circle radius relative to the grid cell size
	StrokeDivisor  float64 // stroke width = min(w,h) / StrokeDivisor
	Alpha          float64 // stroke alpha in [0, 1]
}

// ScaffoldNode is one node of the tree scaffold. Title defaults to ID,
// Level to 0, and XFactor to 0.5 during merging.
type ScaffoldNode struct {
	ID      string  // unique identifier, referenced by edges
	Title   string  // display label
	Level   int     // vertical level (0 = top, increasing downward)
	XFactor float64 // horizontal position as a fraction of the width, in [0, 1]
}

// ScaffoldEdge connects two scaffold nodes by ID. Exactly two endpoints,
// always.
type ScaffoldEdge [2]string

// TreeConfig controls the tree scaffold layer: filled node circles joined
// by stroked paths, with optional labels.
type TreeConfig struct {
	MarginDivisor float64 // vertical margin = height / MarginDivisor
	RadiusDivisor float64 // node radius = min(w,h) / RadiusDivisor
	PathDivisor   float64 // path stroke width = min(w,h) / PathDivisor
	NodeAlpha     float64 // node fill alpha in [0, 1]
	PathAlpha     float64 // path stroke alpha in [0, 1]
	LabelAlpha    float64 // label alpha in [0, 1]; 0 disables labels
	Nodes         []ScaffoldNode
	Edges         []ScaffoldEdge
}

// SpiralConfig controls the Fibonacci spiral layer: a logarithmic spiral
// radius(t) = baseRadius · Phi^(t·Turns) sampled at SampleCount points.
type SpiralConfig struct {
	SampleCount       int     // samples along the curve (≥ 2)
	Turns             float64 // full revolutions over t ∈ [0, 1]
	BaseRadiusDivisor float64 // base radius = min(w,h) / BaseRadiusDivisor
	CenterXFactor     float64 // spiral center x as a fraction of width, in [0, 1]
	CenterYFactor     float64 // spiral center y as a fraction of height, in [0, 1]
	Phi               float64 // growth factor per turn (≥ 1)
	MarkerInterval    int     // every Nth sample gets a marker dot (≥ 1)
	Alpha             float64 // stroke alpha in [0, 1]
}

// HelixConfig controls the double-helix layer: two sinusoidal strands half
// a cycle out of phase, joined by evenly spaced cross-ties.
type HelixConfig struct {
	SampleCount             int     // samples per strand (≥ 2)
	Cycles                  float64 // full oscillations across the width
	AmplitudeDivisor        float64 // strand amplitude = height / AmplitudeDivisor
	StrandSeparationDivisor float64 // strand midline separation = height / StrandSeparationDivisor
	CrossTieCount           int     // connecting rungs (≥ 1)
	StrandAlpha             float64 // strand stroke alpha in [0, 1]
	RungAlpha               float64 // rung stroke alpha in [0, 1]
}

// GeometryDefaults bundles the normalized default configuration for every
// layer, derived from a numerology mapping by [NormalizeGeometry].
type GeometryDefaults struct {
	Vesica    VesicaConfig
	Tree      TreeConfig
	Fibonacci SpiralConfig
	Helix     HelixConfig
}

// phi is the golden ratio, the default spiral growth factor.
var phi = (1 + math.Sqrt(5)) / 2

// NormalizeGeometry derives the per-layer default configurations from a
// numerology mapping. The constants give every layer consistent
// proportions: a 9×11 vesica grid, 144 spiral samples with a marker every
// 7th, 99 helix samples with 22 cross-ties, and stroke widths divided out
// of 99.
func NormalizeGeometry(n Numerology) GeometryDefaults {
	return GeometryDefaults{
		Vesica: VesicaConfig{
			Rows:           int(math.Max(2, math.Round(n.Nine))),
			Columns:        int(math.Max(2, math.Round(n.Eleven))),
			PaddingDivisor: n.TwentyTwo,
			RadiusScale:    0.62,
			StrokeDivisor:  n.NinetyNine,
			Alpha:          0.55,
		},
		Tree: TreeConfig{
			MarginDivisor: n.Eleven,
			RadiusDivisor: n.ThirtyThree,
			PathDivisor:   n.NinetyNine,
			NodeAlpha:     0.85,
			PathAlpha:     0.5,
			LabelAlpha:    0.7,
			Nodes:         defaultScaffoldNodes(),
			Edges:         defaultScaffoldEdges(),
		},
		Fibonacci: SpiralConfig{
			SampleCount:       int(math.Max(2, math.Round(n.OneFortyFour))),
			Turns:             n.Three,
			BaseRadiusDivisor: n.ThirtyThree,
			CenterXFactor:     0.5,
			CenterYFactor:     0.5,
			Phi:               phi,
			MarkerInterval:    int(math.Max(1, math.Round(n.Seven))),
			Alpha:             0.7,
		},
		Helix: HelixConfig{
			SampleCount:             int(math.Max(2, math.Round(n.NinetyNine))),
			Cycles:                  n.Three,
			AmplitudeDivisor:        n.Nine,
			StrandSeparationDivisor: n.ThirtyThree,
			CrossTieCount:           int(math.Max(1, math.Round(n.TwentyTwo))),
			StrandAlpha:             0.75,
			RungAlpha:               0.4,
		},
	}
}

// defaultScaffoldNodes returns the ten-node Tree of Life layout: Keter at
// the crown down to Malkuth at the base, seven levels deep. A fresh slice
// on every call, so merged configurations never share storage.
func defaultScaffoldNodes() []ScaffoldNode {
	return []ScaffoldNode{
		{ID: "keter", Title: "Keter", Level: 0, XFactor: 0.5},
		{ID: "chokmah", Title: "Chokmah", Level: 1, XFactor: 0.75},
		{ID: "binah", Title: "Binah", Level: 1, XFactor: 0.25},
		{ID: "chesed", Title: "Chesed", Level: 2, XFactor: 0.75},
		{ID: "gevurah", Title: "Gevurah", Level: 2, XFactor: 0.25},
		{ID: "tiferet", Title: "Tiferet", Level: 3, XFactor: 0.5},
		{ID: "netzach", Title: "Netzach", Level: 4, XFactor: 0.75},
		{ID: "hod", Title: "Hod", Level: 4, XFactor: 0.25},
		{ID: "yesod", Title: "Yesod", Level: 5, XFactor: 0.5},
		{ID: "malkuth", Title: "Malkuth", Level: 6, XFactor: 0.5},
	}
}

// defaultScaffoldEdges returns the twenty-two connecting paths of the
// default scaffold.
func defaultScaffoldEdges() []ScaffoldEdge {
	return []ScaffoldEdge{
		{"keter", "chokmah"}, {"keter", "binah"}, {"keter", "tiferet"},
		{"chokmah", "binah"}, {"chokmah", "tiferet"}, {"chokmah", "chesed"},
		{"binah", "tiferet"}, {"binah", "gevurah"},
		{"chesed", "gevurah"}, {"chesed", "tiferet"}, {"chesed", "netzach"},
		{"gevurah", "tiferet"}, {"gevurah", "hod"},
		{"tiferet", "netzach"}, {"tiferet", "hod"}, {"tiferet", "yesod"},
		{"netzach", "hod"}, {"netzach", "yesod"}, {"netzach", "malkuth"},
		{"hod", "yesod"}, {"hod", "malkuth"},
		{"yesod", "malkuth"},
	}
}

// =============================================================================
// Patches and Mergers
// =============================================================================

// Merging follows three rules, shared by every layer:
//
//   - divisor/count/turns/cycles fields: the patch wins only when positive
//     and finite; count fields are additionally rounded and floored to a
//     minimum (2 for grid and sample counts, 1 for tie counts and marker
//     intervals)
//   - alpha and position-factor fields: finite patch values are clamped
//     into [0, 1]; non-finite values keep the base
//   - list fields: a supplied list replaces the base wholesale after
//     per-element normalization; an omitted list deep-copies the base
//
// Mergers never mutate their base and never fail.

// VesicaPatch is a partial override for [VesicaConfig].
type VesicaPatch struct {
	Rows           *float64
	Columns        *float64
	PaddingDivisor *float64
	RadiusScale    *float64
	StrokeDivisor  *float64
	Alpha          *float64
}

// MergeVesica merges patch over base and returns the result.
func MergeVesica(base VesicaConfig, patch *VesicaPatch) VesicaConfig {
	out := base
	if patch == nil {
		return out
	}
	out.Rows = overrideCount(base.Rows, patch.Rows, 2)
	out.Columns = overrideCount(base.Columns, patch.Columns, 2)
	out.PaddingDivisor = overridePositive(base.PaddingDivisor, patch.PaddingDivisor)
	out.RadiusScale = overridePositive(base.RadiusScale, patch.RadiusScale)
	out.StrokeDivisor = overridePositive(base.StrokeDivisor, patch.StrokeDivisor)
	out.Alpha = overrideUnit(base.Alpha, patch.Alpha)
	return out
}

// ScaffoldNodePatch is one caller-supplied scaffold node. Title defaults
// to ID when empty; a nil XFactor defaults to 0.5.
type ScaffoldNodePatch struct {
	ID      string
	Title   string
	Level   int
	XFactor *float64
}

// TreePatch is a partial override for [TreeConfig]. A non-nil Nodes or
// Edges list replaces the base list wholesale after normalization.
type TreePatch struct {
	MarginDivisor *float64
	RadiusDivisor *float64
	PathDivisor   *float64
	NodeAlpha     *float64
	PathAlpha     *float64
	LabelAlpha    *float64
	Nodes         []ScaffoldNodePatch
	Edges         [][]string
}

// MergeTree merges patch over base and returns the result. The returned
// Nodes and Edges slices are always freshly allocated, whether they come
// from the patch or from deep-copying the base, so callers mutating the
// result cannot corrupt shared defaults.
func MergeTree(base TreeConfig, patch *TreePatch) TreeConfig {
	out := base
	if patch == nil {
		patch = &TreePatch{}
	}
	out.MarginDivisor = overridePositive(base.MarginDivisor, patch.MarginDivisor)
	out.RadiusDivisor = overridePositive(base.RadiusDivisor, patch.RadiusDivisor)
	out.PathDivisor = overridePositive(base.PathDivisor, patch.PathDivisor)
	out.NodeAlpha = overrideUnit(base.NodeAlpha, patch.NodeAlpha)
	out.PathAlpha = overrideUnit(base.PathAlpha, patch.PathAlpha)
	out.LabelAlpha = overrideUnit(base.LabelAlpha, patch.LabelAlpha)

	if patch.Nodes != nil {
		out.Nodes = make([]ScaffoldNode, len(patch.Nodes))
		for i, n := range patch.Nodes {
			out.Nodes[i] = normalizeScaffoldNode(n)
		}
	} else {
		out.Nodes = make([]ScaffoldNode, len(base.Nodes))
		copy(out.Nodes, base.Nodes)
	}

	if patch.Edges != nil {
		out.Edges = make([]ScaffoldEdge, len(patch.Edges))
		for i, e := range patch.Edges {
			out.Edges[i] = normalizeScaffoldEdge(e)
		}
	} else {
		out.Edges = make([]ScaffoldEdge, len(base.Edges))
		copy(out.Edges, base.Edges)
	}
	return out
}

// normalizeScaffoldNode applies the node defaults: Title falls back to ID,
// a missing XFactor becomes 0.5, and a supplied one is clamped into [0, 1].
func normalizeScaffoldNode(p ScaffoldNodePatch) ScaffoldNode {
	n := ScaffoldNode{ID: p.ID, Title: p.Title, Level: p.Level, XFactor: 0.5}
	if n.Title == "" {
		n.Title = n.ID
	}
	if p.XFactor != nil && !math.IsNaN(*p.XFactor) && !math.IsInf(*p.XFactor, 0) {
		n.XFactor = clampUnit(*p.XFactor)
	}
	return n
}

// normalizeScaffoldEdge trims or pads an endpoint list to exactly two
// entries. Missing endpoints become empty strings, which never match a
// node ID and are skipped at draw time.
func normalizeScaffoldEdge(endpoints []string) ScaffoldEdge {
	var e ScaffoldEdge
	for i := 0; i < 2 && i < len(endpoints); i++ {
		e[i] = endpoints[i]
	}
	return e
}

// SpiralPatch is a partial override for [SpiralConfig].
type SpiralPatch struct {
	SampleCount       *float64
	Turns             *float64
	BaseRadiusDivisor *float64
	CenterXFactor     *float64
	CenterYFactor     *float64
	Phi               *float64
	MarkerInterval    *float64
	Alpha             *float64
}

// MergeSpiral merges patch over base and returns the result. Phi is
// accepted only when finite and at least 1: a growth factor below 1 would
// invert the spiral's expansion and is treated as invalid input.
func MergeSpiral(base SpiralConfig, patch *SpiralPatch) SpiralConfig {
	out := base
	if patch == nil {
		return out
	}
	out.SampleCount = overrideCount(base.SampleCount, patch.SampleCount, 2)
	out.Turns = overridePositive(base.Turns, patch.Turns)
	out.BaseRadiusDivisor = overridePositive(base.BaseRadiusDivisor, patch.BaseRadiusDivisor)
	out.CenterXFactor = overrideUnit(base.CenterXFactor, patch.CenterXFactor)
	out.CenterYFactor = overrideUnit(base.CenterYFactor, patch.CenterYFactor)
	if patch.Phi != nil && !math.IsNaN(*patch.Phi) && !math.IsInf(*patch.Phi, 0) && *patch.Phi >= 1 {
		out.Phi = *patch.Phi
	}
	out.MarkerInterval = overrideCount(base.MarkerInterval, patch.MarkerInterval, 1)
	out.Alpha = overrideUnit(base.Alpha, patch.Alpha)
	return out
}

// HelixPatch is a partial override for [HelixConfig].
type HelixPatch struct {
	SampleCount             *float64
	Cycles                  *float64
	AmplitudeDivisor        *float64
	StrandSeparationDivisor *float64
	CrossTieCount           *float64
	StrandAlpha             *float64
	RungAlpha               *float64
}

// MergeHelix merges patch over base and returns the result.
func MergeHelix(base HelixConfig, patch *HelixPatch) HelixConfig {
	out := base
	if patch == nil {
		return out
	}
	out.SampleCount = overrideCount(base.SampleCount, patch.SampleCount, 2)
	out.Cycles = overridePositive(base.Cycles, patch.Cycles)
	out.AmplitudeDivisor = overridePositive(base.AmplitudeDivisor, patch.AmplitudeDivisor)
	out.StrandSeparationDivisor = overridePositive(base.StrandSeparationDivisor, patch.StrandSeparationDivisor)
	out.CrossTieCount = overrideCount(base.CrossTieCount, patch.CrossTieCount, 1)
	out.StrandAlpha = overrideUnit(base.StrandAlpha, patch.StrandAlpha)
	out.RungAlpha = overrideUnit(base.RungAlpha, patch.RungAlpha)
	return out
}

package geometry

import "math"

// TreeStats reports what [DrawTreeScaffold] painted.
type TreeStats struct {
	Nodes int // node circles drawn
	Paths int // edges whose both endpoints resolved to known nodes
}

// DrawTreeScaffold draws the node/edge scaffold. Each node sits at
// y = margin + level·levelSpacing and x = xFactor·width. Edges are drawn
// first so nodes paint over them; edges referencing unknown IDs are
// skipped rather than erroring. Labels are drawn above each node when
// LabelAlpha is non-zero.
func DrawTreeScaffold(s Surface, dims Dimensions, pathColor, nodeColor, ink string, cfg TreeConfig) TreeStats {
	w := float64(dims.Width)
	h := float64(dims.Height)
	margin := h / cfg.MarginDivisor
	radius := dims.minDim() / cfg.RadiusDivisor

	maxLevel := 0
	for _, n := range cfg.Nodes {
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
	}
	levelSpacing := 0.0
	if maxLevel > 0 {
		levelSpacing = (h - 2*margin) / float64(maxLevel)
	}

	type point struct{ x, y float64 }
	centers := make(map[string]point, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		centers[n.ID] = point{
			x: n.XFactor * w,
			y: margin + float64(n.Level)*levelSpacing,
		}
	}

	s.SetStroke(ColorWithAlpha(pathColor, cfg.PathAlpha))
	s.SetLineWidth(dims.minDim() / cfg.PathDivisor)
	s.SetLineCap("round")
	s.SetLineJoin("round")

	paths := 0
	for _, e := range cfg.Edges {
		from, okFrom := centers[e[0]]
		to, okTo := centers[e[1]]
		if !okFrom || !okTo {
			continue
		}
		s.BeginPath()
		s.MoveTo(from.x, from.y)
		s.LineTo(to.x, to.y)
		s.Stroke()
		paths++
	}

	s.SetFill(ColorWithAlpha(nodeColor, cfg.NodeAlpha))
	for _, n := range cfg.Nodes {
		c := centers[n.ID]
		s.BeginPath()
		s.Arc(c.x, c.y, radius, 0, 2*math.Pi)
		s.Fill()
	}

	if cfg.LabelAlpha > 0 {
		s.SetFill(ColorWithAlpha(ink, cfg.LabelAlpha))
		s.SetFont(scaffoldLabelFont)
		s.SetTextAlign("center")
		s.SetTextBaseline("alphabetic")
		for _, n := range cfg.Nodes {
			c := centers[n.ID]
			s.FillText(n.Title, c.x, c.y-radius*1.6)
		}
	}

	return TreeStats{Nodes: len(cfg.Nodes), Paths: paths}
}

// scaffoldLabelFont is the fixed label font. Sizing labels off the canvas
// would make small renders unreadable, so the scaffold keeps a constant.
const scaffoldLabelFont = "12px serif"

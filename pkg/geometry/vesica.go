package geometry

import "math"

// VesicaStats reports what [DrawVesicaField] painted.
type VesicaStats struct {
	Circles int // one per grid cell
}

// DrawVesicaField strokes a Rows × Columns grid of circles sized so that
// horizontal neighbors overlap, producing the vesica piscis lens between
// each pair. The grid is inset by a padding derived from PaddingDivisor
// and stroked at the configured alpha.
func DrawVesicaField(s Surface, dims Dimensions, color string, cfg VesicaConfig) VesicaStats {
	w := float64(dims.Width)
	h := float64(dims.Height)
	pad := dims.minDim() / cfg.PaddingDivisor

	cellW := (w - 2*pad) / float64(cfg.Columns)
	cellH := (h - 2*pad) / float64(cfg.Rows)
	radius := math.Min(cellW, cellH) * cfg.RadiusScale

	s.SetStroke(ColorWithAlpha(color, cfg.Alpha))
	s.SetLineWidth(dims.minDim() / cfg.StrokeDivisor)
	s.SetLineCap("round")

	for row := 0; row < cfg.Rows; row++ {
		cy := pad + (float64(row)+0.5)*cellH
		for col := 0; col < cfg.Columns; col++ {
			cx := pad + (float64(col)+0.5)*cellW
			s.BeginPath()
			s.Arc(cx, cy, radius, 0, 2*math.Pi)
			s.Stroke()
		}
	}

	return VesicaStats{Circles: cfg.Rows * cfg.Columns}
}

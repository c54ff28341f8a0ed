package geometry

import "math"

// SpiralStats reports what [DrawSpiralCurve] painted.
type SpiralStats struct {
	Samples int // points sampled along the curve
	Markers int // marker dots (every MarkerInterval-th sample, index 0 included)
}

// DrawSpiralCurve strokes a logarithmic spiral sampled at SampleCount
// points: radius(t) = baseRadius · Phi^(t·Turns) for t in [0, 1], centered
// at (CenterXFactor·width, CenterYFactor·height). Every MarkerInterval-th
// sample, starting at index 0, receives a small filled marker dot.
func DrawSpiralCurve(s Surface, dims Dimensions, color string, cfg SpiralConfig) SpiralStats {
	w := float64(dims.Width)
	h := float64(dims.Height)
	cx := cfg.CenterXFactor * w
	cy := cfg.CenterYFactor * h
	baseRadius := dims.minDim() / cfg.BaseRadiusDivisor
	lineWidth := dims.minDim() / defaultNumerology.NinetyNine

	// Denominator guard keeps a direct single-sample call from dividing
	// by zero; merged configs always have SampleCount ≥ 2.
	steps := cfg.SampleCount - 1
	if steps < 1 {
		steps = 1
	}

	spiralPoint := func(i int) (float64, float64) {
		t := float64(i) / float64(steps)
		angle := t * cfg.Turns * 2 * math.Pi
		radius := baseRadius * math.Pow(cfg.Phi, t*cfg.Turns)
		return cx + math.Cos(angle)*radius, cy + math.Sin(angle)*radius
	}

	s.SetStroke(ColorWithAlpha(color, cfg.Alpha))
	s.SetLineWidth(lineWidth)
	s.SetLineCap("round")
	s.SetLineJoin("round")

	s.BeginPath()
	for i := 0; i < cfg.SampleCount; i++ {
		x, y := spiralPoint(i)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.Stroke()

	// Same floor as above; a zero interval in a hand-built config would
	// otherwise never advance the marker loop.
	interval := cfg.MarkerInterval
	if interval < 1 {
		interval = 1
	}

	s.SetFill(ColorWithAlpha(color, cfg.Alpha))
	markers := 0
	for i := 0; i < cfg.SampleCount; i += interval {
		x, y := spiralPoint(i)
		s.BeginPath()
		s.Arc(x, y, lineWidth*2, 0, 2*math.Pi)
		s.Fill()
		markers++
	}

	return SpiralStats{Samples: cfg.SampleCount, Markers: markers}
}

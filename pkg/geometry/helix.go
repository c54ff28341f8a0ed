package geometry

import "math"

// HelixStats reports what [DrawHelixLattice] painted.
type HelixStats struct {
	StrandPoints int // samples across both strands
	CrossTies    int // connecting rungs drawn
}

// DrawHelixLattice strokes two sinusoidal strands half a cycle out of
// phase, running left to right across the full width over Cycles
// oscillations, then connects them with CrossTieCount evenly spaced rungs.
// Strand amplitude and midline separation derive from the height via their
// divisors.
func DrawHelixLattice(s Surface, dims Dimensions, strandColor, rungColor string, cfg HelixConfig) HelixStats {
	w := float64(dims.Width)
	h := float64(dims.Height)
	amplitude := h / cfg.AmplitudeDivisor
	separation := h / cfg.StrandSeparationDivisor

	steps := cfg.SampleCount - 1
	if steps < 1 {
		steps = 1
	}

	strandPoint := func(t float64, second bool) (float64, float64) {
		phase := t * cfg.Cycles * 2 * math.Pi
		offset := -separation / 2
		if second {
			phase += math.Pi
			offset = separation / 2
		}
		return t * w, h/2 + offset + math.Sin(phase)*amplitude
	}

	s.SetLineWidth(dims.minDim() / defaultNumerology.NinetyNine)
	s.SetLineCap("round")
	s.SetLineJoin("round")
	s.SetStroke(ColorWithAlpha(strandColor, cfg.StrandAlpha))

	for _, second := range []bool{false, true} {
		s.BeginPath()
		for i := 0; i < cfg.SampleCount; i++ {
			t := float64(i) / float64(steps)
			x, y := strandPoint(t, second)
			if i == 0 {
				s.MoveTo(x, y)
			} else {
				s.LineTo(x, y)
			}
		}
		s.Stroke()
	}

	ties := cfg.CrossTieCount
	if ties < 1 {
		ties = 1
	}
	s.SetStroke(ColorWithAlpha(rungColor, cfg.RungAlpha))
	for k := 0; k < ties; k++ {
		t := 0.5
		if ties > 1 {
			t = float64(k) / float64(ties-1)
		}
		x1, y1 := strandPoint(t, false)
		x2, y2 := strandPoint(t, true)
		s.BeginPath()
		s.MoveTo(x1, y1)
		s.LineTo(x2, y2)
		s.Stroke()
	}

	return HelixStats{StrandPoints: cfg.SampleCount * 2, CrossTies: ties}
}

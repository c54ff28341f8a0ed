package geometry

import "math"

// Dimensions is a resolved, positive-integer pixel size.
type Dimensions struct {
	Width  int
	Height int
}

// ResolveDimensions determines the effective render size. For each axis a
// positive-finite override wins, floored to a whole pixel; otherwise the
// surface's currently reported size is used. If neither source yields a
// positive integer for either axis the resolver returns nil rather than
// guessing.
//
// On success the surface's reported size is updated to match, a
// deliberate side effect, since most drawing surfaces must be sized by the
// caller before first use.
func ResolveDimensions(s Surface, width, height *float64) *Dimensions {
	curW, curH := s.Size()

	w := resolveAxis(width, curW)
	h := resolveAxis(height, curH)
	if w <= 0 || h <= 0 {
		return nil
	}

	s.SetSize(w, h)
	return &Dimensions{Width: w, Height: h}
}

// resolveAxis picks the override when positive and finite, floored to an
// integer, else the fallback.
func resolveAxis(override *float64, fallback int) int {
	if override != nil && isPositive(*override) {
		return int(math.Floor(*override))
	}
	return fallback
}

// minDim returns the smaller of the two dimensions as a float64. Stroke
// widths, radii, and padding are all proportioned against it so diagrams
// keep their shape at any aspect ratio.
func (d Dimensions) minDim() float64 {
	if d.Width < d.Height {
		return float64(d.Width)
	}
	return float64(d.Height)
}

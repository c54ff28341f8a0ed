// Package record provides a recording implementation of the geometry
// drawing surface. It performs no rasterization: every call is counted and
// text draws are captured verbatim, which makes it the natural host for
// tests that assert on draw-call behavior (circle counts, notice
// suppression, idempotence) without inspecting pixels.
package record

import "github.com/lumenarts/cosmoglyph/pkg/geometry"

// Counts tallies the drawing operations issued against a [Surface].
type Counts struct {
	BeginPath int
	MoveTo    int
	LineTo    int
	Arc       int
	Stroke    int
	Fill      int
	FillRect  int
	Measure   int
	FillText  int
	Gradients int
}

// Surface is a recording drawing surface. The zero value reports a 0×0
// size; use [New] to start from a concrete size. Not safe for concurrent
// use, matching the renderer's exclusive-access assumption.
type Surface struct {
	width  int
	height int

	Counts Counts
	Texts  []string // every string passed to FillText, in order
}

// New returns a recording surface reporting the given size.
func New(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Size reports the surface's current pixel dimensions.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// SetSize updates the surface's reported pixel dimensions.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Surface) BeginPath()                  { s.Counts.BeginPath++ }
func (s *Surface) MoveTo(x, y float64)         { s.Counts.MoveTo++ }
func (s *Surface) LineTo(x, y float64)         { s.Counts.LineTo++ }
func (s *Surface) Arc(x, y, r, a0, a1 float64) { s.Counts.Arc++ }
func (s *Surface) Stroke()                     { s.Counts.Stroke++ }
func (s *Surface) Fill()                       { s.Counts.Fill++ }
func (s *Surface) FillRect(x, y, w, h float64) { s.Counts.FillRect++ }

// MeasureText counts the call and estimates width as a fixed advance per
// character, which is stable and good enough for layout assertions.
func (s *Surface) MeasureText(text string) float64 {
	s.Counts.Measure++
	return float64(len(text)) * 7
}

// FillText counts the call and captures the drawn string.
func (s *Surface) FillText(text string, x, y float64) {
	s.Counts.FillText++
	s.Texts = append(s.Texts, text)
}

// NewRadialGradient counts the gradient creation and returns a stop sink.
func (s *Surface) NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) geometry.Gradient {
	s.Counts.Gradients++
	return &gradient{}
}

func (s *Surface) SetFillGradient(g geometry.Gradient) {}
func (s *Surface) SetFill(color string)                {}
func (s *Surface) SetStroke(color string)              {}
func (s *Surface) SetLineWidth(w float64)              {}
func (s *Surface) SetLineCap(cap string)               {}
func (s *Surface) SetLineJoin(join string)             {}
func (s *Surface) SetFont(font string)                 {}
func (s *Surface) SetTextAlign(align string)           {}
func (s *Surface) SetTextBaseline(baseline string)     {}

// gradient discards color stops.
type gradient struct{}

func (*gradient) AddColorStop(offset float64, color string) {}

// Ensure Surface implements the drawing contract.
var _ geometry.Surface = (*Surface)(nil)

// Package raster provides a raster (pixel) implementation of the geometry
// drawing surface, backed by the fogleman/gg drawing context.
//
// # Overview
//
// The surface rasterizes draw calls into an RGBA image and encodes it as
// PNG with [Surface.EncodePNG]. It understands the color strings the
// renderer emits, hex ("#RGB", "#RRGGBB") and "rgba(r, g, b, a)", and
// maps the canvas-style paint state onto gg's API.
//
// Text uses gg's built-in bitmap face; SetFont only influences measurement
// scale, which keeps the package free of font-file loading.
package raster

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

// Surface implements [geometry.Surface] over a fogleman/gg context. Not
// safe for concurrent use.
type Surface struct {
	width  int
	height int
	dc     *gg.Context

	fill         color.Color
	fillGradient gg.Gradient
	stroke       color.Color
}

// New returns a raster surface reporting the given size. The pixel buffer
// is allocated lazily on first draw, after dimension resolution has had a
// chance to resize the surface.
func New(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		fill:   color.Black,
		stroke: color.Black,
	}
}

// Size reports the surface's current pixel dimensions.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// SetSize updates the surface's reported pixel dimensions. If a pixel
// buffer already exists at a different size it is discarded; content is
// not preserved across resizes.
func (s *Surface) SetSize(width, height int) {
	if width != s.width || height != s.height {
		s.dc = nil
	}
	s.width = width
	s.height = height
}

// ctx returns the drawing context, allocating the pixel buffer on first
// use.
func (s *Surface) ctx() *gg.Context {
	if s.dc == nil {
		w, h := s.width, s.height
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		s.dc = gg.NewContext(w, h)
	}
	return s.dc
}

func (s *Surface) BeginPath() { s.ctx().ClearPath() }

func (s *Surface) MoveTo(x, y float64) { s.ctx().MoveTo(x, y) }

func (s *Surface) LineTo(x, y float64) { s.ctx().LineTo(x, y) }

// Arc appends a circular arc. gg's DrawArc starts a new subpath joined to
// the current one, matching the renderer's begin/arc/stroke usage.
func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.ctx().DrawArc(x, y, radius, startAngle, endAngle)
}

func (s *Surface) Stroke() {
	dc := s.ctx()
	dc.SetColor(s.stroke)
	dc.Stroke()
}

func (s *Surface) Fill() {
	dc := s.ctx()
	s.applyFill(dc)
	dc.Fill()
}

func (s *Surface) FillRect(x, y, w, h float64) {
	dc := s.ctx()
	dc.ClearPath()
	dc.DrawRectangle(x, y, w, h)
	s.applyFill(dc)
	dc.Fill()
}

// MeasureText reports the advance width of text in gg's current face.
func (s *Surface) MeasureText(text string) float64 {
	w, _ := s.ctx().MeasureString(text)
	return w
}

// FillText draws text at (x, y) with the current fill color.
func (s *Surface) FillText(text string, x, y float64) {
	dc := s.ctx()
	dc.SetColor(s.fill)
	dc.DrawString(text, x, y)
}

// NewRadialGradient creates a radial gradient between two circles.
func (s *Surface) NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) geometry.Gradient {
	return &gradient{g: gg.NewRadialGradient(x0, y0, r0, x1, y1, r1)}
}

// SetFillGradient selects a gradient as the current fill paint. It stays
// in effect until the next SetFill.
func (s *Surface) SetFillGradient(g geometry.Gradient) {
	if rg, ok := g.(*gradient); ok {
		s.fillGradient = rg.g
	}
}

// SetFill selects a solid fill color, clearing any gradient paint.
func (s *Surface) SetFill(c string) {
	s.fill = parseColor(c)
	s.fillGradient = nil
}

// SetStroke selects a solid stroke color.
func (s *Surface) SetStroke(c string) { s.stroke = parseColor(c) }

// SetLineWidth sets the stroke width in pixels.
func (s *Surface) SetLineWidth(w float64) { s.ctx().SetLineWidth(w) }

// SetLineCap sets the stroke cap style.
func (s *Surface) SetLineCap(cap string) {
	switch cap {
	case "round":
		s.ctx().SetLineCap(gg.LineCapRound)
	case "square":
		s.ctx().SetLineCap(gg.LineCapSquare)
	default:
		s.ctx().SetLineCap(gg.LineCapButt)
	}
}

// SetLineJoin sets the stroke join style. gg has no miter join; unknown
// styles fall back to bevel.
func (s *Surface) SetLineJoin(join string) {
	switch join {
	case "round":
		s.ctx().SetLineJoin(gg.LineJoinRound)
	default:
		s.ctx().SetLineJoin(gg.LineJoinBevel)
	}
}

// SetFont is accepted but only gg's built-in face is used; loading font
// files is out of scope for this surface.
func (s *Surface) SetFont(font string) {}

// SetTextAlign is accepted for contract compatibility; the renderer
// positions notice text explicitly and label centering error at the
// built-in face size is negligible.
func (s *Surface) SetTextAlign(align string) {}

// SetTextBaseline is accepted for contract compatibility.
func (s *Surface) SetTextBaseline(baseline string) {}

// EncodePNG writes the rasterized image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.ctx().EncodePNG(w)
}

// applyFill installs the current fill paint on the context.
func (s *Surface) applyFill(dc *gg.Context) {
	if s.fillGradient != nil {
		dc.SetFillStyle(s.fillGradient)
		return
	}
	dc.SetColor(s.fill)
}

// gradient adapts gg's gradient to the geometry contract.
type gradient struct {
	g gg.Gradient
}

func (g *gradient) AddColorStop(offset float64, c string) {
	g.g.AddColorStop(offset, parseColor(c))
}

// parseColor converts the renderer's color strings into a color.Color.
// Supported shapes: "#RGB", "#RRGGBB", "rgb(r, g, b)", and
// "rgba(r, g, b, a)". Anything else parses as opaque black.
func parseColor(s string) color.Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return hexColor(s)
	case strings.HasPrefix(s, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(s, "rgba(%d, %d, %d, %f)", &r, &g, &b, &a); err == nil {
			a = math.Max(0, math.Min(1, a))
			return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(math.Round(a * 255))}
		}
	case strings.HasPrefix(s, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err == nil {
			return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
		}
	}
	return color.Black
}

// hexColor parses #RGB and #RRGGBB.
func hexColor(s string) color.Color {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.Black
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// Ensure Surface implements the drawing contract.
var _ geometry.Surface = (*Surface)(nil)

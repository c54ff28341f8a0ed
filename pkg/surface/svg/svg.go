// Package svg provides an SVG-backed implementation of the geometry
// drawing surface.
//
// # Overview
//
// The surface accumulates draw calls as SVG elements in memory and
// serializes the finished document with [Surface.Document]. It exists so
// the renderer's output can be viewed in a browser, embedded in docs, or
// converted to PNG/PDF, without the renderer knowing anything about SVG.
//
// Paths are built from the move/line/arc calls the renderer issues; radial
// gradients become <radialGradient> defs in user-space units; text
// measurement uses a per-character width estimate, since no font engine is
// loaded.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

// fontCharWidth estimates glyph advance as a fraction of the font size.
const fontCharWidth = 0.55

// defaultFontSize is used until SetFont supplies a size.
const defaultFontSize = 14.0

// Surface implements [geometry.Surface] by writing SVG elements into an
// in-memory buffer. Not safe for concurrent use.
type Surface struct {
	width  int
	height int

	body      bytes.Buffer
	gradients []*radialGradient

	path        strings.Builder
	pathHasMove bool

	fill         string
	fillGradient *radialGradient
	stroke       string
	lineWidth    float64
	lineCap      string
	lineJoin     string
	fontSize     float64
	fontFamily   string
	textAlign    string
	textBaseline string
}

// New returns an SVG surface reporting the given size.
func New(width, height int) *Surface {
	return &Surface{
		width:     width,
		height:    height,
		fill:      "#000000",
		stroke:    "#000000",
		lineWidth: 1,
		fontSize:  defaultFontSize,
	}
}

// Size reports the surface's current pixel dimensions.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// SetSize updates the surface's reported pixel dimensions. The size
// becomes the document's viewBox at serialization time.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// BeginPath discards any path in progress.
func (s *Surface) BeginPath() {
	s.path.Reset()
	s.pathHasMove = false
}

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M %s %s ", coord(x), coord(y))
	s.pathHasMove = true
}

// LineTo adds a line segment to (x, y).
func (s *Surface) LineTo(x, y float64) {
	if !s.pathHasMove {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.path, "L %s %s ", coord(x), coord(y))
}

// Arc adds a circular arc centered at (x, y). Sweeps are split into
// half-turn segments because an SVG arc command cannot represent a full
// circle in one piece.
func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	if sweep <= 0 {
		return
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}

	sx := x + math.Cos(startAngle)*radius
	sy := y + math.Sin(startAngle)*radius
	if s.pathHasMove {
		fmt.Fprintf(&s.path, "L %s %s ", coord(sx), coord(sy))
	} else {
		s.MoveTo(sx, sy)
	}

	segments := int(math.Ceil(sweep / math.Pi))
	angle := startAngle
	for i := 0; i < segments; i++ {
		step := math.Min(math.Pi, startAngle+sweep-angle)
		angle += step
		ex := x + math.Cos(angle)*radius
		ey := y + math.Sin(angle)*radius
		fmt.Fprintf(&s.path, "A %s %s 0 0 1 %s %s ", coord(radius), coord(radius), coord(ex), coord(ey))
	}
}

// Stroke outlines the current path.
func (s *Surface) Stroke() {
	d := strings.TrimSpace(s.path.String())
	if d == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"%s%s/>`+"\n",
		d, s.stroke, coord(s.lineWidth), attr("stroke-linecap", s.lineCap), attr("stroke-linejoin", s.lineJoin))
}

// Fill fills the current path.
func (s *Surface) Fill() {
	d := strings.TrimSpace(s.path.String())
	if d == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s" fill="%s"/>`+"\n", d, s.fillPaint())
}

// FillRect fills an axis-aligned rectangle with the current fill paint.
func (s *Surface) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		coord(x), coord(y), coord(w), coord(h), s.fillPaint())
}

// MeasureText estimates the advance width of text in the current font.
func (s *Surface) MeasureText(text string) float64 {
	return float64(len(text)) * s.fontSize * fontCharWidth
}

// FillText draws text at (x, y) with the current fill, font, and
// alignment state.
func (s *Surface) FillText(text string, x, y float64) {
	fmt.Fprintf(&s.body, `  <text x="%s" y="%s" fill="%s" font-size="%s"%s%s%s>%s</text>`+"\n",
		coord(x), coord(y), s.fillPaint(), coord(s.fontSize),
		attr("font-family", s.fontFamily),
		attr("text-anchor", anchorFor(s.textAlign)),
		attr("dominant-baseline", baselineFor(s.textBaseline)),
		escapeXML(text))
}

// NewRadialGradient creates a radial gradient def between two circles.
func (s *Surface) NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) geometry.Gradient {
	g := &radialGradient{
		id: fmt.Sprintf("grad%d", len(s.gradients)+1),
		cx: x1, cy: y1, r: r1,
		fx: x0, fy: y0,
	}
	s.gradients = append(s.gradients, g)
	return g
}

// SetFillGradient selects a gradient as the current fill paint. It stays
// in effect until the next SetFill.
func (s *Surface) SetFillGradient(g geometry.Gradient) {
	if rg, ok := g.(*radialGradient); ok {
		s.fillGradient = rg
	}
}

// SetFill selects a solid fill color, clearing any gradient paint.
func (s *Surface) SetFill(color string) {
	s.fill = color
	s.fillGradient = nil
}

// SetStroke selects a solid stroke color.
func (s *Surface) SetStroke(color string) { s.stroke = color }

// SetLineWidth sets the stroke width in pixels.
func (s *Surface) SetLineWidth(w float64) { s.lineWidth = w }

// SetLineCap sets the stroke cap style.
func (s *Surface) SetLineCap(cap string) { s.lineCap = cap }

// SetLineJoin sets the stroke join style.
func (s *Surface) SetLineJoin(join string) { s.lineJoin = join }

// SetFont parses a CSS-shorthand font ("14px serif") into size and family.
// Unparseable input keeps the previous font.
func (s *Surface) SetFont(font string) {
	parts := strings.SplitN(strings.TrimSpace(font), " ", 2)
	if !strings.HasSuffix(parts[0], "px") {
		return
	}
	size, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "px"), 64)
	if err != nil || size <= 0 {
		return
	}
	s.fontSize = size
	if len(parts) == 2 {
		s.fontFamily = parts[1]
	}
}

// SetTextAlign sets horizontal text alignment.
func (s *Surface) SetTextAlign(align string) { s.textAlign = align }

// SetTextBaseline sets the vertical text baseline.
func (s *Surface) SetTextBaseline(baseline string) { s.textBaseline = baseline }

// Document serializes everything drawn so far as a complete SVG document.
// The surface remains usable afterwards; later calls extend the same body.
func (s *Surface) Document() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.width, s.height, s.width, s.height)

	if len(s.gradients) > 0 {
		buf.WriteString("  <defs>\n")
		for _, g := range s.gradients {
			g.writeTo(&buf)
		}
		buf.WriteString("  </defs>\n")
	}

	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// fillPaint resolves the current fill to an SVG paint value.
func (s *Surface) fillPaint() string {
	if s.fillGradient != nil {
		return fmt.Sprintf("url(#%s)", s.fillGradient.id)
	}
	return s.fill
}

// anchorFor maps canvas text alignment to the SVG text-anchor attribute.
func anchorFor(align string) string {
	switch align {
	case "center":
		return "middle"
	case "right":
		return "end"
	case "left":
		return "start"
	}
	return ""
}

// baselineFor maps canvas text baselines to the SVG dominant-baseline
// attribute. The alphabetic baseline is SVG's default and needs no
// attribute.
func baselineFor(baseline string) string {
	switch baseline {
	case "middle":
		return "central"
	case "top":
		return "hanging"
	case "bottom":
		return "text-after-edge"
	}
	return ""
}

// radialGradient is a gradient def under construction.
type radialGradient struct {
	id        string
	cx, cy, r float64
	fx, fy    float64
	stops     []gradientStop
}

type gradientStop struct {
	offset float64
	color  string
}

// AddColorStop records a color stop for serialization.
func (g *radialGradient) AddColorStop(offset float64, color string) {
	g.stops = append(g.stops, gradientStop{offset: offset, color: color})
}

func (g *radialGradient) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `    <radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s">`+"\n",
		g.id, coord(g.cx), coord(g.cy), coord(g.r), coord(g.fx), coord(g.fy))
	for _, st := range g.stops {
		fmt.Fprintf(buf, `      <stop offset="%s" stop-color="%s"/>`+"\n", coord(st.offset), st.color)
	}
	buf.WriteString("    </radialGradient>\n")
}

// coord formats a coordinate with enough precision for crisp output and no
// trailing noise.
func coord(v float64) string {
	out := fmt.Sprintf("%.2f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}

// attr renders an optional attribute, omitted entirely when the value is
// empty.
func attr(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(" %s=%q", name, value)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Ensure Surface implements the drawing contract.
var _ geometry.Surface = (*Surface)(nil)

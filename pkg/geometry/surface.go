package geometry

// Surface is the minimal drawing capability the renderer requires from its
// host. Any implementation satisfying this contract is interchangeable: an
// on-screen canvas, an offscreen raster buffer, an SVG writer, or a test
// double that only counts calls.
//
// Coordinates follow the usual raster convention: origin at the top-left,
// x increasing right, y increasing down, angles in radians.
//
// The renderer mutates the surface's reported size once during dimension
// resolution (most hosts must be sized before first use) and otherwise only
// issues paint calls. It assumes exclusive, non-concurrent access for the
// duration of one render.
type Surface interface {
	// Size reports the surface's current pixel dimensions.
	Size() (width, height int)
	// SetSize updates the surface's reported pixel dimensions.
	SetSize(width, height int)

	// BeginPath starts a new path, discarding any path in progress.
	BeginPath()
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)
	// LineTo adds a line segment from the current point to (x, y).
	LineTo(x, y float64)
	// Arc adds a circular arc centered at (x, y) with the given radius,
	// from startAngle to endAngle.
	Arc(x, y, radius, startAngle, endAngle float64)
	// Stroke outlines the current path with the current stroke state.
	Stroke()
	// Fill fills the current path with the current fill state.
	Fill()
	// FillRect fills an axis-aligned rectangle with the current fill state.
	FillRect(x, y, w, h float64)

	// MeasureText reports the advance width of text in the current font.
	MeasureText(text string) float64
	// FillText draws text at (x, y) with the current fill, font, and
	// alignment state.
	FillText(text string, x, y float64)

	// NewRadialGradient creates a radial gradient between two circles.
	// Color stops are added through the returned [Gradient] before use.
	NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient
	// SetFillGradient selects a gradient as the current fill paint.
	SetFillGradient(g Gradient)

	// SetFill selects a solid fill color. Colors are CSS-style strings:
	// hex ("#RGB", "#RRGGBB"), "rgba(...)", or named colors.
	SetFill(color string)
	// SetStroke selects a solid stroke color.
	SetStroke(color string)
	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)
	// SetLineCap sets the stroke cap style ("butt", "round", "square").
	SetLineCap(cap string)
	// SetLineJoin sets the stroke join style ("miter", "round", "bevel").
	SetLineJoin(join string)
	// SetFont sets the font used by MeasureText and FillText,
	// CSS shorthand style (e.g. "14px serif").
	SetFont(font string)
	// SetTextAlign sets horizontal text alignment ("left", "center", "right").
	SetTextAlign(align string)
	// SetTextBaseline sets the vertical text baseline ("top", "middle",
	// "alphabetic", "bottom").
	SetTextBaseline(baseline string)
}

// Gradient accumulates color stops for a gradient paint created by
// [Surface.NewRadialGradient].
type Gradient interface {
	// AddColorStop adds a color at the given offset in [0, 1].
	AddColorStop(offset float64, color string)
}

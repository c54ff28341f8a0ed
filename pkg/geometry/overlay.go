package geometry

import "strings"

// noticeFont is the fixed font for the notice banner.
const noticeFont = "14px serif"

// noticeLineHeight approximates the banner text height for the backing
// strip; the Surface contract only measures width.
const noticeLineHeight = 18.0

// FillBackground paints a solid rectangle of the background color across
// the full surface, then overlays a radial gradient from a brightened
// center tone to fully transparent edges. The gradient gives the diagrams
// painterly depth without any motion.
func FillBackground(s Surface, dims Dimensions, bg string) {
	w := float64(dims.Width)
	h := float64(dims.Height)

	s.SetFill(bg)
	s.FillRect(0, 0, w, h)

	g := s.NewRadialGradient(w/2, h/2, 0, w/2, h/2, dims.minDim()/2)
	g.AddColorStop(0, ColorWithAlpha(brighten(bg, 0.35), 0.45))
	g.AddColorStop(1, ColorWithAlpha(bg, 0))
	s.SetFillGradient(g)
	s.FillRect(0, 0, w, h)
}

// DrawNotice paints the status banner in the bottom-left corner: a
// translucent strip sized to the measured text, with the notice drawn on
// top. A notice that is empty after trimming produces no drawing calls at
// all.
func DrawNotice(s Surface, dims Dimensions, muted, ink, notice string) {
	text := strings.TrimSpace(notice)
	if text == "" {
		return
	}

	s.SetFont(noticeFont)
	s.SetTextAlign("left")
	s.SetTextBaseline("middle")
	width := s.MeasureText(text)

	pad := noticeLineHeight / 2
	x := pad
	y := float64(dims.Height) - noticeLineHeight - pad

	s.SetFill(ColorWithAlpha(muted, 0.3))
	s.FillRect(x-pad/2, y-noticeLineHeight/2-pad/2, width+pad, noticeLineHeight+pad)

	s.SetFill(ColorWithAlpha(ink, 0.9))
	s.FillText(text, x, y)
}

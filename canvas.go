package glabel

// Rect is a float64 bounding box. For text bounds, Min/Max are relative
// to the baseline origin: MinY is negative above the baseline.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// TextMeasurer measures text under a given paint. It is one of the two
// capabilities a label needs from its platform; injecting it rather than
// binding to a concrete backend lets tests substitute a double.
type TextMeasurer interface {
	// TextWidth returns the horizontal advance of s in pixels.
	TextWidth(s string, p *Paint) float64

	// TextBounds returns the tight ink box of s, relative to a baseline
	// origin at (0, 0). Its Height is the glyph ink height, not the
	// font's nominal line height.
	TextBounds(s string, p *Paint) Rect
}

// Canvas is a drawing surface. DrawText positions s with x at the left
// edge and y on the baseline.
type Canvas interface {
	TextMeasurer

	DrawText(s string, x, y float64, p *Paint)
}

// Invalidator schedules a repaint. A label calls Invalidate after every
// mutation when an invalidator is attached; the host framework decides
// when the actual redraw happens.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a plain function to the Invalidator interface.
type InvalidatorFunc func()

// Invalidate implements Invalidator.
func (f InvalidatorFunc) Invalidate() { f() }

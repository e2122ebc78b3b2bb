package glabel

import (
	"errors"

	"github.com/gogpu/glabel/font"
	"github.com/gogpu/glabel/resource"
)

// ErrNoResources is returned by SetTextResource when the label has no
// resource table attached.
var ErrNoResources = errors.New("glabel: no resource table attached")

// Label is a graphical object whose appearance consists of a text string.
//
// The stored origin behaves as a top-left corner: Draw shifts the baseline
// down by the measured ink height before issuing the draw call. Width and
// height are recomputed from the current text and font on every call, so
// they are always consistent with the label's state.
//
// A Label is not safe for concurrent use; all calls are expected on the
// host's single UI thread.
type Label struct {
	text string
	x, y float64

	paint       *Paint
	measurer    TextMeasurer
	resources   resource.Table
	invalidator Invalidator
}

// New creates a label with the given text and top-left origin, using the
// default font and a fill-only paint.
func New(m TextMeasurer, text string, x, y float64, opts ...Option) *Label {
	l := &Label{
		text:     text,
		x:        x,
		y:        y,
		paint:    NewPaint(),
		measurer: m,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFromResource creates a label whose text is resolved by looking up key
// in res. Returns a *resource.NotFoundError if the key is absent, and
// ErrNoResources if res is nil. The table is retained, so later
// SetTextResource calls resolve against it.
func NewFromResource(m TextMeasurer, res resource.Table, key string, x, y float64, opts ...Option) (*Label, error) {
	if res == nil {
		return nil, ErrNoResources
	}
	text, err := res.Resolve(key)
	if err != nil {
		return nil, err
	}
	l := New(m, text, x, y, opts...)
	if l.resources == nil {
		l.resources = res
	}
	return l, nil
}

// Text returns the string displayed by this label.
func (l *Label) Text() string {
	return l.text
}

// Font returns the label's current font descriptor.
func (l *Label) Font() font.Descriptor {
	return l.paint.Font
}

// FontStyle returns the label's current font style variant.
func (l *Label) FontStyle() font.Style {
	return l.paint.Font.Style
}

// FontSize returns the label's current font size in points.
func (l *Label) FontSize() float64 {
	return l.paint.Font.Size
}

// X returns the x-coordinate of the label's top-left origin.
func (l *Label) X() float64 {
	return l.x
}

// Y returns the y-coordinate of the label's top-left origin.
func (l *Label) Y() float64 {
	return l.y
}

// Paint returns the label's paint. The label owns it; callers may adjust
// the fill color but should use the font mutators for font changes so
// repaints get scheduled.
func (l *Label) Paint() *Paint {
	return l.paint
}

// SetText changes the string displayed by this label.
func (l *Label) SetText(text string) {
	l.text = text
	l.invalidate()
}

// SetTextResource changes the displayed string to the resolution of key in
// the label's resource table. The text is left unchanged on error.
func (l *Label) SetTextResource(key string) error {
	if l.resources == nil {
		return ErrNoResources
	}
	text, err := l.resources.Resolve(key)
	if err != nil {
		return err
	}
	l.text = text
	l.invalidate()
	return nil
}

// SetFont replaces the font descriptor wholesale.
func (l *Label) SetFont(d font.Descriptor) {
	l.paint.Font = d
	l.invalidate()
}

// SetFontFamily replaces the family and size. The style variant reverts to
// font.StyleNormal beyond whatever the family itself encodes.
func (l *Label) SetFontFamily(family string, size float64) {
	l.paint.Font = font.Descriptor{Family: family, Style: font.StyleNormal, Size: size}
	l.invalidate()
}

// SetFontStyled replaces the family, style variant, and size. Returns a
// *font.InvalidStyleError, leaving the font unchanged, when style is not
// one of the four variants.
func (l *Label) SetFontStyled(family string, style font.Style, size float64) error {
	d, err := font.New(family, style, size)
	if err != nil {
		return err
	}
	l.paint.Font = d
	l.invalidate()
	return nil
}

// SetFontStyle re-derives the font from the current family at the given
// style variant. Returns a *font.InvalidStyleError, leaving the font
// unchanged, when style is not one of the four variants.
func (l *Label) SetFontStyle(style font.Style) error {
	d, err := l.paint.Font.WithStyle(style)
	if err != nil {
		return err
	}
	l.paint.Font = d
	l.invalidate()
	return nil
}

// SetFontSize replaces only the size component of the font.
func (l *Label) SetFontSize(size float64) {
	l.paint.Font = l.paint.Font.WithSize(size)
	l.invalidate()
}

// SetLocation moves the label's top-left origin.
func (l *Label) SetLocation(x, y float64) {
	l.x = x
	l.y = y
	l.invalidate()
}

// Move shifts the label's top-left origin by (dx, dy).
func (l *Label) Move(dx, dy float64) {
	l.SetLocation(l.x+dx, l.y+dy)
}

// Width returns the horizontal advance of the label's text under its
// current font, measured fresh on every call. Returns 0 without a
// measurer.
func (l *Label) Width() float64 {
	if l.measurer == nil {
		return 0
	}
	return l.measurer.TextWidth(l.text, l.paint)
}

// Height returns the ink height of the label's text under its current
// font: the tight glyph bounding box, not the font's nominal line height.
// Returns 0 without a measurer.
func (l *Label) Height() float64 {
	if l.measurer == nil {
		return 0
	}
	return l.measurer.TextBounds(l.text, l.paint).Height()
}

// Draw renders the label with exactly one DrawText call on c. The draw
// primitive expects a baseline y while the stored origin is a top-left
// corner; shifting down by the ink height measured on c reconciles the
// two. Callers depend on this exact offset, imprecise as it is about
// ascent and leading.
func (l *Label) Draw(c Canvas) {
	if c == nil {
		return
	}
	height := c.TextBounds(l.text, l.paint).Height()
	c.DrawText(l.text, l.x, l.y+height, l.paint)
}

func (l *Label) invalidate() {
	if l.invalidator != nil {
		l.invalidator.Invalidate()
	}
}

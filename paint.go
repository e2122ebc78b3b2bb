package glabel

import (
	"image/color"

	"github.com/gogpu/glabel/font"
)

// Paint represents the styling information for drawing a label: the font
// descriptor, the fill color, and the stroke width. Each label exclusively
// owns its Paint; backends receive it on every measure and draw call and
// must not retain it.
type Paint struct {
	// Font selects the family, style variant, and size.
	Font font.Descriptor

	// Color is the fill color for glyphs.
	Color color.Color

	// LineWidth is the stroke width. Text is fill-only, so it stays 0;
	// the field exists so a Paint can describe stroked shapes on backends
	// that support them.
	LineWidth float64
}

// NewPaint creates a Paint with the default font, black fill, and a
// stroke width of 0.
func NewPaint() *Paint {
	return &Paint{
		Font:      font.Default(),
		Color:     color.Black,
		LineWidth: 0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	return &Paint{
		Font:      p.Font,
		Color:     p.Color,
		LineWidth: p.LineWidth,
	}
}

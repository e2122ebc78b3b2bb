// Package font provides font descriptors, style variants, and a registry
// mapping descriptors to loaded font sources.
//
// A Descriptor is the (family, style, size) triple that selects glyphs and
// scale. Families are registered as Sources (parsed TTF/OTF data); the
// Registry resolves a Descriptor to the Source backing it.
package font

// DefaultFamily is the family used by labels that never had a font set.
const DefaultFamily = "sans"

// DefaultSize is the size in points used by labels that never had a font set.
const DefaultSize = 20.0

// Descriptor selects a font: a family name, one of the four style
// variants, and a size in points. Descriptor is a small value type and is
// compared with ==.
type Descriptor struct {
	// Family is the family name, e.g. "sans" or "serif".
	Family string

	// Style is the face variant within the family.
	Style Style

	// Size is the size in points.
	Size float64
}

// New creates a Descriptor, validating the style against the four defined
// variants. Returns an *InvalidStyleError for anything else.
func New(family string, style Style, size float64) (Descriptor, error) {
	if err := checkStyle(style); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Family: family, Style: style, Size: size}, nil
}

// Default returns the descriptor used by labels that never had a font set:
// the default family at regular style, 20 points.
func Default() Descriptor {
	return Descriptor{Family: DefaultFamily, Style: StyleNormal, Size: DefaultSize}
}

// WithStyle returns a copy of d at the given style, keeping family and size.
// Returns an *InvalidStyleError if style is not one of the four variants.
func (d Descriptor) WithStyle(style Style) (Descriptor, error) {
	if err := checkStyle(style); err != nil {
		return Descriptor{}, err
	}
	d.Style = style
	return d, nil
}

// WithSize returns a copy of d at the given size.
func (d Descriptor) WithSize(size float64) Descriptor {
	d.Size = size
	return d
}

package glabel

import (
	"image/color"

	"github.com/gogpu/glabel/font"
	"github.com/gogpu/glabel/resource"
)

// Option configures a Label during creation.
//
// Example:
//
//	label := glabel.New(canvas, "Hi", 0, 0,
//		glabel.WithFont(font.Descriptor{Family: "serif", Style: font.StyleBold, Size: 14}),
//		glabel.WithInvalidator(window),
//	)
type Option func(*Label)

// WithFont sets the initial font descriptor instead of font.Default().
func WithFont(d font.Descriptor) Option {
	return func(l *Label) {
		l.paint.Font = d
	}
}

// WithColor sets the fill color instead of black.
func WithColor(c color.Color) Option {
	return func(l *Label) {
		l.paint.Color = c
	}
}

// WithResources attaches a resource table so SetTextResource can resolve
// keys on a label created with plain text.
func WithResources(t resource.Table) Option {
	return func(l *Label) {
		l.resources = t
	}
}

// WithInvalidator attaches the repaint hook called after every mutation.
func WithInvalidator(inv Invalidator) Option {
	return func(l *Label) {
		l.invalidator = inv
	}
}

// Package glabel provides a label widget: a text string with a font
// descriptor that measures and draws itself through an injected drawing
// surface.
//
// # Overview
//
// A Label holds text, an origin, and a Paint carrying the font descriptor.
// Width and height are derived from the current text and font on every
// call, never cached. Drawing issues exactly one DrawText call, shifting
// the baseline down by the measured ink height so that the stored origin
// behaves as a top-left corner.
//
// # Quick Start
//
//	reg := font.Builtin()
//	img := image.NewRGBA(image.Rect(0, 0, 256, 64))
//	canvas := soft.New(img, reg)
//
//	label := glabel.New(canvas, "Hello, world", 10, 10)
//	label.Draw(canvas)
//
// # Collaborators
//
// The widget delegates all real work to two injected capabilities: a
// TextMeasurer for width and ink bounds, and a Canvas for the draw call.
// Any backend implementing them works; backend/soft is the reference
// software implementation on top of golang.org/x/image. Localized text is
// resolved through a resource.Table at construction or set time.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. DrawText
// receives a baseline y; Label.Draw performs the top-left to baseline
// conversion.
package glabel

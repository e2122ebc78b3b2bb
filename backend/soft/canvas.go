// Package soft is the reference software backend: a glabel.Canvas that
// renders into any draw.Image using golang.org/x/image font faces.
package soft

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glabel"
	"github.com/gogpu/glabel/font"
)

// Canvas implements glabel.Canvas on top of a destination image. Fonts are
// resolved through a font.Registry; faces are cached per (source, size).
//
// Canvas is safe for concurrent use: a single mutex guards the face cache
// and the faces themselves, which keep internal buffers.
type Canvas struct {
	dst draw.Image
	reg *font.Registry

	// shaped selects HarfBuzz advances for TextWidth.
	shaped bool

	mu    sync.Mutex
	faces map[faceKey]xfont.Face
}

type faceKey struct {
	src  *font.Source
	size float64
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithShapedMeasurement makes TextWidth use HarfBuzz shaping via
// font.ShapedAdvance, which accounts for kerning pairs and ligatures. The
// default is the plain advance sum of the x/image face, which matches what
// DrawText produces.
func WithShapedMeasurement() Option {
	return func(c *Canvas) {
		c.shaped = true
	}
}

// New creates a Canvas drawing into dst, resolving fonts through reg.
func New(dst draw.Image, reg *font.Registry, opts ...Option) *Canvas {
	c := &Canvas{
		dst:   dst,
		reg:   reg,
		faces: make(map[faceKey]xfont.Face),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrawText draws s with x at the left edge and y on the baseline, filled
// with the paint's color. Drawing never fails: an unresolvable font is
// logged and the call becomes a no-op.
func (c *Canvas) DrawText(s string, x, y float64, p *glabel.Paint) {
	if s == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	face, _, err := c.faceLocked(p)
	if err != nil {
		glabel.Logger().Warn("soft: cannot draw text", "font", p.Font.Family, "err", err)
		return
	}

	col := p.Color
	if col == nil {
		col = color.Black
	}
	d := &xfont.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// TextWidth returns the horizontal advance of s in pixels. Returns 0 for
// empty text or an unresolvable font.
func (c *Canvas) TextWidth(s string, p *glabel.Paint) float64 {
	if s == "" {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	face, src, err := c.faceLocked(p)
	if err != nil {
		return 0
	}
	if c.shaped {
		if w := font.ShapedAdvance(src, p.Font.Size, s); w > 0 {
			return w
		}
		// Source not parseable by go-text; fall through to the face.
	}
	return fixedToFloat(xfont.MeasureString(face, s))
}

// TextBounds returns the tight ink box of s relative to a baseline origin
// at (0, 0). The zero Rect is returned for empty text or an unresolvable
// font.
func (c *Canvas) TextBounds(s string, p *glabel.Paint) glabel.Rect {
	if s == "" {
		return glabel.Rect{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	face, _, err := c.faceLocked(p)
	if err != nil {
		return glabel.Rect{}
	}
	bounds, _ := xfont.BoundString(face, s)
	return glabel.Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: fixedToFloat(bounds.Min.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: fixedToFloat(bounds.Max.Y),
	}
}

// faceLocked resolves the paint's descriptor to a cached face. The caller
// must hold c.mu.
func (c *Canvas) faceLocked(p *glabel.Paint) (xfont.Face, *font.Source, error) {
	src, err := c.reg.Lookup(p.Font)
	if err != nil {
		return nil, nil, err
	}

	key := faceKey{src: src, size: p.Font.Size}
	if face, ok := c.faces[key]; ok {
		return face, src, nil
	}

	face, err := src.Face(p.Font.Size)
	if err != nil {
		return nil, nil, err
	}
	c.faces[key] = face
	glabel.Logger().Debug("soft: created face", "font", src.Name(), "size", p.Font.Size)
	return face, src, nil
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

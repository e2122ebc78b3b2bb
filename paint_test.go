package glabel

import (
	"image/color"
	"testing"

	"github.com/gogpu/glabel/font"
)

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Font != font.Default() {
		t.Errorf("Font = %+v, want %+v", p.Font, font.Default())
	}
	if p.Color != color.Black {
		t.Errorf("Color = %v, want black", p.Color)
	}
	if p.LineWidth != 0 {
		t.Errorf("LineWidth = %v, want 0", p.LineWidth)
	}
}

func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.Font = font.Descriptor{Family: "serif", Style: font.StyleBold, Size: 9}
	p.Color = color.RGBA{G: 128, A: 255}

	c := p.Clone()
	if c == p {
		t.Fatal("Clone() returned the same pointer")
	}
	if c.Font != p.Font || c.Color != p.Color || c.LineWidth != p.LineWidth {
		t.Errorf("Clone() = %+v, want copy of %+v", c, p)
	}

	// Mutating the clone must not touch the original.
	c.Font = font.Default()
	if p.Font.Family != "serif" {
		t.Error("mutating clone changed the original paint")
	}
}

func TestLabelOwnsPaint(t *testing.T) {
	a := New(&stubCanvas{}, "a", 0, 0)
	b := New(&stubCanvas{}, "b", 0, 0)
	if a.Paint() == b.Paint() {
		t.Error("two labels share one Paint; each label must own its paint")
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: -10, MaxX: 21, MaxY: 2}
	if got := r.Width(); got != 20 {
		t.Errorf("Width() = %v, want 20", got)
	}
	if got := r.Height(); got != 12 {
		t.Errorf("Height() = %v, want 12", got)
	}
	if r.Empty() {
		t.Error("Empty() = true for a non-empty rect")
	}
	if !(Rect{}).Empty() {
		t.Error("Empty() = false for the zero rect")
	}
}

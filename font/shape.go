package font

import (
	"sync"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing one across
// sequential calls avoids reallocating its buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// ShapedAdvance returns the horizontal advance of text at the given size
// in points, computed with HarfBuzz shaping via go-text/typesetting. The
// result accounts for kerning pairs and ligatures, unlike the plain
// per-glyph advance sum of an x/image face.
//
// Returns 0 for empty text, a nil source, or a source go-text could not
// parse.
func ShapedAdvance(src *Source, size float64, text string) float64 {
	if src == nil || text == "" {
		return 0
	}
	shaped := src.shaped
	if shaped == nil {
		return 0
	}

	// tsfont.Face is not safe for concurrent use; wrap the shared
	// read-only Font per call. The wrapper is cheap.
	face := tsfont.NewFace(shaped)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	return float64(advance) / 64.0
}

// detectScript returns the script of the first non-space rune. A simple
// heuristic; mixed-script text should be split into runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

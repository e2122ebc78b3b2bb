package font

import (
	"bytes"
	"fmt"
	"os"

	tsfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a loaded font file. One Source backs every face created from
// it, at any size; it is heavyweight and meant to be shared, typically
// through a Registry.
//
// Source is read-only after creation and safe for concurrent use.
type Source struct {
	data   []byte
	parsed *opentype.Font

	// shaped is the go-text representation, used for metadata
	// classification and HarfBuzz shaping. It is nil when go-text cannot
	// parse the data; the x/image path still works then.
	shaped *tsfont.Font

	name  string
	style Style
}

// NewSource parses font data (TTF or OTF). The data slice is copied and
// can be reused after the call.
//
// The source's family name is read from the font's name table, and its
// style variant is classified from the font's own style and weight
// metadata, so that Registry.Register can file it without caller input.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &Source{
		data:   dataCopy,
		parsed: parsed,
		name:   familyName(parsed),
		style:  StyleNormal,
	}
	if face, err := tsfont.ParseTTF(bytes.NewReader(dataCopy)); err == nil {
		s.shaped = face.Font
		s.style = classify(face.Describe().Aspect)
	}
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font's family name, or "" if the name table has none.
func (s *Source) Name() string {
	return s.name
}

// Style returns the style variant this source was classified as.
func (s *Source) Style() Style {
	return s.style
}

// Face creates an x/image font.Face at the given size in points, 72 DPI.
// Faces are not safe for concurrent use; callers that share faces must
// cache and lock them (the soft backend does).
func (s *Source) Face(size float64) (xfont.Face, error) {
	face, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}
	return face, nil
}

// familyName reads the family name from the font's name table.
func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// classify maps a go-text aspect onto one of the four style variants.
func classify(a tsfont.Aspect) Style {
	bold := a.Weight >= tsfont.WeightBold
	italic := a.Style == tsfont.StyleItalic
	switch {
	case bold && italic:
		return StyleBoldItalic
	case bold:
		return StyleBold
	case italic:
		return StyleItalic
	default:
		return StyleNormal
	}
}

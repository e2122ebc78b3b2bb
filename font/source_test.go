package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// newTestSource parses one of the embedded fonts for use in tests.
func newTestSource(t *testing.T, data []byte) *Source {
	t.Helper()
	src, err := NewSource(data)
	if err != nil {
		t.Fatalf("NewSource() = %v", err)
	}
	return src
}

func TestNewSource(t *testing.T) {
	src := newTestSource(t, goregular.TTF)
	if src.Name() == "" {
		t.Error("Name() = \"\", want the family from the name table")
	}
	if got := src.Style(); got != StyleNormal {
		t.Errorf("Style() = %v, want %v", got, StyleNormal)
	}
}

func TestNewSourceClassifiesVariants(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Style
	}{
		{"regular", goregular.TTF, StyleNormal},
		{"italic", goitalic.TTF, StyleItalic},
		{"bold", gobold.TTF, StyleBold},
		{"bold italic", gobolditalic.TTF, StyleBoldItalic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestSource(t, tt.data)
			if got := src.Style(); got != tt.want {
				t.Errorf("Style() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSourceEmptyData(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceGarbageData(t *testing.T) {
	_, err := NewSource([]byte("this is not a font"))
	if err == nil {
		t.Error("NewSource(garbage) = nil error, want parse failure")
	}
}

func TestNewSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	src := newTestSource(t, data)

	// Clobbering the caller's slice must not affect the source.
	for i := range data {
		data[i] = 0
	}
	if _, err := src.Face(16); err != nil {
		t.Errorf("Face() after caller mutated input data = %v, want nil", err)
	}
}

func TestSourceFace(t *testing.T) {
	src := newTestSource(t, goregular.TTF)
	face, err := src.Face(16)
	if err != nil {
		t.Fatalf("Face(16) = %v", err)
	}
	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("face metrics = %+v, want positive ascent and descent", m)
	}
}

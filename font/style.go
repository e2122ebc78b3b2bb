package font

import "fmt"

// Style identifies one of the four face variants a family can provide.
type Style int

const (
	// StyleNormal is the upright, regular-weight variant.
	StyleNormal Style = iota
	// StyleItalic is the slanted variant at regular weight.
	StyleItalic
	// StyleBold is the upright variant at bold weight.
	StyleBold
	// StyleBoldItalic is the slanted variant at bold weight.
	StyleBoldItalic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleBold:
		return "Bold"
	case StyleBoldItalic:
		return "BoldItalic"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the four defined styles.
func (s Style) Valid() bool {
	return s >= StyleNormal && s <= StyleBoldItalic
}

// InvalidStyleError is returned when a style value outside the four
// defined constants reaches a validating call. The most common cause is
// passing the size where the style belongs, so the message calls that out.
type InvalidStyleError struct {
	Style Style
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("font: invalid style (%d); did you mix up the order of the style and size parameters?", int(e.Style))
}

// checkStyle returns an *InvalidStyleError if s is not a defined style.
func checkStyle(s Style) error {
	if !s.Valid() {
		return &InvalidStyleError{Style: s}
	}
	return nil
}

package font

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("font: empty font data")

// UnknownFamilyError is returned by Registry.Lookup when no source has
// been registered under the requested family.
type UnknownFamilyError struct {
	Family string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("font: unknown family %q", e.Family)
}

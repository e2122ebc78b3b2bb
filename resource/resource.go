// Package resource provides key→string lookup tables for localized text.
//
// A label created from a resource key resolves it through a Table at
// construction or set time; nothing is re-resolved at draw time. Tables
// can be literal maps, loaded from TOML files, or selected per locale
// from a Bundle.
package resource

import "fmt"

// Table resolves resource keys to display strings.
type Table interface {
	// Resolve returns the string for key, or a *NotFoundError if the key
	// is absent. No fallback text is substituted.
	Resolve(key string) (string, error)
}

// NotFoundError is returned when a resource key is not in the table.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource: key %q not found", e.Key)
}

// Map is an in-memory Table.
type Map map[string]string

// Resolve implements Table.
func (m Map) Resolve(key string) (string, error) {
	s, ok := m[key]
	if !ok {
		return "", &NotFoundError{Key: key}
	}
	return s, nil
}

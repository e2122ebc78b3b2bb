package font

import (
	"sort"
	"strings"
	"sync"
)

// Registry maps family names to the style variants loaded for them.
// Lookups are case-insensitive on the family name.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]map[Style]*Source
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]map[Style]*Source),
	}
}

// Register parses font data and files the resulting source under the
// family name and style variant read from the font's own metadata.
// Returns the source so callers can inspect what was registered.
func (r *Registry) Register(data []byte) (*Source, error) {
	src, err := NewSource(data)
	if err != nil {
		return nil, err
	}
	r.add(src.Name(), src.Style(), src)
	return src, nil
}

// RegisterAs parses font data and files it under an explicit family and
// style, overriding whatever the font's metadata says. Useful for aliases
// such as filing Go Regular under "sans".
func (r *Registry) RegisterAs(family string, style Style, data []byte) (*Source, error) {
	if err := checkStyle(style); err != nil {
		return nil, err
	}
	src, err := NewSource(data)
	if err != nil {
		return nil, err
	}
	r.add(family, style, src)
	return src, nil
}

// Lookup resolves a descriptor to the source backing it. When the exact
// style variant is not loaded, the family's regular variant is substituted,
// then any loaded variant in style order; this mirrors platforms that
// derive a variant from a family rather than failing. Returns an
// *UnknownFamilyError when nothing is registered under the family.
func (r *Registry) Lookup(d Descriptor) (*Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants, ok := r.families[familyKey(d.Family)]
	if !ok || len(variants) == 0 {
		return nil, &UnknownFamilyError{Family: d.Family}
	}
	if src, ok := variants[d.Style]; ok {
		return src, nil
	}
	if src, ok := variants[StyleNormal]; ok {
		return src, nil
	}
	for style := StyleNormal; style <= StyleBoldItalic; style++ {
		if src, ok := variants[style]; ok {
			return src, nil
		}
	}
	return nil, &UnknownFamilyError{Family: d.Family}
}

// Families returns the registered family keys in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) add(family string, style Style, src *Source) {
	key := familyKey(family)

	r.mu.Lock()
	defer r.mu.Unlock()

	variants, ok := r.families[key]
	if !ok {
		variants = make(map[Style]*Source)
		r.families[key] = variants
	}
	variants[style] = src
}

// familyKey normalizes a family name for case-insensitive lookup.
func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

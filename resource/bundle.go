package resource

import (
	"fmt"
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Bundle holds one Table per locale and picks the best table for a
// caller's preferred locales using BCP 47 matching. The first locale added
// is the bundle's fallback when nothing matches.
//
// Bundle is built once and read-only afterwards; concurrent Match calls
// are safe once no more Add calls are made.
type Bundle struct {
	tags    []language.Tag
	tables  []Map
	matcher language.Matcher
}

// NewBundle creates an empty Bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// Add registers a table under a BCP 47 locale tag such as "en" or "es-MX".
func (b *Bundle) Add(locale string, table Map) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("resource: invalid locale %q: %w", locale, err)
	}
	b.tags = append(b.tags, tag)
	b.tables = append(b.tables, table)
	b.matcher = language.NewMatcher(b.tags)
	return nil
}

// Match returns the table best matching the caller's preferred locales, in
// preference order. Unparseable locales are skipped. With no match, or an
// empty bundle, the fallback is the first table added; an empty bundle
// yields a table that resolves nothing.
func (b *Bundle) Match(locales ...string) Table {
	if len(b.tables) == 0 {
		return Map{}
	}

	desired := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		if tag, err := language.Parse(l); err == nil {
			desired = append(desired, tag)
		}
	}

	_, index, _ := b.matcher.Match(desired...)
	return b.tables[index]
}

// LoadBundleTOML reads a TOML document with one table section per locale:
//
//	[en]
//	greeting = "Hello"
//
//	[es]
//	greeting = "Hola"
//
// Sections are added in sorted tag order, so the lexically first locale is
// the bundle's fallback.
func LoadBundleTOML(r io.Reader) (*Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("resource: failed to read bundle: %w", err)
	}

	var sections map[string]Map
	if err := toml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("resource: failed to parse bundle: %w", err)
	}

	locales := make([]string, 0, len(sections))
	for locale := range sections {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	b := NewBundle()
	for _, locale := range locales {
		if err := b.Add(locale, sections[locale]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

package resource

import (
	"strings"
	"testing"
)

func newTestBundle(t *testing.T) *Bundle {
	t.Helper()
	b := NewBundle()
	if err := b.Add("en", Map{"greeting": "Hello"}); err != nil {
		t.Fatal(err)
	}
	if err := b.Add("es", Map{"greeting": "Hola"}); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBundleMatchExact(t *testing.T) {
	b := newTestBundle(t)
	got, err := b.Match("es").Resolve("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hola" {
		t.Errorf("es greeting = %q, want %q", got, "Hola")
	}
}

func TestBundleMatchRegionalVariant(t *testing.T) {
	b := newTestBundle(t)
	// es-MX has no table of its own; BCP 47 matching lands on es.
	got, err := b.Match("es-MX").Resolve("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hola" {
		t.Errorf("es-MX greeting = %q, want %q", got, "Hola")
	}
}

func TestBundleMatchFallback(t *testing.T) {
	b := newTestBundle(t)
	// No French table: the first locale added is the fallback.
	got, err := b.Match("fr").Resolve("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello" {
		t.Errorf("fr greeting = %q, want fallback %q", got, "Hello")
	}
}

func TestBundleMatchPreferenceOrder(t *testing.T) {
	b := newTestBundle(t)
	got, err := b.Match("fr", "es", "en").Resolve("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hola" {
		t.Errorf("greeting = %q, want first supported preference %q", got, "Hola")
	}
}

func TestBundleEmpty(t *testing.T) {
	b := NewBundle()
	table := b.Match("en")
	if _, err := b.Match().Resolve("greeting"); err == nil {
		t.Error("empty bundle resolved a key")
	}
	if _, err := table.Resolve("greeting"); err == nil {
		t.Error("empty bundle resolved a key")
	}
}

func TestBundleAddInvalidLocale(t *testing.T) {
	b := NewBundle()
	if err := b.Add("not a locale!!", Map{}); err == nil {
		t.Error("Add(invalid locale) = nil error, want parse failure")
	}
}

func TestLoadBundleTOML(t *testing.T) {
	doc := `
[en]
greeting = "Hello"

[es]
greeting = "Hola"
`
	b, err := LoadBundleTOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadBundleTOML() = %v", err)
	}

	if got, _ := b.Match("es").Resolve("greeting"); got != "Hola" {
		t.Errorf("es greeting = %q, want %q", got, "Hola")
	}
	// Sections load in sorted order, so "en" is the fallback.
	if got, _ := b.Match("de").Resolve("greeting"); got != "Hello" {
		t.Errorf("de greeting = %q, want fallback %q", got, "Hello")
	}
}

func TestLoadBundleTOMLInvalid(t *testing.T) {
	if _, err := LoadBundleTOML(strings.NewReader("[en\nbroken")); err == nil {
		t.Error("LoadBundleTOML(invalid) = nil error, want parse failure")
	}
}

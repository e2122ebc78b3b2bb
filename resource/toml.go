package resource

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML reads a flat TOML document of key = "string" pairs into a Map.
//
//	greeting = "Hello"
//	farewell = "Goodbye"
func LoadTOML(r io.Reader) (Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("resource: failed to read table: %w", err)
	}
	var m Map
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("resource: failed to parse table: %w", err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// LoadTOMLFile reads a flat TOML table from a file path.
func LoadTOMLFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("resource: failed to open table: %w", err)
	}
	defer f.Close()
	return LoadTOML(f)
}

package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/gridkit/internal/grid/column"
)

// Layout is the persisted column layout blob.
type Layout struct {
	// Visibility maps field keys to shown/hidden.
	Visibility map[string]bool `toml:"visibility"`

	// Order is the full column order sequence.
	Order []string `toml:"order"`

	// Widths maps field keys to pixel or flex widths.
	Widths map[string]column.Width `toml:"widths"`
}

// Encode serializes a layout to TOML.
func Encode(l Layout) ([]byte, error) {
	data, err := toml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encoding layout: %w", err)
	}
	return data, nil
}

// Decode parses a TOML layout blob. Unknown keys fail the decode.
func Decode(data []byte) (Layout, error) {
	var l Layout
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decoding layout: %w", err)
	}
	return l, nil
}

// LoadFile reads and decodes a layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout file %s: %w", path, err)
	}
	return Decode(data)
}

// SaveFile encodes and writes a layout file.
func SaveFile(path string, l Layout) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing layout file %s: %w", path, err)
	}
	return nil
}

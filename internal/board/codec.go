package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a file encoding for exported boards.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or toml)", s)
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatJSON
	}
	return f
}

// Marshal encodes s in the given format.
func Marshal(s Snapshot, f Format) ([]byte, error) {
	s = s.Normalize()
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Unmarshal decodes data in the given format and validates it against the
// snapshot schema, so every format accepts exactly what Decode accepts.
func Unmarshal(data []byte, f Format) (Snapshot, error) {
	switch f {
	case FormatJSON:
		return Decode(string(data))
	case FormatYAML:
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Snapshot{}, fmt.Errorf("parse yaml: %w", err)
		}
		return DecodeValue(doc)
	case FormatTOML:
		doc := map[string]interface{}{}
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return Snapshot{}, fmt.Errorf("parse toml: %w", err)
		}
		return DecodeValue(doc)
	}
	return Snapshot{}, fmt.Errorf("unknown format %q", f)
}

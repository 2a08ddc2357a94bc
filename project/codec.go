// SPDX-License-Identifier: MIT

package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document serialization.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat maps a format name or file extension (with or without the
// leading dot) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Marshal encodes d in format f.
func Marshal(d Document, f Format) ([]byte, error) {
	switch f {
	case JSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case TOML:
		return toml.Marshal(d)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Unmarshal decodes a document in format f. Zero range fields are filled
// from spectrum.DefaultRange.
func Unmarshal(data []byte, f Format) (Document, error) {
	var d Document
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, &d)
	case YAML:
		err = yaml.Unmarshal(data, &d)
	case TOML:
		err = toml.Unmarshal(data, &d)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return Document{}, fmt.Errorf("project: decode %s: %w", f, err)
	}
	d.Range = d.Range.WithDefaults()

	return d, nil
}

// Load reads a document from path, choosing the format by extension.
func Load(path string) (Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("project: read %s: %w", path, err)
	}
	d, err := Unmarshal(data, f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Save writes d to path, choosing the format by extension.
func Save(path string, d Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(d, f)
	if err != nil {
		return fmt.Errorf("project: encode %s: %w", f, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("project: write %s: %w", path, err)
	}

	return nil
}

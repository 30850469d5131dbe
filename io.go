// File: hconf/io.go
package hconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// LoadFile reads a configuration file into a new tree with the given
// variant. The format is detected from the file extension first, falling
// back to content sniffing for extensions like .conf. A missing file fails
// with ErrConfigNotFound.
func LoadFile(path string, variant Variant) (*Config, error) {
	m, err := readNestedFile(path)
	if err != nil {
		return nil, err
	}
	return fromMapAs(m, variant)
}

// MustLoadFile is LoadFile but panics on error.
func MustLoadFile(path string, variant Variant) *Config {
	cfg, err := LoadFile(path, variant)
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}
	return cfg
}

// Save writes the tree to a file atomically, choosing the format from the
// file extension. The file is written to a temporary sibling first and
// renamed into place.
func (c *Config) Save(path string) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return c.SaveFormat(path, format)
}

// SaveFormat writes the tree to a file atomically in an explicit format.
func (c *Config) SaveFormat(path string, format Format) error {
	data, err := encodeNested(c.ToNested(), format)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// readNestedFile reads and decodes a file into a plain nested mapping, the
// shape the core exchanges with all collaborators.
func readNestedFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}
	if format == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	m, err := decodeNested(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config file %q: %w", format, path, err)
	}
	return m, nil
}

func decodeNested(data []byte, format Format) (map[string]any, error) {
	out := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&out); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return out, nil
}

func encodeNested(m map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts detection by parsing. JSON is tried
// first (strictest), then YAML (a superset of JSON), then TOML.
func detectFormatFromContent(data []byte) Format {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	return ""
}

// atomicWriteFile writes data to a temporary file in the target directory,
// syncs it, and renames it over the destination.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

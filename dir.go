// File: hconf/dir.go
package hconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dirMainName is the stem of the main configuration file in a directory.
const dirMainName = "config"

// LoadDir maps a directory onto a single tree. The file named "config"
// (any supported extension) provides the base mapping; every other config
// file or subdirectory contributes one key named after its stem. When such
// a key already exists in the base, the base value is treated as an option
// selector: it must name an entry of the sub-config, and that entry's value
// replaces the selector.
//
// Files with unrecognized extensions are skipped. A missing directory fails
// with ErrConfigNotFound.
func LoadDir(path string, variant Variant) (*Config, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config directory %q: %w", path, err)
	}

	// Frozen trees are assembled mutable and frozen at the end.
	buildVariant := variant
	if buildVariant == Frozen {
		buildVariant = Careful
	}

	base := New(buildVariant)
	baseName := ""
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if fileStem(entry.Name()) == dirMainName && detectFileFormat(entry.Name()) != "" {
			base, err = LoadFile(filepath.Join(path, entry.Name()), buildVariant)
			if err != nil {
				return nil, err
			}
			baseName = entry.Name()
			break
		}
	}

	for _, entry := range entries {
		if entry.Name() == baseName {
			continue
		}

		full := filepath.Join(path, entry.Name())
		var sub *Config
		if entry.IsDir() {
			sub, err = LoadDir(full, buildVariant)
		} else {
			if detectFileFormat(entry.Name()) == "" {
				continue
			}
			sub, err = LoadFile(full, buildVariant)
		}
		if err != nil {
			return nil, err
		}

		key := fileStem(entry.Name())
		keyPath := Path{key}
		if option, err := base.GetPath(keyPath); err == nil {
			selector, ok := option.(string)
			if !ok {
				return nil, fmt.Errorf("value for %q in the base config does not match any option in %q",
					key, entry.Name())
			}
			selected, err := sub.GetPath(Path{selector})
			if err != nil {
				return nil, fmt.Errorf("value %q for %q in the base config does not match any option in %q",
					selector, key, entry.Name())
			}
			if _, err := base.OverwritePath(keyPath, selected); err != nil {
				return nil, err
			}
			continue
		}

		if err := base.SetPath(keyPath, sub); err != nil {
			return nil, err
		}
	}

	if variant == Frozen {
		return base.Freeze(), nil
	}
	return base, nil
}

// SaveDir writes the tree as a config directory: the directory is created
// if needed and the whole tree is stored in its main config file.
func (c *Config) SaveDir(path string, format Format) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %q: %w", path, err)
	}

	ext := ""
	switch format {
	case FormatJSON:
		ext = ".json"
	case FormatYAML:
		ext = ".yaml"
	case FormatTOML:
		ext = ".toml"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return c.SaveFormat(filepath.Join(path, dirMainName+ext), format)
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// File: hconf/scan.go
package hconf

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the configuration data under a dot-notation base path into
// the target struct or map. An empty base path decodes the whole tree; a
// base path that does not resolve decodes an empty section, leaving the
// target's values untouched. The target must be a non-nil pointer.
// Struct fields are matched through the "config" tag.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	section := make(map[string]any)
	basePath = strings.TrimSuffix(basePath, Separator)
	if basePath == "" {
		section = c.ToNested()
	} else {
		value, err := c.Get(basePath)
		switch {
		case errors.Is(err, ErrKeyNotFound):
			// Absent section decodes as empty.
		case err != nil:
			return err
		default:
			sub, ok := value.(*Config)
			if !ok {
				return fmt.Errorf("%w: %q does not refer to a scannable section, but to type %T", ErrNotHierarchical, basePath, value)
			}
			section = sub.ToNested()
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true, // Allow conversions (e.g., json.Number to int)
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}

	return nil
}

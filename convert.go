// File: hconf/convert.go
package hconf

import (
	"fmt"
	"sort"
	"strings"
)

// FromMap builds a configuration tree from a plain nested mapping. Nested
// map[string]any values become sub-configurations recursively; everything
// else is stored as an opaque leaf. The input is defensively copied, so
// later mutations of the mapping do not affect the tree.
//
// Go maps carry no order, so keys are inserted in lexicographic order.
// Use FromPairs or explicit Set calls when insertion order matters.
func FromMap(m map[string]any, variant Variant) (*Config, error) {
	return fromMapAs(m, variant)
}

// FromMapMods is FromMap with key modifiers: every occurrence of a modifier
// key in a mapping key is replaced by its value before construction, longest
// pattern first. This allows importing mappings whose keys would otherwise
// be rejected (e.g., empty after trimming, or containing the separator).
func FromMapMods(m map[string]any, mods map[string]string, variant Variant) (*Config, error) {
	return fromMapAs(modifyKeys(m, newKeyReplacer(mods)), variant)
}

// FromPairs builds a configuration tree from ordered key-value pairs,
// preserving the given order. Duplicate keys are rejected.
func FromPairs(variant Variant, pairs ...Entry) (*Config, error) {
	out := New(variant)
	for _, e := range pairs {
		if err := validateKey(e.Key); err != nil {
			return nil, err
		}
		if _, exists := out.values[e.Key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidKey, e.Key)
		}
		value, err := out.fromValue(e.Value)
		if err != nil {
			return nil, err
		}
		out.attach(e.Key, value)
	}
	return out, nil
}

// ToNested converts the tree (and all sub-trees) into a plain nested
// mapping for handoff to external collaborators. Leaf sequences are copied;
// the result shares no mutable state with the tree.
func (c *Config) ToNested() map[string]any {
	out := make(map[string]any, len(c.keys))
	for _, key := range c.keys {
		switch value := c.values[key].(type) {
		case *Config:
			out[key] = value.ToNested()
		default:
			out[key] = deepCopyPlain(value)
		}
	}
	return out
}

// ToNestedMods is ToNested with key modifiers applied to every key on the
// way out, the inverse convenience of FromMapMods.
func (c *Config) ToNestedMods(mods map[string]string) map[string]any {
	return modifyKeys(c.ToNested(), newKeyReplacer(mods))
}

func fromMapAs(m map[string]any, variant Variant) (*Config, error) {
	out := New(variant)
	for _, key := range sortedKeys(m) {
		if err := validateKey(key); err != nil {
			return nil, err
		}
		value, err := out.fromValue(m[key])
		if err != nil {
			return nil, err
		}
		out.attach(key, value)
	}
	return out, nil
}

// fromValue converts a candidate value for storage under this node:
// mappings become sub-configurations with the node's variant, sequences are
// deep-copied, scalars pass through.
func (c *Config) fromValue(value any) (any, error) {
	switch v := value.(type) {
	case *Config:
		if v == nil {
			return nil, nil
		}
		return v.cloneAs(c.variant), nil
	case map[string]any:
		return fromMapAs(v, c.variant)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = deepCopyPlain(e)
		}
		return out, nil
	default:
		return value, nil
	}
}

// asNestedMap reports whether a value is mapping-like and returns it as a
// plain nested mapping for recursive overwrite handling.
func asNestedMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case *Config:
		if v == nil {
			return nil, false
		}
		return v.ToNested(), true
	default:
		return nil, false
	}
}

// deepCopyPlain copies plain nested structures (maps and slices) so that a
// tree never aliases caller-owned data. Scalars are returned as-is.
func deepCopyPlain(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = deepCopyPlain(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = deepCopyPlain(e)
		}
		return out
	default:
		return value
	}
}

// modifyKeys applies a key replacer to every key of a nested mapping,
// recursing into nested maps. A nil replacer returns the input unchanged.
func modifyKeys(m map[string]any, r *strings.Replacer) map[string]any {
	if r == nil {
		return m
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		if nested, ok := value.(map[string]any); ok {
			value = modifyKeys(nested, r)
		}
		out[r.Replace(key)] = value
	}
	return out
}

// newKeyReplacer builds a replacer with longer patterns taking precedence,
// so overlapping modifiers behave deterministically.
func newKeyReplacer(mods map[string]string) *strings.Replacer {
	if len(mods) == 0 {
		return nil
	}
	patterns := sortedKeys(mods)
	sort.SliceStable(patterns, func(i, j int) bool {
		return len(patterns[i]) > len(patterns[j])
	})
	pairs := make([]string, 0, 2*len(mods))
	for _, p := range patterns {
		pairs = append(pairs, p, mods[p])
	}
	return strings.NewReplacer(pairs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// File: hconf/flatten.go
package hconf

import (
	"fmt"
	"strings"
)

// Entry is one key-value pair of a flattened configuration tree. The key is
// the separator-joined path from the root to a leaf.
type Entry struct {
	Key   string
	Value any
}

// Flatten converts the tree into a single-level sequence of entries, each
// leaf addressed by the separator-joined path of segments from the root.
// Traversal is depth-first in insertion order. An empty separator defaults
// to the package separator.
func (c *Config) Flatten(sep string) []Entry {
	if sep == "" {
		sep = Separator
	}
	out := make([]Entry, 0, len(c.keys))
	c.flattenInto(&out, "", sep)
	return out
}

// FlattenMap is Flatten with the result collected into a plain map, for
// callers that do not need ordering.
func (c *Config) FlattenMap(sep string) map[string]any {
	entries := c.Flatten(sep)
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// Unflatten is the inverse of Flatten: it splits each entry key on the
// separator and inserts the value at the resulting path, creating
// intermediate nodes as needed. A key that is both a leaf and an ancestor
// of another leaf fails with ErrCollision, as does a duplicate key.
// Unflatten(c.Flatten(sep), sep, v) reproduces the original tree content.
func Unflatten(entries []Entry, sep string, variant Variant) (*Config, error) {
	if sep == "" {
		sep = Separator
	}

	out := New(variant)
	for _, e := range entries {
		segments := strings.Split(e.Key, sep)
		for _, segment := range segments {
			if segment == "" {
				return nil, fmt.Errorf("%w: empty segment in flat key %q", ErrInvalidPath, e.Key)
			}
		}

		node := out
		for i, segment := range segments[:len(segments)-1] {
			existing, ok := node.values[segment]
			if !ok {
				child := New(variant)
				node.attach(segment, child)
				node = child
				continue
			}
			child, ok := existing.(*Config)
			if !ok {
				return nil, fmt.Errorf("%w: %q is both a leaf and an ancestor of %q",
					ErrCollision, strings.Join(segments[:i+1], sep), e.Key)
			}
			node = child
		}

		final := segments[len(segments)-1]
		if _, exists := node.values[final]; exists {
			return nil, fmt.Errorf("%w: %q conflicts with an earlier entry", ErrCollision, e.Key)
		}
		value, err := node.fromValue(e.Value)
		if err != nil {
			return nil, err
		}
		node.attach(final, value)
	}

	return out, nil
}

// UnflattenMap is Unflatten for a plain flat mapping; keys are inserted in
// lexicographic order since Go maps carry no order.
func UnflattenMap(m map[string]any, sep string, variant Variant) (*Config, error) {
	entries := make([]Entry, 0, len(m))
	for _, k := range sortedKeys(m) {
		entries = append(entries, Entry{Key: k, Value: m[k]})
	}
	return Unflatten(entries, sep, variant)
}

func (c *Config) flattenInto(out *[]Entry, prefix, sep string) {
	for _, key := range c.keys {
		flat := key
		if prefix != "" {
			flat = prefix + sep + key
		}
		if child, ok := c.values[key].(*Config); ok {
			child.flattenInto(out, flat, sep)
			continue
		}
		*out = append(*out, Entry{Key: flat, Value: deepCopyPlain(c.values[key])})
	}
}

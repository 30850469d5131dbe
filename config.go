// File: hconf/config.go
package hconf

import (
	"fmt"
	"reflect"
)

// Variant selects the mutation policy of a configuration tree.
type Variant int

const (
	// Plain permits unrestricted overwrites.
	Plain Variant = iota
	// Careful rejects overwrites of existing keys unless Overwrite or
	// OverwriteAll is used. This is the default for loaders and the Builder.
	Careful
	// Frozen rejects all mutation after construction and supports hashing.
	Frozen
)

func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case Careful:
		return "careful"
	case Frozen:
		return "frozen"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Config is an ordered hierarchical mapping from string keys to values.
// A value is either an opaque leaf (scalar, sequence, nil) or a nested
// *Config. Each node exclusively owns its children: values assigned from
// maps, slices, or other trees are copied on the way in, and Get returns
// live references into this tree.
//
// Insertion order is preserved and drives iteration and Flatten; it has no
// effect on Equal. All three variants share the same read behavior; only
// mutation legality differs, enforced by a single policy check at every
// mutating entry point.
type Config struct {
	variant Variant
	keys    []string
	values  map[string]any
}

// New creates an empty configuration tree with the given variant.
func New(variant Variant) *Config {
	return &Config{
		variant: variant,
		values:  make(map[string]any),
	}
}

// Variant reports the mutation policy of this tree.
func (c *Config) Variant() Variant {
	return c.variant
}

// Len returns the number of direct entries in this node.
func (c *Config) Len() int {
	return len(c.keys)
}

// Keys returns the direct keys of this node in insertion order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Has reports whether the dot-notation path resolves to a value.
func (c *Config) Has(path string) bool {
	_, err := c.Get(path)
	return err == nil
}

// HasPath reports whether the explicit segment path resolves to a value.
func (c *Config) HasPath(p Path) bool {
	_, err := c.GetPath(p)
	return err == nil
}

// Get resolves a dot-notation path and returns the addressed value.
// Sub-configurations are returned as live *Config references, not copies.
func (c *Config) Get(path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return c.GetPath(p)
}

// GetPath resolves an explicit segment path and returns the addressed value.
func (c *Config) GetPath(p Path) (any, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	node := c
	for i, segment := range p {
		value, ok := node.values[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, Path(p[:i+1]).String())
		}
		if i == len(p)-1 {
			return value, nil
		}
		child, ok := value.(*Config)
		if !ok {
			return nil, fmt.Errorf("%w: %q addresses a leaf value", ErrNotHierarchical, Path(p[:i+1]).String())
		}
		node = child
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, p.String())
}

// Sub returns the sub-configuration at the given dot-notation path.
// The returned tree is a live reference; mutations through it are visible
// in the parent.
func (c *Config) Sub(path string) (*Config, error) {
	value, err := c.Get(path)
	if err != nil {
		return nil, err
	}
	sub, ok := value.(*Config)
	if !ok {
		return nil, fmt.Errorf("%w: %q addresses a leaf value", ErrNotHierarchical, path)
	}
	return sub, nil
}

// Set assigns a value at a dot-notation path, auto-creating intermediate
// nodes. Mapping values are recursively converted to sub-configurations.
// On Careful trees, setting an existing key fails with ErrOverwrite.
func (c *Config) Set(path string, value any) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	return c.SetPath(p, value)
}

// SetPath is Set with explicit segments (segments are not split further).
func (c *Config) SetPath(p Path, value any) error {
	_, _, err := c.setPath(p, value, false)
	return err
}

// Delete removes the entry addressed by a dot-notation path.
func (c *Config) Delete(path string) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	return c.DeletePath(p)
}

// DeletePath is Delete with explicit segments.
func (c *Config) DeletePath(p Path) error {
	if err := c.checkMutate(); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}

	node := c
	for i, segment := range p[:len(p)-1] {
		value, ok := node.values[segment]
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, Path(p[:i+1]).String())
		}
		child, ok := value.(*Config)
		if !ok {
			return fmt.Errorf("%w: %q addresses a leaf value", ErrNotHierarchical, Path(p[:i+1]).String())
		}
		node = child
	}

	final := p[len(p)-1]
	if _, ok := node.values[final]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, p.String())
	}
	node.detach(final)
	return nil
}

// Overwrite assigns a value at a dot-notation path, bypassing the Careful
// overwrite guard for that single path. It returns the replaced value, or
// nil if the key was absent. When both the existing and the new value are
// mappings, the new pairs are overwritten into the existing sub-tree and
// the mapping of replaced leaf values is returned.
func (c *Config) Overwrite(path string, value any) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return c.OverwritePath(p, value)
}

// OverwritePath is Overwrite with explicit segments.
func (c *Config) OverwritePath(p Path, value any) (any, error) {
	if err := c.checkMutate(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	if existing, err := c.GetPath(p); err == nil {
		if sub, ok := existing.(*Config); ok {
			if m, ok := asNestedMap(value); ok {
				return sub.OverwriteAll(m)
			}
		}
	}

	old, _, err := c.setPath(p, value, true)
	return old, err
}

// OverwriteAll overwrites a batch of top-level (and, through mapping values,
// nested) keys in one call, bypassing the Careful guard. It returns the
// mapping from keys to their replaced values (nil for previously absent keys).
func (c *Config) OverwriteAll(m map[string]any) (map[string]any, error) {
	if err := c.checkMutate(); err != nil {
		return nil, err
	}

	keys := sortedKeys(m)
	// Validate keys and candidate values up front so a failed call leaves
	// the tree untouched.
	for _, k := range keys {
		if err := validateKey(k); err != nil {
			return nil, err
		}
		if _, err := c.fromValue(m[k]); err != nil {
			return nil, err
		}
	}

	old := make(map[string]any, len(m))
	for _, k := range keys {
		replaced, err := c.OverwritePath(Path{k}, m[k])
		if err != nil {
			return nil, err
		}
		old[k] = replaced
	}
	return old, nil
}

// Update merges the given pairs into this node as literal top-level keys.
// On Careful trees it fails with ErrOverwrite if any key already exists;
// validation happens before any mutation, so a failed call is a no-op.
func (c *Config) Update(m map[string]any) error {
	if err := c.checkMutate(); err != nil {
		return err
	}

	keys := sortedKeys(m)
	converted := make(map[string]any, len(m))
	for _, k := range keys {
		if err := validateKey(k); err != nil {
			return err
		}
		if c.variant == Careful {
			if _, exists := c.values[k]; exists {
				return fmt.Errorf("%w: %q, use OverwriteAll instead", ErrOverwrite, k)
			}
		}
		value, err := c.fromValue(m[k])
		if err != nil {
			return err
		}
		converted[k] = value
	}

	for _, k := range keys {
		c.attach(k, converted[k])
	}
	return nil
}

// Clone returns a deep copy of this tree with the same variant.
func (c *Config) Clone() *Config {
	return c.cloneAs(c.variant)
}

// Freeze returns a deep, immutable copy of this tree.
func (c *Config) Freeze() *Config {
	return c.cloneAs(Frozen)
}

// Equal reports whether two trees hold the same keys and recursively equal
// values. Insertion order and variant tags are ignored.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.keys) != len(other.keys) {
		return false
	}
	for key, value := range c.values {
		otherValue, ok := other.values[key]
		if !ok {
			return false
		}
		child, isChild := value.(*Config)
		otherChild, isOtherChild := otherValue.(*Config)
		if isChild != isOtherChild {
			return false
		}
		if isChild {
			if !child.Equal(otherChild) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(value, otherValue) {
			return false
		}
	}
	return true
}

// setPath performs the shared write logic for Set and Overwrite. It walks
// the existing prefix read-only first: every failure mode (leaf in the way,
// invalid nested key, guarded overwrite) is detected before anything is
// attached, so failed calls never leave partially created nodes behind.
func (c *Config) setPath(p Path, value any, force bool) (old any, replaced bool, err error) {
	if err := c.checkMutate(); err != nil {
		return nil, false, err
	}
	if err := p.validate(); err != nil {
		return nil, false, err
	}
	if err := validateKey(p[len(p)-1]); err != nil {
		return nil, false, err
	}

	converted, err := c.fromValue(value)
	if err != nil {
		return nil, false, err
	}

	node := c
	i := 0
	for ; i < len(p)-1; i++ {
		existing, ok := node.values[p[i]]
		if !ok {
			break
		}
		child, ok := existing.(*Config)
		if !ok {
			return nil, false, fmt.Errorf("%w: %q addresses a leaf value", ErrNotHierarchical, Path(p[:i+1]).String())
		}
		node = child
	}

	if i == len(p)-1 {
		final := p[i]
		if existing, exists := node.values[final]; exists {
			if !force && c.variant == Careful {
				return nil, false, fmt.Errorf("%w: %q, use Overwrite instead", ErrOverwrite, p.String())
			}
			node.attach(final, converted)
			return existing, true, nil
		}
		node.attach(final, converted)
		return nil, false, nil
	}

	// The remaining segments are absent; fresh intermediate nodes cannot
	// conflict with anything, so creation is safe now.
	for ; i < len(p)-1; i++ {
		child := New(c.variant)
		node.attach(p[i], child)
		node = child
	}
	node.attach(p[len(p)-1], converted)
	return nil, false, nil
}

func (c *Config) checkMutate() error {
	if c.variant == Frozen {
		return ErrImmutable
	}
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	return nil
}

// attach inserts or replaces a direct entry, preserving insertion order.
// It bypasses the variant gate; callers are responsible for policy checks.
func (c *Config) attach(key string, value any) {
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

func (c *Config) detach(key string) {
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

func (c *Config) cloneAs(variant Variant) *Config {
	out := New(variant)
	for _, key := range c.keys {
		switch value := c.values[key].(type) {
		case *Config:
			out.attach(key, value.cloneAs(variant))
		default:
			out.attach(key, deepCopyPlain(value))
		}
	}
	return out
}

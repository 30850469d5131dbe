// File: hconf/merge.go
package hconf

// Merge combines two trees into a new one without mutating either operand.
// The result holds the union of both key sets: keys only in c keep c's
// values, keys only in other are appended after them, and for keys present
// in both, sub-trees merge recursively while leaf conflicts resolve in
// other's favor. Enumeration order follows c's keys first, then other's
// remaining keys in their own order.
//
// Merge is associative but not commutative: chaining a.Merge(b).Merge(d)
// layers later operands over earlier ones. The result carries c's variant.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c.cloneAs(c.variant)
	}
	out := New(c.variant)

	for _, key := range c.keys {
		value := c.values[key]
		otherValue, ok := other.values[key]
		if !ok {
			out.attach(key, copyForMerge(value, c.variant))
			continue
		}
		child, isChild := value.(*Config)
		otherChild, isOtherChild := otherValue.(*Config)
		if isChild && isOtherChild {
			out.attach(key, child.Merge(otherChild))
			continue
		}
		out.attach(key, copyForMerge(otherValue, c.variant))
	}

	for _, key := range other.keys {
		if _, ok := c.values[key]; !ok {
			out.attach(key, copyForMerge(other.values[key], c.variant))
		}
	}

	return out
}

// MergeMap merges a plain nested mapping over this tree, a convenience for
// collaborator output (file, directory, or CLI mappings).
func (c *Config) MergeMap(m map[string]any) (*Config, error) {
	other, err := fromMapAs(m, c.variant)
	if err != nil {
		return nil, err
	}
	return c.Merge(other), nil
}

func copyForMerge(value any, variant Variant) any {
	if child, ok := value.(*Config); ok {
		return child.cloneAs(variant)
	}
	return deepCopyPlain(value)
}

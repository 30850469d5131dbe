// File: hconf/hash.go
package hconf

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Hash returns an order-independent digest of the tree content. Only Frozen
// trees are hashable; mutable variants fail with ErrNotHashable. Two frozen
// trees that compare Equal produce the same hash regardless of insertion
// order or nesting shape history.
func (c *Config) Hash() (uint64, error) {
	if c.variant != Frozen {
		return 0, fmt.Errorf("%w: %s variant", ErrNotHashable, c.variant)
	}
	return c.contentHash(), nil
}

// contentHash combines per-entry digests with addition, which is
// commutative, so key order never influences the result.
func (c *Config) contentHash() uint64 {
	var sum uint64
	for key, value := range c.values {
		var valueHash uint64
		if child, ok := value.(*Config); ok {
			valueHash = child.contentHash()
		} else {
			valueHash = leafHash(value)
		}

		h := fnv.New64a()
		h.Write([]byte(key))
		h.Write([]byte{0})
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], valueHash)
		h.Write(buf[:])
		sum += h.Sum64()
	}
	return sum
}

func leafHash(value any) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T:%v", value, value)
	return h.Sum64()
}

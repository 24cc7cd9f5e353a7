package flatecs

import (
	"fmt"
	"math/bits"
)

// Mask is a set of up to 32 component or flag IDs. Bit i is set when ID i is
// a member of the set.
type Mask uint32

// Filter builds a mask from component or flag IDs. It panics if an ID does not
// fit in a Mask.
//
// Parameters:
//   - ids: The component or flag IDs to include.
//
// Returns:
//   - The mask with one bit set per ID.
func Filter(ids ...uint8) Mask {
	var m Mask
	for _, id := range ids {
		if id >= MaxComponents {
			panic(fmt.Sprintf("ecs: id %d exceeds mask width (%d)", id, MaxComponents))
		}
		m |= 1 << id
	}
	return m
}

// Has reports whether bit id is set.
func (m Mask) Has(id uint8) bool {
	return m&(1<<id) != 0
}

// With returns a copy of m with bit id set.
func (m Mask) With(id uint8) Mask {
	return m | 1<<id
}

// Without returns a copy of m with bit id cleared.
func (m Mask) Without(id uint8) Mask {
	return m &^ (1 << id)
}

// Contains checks if all the bits set in sub are also set in m. This is the
// test a query applies to both component and flag masks.
func (m Mask) Contains(sub Mask) bool {
	return m&sub == sub
}

// Intersects checks if m has any bits in common with other.
func (m Mask) Intersects(other Mask) bool {
	return m&other != 0
}

// Len returns the number of set bits.
func (m Mask) Len() int {
	return bits.OnesCount32(uint32(m))
}

// ForEach calls fn for every set bit in ascending order.
func (m Mask) ForEach(fn func(id uint8)) {
	w := uint32(m)
	for w != 0 {
		b := bits.TrailingZeros32(w)
		fn(uint8(b))
		w &^= 1 << b
	}
}

// IDs returns the set bits in ascending order.
func (m Mask) IDs() []uint8 {
	ids := make([]uint8, 0, m.Len())
	m.ForEach(func(id uint8) {
		ids = append(ids, id)
	})
	return ids
}

// SPDX-License-Identifier: MIT

package closedset

import (
	"errors"
	"fmt"
)

// MaxEnumerableBits caps Subsets: 2^24 Sets is 128 MiB of keys already, and
// the engines multiply that by N or N² per minute.
const MaxEnumerableBits = 24

// Method tags for error context.
const (
	methodNewUniverse = "NewUniverse"
	methodSubsets     = "Subsets"
)

var (
	// ErrTooManyFlowValves indicates more than MaxBits valves with a positive rate.
	ErrTooManyFlowValves = errors.New("closedset: too many flow valves")

	// ErrTooManySubsets indicates the power set is too large to materialize.
	ErrTooManySubsets = errors.New("closedset: power set too large")
)

// Universe maps graph valve indices to dense bit positions. Only valves with
// a strictly positive rate are assigned a bit; bits follow graph index order.
//
// A Universe is immutable after NewUniverse and safe for concurrent reads.
type Universe struct {
	bitOf   []int // graph index -> bit, -1 for zero-rate valves
	valveOf []int // bit -> graph index
}

// NewUniverse assigns bits to every valve whose rate is > 0.
// rates is indexed by graph valve index.
//
// Complexity: O(len(rates)).
func NewUniverse(rates []int64) (Universe, error) {
	u := Universe{
		bitOf:   make([]int, len(rates)),
		valveOf: make([]int, 0, len(rates)),
	}
	for idx, r := range rates {
		if r <= 0 {
			u.bitOf[idx] = -1
			continue
		}
		if len(u.valveOf) == MaxBits {
			return Universe{}, fmt.Errorf("%s: valve %d would be flow valve #%d, max %d: %w",
				methodNewUniverse, idx, MaxBits+1, MaxBits, ErrTooManyFlowValves)
		}
		u.bitOf[idx] = len(u.valveOf)
		u.valveOf = append(u.valveOf, idx)
	}

	return u, nil
}

// Len returns k, the number of flow valves (bits in use).
func (u Universe) Len() int { return len(u.valveOf) }

// Size returns the number of graph valves the Universe was built over.
func (u Universe) Size() int { return len(u.bitOf) }

// Bit returns the bit of graph valve idx, or -1 when the valve has no flow
// or idx is out of range.
func (u Universe) Bit(idx int) int {
	if idx < 0 || idx >= len(u.bitOf) {
		return -1
	}

	return u.bitOf[idx]
}

// Valve returns the graph index owning bit, or -1 when bit is unused.
func (u Universe) Valve(bit int) int {
	if bit < 0 || bit >= len(u.valveOf) {
		return -1
	}

	return u.valveOf[bit]
}

// Full returns the Set with every flow valve closed.
func (u Universe) Full() Set {
	return Set(1)<<uint(len(u.valveOf)) - 1
}

// Closed reports whether graph valve idx is a flow valve still closed in s.
// Zero-rate valves are never closed.
func (u Universe) Closed(s Set, idx int) bool {
	return s.Has(u.Bit(idx))
}

// Open returns s with graph valve idx marked open.
func (u Universe) Open(s Set, idx int) Set {
	return s.Without(u.Bit(idx))
}

// Valves returns the graph indices of the flow valves closed in s.
func (u Universe) Valves(s Set) []int {
	bs := s.Bits()
	out := make([]int, 0, len(bs))
	for _, b := range bs {
		if v := u.Valve(b); v >= 0 {
			out = append(out, v)
		}
	}

	return out
}

// Subsets returns all 2^k Sets over the Universe in ascending order.
// The slice is meant to be shared read-only between engines.
//
// Errors: ErrTooManySubsets when k > MaxEnumerableBits.
//
// Complexity: O(2^k) time and memory.
func (u Universe) Subsets() ([]Set, error) {
	k := u.Len()
	if k > MaxEnumerableBits {
		return nil, fmt.Errorf("%s: k=%d > max=%d: %w",
			methodSubsets, k, MaxEnumerableBits, ErrTooManySubsets)
	}
	out := make([]Set, 0, 1<<uint(k))
	u.EachSubset(func(s Set) bool {
		out = append(out, s)
		return true
	})

	return out, nil
}

// EachSubset calls fn for every Set over the Universe in ascending order,
// stopping early when fn returns false. Nothing is allocated.
func (u Universe) EachSubset(fn func(Set) bool) {
	full := u.Full()
	for s := Set(0); ; s++ {
		if !fn(s) || s == full {
			return
		}
	}
}

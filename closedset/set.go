// SPDX-License-Identifier: MIT

package closedset

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxBits is the largest number of flow valves a Set can represent.
// Two bits of the word stay unused so Full never touches the sign bit of
// an int64 conversion.
const MaxBits = 62

// Set is a bit vector over the dense flow-valve numbering of a Universe.
// The zero Set means "every flow valve is open".
type Set uint64

// Has reports whether bit is set. Out-of-range bits (including the -1 a
// Universe returns for zero-rate valves) are never set.
func (s Set) Has(bit int) bool {
	if bit < 0 || bit >= MaxBits {
		return false
	}

	return s&(1<<uint(bit)) != 0
}

// Without returns s with bit cleared. Out-of-range bits leave s unchanged.
func (s Set) Without(bit int) Set {
	if bit < 0 || bit >= MaxBits {
		return s
	}

	return s &^ (1 << uint(bit))
}

// With returns s with bit set. Out-of-range bits leave s unchanged.
func (s Set) With(bit int) Set {
	if bit < 0 || bit >= MaxBits {
		return s
	}

	return s | 1<<uint(bit)
}

// Len returns the number of closed valves in s.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Bits returns the set bit positions in ascending order.
func (s Set) Bits() []int {
	out := make([]int, 0, s.Len())
	for w := uint64(s); w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros64(w))
	}

	return out
}

// String renders s as "{0,3,5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.Bits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(b))
	}
	sb.WriteByte('}')

	return sb.String()
}

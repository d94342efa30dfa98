// SPDX-License-Identifier: MIT

// Package closedset encodes which flow valves are still closed as a single
// machine word and enumerates every such word for the schedule engines.
//
// What:
//
//   - Set is a uint64 bit vector; bit i set ⇔ flow valve i is still closed.
//   - Universe assigns dense bit positions to valves with a strictly positive
//     rate. Zero-rate valves are pass-through waypoints and get no bit, which
//     shrinks the state space from 2^N to 2^k (k = number of flow valves).
//   - Subsets / EachSubset produce the full power set over the k bits, in
//     ascending numeric order. No reachability pruning is applied.
//
// Why:
//
//	Dense bits turn the power set into the integer range [0, 2^k), so the
//	enumerator is a counter and a Set is directly usable as a map key.
//
// Complexity:
//
//   - NewUniverse: O(N) time and memory.
//   - Subsets:     O(2^k) time and memory.
//   - Set ops:     O(1).
//
// Errors:
//
//   - ErrTooManyFlowValves: more than MaxBits flow valves.
//   - ErrTooManySubsets:    Subsets called for k > MaxEnumerableBits.
package closedset

// SPDX-License-Identifier: MIT

// Package schedule computes the maximum total yield obtainable by opening
// valves within a time budget, for one agent (Single) or two cooperating
// agents sharing the set of opened valves (Pair).
//
// 🚀 Model
//
//	Minutes run 1 … B-1 on a budget B. Each minute an agent stays, opens the
//	valve it stands on (if still closed) or walks one tunnel. Opening at
//	minute m credits rate × (B − m): the open itself uses minute m and the
//	valve yields every minute after it.
//
// ⚙️ Algorithm (backward induction)
//
//	table[m][state] = best yield from minute m to the horizon.
//	table[B] is empty (nothing left to earn); table[m] is filled from
//	table[m+1] only, so the engines keep exactly two generations (current,
//	next) and swap them after each minute. Entries equal to zero are not
//	stored: an absent key reads as zero.
//
//	Single state: (position, closed set), hashed as a comparable struct.
//	Pair state:   (position A, position B, closed set), stored in a flattened
//	              N×N slice indexed by posB*N + posA, each cell a map keyed
//	              by closed set.
//
// The closed set only covers valves with a positive rate (see closedset), so
// the state space is N·2^k (Single) and N²·2^k (Pair).
//
// Complexity:
//
//   - Single: O(B · N · 2^k · deg)
//   - Pair:   O(B · N² · 2^k · deg²); multi-second to multi-minute runs are
//     expected for N≈60, k≈15.
//
// Options:
//
//   - WithOnMinute:     observer called once per completed minute.
//   - WithSetupMinutes: minutes Pair reserves before its clock starts
//     (DefaultSetupMinutes).
//   - WithWorkers:      split each minute's fill across goroutines.
//   - WithContext:      cancellation between minutes and rows.
//
// Errors:
//
//   - ErrNilGraph, ErrEmptyGraph, ErrBadGraph, ErrBadStart: unusable input graph.
//   - ErrBadBudget:       budget < 0 or > MaxBudget.
//   - ErrOptionViolation: invalid option value.
//   - closedset.ErrTooManyFlowValves / ErrTooManySubsets: state space too large.
package schedule

// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/valvesched/closedset"
)

// pairTable is one minute of the two-agent recurrence. Position pairs are
// addressed directly through a flattened N×N slice (posB*n + posA); only the
// closed-set dimension is hashed. Pairs are not symmetrized: (a,b) and (b,a)
// are separate cells.
type pairTable struct {
	n     int
	cells []map[closedset.Set]Yield
}

func newPairTable(n int) *pairTable {
	return &pairTable{n: n, cells: make([]map[closedset.Set]Yield, n*n)}
}

func (t *pairTable) index(a, b int) int { return b*t.n + a }

// get returns the stored yield, zero when absent.
func (t *pairTable) get(a, b int, s closedset.Set) Yield {
	return t.cells[t.index(a, b)][s]
}

// set stores a non-zero yield, allocating the cell map on first use.
func (t *pairTable) set(a, b int, s closedset.Set, y Yield) {
	i := t.index(a, b)
	if t.cells[i] == nil {
		t.cells[i] = make(map[closedset.Set]Yield)
	}
	t.cells[i][s] = y
}

// reset empties every cell but keeps the maps for reuse.
func (t *pairTable) reset() {
	for _, c := range t.cells {
		clear(c)
	}
}

// len returns the number of stored entries.
func (t *pairTable) len() int {
	total := 0
	for _, c := range t.cells {
		total += len(c)
	}

	return total
}

// Pair returns the best total yield two agents can collect on g when both
// start at g.Start(), share the set of opened valves and move on a common
// clock. The clock starts at minute 1+SetupMinutes (DefaultSetupMinutes
// unless overridden) and ends at the budget horizon.
//
// Every minute each agent independently stays, opens the valve it stands on
// (if still closed) or moves one tunnel; Pair takes the maximum over the
// product of both agents' choices:
//
//   - both stay;
//   - both open (when both valves are closed; if both agents stand on the
//     same valve its yield is credited once);
//   - one opens while the other stays or moves to any neighbor;
//   - one stays while the other moves;
//   - both move, over every neighbor combination.
//
// Budgets that leave no minute after setup return Yield 0.
//
// Errors: as Single.
//
// Complexity: O(budget · N² · 2^k · deg²) time, O(N² · 2^k) memory.
func Pair(g Graph, budget int, opts ...Option) (Result, error) {
	o, err := resolveOptions(methodPair, opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateBudget(methodPair, budget); err != nil {
		return Result{}, err
	}
	snap, err := newSnapshot(methodPair, g)
	if err != nil {
		return Result{}, err
	}

	first := 1 + o.SetupMinutes
	res := Result{Budget: budget, StartMinute: first}
	spans := shards(snap.n, o.Workers)
	cur, next := newPairTable(snap.n), newPairTable(snap.n) // next: minute == budget, empty

	for m := budget - 1; m >= first; m-- {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%s: minute %d: %w", methodPair, m, err)
		}
		began := time.Now()
		cur.reset()
		if err = snap.fillPair(o.Ctx, spans, cur, next, Yield(budget-m)); err != nil {
			return Result{}, fmt.Errorf("%s: minute %d: %w", methodPair, m, err)
		}
		cur, next = next, cur
		res.Minutes++
		o.OnMinute(MinuteStats{Minute: m, States: next.len(), Elapsed: time.Since(began)})
	}

	res.Yield = next.get(snap.start, snap.start, snap.univ.Full())
	res.States = next.len()

	return res, nil
}

// fillPair computes cur from next. Spans partition agent B's position, so
// every span writes a disjoint block of rows of cur.
func (s *snapshot) fillPair(ctx context.Context, spans []span, cur, next *pairTable, remaining Yield) error {
	return runShards(ctx, spans, func(ctx context.Context, _ int, sp span) error {
		for b := sp.lo; b < sp.hi; b++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for a := 0; a < s.n; a++ {
				for _, closed := range s.subsets {
					if best := s.bestPair(next, a, b, closed, remaining); best > 0 {
						cur.set(a, b, closed, best)
					}
				}
			}
		}
		return nil
	})
}

// bestPair evaluates every joint action for agents at a and b with closed set s.
func (s *snapshot) bestPair(next *pairTable, a, b int, closed closedset.Set, remaining Yield) Yield {
	bitA, bitB := s.bits[a], s.bits[b]
	canA, canB := closed.Has(bitA), closed.Has(bitB)
	gainA, gainB := s.rates[a]*remaining, s.rates[b]*remaining
	adjA, adjB := s.adj[a], s.adj[b]

	// both stay
	best := next.get(a, b, closed)

	// both open
	if canA && canB {
		gain := gainA + gainB
		if a == b {
			gain = gainA
		}
		if c := gain + next.get(a, b, closed.Without(bitA).Without(bitB)); c > best {
			best = c
		}
	}

	// A opens; B stays or moves
	if canA {
		openA := closed.Without(bitA)
		if c := gainA + next.get(a, b, openA); c > best {
			best = c
		}
		for _, q := range adjB {
			if c := gainA + next.get(a, q, openA); c > best {
				best = c
			}
		}
	}

	// B opens; A stays or moves
	if canB {
		openB := closed.Without(bitB)
		if c := gainB + next.get(a, b, openB); c > best {
			best = c
		}
		for _, p := range adjA {
			if c := gainB + next.get(p, b, openB); c > best {
				best = c
			}
		}
	}

	// one stays, the other moves
	for _, q := range adjB {
		if c := next.get(a, q, closed); c > best {
			best = c
		}
	}
	for _, p := range adjA {
		if c := next.get(p, b, closed); c > best {
			best = c
		}
	}

	// both move
	for _, p := range adjA {
		for _, q := range adjB {
			if c := next.get(p, q, closed); c > best {
				best = c
			}
		}
	}

	return best
}

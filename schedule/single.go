// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/valvesched/closedset"
)

// singleKey is the single-agent state: where the agent stands and which flow
// valves are still closed.
type singleKey struct {
	pos    int
	closed closedset.Set
}

// singleTable maps a state to the best yield from its minute to the horizon.
// Absent keys read as zero.
type singleTable map[singleKey]Yield

// Single returns the best total yield one agent can collect on g within
// budget minutes, starting at g.Start() with every flow valve closed.
//
// Recurrence for minute m = budget-1 … 1 (remaining = budget − m):
//
//	best(p, S) = max(
//	    next(p, S),                                   // stay
//	    rate(p)·remaining + next(p, S∖{p})  if p ∈ S, // open
//	    next(q, S) for q in Neighbors(p),             // move
//	)
//
// Budgets 0 and 1 leave no minute to act in and return Yield 0.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrBadGraph, ErrBadStart, ErrBadBudget,
// ErrOptionViolation, closedset limits, or the context error.
//
// Complexity: O(budget · N · 2^k · deg) time, O(N · 2^k) memory.
func Single(g Graph, budget int, opts ...Option) (Result, error) {
	o, err := resolveOptions(methodSingle, opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateBudget(methodSingle, budget); err != nil {
		return Result{}, err
	}
	snap, err := newSnapshot(methodSingle, g)
	if err != nil {
		return Result{}, err
	}

	res := Result{Budget: budget, StartMinute: 1}
	spans := shards(snap.n, o.Workers)
	next := singleTable{} // minute == budget: nothing left to earn

	for m := budget - 1; m >= 1; m-- {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%s: minute %d: %w", methodSingle, m, err)
		}
		began := time.Now()
		cur, ferr := snap.fillSingle(o.Ctx, spans, next, Yield(budget-m))
		if ferr != nil {
			return Result{}, fmt.Errorf("%s: minute %d: %w", methodSingle, m, ferr)
		}
		next = cur
		res.Minutes++
		o.OnMinute(MinuteStats{Minute: m, States: len(cur), Elapsed: time.Since(began)})
	}

	res.Yield = next[singleKey{pos: snap.start, closed: snap.univ.Full()}]
	res.States = len(next)

	return res, nil
}

// fillSingle computes one minute table from next. Each span writes its own
// table; spans are merged once all of them finish.
func (s *snapshot) fillSingle(ctx context.Context, spans []span, next singleTable, remaining Yield) (singleTable, error) {
	parts := make([]singleTable, len(spans))
	err := runShards(ctx, spans, func(ctx context.Context, shard int, sp span) error {
		out := singleTable{}
		for p := sp.lo; p < sp.hi; p++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.fillSingleRow(out, next, p, remaining)
		}
		parts[shard] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	size := 0
	for _, part := range parts {
		size += len(part)
	}
	cur := make(singleTable, size)
	for _, part := range parts {
		for k, v := range part {
			cur[k] = v
		}
	}

	return cur, nil
}

// fillSingleRow evaluates every closed set for position p.
func (s *snapshot) fillSingleRow(out, next singleTable, p int, remaining Yield) {
	bit := s.bits[p]
	gain := s.rates[p] * remaining
	for _, closed := range s.subsets {
		best := next[singleKey{pos: p, closed: closed}]

		if closed.Has(bit) {
			if c := gain + next[singleKey{pos: p, closed: closed.Without(bit)}]; c > best {
				best = c
			}
		}
		for _, q := range s.adj[p] {
			if c := next[singleKey{pos: q, closed: closed}]; c > best {
				best = c
			}
		}

		if best > 0 {
			out[singleKey{pos: p, closed: closed}] = best
		}
	}
}

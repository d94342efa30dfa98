// SPDX-License-Identifier: MIT

package schedule

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// span is a half-open range of positions [lo, hi).
type span struct{ lo, hi int }

// shards splits [0, n) into at most workers contiguous spans of near-equal size.
func shards(n, workers int) []span {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	out := make([]span, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo: lo, hi: min(lo+size, n)})
	}

	return out
}

// runShards calls fn once per span. A single span runs on the calling
// goroutine; more spans run under an errgroup and the first error cancels
// the rest. fn must only write state owned by its span.
func runShards(ctx context.Context, spans []span, fn func(ctx context.Context, shard int, sp span) error) error {
	if len(spans) == 1 {
		return fn(ctx, 0, spans[0])
	}
	g, gctx := errgroup.WithContext(ctx)
	for i, sp := range spans {
		i, sp := i, sp
		g.Go(func() error { return fn(gctx, i, sp) })
	}

	return g.Wait()
}

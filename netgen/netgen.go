// SPDX-License-Identifier: MIT

package netgen

import (
	"fmt"

	"github.com/katalvlaran/valvesched/network"
)

// Method tags and parameter minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathValves     = 1
	minCycleValves    = 3
	minStarValves     = 2
	minCompleteValves = 1
)

// tunnels accumulates two-way tunnels in emission order.
type tunnels [][]int

func (t tunnels) join(i, j int) {
	t[i] = append(t[i], j)
	t[j] = append(t[j], i)
}

// Path builds V0 - V1 - … - V(n-1).
func Path(n int, opts ...Option) (*network.Network, error) {
	if n < minPathValves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathValves, ErrTooFewValves)
	}
	t := make(tunnels, n)
	for i := 1; i < n; i++ {
		t.join(i-1, i)
	}

	return assemble(methodPath, t, newConfig(opts...))
}

// Cycle builds Path(n) plus the tunnel V(n-1) - V0.
func Cycle(n int, opts ...Option) (*network.Network, error) {
	if n < minCycleValves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleValves, ErrTooFewValves)
	}
	t := make(tunnels, n)
	for i := 1; i < n; i++ {
		t.join(i-1, i)
	}
	t.join(n-1, 0)

	return assemble(methodCycle, t, newConfig(opts...))
}

// Star builds hub V0 joined to leaves V1 … V(n-1).
func Star(n int, opts ...Option) (*network.Network, error) {
	if n < minStarValves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarValves, ErrTooFewValves)
	}
	t := make(tunnels, n)
	for i := 1; i < n; i++ {
		t.join(0, i)
	}

	return assemble(methodStar, t, newConfig(opts...))
}

// Complete joins every pair of valves.
func Complete(n int, opts ...Option) (*network.Network, error) {
	if n < minCompleteValves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteValves, ErrTooFewValves)
	}
	t := make(tunnels, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t.join(i, j)
		}
	}

	return assemble(methodComplete, t, newConfig(opts...))
}

// RandomSparse builds a path backbone (so every valve is reachable) and adds
// each other pair {i,j}, i<j, with probability p.
//
// An RNG is required when 0 < p < 1.
func RandomSparse(n int, p float64, opts ...Option) (*network.Network, error) {
	if n < minPathValves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathValves, ErrTooFewValves)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	t := make(tunnels, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case j == i+1:
				t.join(i, j)
			case p == 1:
				t.join(i, j)
			case p > 0 && cfg.rng.Float64() < p:
				t.join(i, j)
			}
		}
	}

	return assemble(methodRandomSparse, t, cfg)
}

// assemble names valves, draws rates and hands the records to network.NewNetwork.
func assemble(method string, t tunnels, cfg config) (*network.Network, error) {
	n := len(t)
	if cfg.start < 0 || cfg.start >= n {
		return nil, fmt.Errorf("%s: start=%d not in [0,%d): %w", method, cfg.start, n, ErrBadStart)
	}

	names := make([]string, n)
	for i := range names {
		names[i] = cfg.idFn(i)
	}
	recs := make([]network.Record, n)
	for i := range recs {
		rate, err := cfg.rateFn(i, cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: rate of %s: %w", method, names[i], err)
		}
		to := make([]string, len(t[i]))
		for j, nb := range t[i] {
			to[j] = names[nb]
		}
		recs[i] = network.Record{Name: names[i], Rate: rate, Tunnels: to}
	}

	net, err := network.NewNetwork(recs, names[cfg.start])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return net, nil
}

// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"

	"github.com/katalvlaran/valvesched/closedset"
	"github.com/katalvlaran/valvesched/network"
)

// snapshot is the engines' private copy of a Graph: flat slices for the hot
// loops plus the bit universe and its power set.
type snapshot struct {
	n       int
	start   int
	rates   []Yield
	adj     [][]int
	bits    []int // valve -> closed-set bit, -1 for zero-rate valves
	univ    closedset.Universe
	subsets []closedset.Set
}

// newSnapshot validates g and copies what the engines read.
//
// Complexity: O(V + E + 2^k).
func newSnapshot(method string, g Graph) (*snapshot, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	n := g.Len()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyGraph)
	}
	start := g.Start()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%s: start=%d not in [0,%d): %w", method, start, n, ErrBadStart)
	}

	s := &snapshot{
		n:     n,
		start: start,
		rates: make([]Yield, n),
		adj:   make([][]int, n),
		bits:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		r := g.Rate(i)
		if r < 0 || r > network.MaxRate {
			return nil, fmt.Errorf("%s: valve %d rate=%d not in [0,%d]: %w", method, i, r, network.MaxRate, ErrBadGraph)
		}
		s.rates[i] = r
		nbrs := g.Neighbors(i)
		for _, j := range nbrs {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%s: valve %d neighbor %d not in [0,%d): %w", method, i, j, n, ErrBadGraph)
			}
		}
		s.adj[i] = append([]int(nil), nbrs...)
	}

	univ, err := closedset.NewUniverse(s.rates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	s.univ = univ
	for i := range s.bits {
		s.bits[i] = univ.Bit(i)
	}
	if s.subsets, err = univ.Subsets(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return s, nil
}

// SPDX-License-Identifier: MIT

package network

import "fmt"

// Method tags for error context.
const (
	methodNewNetwork = "NewNetwork"
	methodParse      = "ParseRecords"
	methodDecodeYAML = "DecodeYAML"
	methodEncodeYAML = "EncodeYAML"
)

// NewNetwork resolves records into an index-stable Network starting at start.
//
// Contract:
//   - records is non-empty; names are unique and non-empty.
//   - 0 ≤ Rate ≤ MaxRate.
//   - every tunnel names an existing record; self-tunnels are kept as-is.
//   - start names an existing record.
//
// Valve i is records[i]; neighbor order follows Tunnels order.
//
// Errors: see package doc; each wraps ErrMalformedGraph.
//
// Complexity: O(V + E) time and memory.
func NewNetwork(records []Record, start string) (*Network, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewNetwork, ErrEmptyNetwork)
	}

	// Stage 1: register names and validate rates.
	byName := make(map[string]int, len(records))
	for i, rec := range records {
		switch {
		case rec.Name == "":
			return nil, fmt.Errorf("%s: record %d: %w", methodNewNetwork, i, ErrEmptyName)
		case rec.Rate < 0:
			return nil, fmt.Errorf("%s: valve %q rate=%d: %w", methodNewNetwork, rec.Name, rec.Rate, ErrNegativeRate)
		case rec.Rate > MaxRate:
			return nil, fmt.Errorf("%s: valve %q rate=%d > %d: %w", methodNewNetwork, rec.Name, rec.Rate, MaxRate, ErrRateTooLarge)
		}
		if prev, dup := byName[rec.Name]; dup {
			return nil, fmt.Errorf("%s: valve %q at records %d and %d: %w", methodNewNetwork, rec.Name, prev, i, ErrDuplicateValve)
		}
		byName[rec.Name] = i
	}

	// Stage 2: resolve tunnels.
	n := &Network{
		valves: make([]Valve, len(records)),
		byName: byName,
	}
	for i, rec := range records {
		nbrs := make([]int, len(rec.Tunnels))
		for j, to := range rec.Tunnels {
			if to == "" {
				return nil, fmt.Errorf("%s: valve %q tunnel %d: %w", methodNewNetwork, rec.Name, j, ErrEmptyName)
			}
			idx, ok := byName[to]
			if !ok {
				return nil, fmt.Errorf("%s: valve %q -> %q: %w", methodNewNetwork, rec.Name, to, ErrUnknownNeighbor)
			}
			nbrs[j] = idx
		}
		n.valves[i] = Valve{Name: rec.Name, Index: i, Rate: rec.Rate, Neighbors: nbrs}
		if rec.Rate > 0 {
			n.flow++
		}
	}

	// Stage 3: start valve.
	s, ok := byName[start]
	if !ok {
		return nil, fmt.Errorf("%s: start %q: %w", methodNewNetwork, start, ErrUnknownStart)
	}
	n.start = s

	return n, nil
}

// Len returns the number of valves. A nil Network has none.
func (n *Network) Len() int {
	if n == nil {
		return 0
	}

	return len(n.valves)
}

// Start returns the index of the start valve.
func (n *Network) Start() int { return n.start }

// StartName returns the name of the start valve.
func (n *Network) StartName() string { return n.valves[n.start].Name }

// FlowCount returns how many valves have a positive rate.
func (n *Network) FlowCount() int { return n.flow }

// Rate returns the rate of valve i.
func (n *Network) Rate(i int) int64 { return n.valves[i].Rate }

// Name returns the name of valve i.
func (n *Network) Name(i int) string { return n.valves[i].Name }

// Neighbors returns a copy of valve i's neighbor indices.
func (n *Network) Neighbors(i int) []int {
	return append([]int(nil), n.valves[i].Neighbors...)
}

// Valve returns a copy of valve i.
func (n *Network) Valve(i int) Valve {
	v := n.valves[i]
	v.Neighbors = append([]int(nil), v.Neighbors...)

	return v
}

// IndexOf returns the index of the named valve.
func (n *Network) IndexOf(name string) (int, bool) {
	i, ok := n.byName[name]

	return i, ok
}

// Names returns valve names in index order.
func (n *Network) Names() []string {
	out := make([]string, len(n.valves))
	for i, v := range n.valves {
		out[i] = v.Name
	}

	return out
}

// Rates returns valve rates in index order.
func (n *Network) Rates() []int64 {
	out := make([]int64, len(n.valves))
	for i, v := range n.valves {
		out[i] = v.Rate
	}

	return out
}

// Records converts the Network back into records, in index order.
func (n *Network) Records() []Record {
	out := make([]Record, len(n.valves))
	for i, v := range n.valves {
		tunnels := make([]string, len(v.Neighbors))
		for j, nb := range v.Neighbors {
			tunnels[j] = n.valves[nb].Name
		}
		out[i] = Record{Name: v.Name, Rate: v.Rate, Tunnels: tunnels}
	}

	return out
}

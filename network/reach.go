// SPDX-License-Identifier: MIT

package network

// Unreachable is the Depths entry of a valve no tunnel path leads to.
const Unreachable = -1

// Depths returns the tunnel-hop distance from the start valve to every valve,
// indexed like the network; Unreachable marks valves with no path.
//
// Tunnels are directed, so a valve may be reachable from the start while the
// start is not reachable from it.
//
// Complexity: O(V + E).
func (n *Network) Depths() []int {
	if n.Len() == 0 {
		return nil
	}
	depth := make([]int, len(n.valves))
	for i := range depth {
		depth[i] = Unreachable
	}

	queue := make([]int, 0, len(n.valves))
	depth[n.start] = 0
	queue = append(queue, n.start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range n.valves[cur].Neighbors {
			if depth[nbr] != Unreachable {
				continue
			}
			depth[nbr] = depth[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return depth
}

// UnreachableFlow lists, in index order, the names of valves with a positive
// rate that cannot be reached from the start. Their flow never counts.
func (n *Network) UnreachableFlow() []string {
	var out []string
	for i, d := range n.Depths() {
		if d == Unreachable && n.valves[i].Rate > 0 {
			out = append(out, n.valves[i].Name)
		}
	}

	return out
}

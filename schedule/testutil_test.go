package schedule_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/valvesched/network"
	"github.com/stretchr/testify/require"
)

// exampleInput is the ten-valve reference network: 1651 for one agent over
// 30 minutes, 1707 for two agents over 26.
const exampleInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// exampleNetwork parses exampleInput starting at AA.
func exampleNetwork(t testing.TB) *network.Network {
	t.Helper()
	n, err := network.Parse(strings.NewReader(exampleInput), network.DefaultStart)
	require.NoError(t, err)

	return n
}

// mustNetwork builds a network from records or fails the test.
func mustNetwork(t testing.TB, start string, recs ...network.Record) *network.Network {
	t.Helper()
	n, err := network.NewNetwork(recs, start)
	require.NoError(t, err)

	return n
}

// fakeGraph lets tests feed the engines inputs network.NewNetwork would reject.
type fakeGraph struct {
	rates []int64
	adj   [][]int
	start int
}

func (f fakeGraph) Len() int              { return len(f.rates) }
func (f fakeGraph) Rate(i int) int64      { return f.rates[i] }
func (f fakeGraph) Neighbors(i int) []int { return f.adj[i] }
func (f fakeGraph) Start() int            { return f.start }

// bruteSingle explores every action sequence of one agent without memoization.
// opened is indexed by graph valve, independent of the engine's bit encoding.
func bruteSingle(n *network.Network, pos int, opened uint64, minute, budget int) int64 {
	if minute >= budget {
		return 0
	}
	best := bruteSingle(n, pos, opened, minute+1, budget)
	if r := n.Rate(pos); r > 0 && opened&(1<<uint(pos)) == 0 {
		c := r*int64(budget-minute) + bruteSingle(n, pos, opened|1<<uint(pos), minute+1, budget)
		best = max(best, c)
	}
	for _, q := range n.Neighbors(pos) {
		best = max(best, bruteSingle(n, q, opened, minute+1, budget))
	}

	return best
}

// action is one agent's move for a minute: go to dest, opening valve open (-1: none).
type action struct{ dest, open int }

func actions(n *network.Network, pos int, opened uint64) []action {
	out := []action{{dest: pos, open: -1}}
	if n.Rate(pos) > 0 && opened&(1<<uint(pos)) == 0 {
		out = append(out, action{dest: pos, open: pos})
	}
	for _, q := range n.Neighbors(pos) {
		out = append(out, action{dest: q, open: -1})
	}

	return out
}

// brutePair explores every joint action sequence of two agents.
func brutePair(n *network.Network, a, b int, opened uint64, minute, budget int) int64 {
	if minute >= budget {
		return 0
	}
	remaining := int64(budget - minute)
	var best int64
	for _, x := range actions(n, a, opened) {
		for _, y := range actions(n, b, opened) {
			next, gain := opened, int64(0)
			for _, v := range []int{x.open, y.open} {
				if v >= 0 && next&(1<<uint(v)) == 0 {
					next |= 1 << uint(v)
					gain += n.Rate(v) * remaining
				}
			}
			best = max(best, gain+brutePair(n, x.dest, y.dest, next, minute+1, budget))
		}
	}

	return best
}

package schedule_test

import (
	"testing"

	"github.com/katalvlaran/valvesched/netgen"
	"github.com/katalvlaran/valvesched/network"
	"github.com/katalvlaran/valvesched/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPair_Example reproduces the two-agent reference answer (26 minutes
// after the default 4 setup minutes).
func TestPair_Example(t *testing.T) {
	res, err := schedule.Pair(exampleNetwork(t), 30)
	require.NoError(t, err)

	assert.Equal(t, schedule.Yield(1707), res.Yield)
	assert.Equal(t, 1+schedule.DefaultSetupMinutes, res.StartMinute)
	assert.Equal(t, 30-1-schedule.DefaultSetupMinutes, res.Minutes)
}

// TestPair_TwoValves: one agent opens A at minute 1 (2×5) while the other
// walks to B and opens it at minute 2 (3×4).
func TestPair_TwoValves(t *testing.T) {
	n := mustNetwork(t, "A",
		network.Record{Name: "A", Rate: 2, Tunnels: []string{"B"}},
		network.Record{Name: "B", Rate: 3, Tunnels: []string{"A"}},
	)
	res, err := schedule.Pair(n, 6, schedule.WithSetupMinutes(0))
	require.NoError(t, err)
	assert.Equal(t, schedule.Yield(22), res.Yield)
}

// TestPair_SameValveCreditedOnce: both agents stand on the only flow valve;
// opening it together must not double its yield.
func TestPair_SameValveCreditedOnce(t *testing.T) {
	lone := mustNetwork(t, "X", network.Record{Name: "X", Rate: 5})
	res, err := schedule.Pair(lone, 10, schedule.WithSetupMinutes(0))
	require.NoError(t, err)
	assert.Equal(t, schedule.Yield(5*9), res.Yield)

	// Both walk from S to X at minute 1, then open it at minute 2.
	walk := mustNetwork(t, "S",
		network.Record{Name: "S", Rate: 0, Tunnels: []string{"X"}},
		network.Record{Name: "X", Rate: 5, Tunnels: []string{"S"}},
	)
	res, err = schedule.Pair(walk, 6, schedule.WithSetupMinutes(0))
	require.NoError(t, err)
	assert.Equal(t, schedule.Yield(5*4), res.Yield)
}

// TestPair_ZeroRates: all-zero rates give zero for every budget.
func TestPair_ZeroRates(t *testing.T) {
	n, err := netgen.Cycle(4, netgen.WithRates(netgen.ConstantRate(0)))
	require.NoError(t, err)
	for budget := 0; budget <= 8; budget++ {
		res, err := schedule.Pair(n, budget, schedule.WithSetupMinutes(0))
		require.NoError(t, err)
		assert.Zero(t, res.Yield, "budget=%d", budget)
	}
}

// TestPair_SetupConsumesBudget: no minute left after setup means zero.
func TestPair_SetupConsumesBudget(t *testing.T) {
	for _, budget := range []int{0, 1, 4, 5} {
		res, err := schedule.Pair(exampleNetwork(t), budget)
		require.NoError(t, err)
		assert.Zero(t, res.Yield, "budget=%d", budget)
		assert.Zero(t, res.Minutes, "budget=%d", budget)
	}
}

// TestPair_AtLeastSingle: a second agent never hurts when both share the
// same clock.
func TestPair_AtLeastSingle(t *testing.T) {
	n := exampleNetwork(t)
	for budget := 0; budget <= 14; budget += 2 {
		one, err := schedule.Single(n, budget)
		require.NoError(t, err)
		two, err := schedule.Pair(n, budget, schedule.WithSetupMinutes(0))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, two.Yield, one.Yield, "budget=%d", budget)
	}

	// Directed dead end: the second agent can only stay put.
	sink := mustNetwork(t, "S",
		network.Record{Name: "S", Rate: 0, Tunnels: []string{"T"}},
		network.Record{Name: "T", Rate: 4},
	)
	one, err := schedule.Single(sink, 7)
	require.NoError(t, err)
	two, err := schedule.Pair(sink, 7, schedule.WithSetupMinutes(0))
	require.NoError(t, err)
	assert.Equal(t, schedule.Yield(4*5), one.Yield)
	assert.Equal(t, one.Yield, two.Yield)
}

// TestPair_Monotone: one more minute never hurts.
func TestPair_Monotone(t *testing.T) {
	n := exampleNetwork(t)
	var prev schedule.Yield
	for budget := 0; budget <= 16; budget++ {
		res, err := schedule.Pair(n, budget, schedule.WithSetupMinutes(0))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Yield, prev, "budget=%d", budget)
		prev = res.Yield
	}
}

// TestPair_MatchesBruteForce compares against exhaustive joint search.
func TestPair_MatchesBruteForce(t *testing.T) {
	shapes := map[string]func() (*network.Network, error){
		"star": func() (*network.Network, error) {
			return netgen.Star(4, netgen.WithRates(netgen.RatesOf(0, 6, 2, 9)))
		},
		"path": func() (*network.Network, error) {
			return netgen.Path(5, netgen.WithRates(netgen.RatesOf(3, 0, 8, 0, 5)), netgen.WithStart(2))
		},
		"complete": func() (*network.Network, error) {
			return netgen.Complete(4, netgen.WithRates(netgen.RatesOf(1, 4, 0, 7)))
		},
	}
	for name, build := range shapes {
		t.Run(name, func(t *testing.T) {
			n, err := build()
			require.NoError(t, err)
			for budget := 2; budget <= 5; budget++ {
				res, err := schedule.Pair(n, budget, schedule.WithSetupMinutes(0))
				require.NoError(t, err)
				want := brutePair(n, n.Start(), n.Start(), 0, 1, budget)
				assert.Equal(t, want, res.Yield, "budget=%d", budget)
			}
		})
	}
}

// TestPair_Workers: splitting rows across goroutines is invisible.
func TestPair_Workers(t *testing.T) {
	n := exampleNetwork(t)
	base, err := schedule.Pair(n, 20)
	require.NoError(t, err)
	for _, w := range []int{2, 4, 16} {
		res, err := schedule.Pair(n, 20, schedule.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, base, res, "workers=%d", w)
	}
}

// TestPair_Idempotent: same input, same output.
func TestPair_Idempotent(t *testing.T) {
	n := exampleNetwork(t)
	a, err := schedule.Pair(n, 18)
	require.NoError(t, err)
	b, err := schedule.Pair(n, 18)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestPair_OnMinute: the clock starts after setup.
func TestPair_OnMinute(t *testing.T) {
	var minutes []int
	_, err := schedule.Pair(exampleNetwork(t), 9,
		schedule.WithSetupMinutes(3),
		schedule.WithOnMinute(func(s schedule.MinuteStats) { minutes = append(minutes, s.Minute) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 7, 6, 5, 4}, minutes)
}

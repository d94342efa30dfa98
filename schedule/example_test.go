package schedule_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/valvesched/network"
	"github.com/katalvlaran/valvesched/schedule"
)

// ExampleSingle runs the one-agent search on the ten-valve reference network
// with a 30-minute budget.
func ExampleSingle() {
	n, err := network.Parse(strings.NewReader(exampleInput), "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := schedule.Single(n, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("yield:", res.Yield)
	// Output:
	// yield: 1651
}

// ExamplePair lets two agents share the work; the first four minutes are
// spent on setup, so the shared clock covers minutes 5 … 29.
func ExamplePair() {
	n, err := network.Parse(strings.NewReader(exampleInput), "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := schedule.Pair(n, 30, schedule.WithSetupMinutes(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start minute:", res.StartMinute)
	fmt.Println("yield:", res.Yield)
	// Output:
	// start minute: 5
	// yield: 1707
}

// ExampleWithOnMinute reports progress once per finished minute table.
func ExampleWithOnMinute() {
	n, _ := network.NewNetwork([]network.Record{
		{Name: "A", Rate: 2, Tunnels: []string{"B"}},
		{Name: "B", Rate: 3, Tunnels: []string{"A"}},
	}, "A")

	res, _ := schedule.Single(n, 6, schedule.WithOnMinute(func(s schedule.MinuteStats) {
		fmt.Printf("minute %d: %d states\n", s.Minute, s.States)
	}))
	fmt.Println("yield:", res.Yield)
	// Output:
	// minute 5: 4 states
	// minute 4: 6 states
	// minute 3: 6 states
	// minute 2: 6 states
	// minute 1: 6 states
	// yield: 19
}

// Package valvesched finds the best schedule for opening pressure-release
// valves in a tunnel network before a time budget runs out, for one agent or
// for two agents working in parallel.
//
// What is inside?
//
//	• network/: valve records, the resolved Network, text and YAML codecs
//	• closedset/: bitmask sets over the valves that carry flow
//	• schedule/: backward-induction search (Single and Pair)
//	• netgen/: deterministic network generators for tests and benchmarks
//	• cmd/valvesched: command-line front end
//
// Every move through a tunnel costs one minute; opening a valve costs one
// minute and credits its rate for each remaining minute up to the budget.
// The search tabulates, minute by minute from the horizon back to the start,
// the best yield from every (position, closed set) state, keeping only two
// table generations alive.
//
// Quick example (the ten-valve reference network):
//
//	n, _ := network.Parse(file, "AA")
//	one, _ := schedule.Single(n, 30)                                // 1651
//	two, _ := schedule.Pair(n, 30, schedule.WithSetupMinutes(4))    // 1707
//
//	go install github.com/katalvlaran/valvesched/cmd/valvesched@latest
package valvesched

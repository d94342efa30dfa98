// SPDX-License-Identifier: MIT

// Package network holds the immutable valve table the schedule engines run on.
//
// What:
//
//   - Record is one parsed line: a valve name, its flow rate and the names of
//     the valves its tunnels lead to.
//   - Network is the index-stable table built from records: every valve gets a
//     dense index (record order) and every tunnel is resolved to an index.
//   - ParseRecords / Parse read the textual form
//
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//     Valve HH has flow rate=22; tunnel leads to valve GG
//
//   - DecodeYAML / EncodeYAML read and write the same data as YAML:
//
//     start: AA
//     valves:
//     - {name: AA, rate: 0, tunnels: [DD, II, BB]}
//     - {name: HH, rate: 22, tunnels: [GG]}
//
//   - Depths gives the tunnel-hop distance of every valve from the start;
//     UnreachableFlow names the flow valves no path reaches.
//
// Guarantees:
//
//   - A Network is never partially resolved: every constructor either returns
//     a complete table or an error wrapping ErrMalformedGraph.
//   - No mutation after construction; accessors hand out copies.
//   - Safe for concurrent reads.
//
// Errors (all wrap ErrMalformedGraph):
//
//   - ErrEmptyNetwork, ErrEmptyName, ErrDuplicateValve, ErrUnknownNeighbor,
//     ErrNegativeRate, ErrRateTooLarge, ErrUnknownStart, ErrBadRecord.
package network

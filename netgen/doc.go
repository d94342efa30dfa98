// SPDX-License-Identifier: MIT

// Package netgen builds synthetic valve networks for tests, benchmarks and
// examples, in the functional-options style of a graph builder.
//
// Constructors:
//
//   - Path(n):              V0 - V1 - … - V(n-1)
//   - Cycle(n):             Path(n) closed back to V0
//   - Star(n):              hub V0 joined to n-1 leaves
//   - Complete(n):          every pair joined
//   - RandomSparse(n, p):   a path backbone plus each extra pair with probability p
//
// Every tunnel is two-way. Valve names come from the ID scheme
// (LetterPairID by default: "AA", "AB", …), rates from the RateFn
// (ConstantRate(1) by default). The start valve is index 0 unless
// WithStart says otherwise.
//
// Determinism: fixed emission order (i asc, then j asc) and a seeded RNG give
// identical networks for identical options.
//
// Errors:
//
//   - ErrTooFewValves:       n below the constructor minimum.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource:     a stochastic choice without WithSeed/WithRand.
//   - ErrBadStart:           WithStart index outside [0,n).
//   - network errors (e.g. duplicate IDs from a custom scheme).
package netgen

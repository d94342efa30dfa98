// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"math"
)

// DefaultStart is the valve both agents start at when a source names none.
const DefaultStart = "AA"

// MaxRate bounds a single valve's rate so that MaxRate × budget × flow valves
// always fits an int64 yield.
const MaxRate = math.MaxInt32

// ErrMalformedGraph is the root of every structural or parse failure.
// Callers branch with errors.Is(err, ErrMalformedGraph).
var ErrMalformedGraph = errors.New("network: malformed graph")

var (
	// ErrEmptyNetwork indicates no records were supplied.
	ErrEmptyNetwork = fmt.Errorf("network: no valves: %w", ErrMalformedGraph)

	// ErrEmptyName indicates a record or tunnel with an empty valve name.
	ErrEmptyName = fmt.Errorf("network: empty valve name: %w", ErrMalformedGraph)

	// ErrDuplicateValve indicates two records share a name.
	ErrDuplicateValve = fmt.Errorf("network: duplicate valve: %w", ErrMalformedGraph)

	// ErrUnknownNeighbor indicates a tunnel naming a valve that has no record.
	ErrUnknownNeighbor = fmt.Errorf("network: unknown neighbor: %w", ErrMalformedGraph)

	// ErrNegativeRate indicates a rate below zero.
	ErrNegativeRate = fmt.Errorf("network: negative flow rate: %w", ErrMalformedGraph)

	// ErrRateTooLarge indicates a rate above MaxRate.
	ErrRateTooLarge = fmt.Errorf("network: flow rate too large: %w", ErrMalformedGraph)

	// ErrUnknownStart indicates the start valve has no record.
	ErrUnknownStart = fmt.Errorf("network: unknown start valve: %w", ErrMalformedGraph)

	// ErrBadRecord indicates input that could not be parsed into records.
	ErrBadRecord = fmt.Errorf("network: unparsable record: %w", ErrMalformedGraph)
)

// Record is one valve as it appears in the input, before name resolution.
type Record struct {
	// Name identifies the valve; must be unique and non-empty.
	Name string `yaml:"name"`

	// Rate is the per-minute yield once the valve is open.
	Rate int64 `yaml:"rate"`

	// Tunnels lists neighbor valve names in input order.
	Tunnels []string `yaml:"tunnels,flow"`
}

// Valve is a resolved node of a Network.
type Valve struct {
	// Name is the identity from the Record.
	Name string

	// Index is the dense position of the valve, equal to its record order.
	Index int

	// Rate is the per-minute yield once the valve is open.
	Rate int64

	// Neighbors holds tunnel targets as indices, in record order.
	Neighbors []int
}

// Network is the immutable valve table.
type Network struct {
	valves []Valve
	byName map[string]int
	start  int
	flow   int // valves with Rate > 0
}

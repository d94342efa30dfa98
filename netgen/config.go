// SPDX-License-Identifier: MIT

package netgen

import (
	"errors"
	"math/rand"
	"strconv"
)

var (
	// ErrTooFewValves indicates n is below the constructor minimum.
	ErrTooFewValves = errors.New("netgen: too few valves")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("netgen: probability out of range")

	// ErrNeedRandSource indicates a stochastic choice without an RNG.
	ErrNeedRandSource = errors.New("netgen: rng is required")

	// ErrBadStart indicates a start index outside [0,n).
	ErrBadStart = errors.New("netgen: start index out of range")
)

// IDFn maps a valve index to its name.
type IDFn func(i int) string

// RateFn picks the rate of valve i. rng is nil unless WithSeed/WithRand was used.
type RateFn func(i int, rng *rand.Rand) (int64, error)

// Option mutates the generator configuration; later options win.
type Option func(*config)

// config is resolved once per constructor call and passed by value.
type config struct {
	idFn   IDFn
	rateFn RateFn
	rng    *rand.Rand
	start  int
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   LetterPairID,
		rateFn: ConstantRate(1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme overrides the valve naming. nil is ignored.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRates overrides the rate policy. nil is ignored.
func WithRates(fn RateFn) Option {
	return func(c *config) {
		if fn != nil {
			c.rateFn = fn
		}
	}
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithStart picks the start valve index (default 0).
func WithStart(i int) Option {
	return func(c *config) { c.start = i }
}

// LetterPairID names valves "AA", "AB", … "ZZ", then "V676", "V677", ….
func LetterPairID(i int) string {
	if i >= 0 && i < 26*26 {
		return string([]byte{byte('A' + i/26), byte('A' + i%26)})
	}

	return "V" + strconv.Itoa(i)
}

// DecimalID names valves "0", "1", ….
func DecimalID(i int) string { return strconv.Itoa(i) }

// ConstantRate gives every valve rate r.
func ConstantRate(r int64) RateFn {
	return func(int, *rand.Rand) (int64, error) { return r, nil }
}

// RatesOf takes rates from a slice, repeating it cyclically.
func RatesOf(rates ...int64) RateFn {
	return func(i int, _ *rand.Rand) (int64, error) {
		if len(rates) == 0 {
			return 0, nil
		}
		return rates[i%len(rates)], nil
	}
}

// UniformRate draws rates uniformly from [lo, hi]; with probability zeroP a
// valve gets rate 0 instead, mimicking networks where most valves are
// waypoints.
func UniformRate(lo, hi int64, zeroP float64) RateFn {
	return func(_ int, rng *rand.Rand) (int64, error) {
		if rng == nil {
			return 0, ErrNeedRandSource
		}
		if zeroP < 0 || zeroP > 1 {
			return 0, ErrInvalidProbability
		}
		if rng.Float64() < zeroP {
			return 0, nil
		}
		if hi <= lo {
			return lo, nil
		}
		return lo + rng.Int63n(hi-lo+1), nil
	}
}

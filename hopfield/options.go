// SPDX-License-Identifier: MIT
package hopfield

import (
	"fmt"
	"math/rand"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultSeed seeds the neuron-selection generator when neither WithSeed
	// nor WithRand is given, so recall is reproducible out of the box.
	DefaultSeed int64 = 1

	// DefaultRecallSteps is the conventional number of single-neuron update
	// attempts for Recall (not full sweeps).
	DefaultRecallSteps = 10
)

// UpdateFunc observes one asynchronous update inside Recall: the step index,
// the neuron chosen, and its value before and after the update. It runs under
// the network's read lock and must not call Encode.
type UpdateFunc func(step, neuron int, prev, next float64)

// Option configures a Network via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewNetwork.
type Option func(*Options)

// Options holds the resolved construction parameters of a Network.
type Options struct {
	rng      *rand.Rand // neuron-selection source
	onUpdate UpdateFunc // optional per-update hook

	err error // first violation recorded while applying options
}

// WithSeed uses a fresh math/rand generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a caller-owned generator. The network serializes its own
// draws, but the caller must not use r concurrently elsewhere.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.fail("WithRand: nil generator")
			return
		}
		o.rng = r
	}
}

// WithOnUpdate installs a hook called after every single-neuron update in Recall.
// A nil fn clears the hook.
func WithOnUpdate(fn UpdateFunc) Option {
	return func(o *Options) { o.onUpdate = fn }
}

// fail records the first option violation.
func (o *Options) fail(msg string) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, msg)
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins)
// and returns the first recorded violation, if any.
func gatherOptions(user ...Option) (Options, error) {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return o, nil
}

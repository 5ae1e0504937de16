package hopfield_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/stretchr/testify/require"
)

// mustNetwork builds a network or fails the test.
func mustNetwork(t testing.TB, size int, opts ...hopfield.Option) *hopfield.Network {
	t.Helper()
	net, err := hopfield.NewNetwork(size, opts...)
	require.NoError(t, err)

	return net
}

// randPattern returns a deterministic bipolar pattern of length n.
func randPattern(rng *rand.Rand, n int) hopfield.Pattern {
	p := make(hopfield.Pattern, n)
	for i := range p {
		if rng.Intn(2) == 0 {
			p[i] = hopfield.Down
		} else {
			p[i] = hopfield.Up
		}
	}

	return p
}

// flip returns a copy of p with the given positions negated.
func flip(p hopfield.Pattern, idx ...int) hopfield.Pattern {
	out := p.Clone()
	for _, i := range idx {
		out[i] = -out[i]
	}

	return out
}

// mustBits parses a +/- literal or fails the test.
func mustBits(t testing.TB, bits string) hopfield.Pattern {
	t.Helper()
	p, err := hopfield.PatternFromBits(bits)
	require.NoError(t, err)

	return p
}

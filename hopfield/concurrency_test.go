// Package hopfield_test verifies thread-safety of Network under concurrent operations.
package hopfield_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/katalvlaran/hopnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestConcurrentEncodeRecallEnergy mixes writers and readers on one network
// and checks the weight invariants and pattern count afterwards.
func TestConcurrentEncodeRecallEnergy(t *testing.T) {
	const (
		n       = 32
		writers = 20
		readers = 40
	)
	net := mustNetwork(t, n, hopfield.WithSeed(1))

	patterns := make([]hopfield.Pattern, writers)
	rng := rand.New(rand.NewSource(64))
	for i := range patterns {
		patterns[i] = randPattern(rng, n)
	}
	cue := randPattern(rng, n)

	var wg sync.WaitGroup
	wg.Add(writers + readers)
	errs := make(chan error, writers+2*readers)

	for i := 0; i < writers; i++ {
		go func(p hopfield.Pattern) {
			defer wg.Done()
			errs <- net.Encode(p)
		}(patterns[i])
	}
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			out, err := net.Recall(cue, 2*n)
			errs <- err
			if err == nil {
				_, err = net.Energy(out)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, writers, net.Stored())
	require.NoError(t, matrix.ValidateHollowSymmetric(net.Weights(), 0))

	// The result must equal a sequential encode of the same patterns.
	seq := mustNetwork(t, n)
	require.NoError(t, seq.Encode(patterns...))
	ok, err := matrix.AllClose(seq.Weights(), net.Weights(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

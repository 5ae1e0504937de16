// SPDX-License-Identifier: MIT
package hopfield

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/hopnet/matrix"
)

// Network is a fully connected recurrent network of size bipolar neurons.
//
// Invariants:
//   - weights is size×size, symmetric and zero-diagonal after every Encode;
//   - weights starts at all zeros and is mutated only by Encode (additively).
type Network struct {
	mu      sync.RWMutex  // guards weights and stored
	size    int           // number of neurons (> 0), immutable
	weights *matrix.Dense // Hebbian weights
	stored  int           // patterns absorbed so far

	rngMu    sync.Mutex // serializes draws from rng
	rng      *rand.Rand
	onUpdate UpdateFunc
}

// NewNetwork creates a network of size neurons with all-zero weights.
//
// Errors:
//   - ErrInvalidDimension if size <= 0.
//   - ErrOptionViolation if an Option is invalid.
//
// Complexity: Time O(size²), Space O(size²).
func NewNetwork(size int, opts ...Option) (*Network, error) {
	if size <= 0 {
		return nil, networkErrorf(opNew, fmt.Errorf("%w: size %d", ErrInvalidDimension, size))
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, networkErrorf(opNew, err)
	}
	w, err := matrix.NewSquare(size)
	if err != nil {
		return nil, networkErrorf(opNew, err)
	}

	return &Network{
		size:     size,
		weights:  w,
		rng:      o.rng,
		onUpdate: o.onUpdate,
	}, nil
}

// Size returns the number of neurons.
func (n *Network) Size() int {
	if n == nil {
		return 0
	}

	return n.size
}

// Stored returns how many patterns have been encoded so far.
func (n *Network) Stored() int {
	if n == nil {
		return 0
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.stored
}

// Weights returns a deep copy of the weight matrix.
func (n *Network) Weights() *matrix.Dense {
	if n == nil {
		return nil
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.weights.CloneDense()
}

// Weight returns w[i][j]; out-of-range indices yield matrix.ErrOutOfRange.
func (n *Network) Weight(i, j int) (float64, error) {
	if n == nil {
		return 0, ErrNilNetwork
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, err := n.weights.At(i, j)
	if err != nil {
		return 0, networkErrorf(opWeight, err)
	}

	return v, nil
}

// Encode imprints patterns with the Hebbian rule:
//
//	w[i][j] += p[i]·p[j] for every pattern p, then w[i][i] = 0.
//
// Implementation:
//   - Stage 1: validate every pattern (length, bipolar values) before touching weights.
//   - Stage 2: under the write lock, accumulate one outer product per pattern.
//   - Stage 3: overwrite the diagonal with zero.
//
// Accumulation is additive and commutative across patterns and across calls;
// encoding the same pattern twice doubles its contribution. Calling Encode
// with no patterns leaves the weights unchanged.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidPattern (weights untouched).
//
// Complexity: Time O(k·N²) for k patterns, Space O(1).
func (n *Network) Encode(patterns ...Pattern) error {
	if n == nil {
		return ErrNilNetwork
	}
	for idx, p := range patterns {
		if err := validatePattern(p, n.size); err != nil {
			return networkErrorf(opEncode, fmt.Errorf("pattern %d: %w", idx, err))
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, p := range patterns {
		if err := matrix.AddOuter(n.weights, p, 1); err != nil {
			return networkErrorf(opEncode, err)
		}
	}
	if err := matrix.ZeroDiagonal(n.weights); err != nil {
		return networkErrorf(opEncode, err)
	}
	n.stored += len(patterns)

	return nil
}

// Energy returns E(x) = -½·xᵀWx. Any real values are accepted; only the
// length is checked. Neither the network nor x is mutated.
//
// Errors:
//   - ErrInvalidDimension if len(x) != Size().
//
// Complexity: Time O(N²), Space O(1).
func (n *Network) Energy(x []float64) (float64, error) {
	if n == nil {
		return 0, ErrNilNetwork
	}
	if len(x) != n.size {
		return 0, networkErrorf(opEnergy, fmt.Errorf("%w: state length %d, want %d", ErrInvalidDimension, len(x), n.size))
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	q, err := matrix.QuadForm(n.weights, x)
	if err != nil {
		return 0, networkErrorf(opEnergy, err)
	}

	return -0.5 * q, nil
}

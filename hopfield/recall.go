package hopfield

import (
	"fmt"

	"github.com/katalvlaran/hopnet/matrix"
)

// activate is the sign rule with the zero tie resolved to +1.
func activate(h float64) float64 {
	if h < 0 {
		return Down
	}

	return Up
}

// pick draws a neuron index uniformly from [0, size).
func (n *Network) pick() int {
	n.rngMu.Lock()
	defer n.rngMu.Unlock()

	return n.rng.Intn(n.size)
}

// Recall relaxes a copy of p by steps asynchronous single-neuron updates and
// returns the final state. p itself is never mutated.
//
// Each step draws a neuron i uniformly at random (with replacement, so a
// neuron may be visited several times or not at all) and sets
//
//	state[i] = sign(Σ_j w[i][j]·state[j]), sign(0) = +1.
//
// steps == 0 returns an unchanged copy. Use DefaultRecallSteps for the
// conventional default, or a multiple of Size() for full sweeps.
//
// Errors:
//   - ErrInvalidSteps if steps < 0.
//   - ErrInvalidDimension, ErrInvalidPattern for a malformed p.
//
// Complexity: Time O(steps·N), Space O(N).
func (n *Network) Recall(p Pattern, steps int) (Pattern, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if steps < 0 {
		return nil, networkErrorf(opRecall, fmt.Errorf("%w: %d", ErrInvalidSteps, steps))
	}
	if err := validatePattern(p, n.size); err != nil {
		return nil, networkErrorf(opRecall, err)
	}

	state := p.Clone()

	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.relax(state, steps); err != nil {
		return nil, networkErrorf(opRecall, err)
	}

	return state, nil
}

// relax performs steps asynchronous updates on state in place.
// Callers hold at least the read lock.
func (n *Network) relax(state Pattern, steps int) error {
	var (
		i    int
		h    float64
		prev float64
		err  error
	)
	for step := 0; step < steps; step++ {
		i = n.pick()
		if h, err = matrix.RowDot(n.weights, i, state); err != nil {
			return err
		}
		prev = state[i]
		state[i] = activate(h)
		if n.onUpdate != nil {
			n.onUpdate(step, i, prev, state[i])
		}
	}

	return nil
}

// IsStable reports whether s is a fixed point of the update rule: no single
// neuron update would change it.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidPattern for a malformed s.
//
// Complexity: Time O(N²).
func (n *Network) IsStable(s Pattern) (bool, error) {
	if n == nil {
		return false, ErrNilNetwork
	}
	if err := validatePattern(s, n.size); err != nil {
		return false, networkErrorf(opIsStable, err)
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.stable(s)
}

// stable is IsStable without locking or validation.
func (n *Network) stable(s Pattern) (bool, error) {
	field, err := matrix.MatVec(n.weights, s)
	if err != nil {
		return false, err
	}
	for i, h := range field {
		if activate(h) != s[i] {
			return false, nil
		}
	}

	return true, nil
}

// RecallUntilStable runs Recall in sweeps of Size() random updates until the
// state is a fixed point or maxSweeps sweeps have run. It returns the final
// state and the number of sweeps used (0 if p was already stable).
//
// Sampling stays with replacement, exactly as in Recall; only the stopping
// test is deterministic. When the budget runs out the last state is returned
// without error; check it with IsStable if that matters.
//
// Errors:
//   - ErrInvalidSteps if maxSweeps <= 0.
//   - ErrInvalidDimension, ErrInvalidPattern for a malformed p.
//
// Complexity: Time O(maxSweeps·N²), Space O(N).
func (n *Network) RecallUntilStable(p Pattern, maxSweeps int) (Pattern, int, error) {
	if n == nil {
		return nil, 0, ErrNilNetwork
	}
	if maxSweeps <= 0 {
		return nil, 0, networkErrorf(opStable, fmt.Errorf("%w: maxSweeps %d", ErrInvalidSteps, maxSweeps))
	}
	if err := validatePattern(p, n.size); err != nil {
		return nil, 0, networkErrorf(opStable, err)
	}

	state := p.Clone()

	n.mu.RLock()
	defer n.mu.RUnlock()

	for sweep := 0; sweep < maxSweeps; sweep++ {
		ok, err := n.stable(state)
		if err != nil {
			return nil, sweep, networkErrorf(opStable, err)
		}
		if ok {
			return state, sweep, nil
		}
		if err = n.relax(state, n.size); err != nil {
			return nil, sweep, networkErrorf(opStable, err)
		}
	}

	return state, maxSweeps, nil
}

// Package matrix provides the dense linear-algebra primitives behind the
// hopfield associative memory.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy.
//   - Validators for the structural invariants of a weight matrix: square,
//     symmetric, zero diagonal, conformable vectors.
//   - The kernels a recurrent network needs: MatVec, RowDot (one neuron's
//     local field), QuadForm (xᵀAx for energies), AddOuter (Hebbian rank-one
//     accumulation), ZeroDiagonal, Scale and AllClose.
//
// Every kernel has a *Dense fast path over the flat buffer and a generic
// At/Set fallback for other Matrix implementations. Loop orders are fixed, so
// results are bit-for-bit reproducible.
//
// See the examples in this package and in hopfield for usage patterns.
package matrix

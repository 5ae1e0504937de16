// Package hopnet is a small, dependency-light toolkit for classical
// associative memory: Hopfield networks that store bipolar patterns with
// Hebbian learning and recover them from noisy or partial cues.
//
// 🚀 What is hopnet?
//
//	A thread-safe, deterministic library built from two layers:
//		• matrix/   — row-major Dense storage, validators (symmetry, zero
//		              diagonal, NaN/Inf) and the kernels a recurrent network
//		              needs: MatVec, RowDot, QuadForm, AddOuter, ZeroDiagonal.
//		• hopfield/ — the Network: Encode, Recall, Energy, RecallUntilStable,
//		              IsStable and pattern helpers.
//
// ✨ Why choose hopnet?
//
//   - Reproducible – randomness is injected (WithSeed / WithRand)
//   - Safe – explicit sentinel errors, no panics on bad input
//   - Observable – an OnUpdate hook sees every neuron update
//
// ⚙️ Quick start:
//
//	net, _ := hopfield.NewNetwork(25, hopfield.WithSeed(42))
//	_ = net.Encode(letterT, letterL)
//	out, sweeps, _ := net.RecallUntilStable(noisyT, 50)
//
// See examples/ for a runnable glyph-recall demo.
package hopnet

// Package hopfield implements a classical associative memory: a fully
// connected recurrent network of N bipolar neurons that stores patterns by
// Hebbian learning and recovers them from noisy or partial cues.
//
// 🚀 What does it do?
//
//	Encode imprints patterns into a symmetric, zero-diagonal weight matrix:
//	  w[i][j] += p[i]·p[j] for every pattern p, then w[i][i] = 0.
//	Recall relaxes a cue by asynchronous stochastic updates, one randomly
//	chosen neuron per step:
//	  s[i] = sign(Σ_j w[i][j]·s[j]), with sign(0) = +1.
//	Energy scores a state with the Lyapunov function
//	  E(s) = -½ Σ_i Σ_j w[i][j]·s[i]·s[j],
//	which never increases under a Recall update.
//
// ⚙️ Usage:
//
//	net, err := hopfield.NewNetwork(64, hopfield.WithSeed(42))
//	if err != nil { ... }
//	if err := net.Encode(a, b, c); err != nil { ... }
//	out, err := net.Recall(noisy, 10*64)   // ~10 sweeps
//	e, _ := net.Energy(out)
//
// Randomness is injected (WithSeed / WithRand), so recall is reproducible for
// a fixed seed. Neurons are sampled with replacement; for a guaranteed fixed
// point use RecallUntilStable.
//
// Concurrency: Encode takes the write lock; Recall, Energy and the accessors
// share a read lock. Draws from the injected generator are serialized.
package hopfield

package agent

import "sync"

// Rand is the source of randomness injected into agents and the population
// manager. *math/rand/v2.Rand satisfies it; tests substitute a scripted
// implementation to force flee rolls and spawn choices.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// IntN returns a pseudo-random number in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// LockedRand serializes access to an underlying Rand. One source is shared
// by the manager and every agent, and damage events roll it under only the
// per-agent mutex, so the shared state needs its own lock.
type LockedRand struct {
	mu  sync.Mutex
	src Rand
}

// NewLockedRand wraps src for concurrent use.
func NewLockedRand(src Rand) *LockedRand {
	return &LockedRand{src: src}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// IntN returns a pseudo-random number in [0, n).
func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(n)
}

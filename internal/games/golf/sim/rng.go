package sim

// rng is a deterministic pseudo-random number generator (xorshift64).
// The behavior rules roll probabilities once per cell per tick, so the
// generator has to be cheap and allocation-free.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &rng{state: seed}
}

// next returns the next random uint64.
func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a random float64 in [0, 1).
func (r *rng) float() float64 {
	return float64(r.next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// intn returns a random int in [0, n).
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// rangeF returns a random float64 in [lo, hi).
func (r *rng) rangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.float()
}

// shade returns a stable brightness offset in [-8, 7].
func (r *rng) shade() int8 {
	return int8(r.intn(16)) - 8
}

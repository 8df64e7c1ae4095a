package vmath

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each simulation owns one
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [0, span), 0 when span <= 0
func (r *FastRand) Range(span float64) float64 {
	if span <= 0 {
		return 0
	}
	return r.Float64() * span
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Sign returns -1 or +1 with equal probability
func (r *FastRand) Sign() float64 {
	if r.Next()&1 == 0 {
		return -1
	}
	return 1
}

package sim

// RNG is a 64-bit-state PCG-family generator yielding 32-bit outputs.
//
// Ported from original_source/src/patika_rng.c (a textbook PCG32-XSH-RR
// generator). Seeded once at context creation so the same seed and command
// sequence reproduces the same simulation. Not safe for concurrent use: only
// the tick goroutine ever calls Next.
type RNG struct {
	state uint64
}

// NewRNG seeds a generator. A seed of 0 is valid (PCG32 tolerates it).
func NewRNG(seed uint64) RNG {
	return RNG{state: seed}
}

// Next advances the generator and returns the next 32-bit output.
func (r *RNG) Next() uint32 {
	old := r.state
	r.state = old*6364136223846793005 + 1442695040888963407
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Intn returns a deterministic value in [0, n). n must be > 0.
func (r *RNG) Intn(n int) int {
	return int(r.Next() % uint32(n))
}

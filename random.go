package main

import (
	"fmt"
	"math/rand/v2"
)

// intSource draws integers in [0, n).
type intSource interface {
	Intn(n int) int
}

const (
	rngJava = "java"
	rngPCG  = "pcg"
)

// newSource returns a freshly seeded source of the given kind.
// Every block gets its own source so that blocks never observe each other's draws.
func newSource(kind string, seed int64) (intSource, error) {
	switch kind {
	case "", rngJava:
		return newJavaRandom(seed), nil
	case rngPCG:
		return &pcgSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}, nil
	default:
		return nil, &ValidationError{Field: "rng", Reason: fmt.Sprintf("unknown generator %q", kind)}
	}
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = 1<<48 - 1
)

// javaRandom is the 48-bit linear congruential generator used by java.util.Random.
// Fixtures committed before this tool existed were drawn from it with seed 44.
type javaRandom struct {
	seed int64
}

func newJavaRandom(seed int64) *javaRandom {
	return &javaRandom{seed: (seed ^ lcgMultiplier) & lcgMask}
}

func (r *javaRandom) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(r.seed >> (48 - bits))
}

// Intn mirrors Random.nextInt(bound), including its rejection loop.
func (r *javaRandom) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	bound := int32(n)
	m := bound - 1
	v := r.next(31)
	if bound&m == 0 {
		return int((int64(bound) * int64(v)) >> 31)
	}
	for u := v; ; u = r.next(31) {
		v = u % bound
		// wraps negative when u falls in the biased tail
		if u-v+m >= 0 {
			return int(v)
		}
	}
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Intn(n int) int {
	return s.r.IntN(n)
}

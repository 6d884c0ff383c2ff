package ext

import (
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

var srand *rand.Rand

func init() {
	srand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewRand returns an independent source; seed 0 means time based.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandInt returns a value in [min, max). r may be nil to use the shared source.
func RandInt[T constraints.Integer](r *rand.Rand, min T, max T) T {
	if max <= min {
		return min
	}
	if r == nil {
		r = srand
	}
	return T(r.Int63n(int64(max-min))) + min
}

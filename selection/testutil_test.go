// Package selection_test holds helpers shared across the *_test.go files:
// an exhaustive reference solver and deterministic input generators.
package selection_test

import (
	"math/rand"

	"github.com/katalvlaran/selopt/selection"
)

const (
	// seedDet drives every random input so failures are reproducible.
	seedDet = int64(42)

	// maxBruteN bounds the exhaustive cross-check (2^n masks per case).
	maxBruteN = 12

	// epsFloat tolerates summation-order differences between float masks.
	epsFloat = 1e-9
)

// bruteForce enumerates all 2^n masks and returns the best sum among those
// with at most k adjacent pairs. It is the reference the optimizer is
// checked against.
func bruteForce[T selection.Number](a []T, k int) T {
	n := len(a)
	var best T
	mask := make(selection.Mask, n)
	for bits := 0; bits < 1<<n; bits++ {
		for i := 0; i < n; i++ {
			mask[i] = (bits >> i) & 1
		}
		if selection.CountAdjacentPairs(mask) > k {
			continue
		}
		var sum T
		for i, v := range mask {
			if v == 1 {
				sum += a[i]
			}
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// randInts returns n positive ints in [1, hi].
func randInts(r *rand.Rand, n, hi int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = 1 + r.Intn(hi)
	}

	return a
}

// randFloats returns n positive floats in (0, hi].
func randFloats(r *rand.Rand, n int, hi float64) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = hi * (1 - r.Float64())
	}

	return a
}

// sumAll returns Σ a.
func sumAll[T selection.Number](a []T) T {
	var s T
	for _, v := range a {
		s += v
	}

	return s
}

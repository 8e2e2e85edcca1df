package selection

import "fmt"

// Verdict is the outcome of Check: either a valid selection with its sum and
// pair count, or an invalid one with a Reason.
type Verdict[T Number] struct {
	Valid bool
	Sum   T
	Pairs int

	// Reason wraps ErrMaskValue, ErrMaskLength or ErrTooManyPairs; nil when Valid.
	Reason error
}

// String renders the verdict as the message Verify returns.
func (v Verdict[T]) String() string {
	if !v.Valid {
		return v.Reason.Error()
	}

	return fmt.Sprintf("valid selection: sum=%v, adjacent pairs=%d", v.Sum, v.Pairs)
}

// CountAdjacentPairs returns the number of positions i with
// mask[i]==1 and mask[i+1]==1.
func CountAdjacentPairs(mask Mask) int {
	count := 0
	for i := 0; i+1 < len(mask); i++ {
		if mask[i] == 1 && mask[i+1] == 1 {
			count++
		}
	}

	return count
}

// Check verifies that mask is a feasible selection of a under bound k.
// Failures are reported in the verdict, never as a returned error.
//
// Order of checks: mask values, mask length, pair count.
func Check[T Number](a []T, mask Mask, k int) Verdict[T] {
	for _, v := range mask {
		if v != 0 && v != 1 {
			return Verdict[T]{Reason: ErrMaskValue}
		}
	}
	if len(mask) != len(a) {
		return Verdict[T]{Reason: fmt.Errorf("%w: mask %d, input %d", ErrMaskLength, len(mask), len(a))}
	}

	pairs := CountAdjacentPairs(mask)
	if pairs > k {
		return Verdict[T]{Pairs: pairs, Reason: fmt.Errorf("%w: %d > k=%d", ErrTooManyPairs, pairs, k)}
	}

	var sum T
	for i, v := range mask {
		if v == 1 {
			sum += a[i]
		}
	}

	return Verdict[T]{Valid: true, Sum: sum, Pairs: pairs}
}

// Verify is the boolean-plus-message form of Check.
func Verify[T Number](a []T, mask Mask, k int) (bool, string) {
	v := Check(a, mask, k)

	return v.Valid, v.String()
}

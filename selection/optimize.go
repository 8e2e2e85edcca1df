package selection

import "fmt"

// Optimize returns the maximum sum of elements of a that can be selected
// with at most k adjacent selected pairs, together with one mask achieving it.
//
// Algorithm Outline:
//  1. Let n = len(a). Allocate the (n+1)·(k+2)·2 table dp.
//  2. Initialize dp[0][0][0] = 0; every other dp[0][*][*] is unreachable.
//  3. For i = 1..n, j = 0..k+1:
//     dp[i][j][0] = max(dp[i-1][j][0], dp[i-1][j][1])
//     dp[i][j][1] = max(dp[i-1][j][0] + a[i-1], dp[i-1][j-1][1] + a[i-1])
//     recording which predecessor won.
//  4. sum = max dp[n][j][s] over j = 0..k, s ∈ {0,1}.
//  5. Follow the recorded predecessors from that state back to i = 0.
//
// An empty a yields (0, Mask{}). A negative k is treated as 0.
//
// Complexity:
//
//	Time   = O(n·min(k, n))
//	Memory = O(n·min(k, n))
func Optimize[T Number](a []T, k int) (T, Mask) {
	if k < 0 {
		k = 0
	}
	opts := DefaultOptions()
	res, _ := Solve(a, k, &opts)

	return res.Sum, res.Mask
}

// Solve is the configurable form of Optimize.
// Returns (result, error).
//
// If opts.ReturnMask is true, opts.Mode must be FullTable. A nil opts
// means DefaultOptions().
//
// Errors:
//   - ErrNegativeBound      — if k < 0.
//   - ErrUnknownMode        — if opts.Mode is not FullTable or RollingLayers.
//   - ErrMaskNeedsFullTable — if ReturnMask=true with RollingLayers.
//
// Example:
//
//	opts := Options{Mode: RollingLayers}
//	res, err := Solve(values, 2, &opts)
func Solve[T Number](a []T, k int, opts *Options) (Result[T], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if k < 0 {
		return Result[T]{}, fmt.Errorf("%w: got %d", ErrNegativeBound, k)
	}
	switch o.Mode {
	case FullTable, RollingLayers:
	default:
		return Result[T]{}, fmt.Errorf("%w: %d", ErrUnknownMode, o.Mode)
	}
	if o.ReturnMask && o.Mode != FullTable {
		return Result[T]{}, ErrMaskNeedsFullTable
	}

	n := len(a)
	if n == 0 {
		var res Result[T]
		if o.ReturnMask {
			res.Mask = Mask{}
		}

		return res, nil
	}
	// A mask of length n holds at most n-1 adjacent pairs.
	k = min(k, n-1)

	if o.Mode == RollingLayers {
		return solveRolling(a, k), nil
	}

	t := newTable[T](n, k)
	seed(t.layer(0))
	for i := 1; i <= n; i++ {
		relax(t.layer(i-1), t.layer(i), t.cols, a[i-1])
	}

	var res Result[T]
	var s int
	res.Sum, res.Pairs, s = best(t.layer(n), k)
	if o.ReturnMask {
		res.Mask = t.backtrack(n, res.Pairs, s)
	}

	return res, nil
}

// solveRolling runs the same recurrence keeping only two layers.
func solveRolling[T Number](a []T, k int) Result[T] {
	cols := k + 2
	prev := make([]cell[T], cols*2)
	cur := make([]cell[T], cols*2)
	seed(prev)
	for _, v := range a {
		relax(prev, cur, cols, v)
		prev, cur = cur, prev
	}

	var res Result[T]
	res.Sum, res.Pairs, _ = best(prev, k)

	return res
}

// Package selection picks elements of a numeric array so that their sum is
// maximal while the number of adjacent selected pairs stays within a bound.
//
// 🚀 What is a bounded-neighbour selection?
//
//	Given a = [a0, a1, …, an-1] and a bound k, choose a mask b of 0/1 values.
//	An adjacent pair is any i with b[i]=1 and b[i+1]=1. The selection is
//	feasible when it holds at most k such pairs; among feasible selections
//	we want the one with the largest Σ a[i]·b[i].
//
//	  a = [100, 300, 400, 50], k = 1
//	  b = [  1,   1,   0,  1]  → 1 pair, sum = 450
//	  b = [  0,   1,   1,  0]  → 1 pair, sum = 700
//	  b = [  1,   0,   1,  1]  → 1 pair, sum = 550
//	  b = [  1,   1,   1,  0]  → 2 pairs, infeasible
//
// ✨ Key features:
//   - exact dynamic programming over (prefix, pairs used, last selected)
//   - parent pointers stored in every cell: mask recovery is a pure lookup,
//     safe for float inputs and ties
//   - rolling mode: O(k) memory when only the sum is needed
//   - generic over every integer and float type; sums keep the input type
//   - independent verifier reporting the achieved sum or the violation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/selopt/selection"
//
//	sum, mask := selection.Optimize([]int{100, 300, 400, 50}, 1)
//	ok, msg := selection.Verify([]int{100, 300, 400, 50}, mask, 1)
//
//	// or with options:
//	opts := selection.DefaultOptions()
//	opts.Mode = selection.RollingLayers
//	opts.ReturnMask = false
//	res, err := selection.Solve(values, k, &opts)
//
// Performance:
//
//   - Time:   O(n·min(k, n))
//   - Memory: O(n·min(k, n)) (FullTable) or O(min(k, n)) (RollingLayers)
//
// A mask of length n holds at most n-1 pairs, so k is capped at n-1 and any
// larger bound, math.MaxInt included, costs the same as k = n-1.
//
// Inputs are expected to be positive. Non-positive values are not validated;
// the returned mask is still feasible, but results for such inputs are not
// part of the contract.
package selection

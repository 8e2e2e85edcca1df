// Package selopt is a small library for constrained selection problems:
// pick elements of a numeric array to maximise their sum while limiting how
// many selected elements sit next to each other.
//
// 🚀 What is in selopt?
//
//	A pure, allocation-conscious, generic toolkit that brings together:
//		• Optimizer: exact DP over (prefix, adjacent pairs used, last selected)
//		• Mask recovery: parent pointers, no float equality tricks
//		• Rolling mode: sum-only evaluation in O(k) memory
//		• Verifier: feasibility check with sum and pair count
//
// Under the hood:
//
//	selection/ — Optimize, Solve, Check, Verify, CountAdjacentPairs
//
// Quick example:
//
//	a = [100, 300, 400, 50], k = 1
//	      ·    ■────■    ·       → sum = 700, one adjacent pair
//
//	go get github.com/katalvlaran/selopt/selection
package selopt

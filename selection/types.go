package selection

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the optimizer and verifier accept.
// Sums are accumulated in the same type, so integer inputs stay exact as
// long as the caller picks a type wide enough for Σ a: with uint8 or int8
// sums wrap silently and the reported optimum is wrong.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrNegativeBound indicates k < 0 was passed to Solve.
	ErrNegativeBound = errors.New("selection: bound k must be non-negative")

	// ErrMaskNeedsFullTable indicates that mask recovery requires Mode=FullTable.
	ErrMaskNeedsFullTable = errors.New("selection: ReturnMask requires Mode=FullTable")

	// ErrUnknownMode indicates an Options.Mode outside the declared constants.
	ErrUnknownMode = errors.New("selection: unknown table mode")

	// ErrMaskValue is the verdict reason for masks holding values other than 0 and 1.
	ErrMaskValue = errors.New("mask contains values other than 0 and 1")

	// ErrMaskLength is the verdict reason for masks whose length differs from the input.
	ErrMaskLength = errors.New("mask length does not match input length")

	// ErrTooManyPairs is the verdict reason for masks with more than k adjacent pairs.
	ErrTooManyPairs = errors.New("adjacent pairs exceed bound")
)

// Mode controls how Solve stores its DP table.
//
//   - FullTable     — keep every (n+1)·(k+2)·2 cell together with its
//     parent pointer. Allows sum + mask recovery. Memory: O(n·k).
//
//   - RollingLayers — keep only the previous and current position layers.
//     Memory: O(k), but the mask cannot be recovered.
type Mode int

const (
	// FullTable mode: store all layers, support mask recovery.
	FullTable Mode = iota

	// RollingLayers mode: two layers, sum only.
	RollingLayers
)

// Options configures Solve.
//
// Fields:
//   - Mode       — FullTable or RollingLayers storage.
//   - ReturnMask — if true, Solve backtracks and returns an optimal mask.
//     Requires Mode=FullTable.
type Options struct {
	Mode       Mode
	ReturnMask bool
}

// DefaultOptions returns the configuration Optimize uses: a full table with
// mask recovery.
func DefaultOptions() Options {
	return Options{Mode: FullTable, ReturnMask: true}
}

// Result holds the outcome of Solve.
type Result[T Number] struct {
	// Sum is the maximum achievable sum of selected elements.
	Sum T

	// Mask is one optimal selection; nil when ReturnMask was false.
	Mask Mask

	// Pairs is the adjacent-pair count of the optimal terminal state.
	Pairs int
}

// Mask is a selection mask: Mask[i]==1 means element i is chosen.
// Masks produced by this package only hold 0 and 1; the verifier accepts
// arbitrary values so it can reject them.
type Mask []int

// Selected returns the indices i with m[i]==1 in ascending order.
func (m Mask) Selected() []int {
	idx := make([]int, 0, len(m))
	for i, v := range m {
		if v == 1 {
			idx = append(idx, i)
		}
	}

	return idx
}

// String renders the mask as "[0 1 1 0]".
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range m {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

package selection_test

import (
	"testing"

	"github.com/katalvlaran/selopt/selection"
	"github.com/stretchr/testify/assert"
)

// TestCountAdjacentPairs covers empty, single, and overlapping runs.
func TestCountAdjacentPairs(t *testing.T) {
	cases := []struct {
		mask selection.Mask
		want int
	}{
		{nil, 0},
		{selection.Mask{1}, 0},
		{selection.Mask{1, 0, 1}, 0},
		{selection.Mask{1, 1}, 1},
		{selection.Mask{1, 1, 1}, 2},
		{selection.Mask{0, 1, 1, 0, 1, 1, 1}, 3},
		{selection.Mask{2, 2, 1}, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, selection.CountAdjacentPairs(tc.mask), "mask=%v", tc.mask)
	}
}

// TestVerify_Valid reports the achieved sum and pair count.
func TestVerify_Valid(t *testing.T) {
	ok, msg := selection.Verify([]int{100, 300, 400, 50}, selection.Mask{0, 1, 1, 0}, 1)
	assert.True(t, ok)
	assert.Equal(t, "valid selection: sum=700, adjacent pairs=1", msg)

	v := selection.Check([]float64{0.5, 1.5, 2}, selection.Mask{1, 0, 1}, 0)
	assert.True(t, v.Valid)
	assert.Equal(t, 2.5, v.Sum)
	assert.Equal(t, 0, v.Pairs)
	assert.NoError(t, v.Reason)
}

// TestVerify_BadValues rejects masks holding anything but 0 and 1.
func TestVerify_BadValues(t *testing.T) {
	ok, msg := selection.Verify([]int{1, 2, 3}, selection.Mask{0, 2, 1}, 5)
	assert.False(t, ok)
	assert.Equal(t, "mask contains values other than 0 and 1", msg)

	v := selection.Check([]int{1, 2}, selection.Mask{-1, 0}, 0)
	assert.False(t, v.Valid)
	assert.ErrorIs(t, v.Reason, selection.ErrMaskValue)
}

// TestVerify_TooManyPairs reports the pair count and the bound.
func TestVerify_TooManyPairs(t *testing.T) {
	v := selection.Check([]int{1, 2, 3}, selection.Mask{1, 1, 1}, 1)
	assert.False(t, v.Valid)
	assert.Equal(t, 2, v.Pairs)
	assert.ErrorIs(t, v.Reason, selection.ErrTooManyPairs)
	assert.Equal(t, "adjacent pairs exceed bound: 2 > k=1", v.String())

	ok, _ := selection.Verify([]int{1, 2}, selection.Mask{1, 0}, -1)
	assert.False(t, ok, "negative k rejects every mask")
}

// TestVerify_LengthMismatch is a negative verdict, not a panic.
func TestVerify_LengthMismatch(t *testing.T) {
	v := selection.Check([]int{1, 2, 3}, selection.Mask{1, 0}, 1)
	assert.False(t, v.Valid)
	assert.ErrorIs(t, v.Reason, selection.ErrMaskLength)
	assert.Equal(t, "mask length does not match input length: mask 2, input 3", v.String())

	ok, _ := selection.Verify([]int{}, selection.Mask{1}, 0)
	assert.False(t, ok)
}

// TestVerify_Empty accepts the empty selection of the empty array.
func TestVerify_Empty(t *testing.T) {
	ok, msg := selection.Verify([]int{}, selection.Mask{}, 0)
	assert.True(t, ok)
	assert.Equal(t, "valid selection: sum=0, adjacent pairs=0", msg)
}

// TestMask_Helpers covers Selected and String.
func TestMask_Helpers(t *testing.T) {
	m := selection.Mask{0, 1, 1, 0, 1}
	assert.Equal(t, []int{1, 2, 4}, m.Selected())
	assert.Equal(t, "[0 1 1 0 1]", m.String())
	assert.Equal(t, "[]", selection.Mask{}.String())
	assert.Empty(t, selection.Mask{0, 0}.Selected())
}

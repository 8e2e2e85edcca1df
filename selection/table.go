package selection

// choice records which predecessor state produced a cell's value.
type choice uint8

const (
	// fromNone marks the base cell and unreachable cells.
	fromNone choice = iota

	// fromUnselected: previous element not selected, pair count unchanged.
	fromUnselected

	// fromSelectedNoPair: previous element selected, current one not, pair count unchanged.
	fromSelectedNoPair

	// fromSelectedNewPair: previous and current elements selected, one pair consumed.
	fromSelectedNewPair
)

// cell is one DP state. Unreachable states have reachable=false and their
// sum is never read.
type cell[T Number] struct {
	sum       T
	reachable bool
	from      choice
}

// table is the dense (n+1)·(k+2)·2 DP table stored as a flat slice.
// Layer i holds the states after the first i elements were decided;
// column j = k+1 is the overflow bucket and never terminal.
type table[T Number] struct {
	cols  int // k+2
	cells []cell[T]
}

func newTable[T Number](n, k int) *table[T] {
	cols := k + 2

	return &table[T]{
		cols:  cols,
		cells: make([]cell[T], (n+1)*cols*2),
	}
}

// at returns the cell for (i, j, s).
func (t *table[T]) at(i, j, s int) *cell[T] {
	return &t.cells[(i*t.cols+j)*2+s]
}

// layer returns the 2·cols cells of position i.
func (t *table[T]) layer(i int) []cell[T] {
	w := t.cols * 2

	return t.cells[i*w : (i+1)*w]
}

// relax fills cur from prev for element value v.
//
// Transitions, per pair count j:
//
//	cur[j][0] = max(prev[j][1], prev[j][0])
//	cur[j][1] = max(prev[j-1][1] + v   (j>0),
//	                prev[j][0]   + v)
//
// The first operand wins ties, so the selected predecessor is preferred for
// s=0 and the new-pair predecessor for s=1.
func relax[T Number](prev, cur []cell[T], cols int, v T) {
	for j := 0; j < cols; j++ {
		p0, p1 := &prev[j*2], &prev[j*2+1]

		c0 := &cur[j*2]
		*c0 = cell[T]{}
		if p1.reachable {
			*c0 = cell[T]{sum: p1.sum, reachable: true, from: fromSelectedNoPair}
		}
		if p0.reachable && (!c0.reachable || p0.sum > c0.sum) {
			*c0 = cell[T]{sum: p0.sum, reachable: true, from: fromUnselected}
		}

		c1 := &cur[j*2+1]
		*c1 = cell[T]{}
		if j > 0 {
			if q := &prev[(j-1)*2+1]; q.reachable {
				*c1 = cell[T]{sum: q.sum + v, reachable: true, from: fromSelectedNewPair}
			}
		}
		if p0.reachable {
			if s := p0.sum + v; !c1.reachable || s > c1.sum {
				*c1 = cell[T]{sum: s, reachable: true, from: fromUnselected}
			}
		}
	}
}

// seed initialises layer 0: only (j=0, s=0) is reachable, with sum 0.
func seed[T Number](l []cell[T]) {
	for x := range l {
		l[x] = cell[T]{}
	}
	l[0] = cell[T]{reachable: true}
}

// best scans the terminal layer for j in [0,k] (j ascending, then s
// ascending) and returns the first strictly maximal state.
func best[T Number](l []cell[T], k int) (sum T, j, s int) {
	found := false
	for jj := 0; jj <= k; jj++ {
		for ss := 0; ss < 2; ss++ {
			c := l[jj*2+ss]
			if c.reachable && (!found || c.sum > sum) {
				sum, j, s, found = c.sum, jj, ss, true
			}
		}
	}

	return sum, j, s
}

// backtrack walks parent pointers from (n, j, s) down to position 0 and
// returns the mask they describe.
func (t *table[T]) backtrack(n, j, s int) Mask {
	mask := make(Mask, n)
	for i := n; i > 0; i-- {
		mask[i-1] = s
		switch t.at(i, j, s).from {
		case fromUnselected:
			s = 0
		case fromSelectedNoPair:
			s = 1
		case fromSelectedNewPair:
			j--
			s = 1
		}
	}

	return mask
}

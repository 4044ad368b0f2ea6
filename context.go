package animlist

import (
	"context"
	"math"
)

// partition holds the result from findMiddleSnake().
// It represents the midpoint where the edit path can be split.
type partition struct {
	xmid, ymid int  // midpoint coordinates in the edit graph
	loMinimal  bool // whether lower half needs minimal search
	hiMinimal  bool // whether upper half needs minimal search
}

// diffContext holds algorithm state during one comparison.
type diffContext[L any] struct {
	ctx context.Context // cancellation, checked opportunistically
	cmp Comparator[L]

	x, y         L      // old and new lists being compared
	n, m         int    // their lengths
	fdiag, bdiag []int  // forward/backward diagonal arrays
	diagOffset   int    // index shift: diagonal k lives at [diagOffset+k]
	xchanges     []bool // marks removed items in x
	ychanges     []bool // marks inserted items in y
	useHeuristic bool   // enable speed heuristics
	costLimit    int    // max cost before early termination
}

// newDiffContext creates a new context for comparing two lists.
func newDiffContext[L any](ctx context.Context, x, y L, cmp Comparator[L], opts *options) *diffContext[L] {
	n := cmp.Length(x)
	m := cmp.Length(y)

	// The diagonals of the whole edit graph run from -m to n; every
	// subrange searched later stays inside that band. One spare cell on
	// each side holds the window-edge sentinels.
	diagSize := n + m + 3

	c := &diffContext[L]{
		ctx:          ctx,
		cmp:          cmp,
		x:            x,
		y:            y,
		n:            n,
		m:            m,
		fdiag:        make([]int, diagSize),
		bdiag:        make([]int, diagSize),
		diagOffset:   m + 1,
		xchanges:     make([]bool, n),
		ychanges:     make([]bool, m),
		useHeuristic: opts.useHeuristic,
		costLimit:    opts.costLimit,
	}

	// Auto-calculate cost limit if not specified
	if c.costLimit == 0 && c.useHeuristic {
		// sqrt(n) * sqrt(m) / 4, but at least 256
		c.costLimit = int(math.Sqrt(float64(n)) * math.Sqrt(float64(m)) / 4)
		if c.costLimit < 256 {
			c.costLimit = 256
		}
	}

	return c
}

// markDeleted marks items in x[xoff:xlim] as removed.
func (c *diffContext[L]) markDeleted(xoff, xlim int) {
	for i := xoff; i < xlim; i++ {
		c.xchanges[i] = true
	}
}

// markInserted marks items in y[yoff:ylim] as inserted.
func (c *diffContext[L]) markInserted(yoff, ylim int) {
	for i := yoff; i < ylim; i++ {
		c.ychanges[i] = true
	}
}

// equal reports whether x[i] and y[j] denote the same logical item.
func (c *diffContext[L]) equal(i, j int) bool {
	return c.cmp.SameItem(c.x, i, c.y, j)
}

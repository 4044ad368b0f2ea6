package animlist

import "math"

// Heuristic thresholds
//
// These values are independently derived based on the concepts described in:
// - Neil Fraser's "Diff Strategies" (https://neil.fraser.name/writing/diff/)
// - imara-diff (Apache-2.0): https://github.com/pascalkuthe/imara-diff
//
// The core Myers algorithm is from:
// - Myers 1986: "An O(ND) Difference Algorithm and Its Variations"
const (
	// significantMatchLen is the minimum length of a diagonal run (matching
	// items) that indicates significant alignment progress. When we find a
	// match sequence this long, it's likely a good anchor point.
	significantMatchLen = 16
)

// Diagonal-array sentinels. The search widens its diagonal window by one per
// round and seeds each fresh diagonal with a sentinel, so the max/min step
// below always prefers a genuinely reached neighbor. Every cell read in a
// round was written either this call (sentinel) or in an earlier round of
// this call; the shared arrays never leak values across calls.
const (
	unreachedFwd = -1
	unreachedBwd = math.MaxInt
)

// snakeInfo tracks information about a diagonal run of matches found during
// the search. In Myers terminology, a "snake" is a sequence of diagonal moves
// (matching items) in the edit graph.
type snakeInfo struct {
	x, y    int  // endpoint of the diagonal run (absolute coordinates)
	len     int  // length of the match sequence
	forward bool // true if found in forward search, false if backward
}

// findMiddleSnake implements bidirectional search from Myers paper Section 4b.
// It finds the "middle snake" - the optimal split point for divide-and-conquer.
//
// Algorithm source: Myers 1986, "An O(ND) Difference Algorithm and Its Variations"
// http://www.xmailserver.org/diff2.pdf
//
// Coordinates are absolute: a diagonal k holds points with x - y == k, so the
// subrange spans diagonals [xoff-ylim, xlim-yoff]. Each search carries a
// window of valid diagonals ([fmin,fmax] forward, [bmin,bmax] backward) that
// widens by one per round and is clamped to the subrange, in the manner of
// GNU diff's diag().
//
// Heuristics applied:
//  1. Significant match detection: Long diagonal runs indicate good alignment
//  2. Cost limit: Early termination when edit distance exceeds threshold
//  3. Expense threshold: Aggressive cutoff for pathological cases
//
// The request context is checked once per search round; a cancelled context
// aborts the whole computation.
//
// Parameters:
//   - xoff, xlim: bounds in x [xoff, xlim)
//   - yoff, ylim: bounds in y [yoff, ylim)
//   - findMinimal: if true, find the truly minimal edit path
//
// Returns a partition with the midpoint coordinates and whether each half
// needs minimal search.
func (c *diffContext[L]) findMiddleSnake(xoff, xlim, yoff, ylim int, findMinimal bool) (partition, error) {
	n := xlim - xoff
	m := ylim - yoff

	// Special case: one side is empty
	if n == 0 {
		return partition{xmid: xoff, ymid: ylim, loMinimal: true, hiMinimal: true}, nil
	}
	if m == 0 {
		return partition{xmid: xlim, ymid: yoff, loMinimal: true, hiMinimal: true}, nil
	}

	// Diagonal range of the subrange, and the starting diagonals of the two
	// searches. The searches meet when delta = n - m is odd on a forward
	// step, even on a backward step.
	dmin := xoff - ylim
	dmax := xlim - yoff
	fmid := xoff - yoff
	bmid := xlim - ylim
	odd := (fmid-bmid)&1 != 0

	off := c.diagOffset
	fdiag := c.fdiag
	bdiag := c.bdiag

	// Seed: forward search starts at (xoff,yoff), backward at (xlim,ylim).
	fdiag[off+fmid] = xoff
	bdiag[off+bmid] = xlim
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// Maximum edit distance we might need to explore. In bidirectional
	// search each side explores half; one extra round absorbs the parity
	// slack of the meet detection.
	maxD := (n+m+1)/2 + 1

	// Apply cost limit heuristic
	costLimit := maxD
	if c.costLimit > 0 && !findMinimal {
		costLimit = c.costLimit
		if costLimit > maxD {
			costLimit = maxD
		}
	}

	// Track the best snake found (for heuristic fallback)
	var bestSnake snakeInfo
	bestSnakeScore := 0 // score = snake length, with bonus for being near middle

	// "Too expensive" threshold: if we exceed this without finding overlap,
	// use the best snake we've found
	tooExpensive := costLimit
	if c.useHeuristic && !findMinimal {
		// Calculate based on input size
		expensive := isqrt(n) + isqrt(m)
		if expensive < tooExpensive {
			tooExpensive = expensive
		}
	}

	for d := 1; d <= maxD; d++ {
		// Cooperative cancellation point. The caller may have superseded
		// this computation already.
		if err := c.ctx.Err(); err != nil {
			return partition{}, err
		}

		// Check if we've exceeded heuristic thresholds
		if c.useHeuristic && !findMinimal && d > tooExpensive && bestSnakeScore > 0 {
			return snakeToPartition(bestSnake), nil
		}

		// Widen the forward window, seeding the fresh diagonal just outside
		// each edge. At a subrange boundary the window contracts instead so
		// it keeps parity with d.
		if fmin > dmin {
			fmin--
			fdiag[off+fmin-1] = unreachedFwd
		} else {
			fmin++
		}
		if fmax < dmax {
			fmax++
			fdiag[off+fmax+1] = unreachedFwd
		} else {
			fmax--
		}

		// Forward search: extend each diagonal in the window by one edit
		// step, then follow the snake of matching items.
		for k := fmax; k >= fmin; k -= 2 {
			tlo, thi := fdiag[off+k-1], fdiag[off+k+1]
			x := thi // from k+1, moving down (removal from old)
			if tlo >= thi {
				x = tlo + 1 // from k-1, moving right (insertion into new)
			}
			y := x - k

			snakeStart := x
			for x < xlim && y < ylim && c.equal(x, y) {
				x++
				y++
			}
			snakeLen := x - snakeStart
			fdiag[off+k] = x

			// Track significant matches for heuristic fallback
			if c.useHeuristic && snakeLen >= significantMatchLen {
				// Score: snake length + bonus for being near the middle
				midDist := abs((x-xoff+y-yoff)/2 - (n+m)/4)
				score := snakeLen*2 - midDist
				if score > bestSnakeScore {
					bestSnakeScore = score
					bestSnake = snakeInfo{x: x, y: y, len: snakeLen, forward: true}
				}
			}

			// Check for overlap with the backward search. A sentinel in
			// bdiag never satisfies the comparison. The meet must lie in
			// the subrange before it becomes the split point.
			if odd && bmin <= k && k <= bmax && bdiag[off+k] <= x {
				if x <= xlim && y <= ylim {
					return partition{xmid: x, ymid: y, loMinimal: true, hiMinimal: true}, nil
				}
			}
		}

		// Widen the backward window the same way.
		if bmin > dmin {
			bmin--
			bdiag[off+bmin-1] = unreachedBwd
		} else {
			bmin++
		}
		if bmax < dmax {
			bmax++
			bdiag[off+bmax+1] = unreachedBwd
		} else {
			bmax--
		}

		// Backward search: mirror image, walking snakes toward the origin.
		for k := bmax; k >= bmin; k -= 2 {
			tlo, thi := bdiag[off+k-1], bdiag[off+k+1]
			x := thi - 1 // from k+1
			if tlo < thi {
				x = tlo // from k-1
			}
			y := x - k

			snakeStart := x
			for x > xoff && y > yoff && c.equal(x-1, y-1) {
				x--
				y--
			}
			snakeLen := snakeStart - x
			bdiag[off+k] = x

			// Track significant matches for heuristic fallback
			if c.useHeuristic && snakeLen >= significantMatchLen {
				// Score: snake length + bonus for being near the middle
				midDist := abs((x-xoff+y-yoff)/2 - (n+m)/4)
				score := snakeLen*2 - midDist
				if score > bestSnakeScore {
					bestSnakeScore = score
					bestSnake = snakeInfo{x: x, y: y, len: snakeLen, forward: false}
				}
			}

			// Check for overlap with the forward search.
			if !odd && fmin <= k && k <= fmax && x <= fdiag[off+k] {
				if x >= xoff && y >= yoff {
					return partition{xmid: x, ymid: y, loMinimal: true, hiMinimal: true}, nil
				}
			}
		}

		// Check cost limit (distinct from "too expensive")
		if d >= costLimit && bestSnakeScore > 0 {
			return snakeToPartition(bestSnake), nil
		}
	}

	// If we reach here, we've exhausted the search without finding overlap
	// This can happen with cost limits. Use the best snake if we have one.
	if bestSnakeScore > 0 {
		return snakeToPartition(bestSnake), nil
	}

	// Last resort: greedy fallback that guarantees progress
	return c.greedyFallback(xoff, xlim, yoff, ylim), nil
}

// snakeToPartition converts a diagonal match run into a partition for divide-and-conquer.
func snakeToPartition(snake snakeInfo) partition {
	if snake.forward {
		// Forward snake: split at the end of the snake
		return partition{
			xmid:      snake.x,
			ymid:      snake.y,
			loMinimal: true,
			hiMinimal: false, // Upper half may not be minimal
		}
	}
	// Backward snake: split at the start of the snake
	return partition{
		xmid:      snake.x,
		ymid:      snake.y,
		loMinimal: false, // Lower half may not be minimal
		hiMinimal: true,
	}
}

// greedyFallback provides a simple split when the optimal search fails.
// It finds matches from the start, or makes one removal to ensure progress.
func (c *diffContext[L]) greedyFallback(xoff, xlim, yoff, ylim int) partition {
	n := xlim - xoff
	m := ylim - yoff

	// Try to find matches from the start
	x := 0
	y := 0
	for x < n && y < m && c.equal(xoff+x, yoff+y) {
		x++
		y++
	}

	// If we found matches, split there
	if x > 0 {
		return partition{
			xmid:      xoff + x,
			ymid:      yoff + y,
			loMinimal: false,
			hiMinimal: false,
		}
	}

	// No matches at start - we need to make an edit to progress
	// Prefer removal (consuming from old) over insertion
	if n > 0 {
		return partition{
			xmid:      xoff + 1,
			ymid:      yoff,
			loMinimal: false,
			hiMinimal: false,
		}
	}

	// n == 0, so all of y must be inserted (shouldn't reach here normally)
	return partition{
		xmid:      xoff,
		ymid:      yoff + 1,
		loMinimal: false,
		hiMinimal: false,
	}
}

// isqrt computes integer square root using Newton's method.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package animlist

// compareSeq is the divide-and-conquer core of the Myers diff algorithm.
// It compares x[xoff:xlim] with y[yoff:ylim] and marks changes in xchanges
// and ychanges.
//
// Parameters:
//   - xoff, xlim: bounds in x [xoff, xlim)
//   - yoff, ylim: bounds in y [yoff, ylim)
//   - findMinimal: if true, find the truly minimal edit script
//
// Returns the context error if the computation was cancelled.
func (c *diffContext[L]) compareSeq(xoff, xlim, yoff, ylim int, findMinimal bool) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}

	// 1. Trim matching items from the start
	for xoff < xlim && yoff < ylim && c.equal(xoff, yoff) {
		xoff++
		yoff++
	}

	// 2. Trim matching items from the end
	for xoff < xlim && yoff < ylim && c.equal(xlim-1, ylim-1) {
		xlim--
		ylim--
	}

	// 3. Base cases: one side is empty
	if xoff == xlim {
		// All remaining y items are insertions
		c.markInserted(yoff, ylim)
		return nil
	}
	if yoff == ylim {
		// All remaining x items are removals
		c.markDeleted(xoff, xlim)
		return nil
	}

	// 4. Find the middle snake (optimal split point)
	part, err := c.findMiddleSnake(xoff, xlim, yoff, ylim, findMinimal)
	if err != nil {
		return err
	}

	// 5. Reject a degenerate split. A midpoint outside the subrange, or one
	// that leaves a half equal to the whole, would recurse without bound;
	// the greedy split always advances.
	if part.xmid < xoff || part.xmid > xlim || part.ymid < yoff || part.ymid > ylim ||
		(part.xmid == xoff && part.ymid == yoff) ||
		(part.xmid == xlim && part.ymid == ylim) {
		part = c.greedyFallback(xoff, xlim, yoff, ylim)
	}

	// 6. Recurse on both halves
	if err := c.compareSeq(xoff, part.xmid, yoff, part.ymid, part.loMinimal); err != nil {
		return err
	}
	return c.compareSeq(part.xmid, xlim, part.ymid, ylim, part.hiMinimal)
}

// buildEdits converts the change marks into an ordered edit script.
//
// It walks both lists in lockstep, grouping consecutive marks into single
// Remove/Insert edits and probing unmarked (matched) pairs for content
// changes. Positions are patch-space: pos is the index in the
// progressively-updated list, so the prefix [0,pos) already equals the new
// list whenever an edit is emitted.
func (c *diffContext[L]) buildEdits() []Edit {
	var edits []Edit
	i, j, pos := 0, 0, 0

	for i < c.n || j < c.m {
		// Matched run: probe each aligned pair for content changes.
		for i < c.n && j < c.m && !c.xchanges[i] && !c.ychanges[j] {
			if !c.cmp.SameContent(c.x, i, c.y, j) {
				edits = append(edits, Edit{Kind: EditChange, Pos: pos, Count: 1, OldPos: i})
			}
			i++
			j++
			pos++
		}

		// Removals (marked in x). A removal does not advance pos: the
		// updated list shrinks in place.
		delStart := i
		for i < c.n && c.xchanges[i] {
			i++
		}
		if i > delStart {
			edits = append(edits, Edit{Kind: EditRemove, Pos: pos, Count: i - delStart, OldPos: delStart})
		}

		// Insertions (marked in y), emitted after any removal at the same
		// position so the coalescer can recognize the replace pattern.
		insStart := j
		for j < c.m && c.ychanges[j] {
			j++
		}
		if j > insStart {
			edits = append(edits, Edit{Kind: EditInsert, Pos: pos, Count: j - insStart})
			pos += j - insStart
		}
	}

	return edits
}

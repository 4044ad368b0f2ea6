package animlist

import (
	"errors"
	"fmt"
)

// ErrMoveUnsupported reports a move edit in the input stream. This engine
// never produces moves; encountering one means the edit script came from a
// source this coalescer cannot handle.
var ErrMoveUnsupported = errors.New("animlist: move edits are unsupported")

// OpKind identifies the type of a coalesced operation.
type OpKind int

const (
	// OpInsert adds Count items at Pos.
	OpInsert OpKind = iota
	// OpRemove removes Count items at Pos.
	OpRemove
	// OpReplace swaps RemoveCount items at Pos for InsertCount new ones.
	OpReplace
	// OpChange refreshes Count items at Pos in place.
	OpChange
)

// String returns a string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpReplace:
		return "Replace"
	case OpChange:
		return "Change"
	default:
		return "Unknown"
	}
}

// Op is a coalesced list operation, the externally visible unit handed to a
// [Controller]. Applying an Op list in order to the old list reconstructs
// exactly the new list.
//
// Pos is patch-space, like [Edit.Pos]. Count is used by Insert, Remove and
// Change; RemoveCount/InsertCount by Replace. OldPos records the old-list
// index of the affected span for Remove, Replace and Change so outgoing items
// can still be built while they animate away.
type Op struct {
	Kind  OpKind
	Pos   int
	Count int

	// Replace only.
	RemoveCount int
	InsertCount int

	// Old-list index of the span start. Remove, Replace and Change only.
	OldPos int
}

// String returns a compact representation, mostly for test failures.
func (op Op) String() string {
	if op.Kind == OpReplace {
		return fmt.Sprintf("Replace(%d,%d,%d)", op.Pos, op.RemoveCount, op.InsertCount)
	}
	return fmt.Sprintf("%s(%d,%d)", op.Kind, op.Pos, op.Count)
}

// Coalesce folds a raw edit script into the minimal ordered operation list.
//
// It makes a single left-to-right pass holding one piece of state: a pending
// remove. A remove is not emitted immediately; if the very next edit is an
// insert at the same position the pair collapses into a single replace, which
// is the common "these items were swapped out for different ones at the same
// slot" case and lets the animation layer run one crossfade instead of two
// independent animations. Output order follows input order; no sorting is
// performed.
func Coalesce(edits []Edit) ([]Op, error) {
	var ops []Op

	var pending Op
	havePending := false
	flush := func() {
		if havePending {
			ops = append(ops, pending)
			havePending = false
		}
	}

	for _, e := range edits {
		switch e.Kind {
		case EditChange:
			flush()
			ops = append(ops, Op{Kind: OpChange, Pos: e.Pos, Count: 1, OldPos: e.OldPos})

		case EditInsert:
			if havePending && pending.Pos == e.Pos {
				ops = append(ops, Op{
					Kind:        OpReplace,
					Pos:         e.Pos,
					RemoveCount: pending.Count,
					InsertCount: e.Count,
					OldPos:      pending.OldPos,
				})
				havePending = false
			} else {
				flush()
				ops = append(ops, Op{Kind: OpInsert, Pos: e.Pos, Count: e.Count})
			}

		case EditRemove:
			// A remove can't merge with a previous remove; hold the new one
			// in case an insert at the same position follows.
			flush()
			pending = Op{Kind: OpRemove, Pos: e.Pos, Count: e.Count, OldPos: e.OldPos}
			havePending = true

		case EditMove:
			return nil, fmt.Errorf("edit %v: %w", e, ErrMoveUnsupported)

		default:
			return nil, fmt.Errorf("animlist: unknown edit kind %d", e.Kind)
		}
	}
	flush()

	return ops, nil
}

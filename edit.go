package animlist

import "fmt"

// EditKind identifies the type of a raw edit produced by the edit-script
// engine.
type EditKind int

const (
	// EditChange means a matched item's content differs between the two
	// lists and should be refreshed in place.
	EditChange EditKind = iota
	// EditInsert means items were added that are not in the old list.
	EditInsert
	// EditRemove means items from the old list are gone.
	EditRemove
	// EditMove is never produced by this engine. It exists so that edit
	// streams from other sources can be rejected explicitly.
	EditMove
)

// String returns a string representation of the EditKind.
func (k EditKind) String() string {
	switch k {
	case EditChange:
		return "Change"
	case EditInsert:
		return "Insert"
	case EditRemove:
		return "Remove"
	case EditMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Edit is a single atomic edit in patch order. Pos indexes into the
// progressively-updated list as edits are applied left to right: once all
// edits before Pos have been applied, the prefix [0,Pos) already matches the
// new list.
//
// Remove and Change edits also record OldPos, the index in the old list where
// the affected span starts. The dispatch layer needs it to build
// representations of outgoing items while they animate away.
type Edit struct {
	Kind  EditKind
	Pos   int
	Count int

	// OldPos is the old-list index of the start of the span.
	// Meaningful for Remove and Change edits only.
	OldPos int

	// From and To are only meaningful for Move edits, which this engine
	// never emits.
	From, To int
}

// String returns a compact representation, mostly for test failures.
func (e Edit) String() string {
	switch e.Kind {
	case EditMove:
		return fmt.Sprintf("Move(%d->%d)", e.From, e.To)
	case EditChange:
		return fmt.Sprintf("Change(%d)", e.Pos)
	default:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Pos, e.Count)
	}
}

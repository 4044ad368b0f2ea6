package animlist

// BuildKind tells an [ItemBuilder] which render mode an item representation
// is for.
type BuildKind int

const (
	// BuildNormal is a plain, static representation.
	BuildNormal BuildKind = iota
	// BuildChanging is the outgoing side of an in-place change animation.
	BuildChanging
	// BuildRemoving is an item rendered while it animates away.
	BuildRemoving
)

// String returns a string representation of the BuildKind.
func (k BuildKind) String() string {
	switch k {
	case BuildNormal:
		return "Normal"
	case BuildChanging:
		return "Changing"
	case BuildRemoving:
		return "Removing"
	default:
		return "Unknown"
	}
}

// ItemBuilder materializes a renderable representation of the item at index
// in list. The dispatcher calls it with lists that may no longer be current,
// which is the point: removal and replace animations need to render items
// from the list that is being replaced.
type ItemBuilder[L any, R any] func(list L, index int, kind BuildKind) R

// ItemMaker produces the representation of the old item at the given offset
// within a notified span. Offsets count from the start of the span, not from
// the start of the list.
type ItemMaker[R any] func(offset int) R

// Controller is the list-view collaborator that receives coalesced change
// notifications. Notifications for one dispatch cycle arrive in list order
// and are terminated by a single DispatchChanges call, which commits them
// into the controller's own animation pipeline.
//
// Remove, replace and change notifications carry an [ItemMaker] so the
// controller can render the outgoing items for the duration of the
// animation.
type Controller[R any] interface {
	NotifyInsertedRange(pos, count int)
	NotifyRemovedRange(pos, count int, old ItemMaker[R])
	NotifyReplacedRange(pos, removeCount, insertCount int, old ItemMaker[R])
	NotifyChangedRange(pos, count int, old ItemMaker[R])
	DispatchChanges()
}

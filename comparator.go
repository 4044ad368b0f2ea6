package animlist

// Comparator supplies the engine with everything it may know about the two
// lists being compared. The lists themselves are opaque: the engine never
// touches their elements, only asks the comparator about positions.
//
// SameItem decides identity: whether index ai of list a and index bi of
// list b denote the same logical entity. SameContent decides value equality
// and is called only on pairs for which SameItem already returned true; a
// false result turns the matched pair into an in-place change.
type Comparator[L any] interface {
	// SameItem reports whether a[ai] and b[bi] are the same logical item.
	SameItem(a L, ai int, b L, bi int) bool

	// SameContent reports whether a[ai] and b[bi] carry equal content.
	// Only called when SameItem holds for the pair.
	SameContent(a L, ai int, b L, bi int) bool

	// Length returns the number of items in the list.
	Length(l L) int
}

// SliceComparator adapts a pair of element predicates into a Comparator over
// plain slices. This is the common case for callers whose backing collection
// is just a []T.
//
// Content may be nil, in which case matched items are never reported as
// changed.
type SliceComparator[T any] struct {
	Item    func(a, b T) bool
	Content func(a, b T) bool
}

// SameItem reports whether a[ai] and b[bi] are the same logical item.
func (c SliceComparator[T]) SameItem(a []T, ai int, b []T, bi int) bool {
	return c.Item(a[ai], b[bi])
}

// SameContent reports whether a[ai] and b[bi] carry equal content.
func (c SliceComparator[T]) SameContent(a []T, ai int, b []T, bi int) bool {
	if c.Content == nil {
		return true
	}
	return c.Content(a[ai], b[bi])
}

// Length returns len(l).
func (c SliceComparator[T]) Length(l []T) int {
	return len(l)
}

// Entry is a minimal keyed list element: ID carries identity, Value carries
// content. It exists for callers (and tests) that keep those two concerns in
// separate fields.
type Entry[K comparable, V comparable] struct {
	ID    K
	Value V
}

// EntryComparator returns a comparator for []Entry slices that matches items
// by ID and detects changes by Value.
func EntryComparator[K comparable, V comparable]() SliceComparator[Entry[K, V]] {
	return SliceComparator[Entry[K, V]]{
		Item:    func(a, b Entry[K, V]) bool { return a.ID == b.ID },
		Content: func(a, b Entry[K, V]) bool { return a.Value == b.Value },
	}
}

// StringsComparator returns a comparator for []string lists where an item's
// identity and content are both the string itself.
func StringsComparator() SliceComparator[string] {
	return SliceComparator[string]{
		Item: func(a, b string) bool { return a == b },
	}
}

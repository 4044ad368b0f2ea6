package animlist

import "testing"

func TestSliceComparator_SameItem(t *testing.T) {
	cmp := StringsComparator()
	a := []string{"hello", "world"}
	b := []string{"world", "hello"}

	if !cmp.SameItem(a, 0, b, 1) {
		t.Error("expected 'hello' to match 'hello'")
	}
	if cmp.SameItem(a, 0, b, 0) {
		t.Error("expected 'hello' not to match 'world'")
	}
}

func TestSliceComparator_NilContent(t *testing.T) {
	// With no content predicate, matched items are never reported changed.
	cmp := StringsComparator()
	a := []string{"hello"}
	b := []string{"hello"}

	if !cmp.SameContent(a, 0, b, 0) {
		t.Error("expected nil Content predicate to report same content")
	}
}

func TestSliceComparator_Length(t *testing.T) {
	cmp := StringsComparator()

	if got := cmp.Length([]string{"a", "b", "c"}); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
	if got := cmp.Length(nil); got != 0 {
		t.Errorf("Length(nil) = %d, want 0", got)
	}
}

func TestEntryComparator(t *testing.T) {
	cmp := EntryComparator[int, string]()
	a := []Entry[int, string]{{ID: 1, Value: "x"}, {ID: 2, Value: "y"}}
	b := []Entry[int, string]{{ID: 1, Value: "x'"}, {ID: 3, Value: "y"}}

	if !cmp.SameItem(a, 0, b, 0) {
		t.Error("expected items with equal IDs to match")
	}
	if cmp.SameItem(a, 1, b, 1) {
		t.Error("expected items with different IDs not to match")
	}
	if cmp.SameContent(a, 0, b, 0) {
		t.Error("expected different values to report changed content")
	}
	if !cmp.SameContent(a, 1, b, 1) {
		t.Error("expected equal values to report same content")
	}
}

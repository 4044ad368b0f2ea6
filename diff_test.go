package animlist

import (
	"context"
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

// applyOps replays a coalesced operation list over oldList, pulling inserted
// and changed items from newList via patch-space positions. It is the test
// oracle for the round-trip property: the result must equal newList.
func applyOps[T any](oldList, newList []T, ops []Op) []T {
	result := slices.Clone(oldList)
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			result = slices.Insert(result, op.Pos, newList[op.Pos:op.Pos+op.Count]...)
		case OpRemove:
			result = slices.Delete(result, op.Pos, op.Pos+op.Count)
		case OpReplace:
			result = slices.Delete(result, op.Pos, op.Pos+op.RemoveCount)
			result = slices.Insert(result, op.Pos, newList[op.Pos:op.Pos+op.InsertCount]...)
		case OpChange:
			copy(result[op.Pos:op.Pos+op.Count], newList[op.Pos:op.Pos+op.Count])
		}
	}
	return result
}

// diffOps runs the full engine+coalescer pipeline.
func diffOps[L any](t *testing.T, oldList, newList L, cmp Comparator[L], opts ...Option) []Op {
	t.Helper()
	edits, err := ComputeEdits(context.Background(), oldList, newList, cmp, opts...)
	if err != nil {
		t.Fatalf("ComputeEdits() error: %v", err)
	}
	ops, err := Coalesce(edits)
	if err != nil {
		t.Fatalf("Coalesce() error: %v", err)
	}
	return ops
}

func TestComputeEdits_Empty(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []Edit
	}{
		{
			name: "both empty",
			a:    []string{},
			b:    []string{},
			want: nil,
		},
		{
			name: "old empty",
			a:    []string{},
			b:    []string{"x", "y"},
			want: []Edit{{Kind: EditInsert, Pos: 0, Count: 2}},
		},
		{
			name: "new empty",
			a:    []string{"x", "y"},
			b:    []string{},
			want: []Edit{{Kind: EditRemove, Pos: 0, Count: 2, OldPos: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEdits(context.Background(), tt.a, tt.b, StringsComparator())
			if err != nil {
				t.Fatalf("ComputeEdits() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeEdits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeEdits_Identical(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "b", "c"}

	got, err := ComputeEdits(context.Background(), a, b, StringsComparator())
	if err != nil {
		t.Fatalf("ComputeEdits() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty edit list for identical inputs, got %v", got)
	}
}

func TestComputeEdits_InsertMiddle(t *testing.T) {
	a := []string{"a", "c"}
	b := []string{"a", "b", "c"}

	got, err := ComputeEdits(context.Background(), a, b, StringsComparator())
	if err != nil {
		t.Fatalf("ComputeEdits() error: %v", err)
	}

	want := []Edit{{Kind: EditInsert, Pos: 1, Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeEdits() = %v, want %v", got, want)
	}
}

func TestComputeEdits_RemoveMiddle(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "c"}

	got, err := ComputeEdits(context.Background(), a, b, StringsComparator())
	if err != nil {
		t.Fatalf("ComputeEdits() error: %v", err)
	}

	want := []Edit{{Kind: EditRemove, Pos: 1, Count: 1, OldPos: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeEdits() = %v, want %v", got, want)
	}
}

func TestComputeEdits_ContentChange(t *testing.T) {
	a := []Entry[int, string]{{1, "one"}, {2, "two"}, {3, "three"}}
	b := []Entry[int, string]{{1, "one"}, {2, "TWO"}, {3, "three"}}

	got, err := ComputeEdits(context.Background(), a, b, EntryComparator[int, string]())
	if err != nil {
		t.Fatalf("ComputeEdits() error: %v", err)
	}

	want := []Edit{{Kind: EditChange, Pos: 1, Count: 1, OldPos: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeEdits() = %v, want %v", got, want)
	}
}

func TestComputeEdits_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := []string{"a", "b", "c"}
	b := []string{"x", "y", "z"}

	if _, err := ComputeEdits(ctx, a, b, StringsComparator()); err == nil {
		t.Error("expected error from cancelled context")
	}
}

// TestDiff_MixedTransition exercises the full pipeline on a transition with a
// leading removal, a replace, an in-place content change, and an insertion:
//
//	[1 2 3 4 5 8] -> [2 6 5* 7 8]  (5* = same item, changed content)
func TestDiff_MixedTransition(t *testing.T) {
	a := []Entry[int, string]{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"}, {8, "f"}}
	b := []Entry[int, string]{{2, "b"}, {6, "x"}, {5, "E"}, {7, "y"}, {8, "f"}}
	cmp := EntryComparator[int, string]()

	ops := diffOps(t, a, b, cmp)

	want := []Op{
		{Kind: OpRemove, Pos: 0, Count: 1, OldPos: 0},
		{Kind: OpReplace, Pos: 1, RemoveCount: 2, InsertCount: 1, OldPos: 2},
		{Kind: OpChange, Pos: 2, Count: 1, OldPos: 4},
		{Kind: OpInsert, Pos: 3, Count: 1},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("ops = %v, want %v", ops, want)
	}

	if got := applyOps(a, b, ops); !reflect.DeepEqual(got, b) {
		t.Errorf("round trip: applyOps() = %v, want %v", got, b)
	}
}

// Round-trip property: for any pair of lists, applying the coalesced
// operations to the old list must reproduce the new list exactly.
func TestDiff_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cmp := EntryComparator[int, int]()

	mutate := func(in []Entry[int, int], nextID *int) []Entry[int, int] {
		var out []Entry[int, int]
		for _, e := range in {
			switch rng.Intn(5) {
			case 0:
				// drop the item
			case 1:
				// change its content
				out = append(out, Entry[int, int]{ID: e.ID, Value: e.Value + 1000})
			default:
				out = append(out, e)
			}
			if rng.Intn(4) == 0 {
				out = append(out, Entry[int, int]{ID: *nextID, Value: rng.Intn(100)})
				*nextID++
			}
		}
		return out
	}

	for _, opts := range [][]Option{
		nil,
		{WithMinimal(true)},
		{WithHeuristic(false)},
	} {
		nextID := 100000
		for round := 0; round < 50; round++ {
			n := rng.Intn(60)
			a := make([]Entry[int, int], n)
			for i := range a {
				a[i] = Entry[int, int]{ID: i + round*1000, Value: rng.Intn(100)}
			}
			b := mutate(a, &nextID)

			ops := diffOps(t, a, b, cmp, opts...)

			if got := applyOps(a, b, ops); !slices.Equal(got, b) {
				t.Fatalf("round %d: applyOps() = %v, want %v (ops %v)", round, got, b, ops)
			}

			// Positions never decrease across the operation list.
			for i := 1; i < len(ops); i++ {
				if ops[i].Pos < ops[i-1].Pos {
					t.Fatalf("round %d: ops out of order: %v", round, ops)
				}
			}
		}
	}
}

// Many single-item edits scattered across a longer run drive the
// divide-and-conquer through deep, uneven subranges of the edit graph, where
// the bidirectional search has to keep its diagonal windows clamped to each
// subrange.
func TestDiff_ScatteredSingleEdits(t *testing.T) {
	const n = 36
	a := make([]Entry[int, int], n)
	for i := range a {
		a[i] = Entry[int, int]{ID: 5000 + i, Value: i}
	}

	drops := map[int]bool{2: true, 7: true, 14: true, 22: true, 30: true}
	changes := map[int]bool{4: true, 10: true, 17: true, 25: true}
	inserts := map[int]bool{5: true, 12: true, 20: true, 28: true}

	var b []Entry[int, int]
	nextID := 9000
	for i, e := range a {
		switch {
		case drops[i]:
			// item dropped
		case changes[i]:
			b = append(b, Entry[int, int]{ID: e.ID, Value: e.Value + 1000})
		default:
			b = append(b, e)
		}
		if inserts[i] {
			b = append(b, Entry[int, int]{ID: nextID, Value: i})
			nextID++
		}
	}

	cmp := EntryComparator[int, int]()
	for oi, opts := range [][]Option{nil, {WithMinimal(true)}, {WithHeuristic(false)}} {
		ops := diffOps(t, a, b, cmp, opts...)
		if got := applyOps(a, b, ops); !reflect.DeepEqual(got, b) {
			t.Fatalf("opts[%d]: applyOps() = %v, want %v (ops %v)", oi, got, b, ops)
		}
	}
}

func BenchmarkComputeEdits_Large(b *testing.B) {
	n := 2000
	x := make([]Entry[int, int], n)
	for i := range x {
		x[i] = Entry[int, int]{ID: i, Value: i}
	}
	y := slices.Clone(x)
	// Scattered removals and changes.
	for i := 0; i < n; i += 17 {
		y[i].Value++
	}
	y = slices.Delete(y, 500, 600)
	cmp := EntryComparator[int, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeEdits(context.Background(), x, y, cmp); err != nil {
			b.Fatal(err)
		}
	}
}

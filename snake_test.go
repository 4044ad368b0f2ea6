package animlist

import (
	"context"
	"testing"
)

func newStringsContext(a, b []string) *diffContext[[]string] {
	return newDiffContext(context.Background(), a, b, StringsComparator(), defaultOptions())
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{9, 3},
		{10, 3},
		{15, 3},
		{16, 4},
		{100, 10},
		{101, 10},
		{10000, 100},
	}

	for _, tt := range tests {
		got := isqrt(tt.n)
		if got != tt.want {
			t.Errorf("isqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsqrt_Negative(t *testing.T) {
	// Negative input should return 0 (or handle gracefully)
	got := isqrt(-1)
	if got != 0 {
		t.Errorf("isqrt(-1) = %d, want 0", got)
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{-100, 100},
		{100, 100},
		{-1, 1},
		{1, 1},
	}

	for _, tt := range tests {
		got := abs(tt.x)
		if got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestFindMiddleSnake_Empty(t *testing.T) {
	c := newStringsContext([]string{}, []string{})

	// This should not panic
	part, err := c.findMiddleSnake(0, 0, 0, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if part.xmid != 0 || part.ymid != 0 {
		t.Errorf("expected (0,0) for empty, got (%d,%d)", part.xmid, part.ymid)
	}
}

func TestFindMiddleSnake_Equal(t *testing.T) {
	c := newStringsContext([]string{"a", "b", "c"}, []string{"a", "b", "c"})

	part, err := c.findMiddleSnake(0, 3, 0, 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// For equal lists, should find a path through
	if part.xmid < 0 || part.ymid < 0 {
		t.Errorf("invalid partition for equal lists: %+v", part)
	}
}

func TestFindMiddleSnake_AllDifferent(t *testing.T) {
	c := newStringsContext([]string{"a", "b", "c"}, []string{"x", "y", "z"})

	part, err := c.findMiddleSnake(0, 3, 0, 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should find some partition
	if part.xmid < 0 || part.ymid < 0 {
		t.Errorf("invalid partition for different lists: %+v", part)
	}
}

func TestFindMiddleSnake_WithHeuristics(t *testing.T) {
	// Create a larger pair where heuristics might kick in
	n := 100
	a := make([]string, n)
	b := make([]string, n)

	for i := 0; i < n; i++ {
		a[i] = string(rune('a' + (i % 26)))
		b[i] = string(rune('z' - (i % 26))) // Different
	}

	o := defaultOptions()
	o.useHeuristic = true
	c := newDiffContext(context.Background(), a, b, StringsComparator(), o)

	part, err := c.findMiddleSnake(0, n, 0, n, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should find some partition
	if part.xmid < 0 || part.xmid > n || part.ymid < 0 || part.ymid > n {
		t.Errorf("invalid partition with heuristics: %+v", part)
	}
}

func TestFindMiddleSnake_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newDiffContext(ctx, []string{"a", "b"}, []string{"x", "y"}, StringsComparator(), defaultOptions())

	if _, err := c.findMiddleSnake(0, 2, 0, 2, false); err == nil {
		t.Error("expected error from cancelled context")
	}
}

// Benchmark snake finding
func BenchmarkFindMiddleSnake_Small(b *testing.B) {
	c := newStringsContext(
		[]string{"a", "b", "c", "d", "e"},
		[]string{"a", "x", "c", "y", "e"},
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.findMiddleSnake(0, 5, 0, 5, false)
	}
}

func BenchmarkFindMiddleSnake_Large(b *testing.B) {
	n := 500
	x := make([]string, n)
	y := make([]string, n)

	for i := 0; i < n; i++ {
		x[i] = string(rune('a' + (i % 26)))
		y[i] = string(rune('a' + ((i + 1) % 26)))
	}

	c := newStringsContext(x, y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.findMiddleSnake(0, n, 0, n, false)
	}
}

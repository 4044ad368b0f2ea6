// Package animlist implements the diff and change-dispatch core of an
// animated, reorderable list view.
//
// Given two versions of a caller's backing collection it computes a minimal
// sequence of insert/remove/change/replace operations transforming one into
// the other, then hands that sequence to a list controller so it can animate
// the transition. The engine never looks at list elements directly: the two
// collections are opaque and are only consulted through a caller-supplied
// [Comparator], which distinguishes item identity (the same logical entity)
// from item content (an in-place change to a matched entity).
//
// The pipeline has three stages:
//   - [ComputeEdits] runs a Myers-style shortest-edit-script search and
//     produces a raw, position-ordered edit script.
//   - [Coalesce] folds the script into interval operations, recognizing
//     remove-then-insert at the same position as a single replace.
//   - [Dispatcher] runs the pipeline off the caller's path with
//     single-flight semantics and feeds the result to a [Controller].
//
// Move detection is unsupported throughout: the engine never emits move
// edits, and the coalescer rejects them from foreign edit streams.
package animlist

import "context"

// options holds configuration for the diff algorithm.
type options struct {
	useHeuristic bool
	forceMinimal bool
	costLimit    int
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		useHeuristic: true,
		forceMinimal: false,
		costLimit:    0, // auto-calculated
	}
}

// Option configures diff behavior.
type Option func(*options)

// WithHeuristic enables or disables speed heuristics.
// Default: true.
func WithHeuristic(enabled bool) Option {
	return func(o *options) {
		o.useHeuristic = enabled
	}
}

// WithMinimal forces a minimal edit script even if slow.
// Default: false.
func WithMinimal(minimal bool) Option {
	return func(o *options) {
		o.forceMinimal = minimal
		if minimal {
			o.useHeuristic = false
		}
	}
}

// WithCostLimit sets a custom early termination threshold.
// 0 means auto-calculate based on input size.
// Default: 0.
func WithCostLimit(n int) Option {
	return func(o *options) {
		o.costLimit = n
	}
}

// ComputeEdits compares two lists through the given comparator and returns
// the ordered edit script transforming old into new.
//
// The lists are read-only for the duration of the call and must not be
// mutated until it returns. Edits use patch-space positions (see [Edit]) and
// never include [EditMove]. The context is checked opportunistically; when it
// is cancelled the computation aborts with the context's error and the
// partial result is discarded.
func ComputeEdits[L any](ctx context.Context, oldList, newList L, cmp Comparator[L], opts ...Option) ([]Edit, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	n := cmp.Length(oldList)
	m := cmp.Length(newList)

	// Handle trivial cases
	if n == 0 && m == 0 {
		return nil, nil
	}
	if n == 0 {
		return []Edit{{Kind: EditInsert, Pos: 0, Count: m}}, nil
	}
	if m == 0 {
		return []Edit{{Kind: EditRemove, Pos: 0, Count: n, OldPos: 0}}, nil
	}

	c := newDiffContext(ctx, oldList, newList, cmp, o)
	if err := c.compareSeq(0, n, 0, m, o.forceMinimal); err != nil {
		return nil, err
	}
	return c.buildEdits(), nil
}

package animlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/samthor/thorgo/future"
	"github.com/sirupsen/logrus"
)

// ErrSuperseded reports that a diff computation's result was discarded
// because a newer Dispatch call replaced it before it completed.
var ErrSuperseded = errors.New("animlist: dispatch superseded by a newer list")

// ErrComparator reports that a caller-supplied comparator panicked during a
// diff computation. The computation is discarded; no state is corrupted.
var ErrComparator = errors.New("animlist: comparator failure")

// ErrInternal reports that the engine itself panicked during a diff
// computation. It indicates a bug in this package rather than in the
// caller's comparator. The computation is discarded; no state is corrupted.
var ErrInternal = errors.New("animlist: internal failure")

// comparatorPanic tags a panic raised inside a caller-supplied comparator so
// the recovery in compute can tell it apart from a panic in the engine.
type comparatorPanic struct{ value any }

func tagComparatorPanic() {
	if r := recover(); r != nil {
		panic(comparatorPanic{value: r})
	}
}

// guardedComparator re-raises every panic out of the wrapped comparator as a
// comparatorPanic.
type guardedComparator[L any] struct{ cmp Comparator[L] }

func (g guardedComparator[L]) SameItem(a L, ai int, b L, bi int) bool {
	defer tagComparatorPanic()
	return g.cmp.SameItem(a, ai, b, bi)
}

func (g guardedComparator[L]) SameContent(a L, ai int, b L, bi int) bool {
	defer tagComparatorPanic()
	return g.cmp.SameContent(a, ai, b, bi)
}

func (g guardedComparator[L]) Length(l L) int {
	defer tagComparatorPanic()
	return g.cmp.Length(l)
}

// Dispatcher owns the committed "current" list and drives the end-to-end
// request: it diffs a newly supplied list against the current one off the
// caller's path, then feeds the coalesced operations to a [Controller] and
// commits the new list.
//
// At most one computation is live at a time. A new Dispatch call immediately
// supersedes any in-flight one: its context is cancelled as a best-effort
// signal, and whatever it eventually produces is checked against the latest
// request token and discarded when stale. Results are therefore applied in
// request order with respect to the current list, never completion order.
//
// Dispatch calls are expected to originate from a single caller context (one
// UI event loop); the dispatcher's own bookkeeping is still mutex-guarded so
// that worker completions can race with new requests safely.
type Dispatcher[L any, R any] struct {
	cmp      Comparator[L]
	ctrl     Controller[R]
	build    ItemBuilder[L, R]
	diffOpts []Option
	log      *logrus.Logger

	mu      sync.Mutex
	current L
	gen     uint64             // latest request token
	cancel  context.CancelFunc // cancels the in-flight computation, if any

	// emitMu serializes notification batches in commit order. mu is never
	// held during controller callbacks, so a controller may call
	// CurrentList or Dispatch from inside a notification.
	emitMu sync.Mutex
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherOptions)

type dispatcherOptions struct {
	log      *logrus.Logger
	diffOpts []Option
}

// WithLogger sets the logger used for discard/failure diagnostics.
// By default diagnostics are discarded.
func WithLogger(log *logrus.Logger) DispatcherOption {
	return func(o *dispatcherOptions) {
		o.log = log
	}
}

// WithDiffOptions sets engine options applied to every computation.
func WithDiffOptions(opts ...Option) DispatcherOption {
	return func(o *dispatcherOptions) {
		o.diffOpts = opts
	}
}

// NewDispatcher creates a Dispatcher committed to the given initial list.
// The controller, comparator and builder must all be non-nil.
func NewDispatcher[L any, R any](ctrl Controller[R], cmp Comparator[L], build ItemBuilder[L, R], initial L, opts ...DispatcherOption) *Dispatcher[L, R] {
	o := &dispatcherOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logrus.New()
		o.log.SetOutput(io.Discard)
	}

	return &Dispatcher[L, R]{
		cmp:      cmp,
		ctrl:     ctrl,
		build:    build,
		diffOpts: o.diffOpts,
		log:      o.log,
		current:  initial,
	}
}

// CurrentList returns the committed snapshot: the last fully-dispatched
// list, never an in-flight target. Safe to call at any time.
func (d *Dispatcher[L, R]) CurrentList() L {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Dispatch requests the transition to newList. It returns immediately; the
// diff runs on its own goroutine and, if still the latest request when it
// completes, the new list is committed and its operations are emitted to the
// controller. Notifications run outside the dispatcher's state lock, so the
// controller is free to call [Dispatcher.CurrentList] or
// [Dispatcher.Dispatch] while handling one.
//
// The returned future resolves with the dispatched operations, or with
// [ErrSuperseded] when a newer Dispatch call replaced this one, or with the
// computation's error. Typical callers ignore it; either way no failure ever
// corrupts the current list or the controller's notification stream.
//
// newList must not be mutated after this call, and the previously committed
// list must not be mutated while any dispatch is in flight: both are read by
// the computation for its entire lifetime.
func (d *Dispatcher[L, R]) Dispatch(newList L) future.Future[[]Op] {
	f, resolve := future.New[[]Op]()

	d.mu.Lock()
	if d.cancel != nil {
		// Best-effort: the superseded worker may or may not stop, the
		// token check below is what guarantees its result is dropped.
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.gen++
	token := d.gen
	oldList := d.current
	d.mu.Unlock()

	go func() {
		ops, err := d.compute(ctx, oldList, newList)

		// Taking emitMu before the state lock keeps notification batch
		// order equal to commit order across generations.
		d.emitMu.Lock()
		defer d.emitMu.Unlock()

		d.mu.Lock()
		if token != d.gen {
			// Stale result: a newer request arrived while we were
			// computing. Nothing is dispatched, nothing changes.
			d.mu.Unlock()
			d.log.WithField("token", token).Debug("animlist: discarding superseded diff result")
			resolve(nil, ErrSuperseded)
			return
		}

		d.cancel = nil
		cancel()

		if err != nil {
			d.mu.Unlock()
			d.log.WithError(err).Debug("animlist: diff computation failed, list unchanged")
			resolve(nil, err)
			return
		}

		d.current = newList
		d.mu.Unlock()

		// The state lock is released before the controller runs, so a
		// controller may call back into the dispatcher while handling a
		// notification. CurrentList already reports the committed target.
		d.emit(oldList, ops)
		resolve(ops, nil)
	}()

	return f
}

// compute runs the edit-script engine and the coalescer as one unit,
// converting panics into errors. A panic out of the caller's comparator maps
// to [ErrComparator]; any other panic is a bug here and maps to
// [ErrInternal].
func (d *Dispatcher[L, R]) compute(ctx context.Context, oldList, newList L) (ops []Op, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()

	edits, err := ComputeEdits(ctx, oldList, newList, guardedComparator[L]{d.cmp}, d.diffOpts...)
	if err != nil {
		return nil, err
	}
	return Coalesce(edits)
}

// panicError attributes a recovered computation panic to its origin.
func panicError(r any) error {
	if cp, ok := r.(comparatorPanic); ok {
		return fmt.Errorf("%w: panic: %v", ErrComparator, cp.value)
	}
	return fmt.Errorf("%w: panic: %v", ErrInternal, r)
}

// emit sends the operation list to the controller in order and closes the
// cycle with DispatchChanges. Contiguous change operations are merged into a
// single changed-range notification. Called with d.emitMu held and d.mu
// released.
func (d *Dispatcher[L, R]) emit(oldList L, ops []Op) {
	for i := 0; i < len(ops); i++ {
		op := ops[i]
		switch op.Kind {
		case OpInsert:
			d.ctrl.NotifyInsertedRange(op.Pos, op.Count)

		case OpRemove:
			d.ctrl.NotifyRemovedRange(op.Pos, op.Count, d.maker(oldList, op.OldPos, BuildRemoving))

		case OpReplace:
			d.ctrl.NotifyReplacedRange(op.Pos, op.RemoveCount, op.InsertCount, d.maker(oldList, op.OldPos, BuildRemoving))

		case OpChange:
			// The coalescer emits per-item changes; fold runs of adjacent
			// ones into a single range notification.
			count := op.Count
			for i+1 < len(ops) &&
				ops[i+1].Kind == OpChange &&
				ops[i+1].Pos == op.Pos+count &&
				ops[i+1].OldPos == op.OldPos+count {
				count += ops[i+1].Count
				i++
			}
			d.ctrl.NotifyChangedRange(op.Pos, count, d.maker(oldList, op.OldPos, BuildChanging))
		}
	}
	d.ctrl.DispatchChanges()
}

// maker closes over the outgoing list so the controller can still build its
// items after the dispatcher has moved on.
func (d *Dispatcher[L, R]) maker(list L, start int, kind BuildKind) ItemMaker[R] {
	return func(offset int) R {
		return d.build(list, start+offset, kind)
	}
}
